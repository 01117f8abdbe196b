package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw    string
		want   zerolog.Level
		wantOK bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, true},
		{" WARNING ", zerolog.WarnLevel, true},
		{"off", zerolog.Disabled, true},
		{"loud", zerolog.InfoLevel, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
		assert.Equal(t, tt.wantOK, ok, tt.raw)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogNoColor, "true")
	t.Setenv(EnvLogTimestamp, "not-a-bool")

	cfg := defaultConfig(ProfileRuntime)
	applyEnvOverrides(&cfg)

	assert.Equal(t, Config{Level: zerolog.ErrorLevel, Timestamp: true, NoColor: true}, cfg)
}

func TestDefaultProfiles(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, defaultConfig(ProfileTest).Level)
	assert.False(t, defaultConfig(ProfileTest).Timestamp)
	assert.Equal(t, zerolog.InfoLevel, defaultConfig(ProfileRuntime).Level)
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Config{Level: zerolog.WarnLevel, NoColor: true})

	logger.Info().Msg("hidden")
	logger.Warn().Str("struct", "Expose").Msg("unused length slot")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, "unused length slot")
	assert.Contains(t, out, "struct=Expose")
}

func TestConfigFor(t *testing.T) {
	t.Setenv(EnvLogLevel, "trace")
	assert.Equal(t, zerolog.TraceLevel, ConfigFor(ProfileTest).Level)
}
