package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexhholmes/wiregen/internal/logging"
)

func TestMain(m *testing.M) {
	logging.ConfigureTests()
	os.Exit(m.Run())
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestInspect(t *testing.T) {
	out, err := run(t, "inspect", "testdata/proto.yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "\nPoint (size=4)\n")
	assert.Contains(t, out, "\nListFontsRequest (request opcode=49 reply=ListFontsReply, size=2, transparent)\n")
	assert.Contains(t, out, "\nListFontsReply (size=sizeof(uint16) + 22 + len(names)*1, prefix=24)\n")
	assert.Contains(t, out, "  list     names []uint8 [24, ...)\n")
	assert.Contains(t, out, "  LoadList names []uint8 len=len0\n")
}

func TestInspectMissingFile(t *testing.T) {
	_, err := run(t, "inspect", "testdata/missing.yaml")
	assert.Error(t, err)
}

func TestGenerateToStdout(t *testing.T) {
	out, err := run(t, "generate", "--package", "proto", "--endian", "big", "testdata/proto.yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "package proto")
	assert.Contains(t, out, "func ListFontsReplyFromBytes(b []byte) (ListFontsReply, int, error) {")
	assert.Contains(t, out, "binary.BigEndian.PutUint16")
}

func TestGenerateWithConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "xproto")
	require.NoError(t, os.Mkdir(dir, 0o755))

	input, err := filepath.Abs("testdata/proto.yaml")
	require.NoError(t, err)
	cfgPath := filepath.Join(dir, "wiregen.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
output = "proto_gen.go"
inputs = ["`+input+`"]
unused_slots = "error"
`), 0o644))

	_, err = run(t, "generate", "--config", cfgPath, "--workers", "2")
	require.NoError(t, err)

	src, err := os.ReadFile(filepath.Join(dir, "proto_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "package xproto", "package defaults to the output directory")
}

func TestGenerateInvalidFlags(t *testing.T) {
	_, err := run(t, "generate", "--package", "p", "--unused-slots", "loud", "testdata/proto.yaml")
	assert.ErrorContains(t, err, "unused_slots")

	_, err = run(t, "--log-level", "chatty", "generate", "testdata/proto.yaml")
	assert.ErrorContains(t, err, "unknown log level")
}
