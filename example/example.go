// Package example holds structures generated from a small subset of the X11
// core protocol.
package example

//go:generate go run ../cmd/wiregen generate --config wiregen.toml

// Window identifies a window on the server
type Window uint32
