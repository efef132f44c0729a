// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the server adapter, and the durable session file
// into a single process lifecycle.
package client
