// Package app wires application dependencies for the server and CLI.
//
// Config is assembled in layers: built-in defaults, an optional config file
// (yaml, json or toml), then environment variables. NewWire builds the
// snapshot store, language model client, services and session manager from
// it and exposes them via the Wire struct.
package app
