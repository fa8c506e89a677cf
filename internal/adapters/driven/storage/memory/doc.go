// Package memory provides in-memory implementations of the driven store
// interfaces. They back tests and ephemeral runs; nothing survives process
// exit.
package memory
