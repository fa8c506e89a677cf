// Package driving defines the interfaces through which the outside world
// drives the core (primary/inbound ports). The CLI, HTTP API, MCP server
// and TUI all talk to core services exclusively through these interfaces.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package, any driven port
package driving
