// Package services implements the driving port interfaces: the application
// logic between the outer adapters (CLI, HTTP API, MCP, TUI) and the driven
// infrastructure (stores, LLM providers, capturers).
package services
