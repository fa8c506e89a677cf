// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - NoteStore: Note persistence
//   - NotebookStore: Notebook persistence
//   - HistoryStore: Parse history persistence
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - LLMService: Language model operations. Without it, parse submissions
//     fail with domain.ErrLLMUnavailable but everything else works.
//   - Capturer: Link fetching. Without it, only text submissions parse.
//   - LLMConfigValidator: Connectivity checks on settings changes.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or capture package
package driven
