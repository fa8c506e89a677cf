package driven

// Prompt names used with PromptStore.
const (
	// PromptParse is the note curation prompt sent with submitted material.
	PromptParse = "parse"
)

// PromptStore loads customisable prompt templates by name.
// Implementations may read user-editable files with embedded fallbacks.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	Load(name string) (string, error)
}
