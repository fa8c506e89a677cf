// Package llmtext recovers human-readable text from inconsistently shaped
// AI replies. Upstream models return the same payload in several forms:
// plain prose, prose with fenced ```json blocks, a whole JSON object, or
// JSON truncated mid-value when a streamed response was cut off.
//
// Normalise applies a fixed pipeline of heuristics and never fails; for
// adversarial input the worst case is lightly cleaned text, not an error.
package llmtext
