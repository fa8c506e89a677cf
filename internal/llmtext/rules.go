package llmtext

import (
	"regexp"
	"strings"
)

// cleanupRule is one ordered step of the post-extraction pipeline. Rules run
// in sequence, each on the previous rule's output, so individual rules stay
// independently testable and new ones can be appended.
type cleanupRule struct {
	name  string
	apply func(string) string
}

var cleanupRules = []cleanupRule{
	{name: "fenced-json", apply: removeFencedJSON},
	{name: "escaped-newlines", apply: resolveEscapedNewlines},
	{name: "compact-blank-lines", apply: compactBlankLines},
	{name: "labelled-brace-fields", apply: rewriteLabelledBraceFields},
	{name: "residual-braces", apply: removeResidualBraces},
	{name: "dangling-pairs", apply: removeDanglingPairs},
}

// applyCleanupRules runs every cleanup rule in order.
func applyCleanupRules(s string) string {
	for _, r := range cleanupRules {
		s = r.apply(s)
	}
	return s
}

var (
	fencedJSONBlock = regexp.MustCompile("(?s)```json\\s*.*?```")
	strayFenceOpen  = regexp.MustCompile("```json\\s*")
	strayFence      = regexp.MustCompile("```")
)

// removeFencedJSON deletes every ```json fenced block outright. Fenced JSON
// is formatting noise around the reply, never the payload itself; a whole
// JSON object without fences is handled earlier and preserved. Malformed
// fences the block pattern misses are swept up by the stray-marker patterns.
func removeFencedJSON(s string) string {
	s = fencedJSONBlock.ReplaceAllString(s, "")
	s = strayFenceOpen.ReplaceAllString(s, "")
	return strayFence.ReplaceAllString(s, "")
}

// resolveEscapedNewlines converts literal two-character \n sequences into
// real newlines.
func resolveEscapedNewlines(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

var blankLineRun = regexp.MustCompile(`\n{3,}`)

func compactBlankLines(s string) string {
	return strings.TrimSpace(blankLineRun.ReplaceAllString(s, "\n\n"))
}

var (
	labelledBraceField = regexp.MustCompile(`(标题|来源|作者|发布时间|摘要)：\{([^{}]*)\}`)
	firstQuotedValue   = regexp.MustCompile(`:\s*"((?:[^"\\]|\\.)*)"`)
)

// rewriteLabelledBraceFields repairs structured fields the upstream service
// sometimes emits as `标题：{...}`. Plain braced text is reattached to the
// label without braces; JSON-like content yields its first quoted value;
// anything else is dropped, leaving the bare label.
func rewriteLabelledBraceFields(s string) string {
	return labelledBraceField.ReplaceAllStringFunc(s, func(match string) string {
		groups := labelledBraceField.FindStringSubmatch(match)
		label, inner := groups[1], strings.TrimSpace(groups[2])

		jsonLike := strings.Contains(inner, `"`) && strings.Contains(inner, ":")
		if !jsonLike {
			return label + "：" + inner
		}
		if m := firstQuotedValue.FindStringSubmatch(inner); m != nil {
			return label + "：" + unescapeQuotes(m[1])
		}
		return label + "："
	})
}

var (
	emptyBracePair     = regexp.MustCompile(`\{\s*\}`)
	braceOnlyLine      = regexp.MustCompile(`(?m)^\s*\{\s*$\n?`)
	unterminatedBrace  = regexp.MustCompile(`\{[^{}]*$`)
	unopenedCloseBrace = regexp.MustCompile(`^[^{}]*?\}`)
)

// removeResidualBraces drops structural brace fragments left behind by the
// earlier stages: empty {} pairs, lines holding a lone {, an unterminated
// trailing {... and a leading ...} with no matching opener.
func removeResidualBraces(s string) string {
	s = emptyBracePair.ReplaceAllString(s, "")
	s = braceOnlyLine.ReplaceAllString(s, "")
	if !strings.Contains(lastBraceTail(s), "}") {
		s = unterminatedBrace.ReplaceAllString(s, "")
	}
	if m := unopenedCloseBrace.FindString(s); m != "" && !strings.Contains(m, "{") {
		s = strings.TrimPrefix(s, m)
	}
	return s
}

// lastBraceTail returns the substring from the final { onward, or "" when
// the string has no brace.
func lastBraceTail(s string) string {
	if idx := strings.LastIndex(s, "{"); idx >= 0 {
		return s[idx:]
	}
	return ""
}

// danglingPairFragments match trailing fragments of a key/value pair cut off
// mid-stream, most specific first so a partial value is not mistaken for a
// partial key.
var danglingPairFragments = []*regexp.Regexp{
	regexp.MustCompile(`(?m),\s*"[^"\n]*"\s*:\s*"[^"\n]*$`),
	regexp.MustCompile(`(?m),\s*"[^"\n]*"\s*:\s*$`),
	regexp.MustCompile(`(?m),\s*"[^"\n]*$`),
}

// removeDanglingPairs strips truncated `, "key": "partial` fragments at line
// ends and at the end of the whole string.
func removeDanglingPairs(s string) string {
	for _, re := range danglingPairFragments {
		s = re.ReplaceAllString(s, "")
	}
	return s
}
