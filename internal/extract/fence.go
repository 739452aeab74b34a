package extract

import "strings"

const fence = "```"

// StripFence removes a markdown code fence around a structured block.
//
// Handled shapes: no fence; a fenced block with or without a language tag;
// a block preceded or followed by prose; an opening fence that is never
// closed; a closing fence with no opening one.
func StripFence(text string) string {
	s := strings.TrimSpace(text)
	start := strings.Index(s, fence)
	if start < 0 {
		return s
	}

	before := strings.TrimSpace(s[:start])
	rest := dropInfoString(s[start+len(fence):])
	if end := strings.Index(rest, fence); end >= 0 {
		rest = rest[:end]
	}

	inside := strings.TrimSpace(rest)
	if inside == "" {
		return before
	}
	return inside
}

// dropInfoString removes the language tag that may follow an opening fence.
func dropInfoString(s string) string {
	i := 0
	for i < len(s) && isTagByte(s[i]) {
		i++
	}
	if i == 0 {
		return s
	}
	if i == len(s) {
		return ""
	}
	switch s[i] {
	case '\n', '\r', ' ', '\t', '{', '[':
		return s[i:]
	}
	return s
}

func isTagByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '-' || b == '+' || b == '_'
}
