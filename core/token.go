package core

import "strings"

// finishAliases are decision tokens understood as the terminal target in
// addition to End itself.
var finishAliases = map[string]bool{
	"finish":  true,
	"end":     true,
	"done":    true,
	"__end__": true,
}

// NormalizeToken canonicalizes a raw decision token: trims surrounding
// whitespace, quotes and trailing sentence punctuation, and folds case.
func NormalizeToken(raw string) string {
	t := strings.TrimSpace(raw)
	t = strings.Trim(t, "\"'`")
	t = strings.TrimRight(t, ".!。！")
	return strings.ToLower(strings.TrimSpace(t))
}

// ResolveToken normalizes a raw decision token and matches it against the
// allowed target set. Finish aliases resolve to End when End is allowed.
// The second return value reports whether the token resolved.
func ResolveToken(raw string, targets []NodeID) (NodeID, bool) {
	t := NormalizeToken(raw)
	if t == "" {
		return "", false
	}
	terminal := false
	for _, id := range targets {
		if id == End {
			terminal = true
			continue
		}
		if strings.ToLower(string(id)) == t {
			return id, true
		}
	}
	if terminal && (t == strings.ToLower(string(End)) || finishAliases[t]) {
		return End, true
	}
	return "", false
}
