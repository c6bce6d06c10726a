package utils

import (
	"strconv"
	"strings"
)

// Clamp bounds v into [min, max].
func Clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ScoreToken scans whitespace-split tokens of generated text for an integer
// that immediately follows a token containing "score" (case insensitive,
// surrounding punctuation stripped). The scan covers the whole text and the
// last parseable match wins. It returns the value and whether one was
// found. Generated text carries no grammar guarantee, so this is best
// effort by contract.
func ScoreToken(text string) (int, bool) {
	tokens := strings.Fields(text)
	value, found := 0, false
	for i, token := range tokens {
		if !strings.Contains(strings.ToLower(token), "score") || i+1 >= len(tokens) {
			continue
		}
		candidate := strings.Trim(tokens[i+1], ".,:;!?()[]%\"'")
		if parsed, err := strconv.Atoi(candidate); err == nil {
			value, found = parsed, true
		}
	}
	return value, found
}

// TruncateRunes shortens s to at most max runes, cutting on a rune boundary
// so the result stays valid UTF-8.
func TruncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
