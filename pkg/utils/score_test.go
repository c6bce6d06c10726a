package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5, 0, 100))
	assert.Equal(t, 100, Clamp(150, 0, 100))
	assert.Equal(t, 42, Clamp(42, 0, 100))
	assert.Equal(t, 0, Clamp(0, 0, 100))
	assert.Equal(t, 100, Clamp(100, 0, 100))
}

func TestScoreToken(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  int
		found bool
	}{
		{
			name:  "plain score",
			text:  "The risk score 75 reflects heavy concentration.",
			want:  75,
			found: true,
		},
		{
			name:  "score with colon token",
			text:  "Risk score: 60. Diversify across sectors.",
			want:  60,
			found: true,
		},
		{
			name:  "punctuation around number",
			text:  "score (85), needs review",
			want:  85,
			found: true,
		},
		{
			name:  "case insensitive",
			text:  "SCORE 30 overall",
			want:  30,
			found: true,
		},
		{
			name:  "last match wins",
			text:  "score 10 but later score 90",
			want:  90,
			found: true,
		},
		{
			name:  "non numeric follower skipped, later match used",
			text:  "score high, final score 55",
			want:  55,
			found: true,
		},
		{
			name:  "word between keyword and number is not parsed",
			text:  "The risk score is 72 overall",
			found: false,
		},
		{
			name:  "no score keyword",
			text:  "This portfolio is risky: 80 out of 100",
			found: false,
		},
		{
			name:  "score at end of text",
			text:  "here is your score",
			found: false,
		},
		{
			name:  "empty text",
			text:  "",
			found: false,
		},
		{
			name:  "negative value passes through",
			text:  "score -10 somehow",
			want:  -10,
			found: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ScoreToken(tt.text)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", TruncateRunes("abc", 5))
	assert.Equal(t, "abc", TruncateRunes("abcde", 3))
	assert.Equal(t, "", TruncateRunes("", 5))

	// A multi-byte rune at the cut point stays intact.
	s := strings.Repeat("a", 4) + "é"
	got := TruncateRunes(s, 4)
	assert.Equal(t, "aaaa", got)
	assert.True(t, utf8.ValidString(got))

	got = TruncateRunes("日本語のテキスト", 3)
	assert.Equal(t, "日本語", got)
	assert.True(t, utf8.ValidString(got))
}
