package linkdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsLink(t *testing.T) {
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"plain text", "hello world, no links here", false},
		{"empty", "", false},
		{"discord invite", "join my server https://discord.gg/abc", true},
		{"discord invite no scheme", "discord.gg/Xyz123", true},
		{"discordapp invite", "www.discordapp.com/invite/abc123", true},
		{"youtube", "check this out http://youtu.be/abc123", true},
		{"youtube full", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"generic url", "visit example.com for more", true},
		{"generic url with path", "see https://sub.example.co/path?q=1", true},
		{"uppercase", "HTTPS://WWW.YOUTUBE.COM/WATCH", true},
		{"hyphenated host", "go to my-cool-site.io/stuff", true},
		{"single label is not a host", "just a word.", false},
		{"version number is not a host", "v1.2 released", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ContainsLink(tc.text))
		})
	}
}

func TestExtractLinks_DedupesExactMatches(t *testing.T) {
	got := ExtractLinks("spam example.com and example.com again")
	assert.Equal(t, []string{"example.com"}, got)
}

func TestExtractLinks_PatternOrder(t *testing.T) {
	// The invite pattern wins ordering even though the generic pattern
	// also matches both substrings.
	got := ExtractLinks("first example.com then discord.gg/abc")
	assert.Equal(t, []string{"discord.gg/abc", "example.com"}, got)
}

func TestExtractLinks_Idempotent(t *testing.T) {
	text := "a.com b.org https://discord.gg/x youtu.be/v"
	first := ExtractLinks(text)
	second := ExtractLinks(text)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestExtractLinks_NoLinks(t *testing.T) {
	assert.Empty(t, ExtractLinks("nothing to see"))
}
