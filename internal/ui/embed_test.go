package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 500))
	assert.Equal(t, "abc...", Truncate("abcdef", 3))
	// rune-safe, not byte-safe
	assert.Equal(t, "héllo", Truncate("héllo", 5))
}

func TestAuditEmbed_CapsContentAndLinks(t *testing.T) {
	long := strings.Repeat("x", 600)
	links := []string{"a.com", "b.com", "c.com", "d.com"}

	emb := AuditEmbed("42", "spammer", long, links, "99", true)

	var content, detected, status string
	for _, f := range emb.Fields {
		switch f.Name {
		case "📝 Message Content":
			content = f.Value
		case "🔗 Detected Links":
			detected = f.Value
		case "🔒 Status":
			status = f.Value
		}
	}
	assert.Contains(t, content, strings.Repeat("x", 500)+"...")
	assert.NotContains(t, content, strings.Repeat("x", 501))
	assert.Contains(t, detected, "a.com")
	assert.Contains(t, detected, "c.com")
	assert.NotContains(t, detected, "d.com")
	assert.Equal(t, "Not Whitelisted", status)
}

func TestAuditEmbed_OwnerOnlyVariantHasNoStatusField(t *testing.T) {
	emb := AuditEmbed("42", "spammer", "example.com", []string{"example.com"}, "99", false)
	for _, f := range emb.Fields {
		assert.NotEqual(t, "🔒 Status", f.Name)
	}
}

func TestWarningText(t *testing.T) {
	assert.Equal(t,
		"<@42>, Only whitelisted users can post links! Use `!request` to ask for permission.",
		WarningText("42", true, "!"))
	assert.Equal(t, "<@42>, Only the bot owner can post links!", WarningText("42", false, "!"))
}
