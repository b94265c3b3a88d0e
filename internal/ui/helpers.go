package ui

import (
	"fmt"
	"strings"
	"time"
)

// Discord palette used across the embeds.
const (
	colorRed    = 0xED4245
	colorGreen  = 0x57F287
	colorOrange = 0xE67E22
	colorBlue   = 0x3498DB
	colorGold   = 0xF1C40F
)

// Truncate caps s at max runes, appending an ellipsis when cut.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

func Mention(userID string) string { return "<@" + userID + ">" }

func ChannelMention(channelID string) string { return "<#" + channelID + ">" }

func RoleMention(roleID string) string { return "<@&" + roleID + ">" }

func codeBlock(s string) string {
	// strip backticks so user content can't break out of the block
	return "```" + strings.ReplaceAll(s, "`", "'") + "```"
}

func nowTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

func bulletCode(items []string) string {
	var b strings.Builder
	for _, it := range items {
		fmt.Fprintf(&b, "• `%s`\n", it)
	}
	return strings.TrimRight(b.String(), "\n")
}
