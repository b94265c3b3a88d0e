// Package ui renders the Discord embeds and notices the bot posts.
// Presentation only: nothing in here talks to the gateway.
package ui

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// maxAuditLinks caps how many detected links the audit embed shows.
const maxAuditLinks = 3

// AuditEmbed documents an auto-deletion in the channel it happened in.
func AuditEmbed(authorID, authorName, content string, links []string, channelID string, hasWhitelist bool) *discordgo.MessageEmbed {
	emb := &discordgo.MessageEmbed{
		Title:     "🔗 Link Deleted",
		Color:     colorRed,
		Timestamp: nowTimestamp(),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "👤 User",
				Value: fmt.Sprintf("%s\n`%s`\nID: `%s`", Mention(authorID), authorName, authorID),
			},
		},
	}

	if content != "" {
		emb.Fields = append(emb.Fields, &discordgo.MessageEmbedField{
			Name:  "📝 Message Content",
			Value: codeBlock(Truncate(content, 500)),
		})
	}

	if len(links) > 0 {
		shown := links
		if len(shown) > maxAuditLinks {
			shown = shown[:maxAuditLinks]
		}
		emb.Fields = append(emb.Fields, &discordgo.MessageEmbedField{
			Name:  "🔗 Detected Links",
			Value: bulletCode(shown),
		})
	}

	emb.Fields = append(emb.Fields,
		&discordgo.MessageEmbedField{Name: "📌 Channel", Value: ChannelMention(channelID), Inline: true},
		&discordgo.MessageEmbedField{Name: "🛡️ Action", Value: "Auto-Deleted", Inline: true},
	)
	if hasWhitelist {
		emb.Fields = append(emb.Fields,
			&discordgo.MessageEmbedField{Name: "🔒 Status", Value: "Not Whitelisted", Inline: true})
	}
	return emb
}

// WarningText is the short in-channel notice addressed to the author.
func WarningText(authorID string, hasWhitelist bool, prefix string) string {
	if hasWhitelist {
		return fmt.Sprintf("%s, Only whitelisted users can post links! Use `%srequest` to ask for permission.",
			Mention(authorID), prefix)
	}
	return fmt.Sprintf("%s, Only the bot owner can post links!", Mention(authorID))
}

// RemovalNotice is the DM sent to the author after their message is deleted.
func RemovalNotice(guildName, channelName, content string, hasWhitelist bool, prefix string) *discordgo.MessageEmbed {
	emb := &discordgo.MessageEmbed{
		Title:       "⚠️ Link Removed",
		Description: fmt.Sprintf("Your message in **%s** was deleted because it contained links.", guildName),
		Color:       colorOrange,
	}
	emb.Fields = append(emb.Fields,
		&discordgo.MessageEmbedField{Name: "Channel", Value: "#" + channelName, Inline: true})
	if hasWhitelist {
		emb.Fields = append(emb.Fields,
			&discordgo.MessageEmbedField{Name: "Reason", Value: "You are not whitelisted to post links", Inline: true})
	}
	if content != "" {
		emb.Fields = append(emb.Fields, &discordgo.MessageEmbedField{
			Name:  "Your Message",
			Value: codeBlock(Truncate(content, 300)),
		})
	}
	if hasWhitelist {
		emb.Fields = append(emb.Fields, &discordgo.MessageEmbedField{
			Name:  "Request Access",
			Value: fmt.Sprintf("Use `%srequest` in the server to ask for whitelist permission", prefix),
		})
		emb.Footer = &discordgo.MessageEmbedFooter{Text: "Only whitelisted users can post links"}
	} else {
		emb.Footer = &discordgo.MessageEmbedFooter{Text: "Only the bot owner is allowed to post links"}
	}
	return emb
}
