// Owner moderation/ops embeds.
package ui

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

// BotStatus renders the !status embed.
func BotStatus(ownerID string, latency time.Duration, guilds int, uptime time.Duration) *discordgo.MessageEmbed {
	h := int(uptime.Hours())
	m := int(uptime.Minutes()) % 60
	s := int(uptime.Seconds()) % 60
	return &discordgo.MessageEmbed{
		Title: "🤖 Bot Status",
		Color: colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "👑 Owner", Value: Mention(ownerID), Inline: true},
			{Name: "🏓 Ping", Value: fmt.Sprintf("%dms", latency.Milliseconds()), Inline: true},
			{Name: "📊 Servers", Value: fmt.Sprintf("%d", guilds), Inline: true},
			{Name: "⏰ Uptime", Value: fmt.Sprintf("%dh %dm %ds", h, m, s), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Bot Owner: Only you can post links and use commands"},
	}
}

// CleanupSummary reports a finished history sweep.
func CleanupSummary(channelID string, scanned, deleted int, cleanerID string) *discordgo.MessageEmbed {
	color := colorGreen
	if deleted > 0 {
		color = colorOrange
	}
	return &discordgo.MessageEmbed{
		Title:       "🧹 Cleanup Complete",
		Description: "Cleaned " + ChannelMention(channelID),
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Messages Scanned", Value: fmt.Sprintf("%d", scanned), Inline: true},
			{Name: "Links Deleted", Value: fmt.Sprintf("%d", deleted), Inline: true},
			{Name: "Cleaner", Value: Mention(cleanerID), Inline: true},
		},
	}
}

// DeletedMessage documents a manual !deletemsg removal.
func DeletedMessage(authorID, modID, content, channelID string) *discordgo.MessageEmbed {
	emb := &discordgo.MessageEmbed{
		Title:     "🗑️ Message Deleted",
		Color:     colorRed,
		Timestamp: nowTimestamp(),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "👤 User", Value: Mention(authorID), Inline: true},
			{Name: "🛡️ Moderator", Value: Mention(modID), Inline: true},
		},
	}
	if content != "" {
		emb.Fields = append(emb.Fields, &discordgo.MessageEmbedField{
			Name:  "📝 Content",
			Value: codeBlock(Truncate(content, 300)),
		})
	}
	emb.Fields = append(emb.Fields, &discordgo.MessageEmbedField{
		Name: "📌 Channel", Value: ChannelMention(channelID), Inline: true,
	})
	return emb
}

// Broadcast is the embed posted to each guild during !broadcast.
func Broadcast(message, fromName string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "📢 Broadcast Message",
		Description: message,
		Color:       colorBlue,
		Timestamp:   nowTimestamp(),
		Footer:      &discordgo.MessageEmbedFooter{Text: "From: " + fromName},
	}
}

// Shutdown is posted right before the session closes.
func Shutdown(requesterName string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🔌 Shutting Down",
		Description: "Bot is shutting down...",
		Color:       colorRed,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Requested by " + requesterName},
	}
}

// AccessDenied is the self-expiring notice for non-owners invoking owner
// commands.
func AccessDenied(hasWhitelist bool) *discordgo.MessageEmbed {
	if hasWhitelist {
		return &discordgo.MessageEmbed{
			Title:       "⛔ Owner Only",
			Description: "This command is only for the bot owner.",
			Color:       colorRed,
		}
	}
	return &discordgo.MessageEmbed{
		Title:       "⛔ Access Denied",
		Description: "Only the bot owner can use commands!",
		Color:       colorRed,
	}
}
