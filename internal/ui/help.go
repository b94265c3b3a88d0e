// Help embeds, one per audience.
package ui

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// OwnerHelp lists the owner command set for the active variant.
func OwnerHelp(ownerName, prefix string, hasWhitelist bool) *discordgo.MessageEmbed {
	emb := &discordgo.MessageEmbed{
		Title:  "🛡️ Owner Commands",
		Color:  colorGold,
		Footer: &discordgo.MessageEmbedFooter{Text: "Bot Owner: " + ownerName},
	}
	if hasWhitelist {
		emb.Description = "Bot owner commands"
		emb.Fields = []*discordgo.MessageEmbedField{
			{
				Name: "👥 Whitelist Management",
				Value: fmt.Sprintf("• `%swladd @user` - Add user or role to whitelist\n"+
					"• `%swlremove @user` - Remove user or role\n"+
					"• `%swllist` - Show all whitelisted\n"+
					"• `%swlcheck @user` - Check status\n"+
					"• `%swldm` - DM all whitelisted users",
					prefix, prefix, prefix, prefix, prefix),
			},
			{
				Name: "🛠️ Moderation",
				Value: fmt.Sprintf("• `%sclean <limit>` - Clean links (default: 50)", prefix),
			},
			{
				Name: "📊 Information",
				Value: fmt.Sprintf("• `%smystatus` - Check your status\n• `%shelp` - Show this help",
					prefix, prefix),
			},
		}
		return emb
	}
	emb.Description = "Only you can use these commands"
	emb.Fields = []*discordgo.MessageEmbedField{
		{
			Name: "🛠️ Moderation",
			Value: fmt.Sprintf("• `%sdeletemsg <id>` - Delete any message\n"+
				"• `%scleanup <limit>` - Clean links (default: 50)\n"+
				"• `%sbroadcast <msg>` - Broadcast to all servers",
				prefix, prefix, prefix),
		},
		{
			Name: "📊 Bot Info",
			Value: fmt.Sprintf("• `%sstatus` - Bot status\n• `%sshutdown` - Shutdown bot",
				prefix, prefix),
		},
	}
	return emb
}

// WhitelistedHelp is shown to non-owner principals that pass authorization.
func WhitelistedHelp(name, prefix string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "✅ Whitelisted User Commands",
		Description: "You can post links!",
		Color:       colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "✅ You Can Post",
				Value: "• YouTube links\n• Discord invites\n• All website URLs\n• Social media links",
			},
			{
				Name: "📊 Information",
				Value: fmt.Sprintf("• `%smystatus` - Check your status\n"+
					"• `%srequest <reason>` - Request for others\n"+
					"• `%shelp` - Show help",
					prefix, prefix, prefix),
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Whitelisted User: " + name},
	}
}

// RestrictedHelp is shown to everyone else.
func RestrictedHelp(prefix string, hasWhitelist bool) *discordgo.MessageEmbed {
	if !hasWhitelist {
		return &discordgo.MessageEmbed{
			Title:       "❌ Restricted Access",
			Description: "This bot's commands are only available to the owner.",
			Color:       colorRed,
			Fields: []*discordgo.MessageEmbedField{
				{
					Name: "ℹ️ Information",
					Value: "• Only the bot owner can post links\n" +
						"• Messages with links are automatically deleted\n" +
						"• Contact the server admin for assistance",
				},
			},
		}
	}
	return &discordgo.MessageEmbed{
		Title:       "🔒 Restricted Access",
		Description: "You cannot post links in this server.",
		Color:       colorRed,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "❌ Blocked Content",
				Value: "• All URLs and website links\n• YouTube videos\n• Discord invites\n• Social media links",
			},
			{
				Name: "📋 Available Commands",
				Value: fmt.Sprintf("• `%srequest <reason>` - Request whitelist access\n"+
					"• `%smystatus` - Check your status\n"+
					"• `%shelp` - Show this help",
					prefix, prefix, prefix),
			},
			{
				Name: "ℹ️ How to Get Access",
				Value: fmt.Sprintf("Use `%srequest <reason>` to ask the owner.\nExample: `%srequest I need to share my YouTube tutorials`",
					prefix, prefix),
			},
		},
	}
}
