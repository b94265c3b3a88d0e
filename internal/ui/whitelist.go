// Whitelist management embeds (Variant A command set).
package ui

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

func UserWhitelisted(userID, username, actorName string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "✅ User Whitelisted",
		Description: fmt.Sprintf("%s can now post links!", Mention(userID)),
		Color:       colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "User", Value: username, Inline: true},
			{Name: "ID", Value: "`" + userID + "`", Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Added by " + actorName},
	}
}

func RoleWhitelisted(roleID, roleName, actorName string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "✅ Role Whitelisted",
		Description: fmt.Sprintf("Role %s can now post links!", RoleMention(roleID)),
		Color:       colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Role", Value: roleName, Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Added by " + actorName},
	}
}

func UserRemoved(userID, actorName string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "❌ User Removed from Whitelist",
		Description: fmt.Sprintf("%s can no longer post links.", Mention(userID)),
		Color:       colorRed,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Removed by " + actorName},
	}
}

func RoleRemoved(roleID, actorName string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "❌ Role Removed from Whitelist",
		Description: fmt.Sprintf("Role %s can no longer post links.", RoleMention(roleID)),
		Color:       colorRed,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Removed by " + actorName},
	}
}

// GrantNotice is DM'd to a user when they are whitelisted.
func GrantNotice(guildName, actorID string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🎉 Whitelist Access Granted",
		Description: fmt.Sprintf("You have been whitelisted to post links in **%s**!", guildName),
		Color:       colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Granted By", Value: Mention(actorID), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "You can now post YouTube and Discord links"},
	}
}

// RevokeNotice is DM'd to a user when their whitelist entry is removed.
func RevokeNotice(guildName, actorID string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🔒 Whitelist Access Revoked",
		Description: fmt.Sprintf("Your whitelist access has been removed in **%s**.", guildName),
		Color:       colorRed,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Removed By", Value: Mention(actorID), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "You can no longer post links"},
	}
}

// WhitelistList renders the wllist output. userLines/roleLines are already
// formatted display rows; empty slices render as "None".
func WhitelistList(userLines, roleLines []string, requesterName string) *discordgo.MessageEmbed {
	users := "None"
	if len(userLines) > 0 {
		users = joinLines(userLines)
	}
	roles := "None"
	if len(roleLines) > 0 {
		roles = joinLines(roleLines)
	}
	return &discordgo.MessageEmbed{
		Title: "📋 Whitelist Status",
		Color: colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "👤 Whitelisted Users", Value: users},
			{Name: "🎭 Whitelisted Roles", Value: roles},
			{
				Name:  "📊 Stats",
				Value: fmt.Sprintf("**Total Users:** %d\n**Total Roles:** %d", len(userLines), len(roleLines)),
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Requested by " + requesterName},
	}
}

// WhitelistCheck renders a wlcheck result for a user or role target.
// sources may be empty for a denied principal.
func WhitelistCheck(description string, allowed bool, extraFields []*discordgo.MessageEmbedField, sources []string) *discordgo.MessageEmbed {
	status := "❌ Not Whitelisted"
	color := colorRed
	if allowed {
		status = "✅ Whitelisted"
		color = colorGreen
	}
	emb := &discordgo.MessageEmbed{
		Title:       "🔍 Whitelist Check",
		Description: description,
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Status", Value: status, Inline: true},
		},
	}
	emb.Fields = append(emb.Fields, extraFields...)
	if len(sources) > 0 {
		emb.Fields = append(emb.Fields, &discordgo.MessageEmbedField{
			Name: "Sources", Value: joinLines(sources),
		})
	}
	return emb
}

// MyStatus renders the self-service status embed.
func MyStatus(allowed bool, sources []string, requesterName, prefix string) *discordgo.MessageEmbed {
	var emb *discordgo.MessageEmbed
	if allowed {
		emb = &discordgo.MessageEmbed{
			Title:       "✅ Whitelist Status: APPROVED",
			Description: "You can post links in this server!",
			Color:       colorGreen,
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:  "✅ Allowed Links",
					Value: "• YouTube videos\n• Discord invites\n• All website URLs\n• Twitch links\n• Social media links",
				},
			},
		}
		if len(sources) > 0 {
			emb.Fields = append(emb.Fields, &discordgo.MessageEmbedField{
				Name: "Access Source", Value: joinLines(sources),
			})
		}
	} else {
		emb = &discordgo.MessageEmbed{
			Title:       "❌ Whitelist Status: NOT APPROVED",
			Description: "You cannot post links in this server.",
			Color:       colorRed,
			Fields: []*discordgo.MessageEmbedField{
				{
					Name: "How to Get Access",
					Value: fmt.Sprintf("Use `%srequest <reason>` to ask the owner for permission.\nExample: `%srequest I need to share tutorial videos`",
						prefix, prefix),
				},
				{
					Name:  "❌ Blocked Links",
					Value: "• All URLs\n• Discord invites\n• YouTube links\n• Website links",
				},
			},
		}
	}
	emb.Footer = &discordgo.MessageEmbedFooter{Text: "Requested by " + requesterName}
	return emb
}

// WhitelistRequest is DM'd to the owner when a user runs !request.
func WhitelistRequest(authorID, authorName, guildName, channelID, reason, prefix string) *discordgo.MessageEmbed {
	emb := &discordgo.MessageEmbed{
		Title:       "🔔 Whitelist Request",
		Description: fmt.Sprintf("**From:** %s (`%s`)", Mention(authorID), authorName),
		Color:       colorOrange,
		Timestamp:   nowTimestamp(),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Server", Value: guildName, Inline: true},
			{Name: "Channel", Value: ChannelMention(channelID), Inline: true},
		},
	}
	if reason != "" {
		emb.Fields = append(emb.Fields, &discordgo.MessageEmbedField{Name: "Reason", Value: reason})
	}
	emb.Fields = append(emb.Fields, &discordgo.MessageEmbedField{
		Name: "Quick Actions",
		Value: fmt.Sprintf("Add: `%swladd %s`\nCheck: `%swlcheck %s`",
			prefix, Mention(authorID), prefix, Mention(authorID)),
	})
	emb.Footer = &discordgo.MessageEmbedFooter{Text: "User ID: " + authorID}
	return emb
}

// RequestSent confirms to the requester that the owner was notified.
func RequestSent(reason string) *discordgo.MessageEmbed {
	emb := &discordgo.MessageEmbed{
		Title:       "✅ Request Sent",
		Description: "Your whitelist request has been sent to the bot owner.",
		Color:       colorGreen,
		Footer:      &discordgo.MessageEmbedFooter{Text: "You will be notified if approved"},
	}
	if reason != "" {
		emb.Fields = append(emb.Fields, &discordgo.MessageEmbedField{Name: "Your Reason", Value: reason})
	}
	return emb
}

// RequestSubmitted is the DM copy of the request confirmation.
func RequestSubmitted(guildName string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "📨 Whitelist Request Submitted",
		Description: fmt.Sprintf("Your request to post links in **%s** has been submitted.", guildName),
		Color:       colorBlue,
	}
}

// Announcement is the wldm broadcast DM sent to every whitelisted user.
func Announcement(guildName string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "📢 Whitelist Announcement",
		Description: fmt.Sprintf("This is a message to all whitelisted users in **%s**.", guildName),
		Color:       colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Reminder", Value: "You are whitelisted to post links in this server."},
			{Name: "Allowed Links", Value: "• YouTube videos\n• Discord invites\n• All website links"},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "From server administration"},
	}
}
