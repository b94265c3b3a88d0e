// internal/app/commands_whitelist.go
// Variant A command set: whitelist management plus the open self-service
// commands.
package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	disc "github.com/dmarquez/link-sentinel-bot/internal/adapters/discord"
	"github.com/dmarquez/link-sentinel-bot/internal/authz"
	"github.com/dmarquez/link-sentinel-bot/internal/domain/events"
	"github.com/dmarquez/link-sentinel-bot/internal/moderation"
	"github.com/dmarquez/link-sentinel-bot/internal/ui"
	"github.com/dmarquez/link-sentinel-bot/internal/whitelist"
)

func (b *Bot) cmdWhitelistAdd(inv invocation) error {
	if len(inv.args) == 0 {
		return missingArg("target")
	}
	tgt, err := b.Disc.ResolveTarget(inv.m.GuildID, inv.args[0])
	if errors.Is(err, disc.ErrTargetNotFound) {
		b.notify(inv.m.ChannelID,
			"❌ Could not find user or role. Please use mentions: `@username` or `@rolename`",
			10*time.Second)
		return nil
	}
	if err != nil {
		return err
	}

	actor := inv.m.Author
	switch tgt.Kind {
	case disc.TargetUser:
		if err := b.WL.AddUser(authz.ParseID(tgt.ID)); err != nil {
			if errors.Is(err, whitelist.ErrAlreadyListed) {
				b.notify(inv.m.ChannelID,
					fmt.Sprintf("⚠️ %s is already whitelisted!", ui.Mention(tgt.ID)), 5*time.Second)
				return nil
			}
			return err
		}
		b.notifyEmbed(inv.m.ChannelID, ui.UserWhitelisted(tgt.ID, tgt.Name, actor.Username), 0)
		// courtesy DM; closed DMs are fine
		if err := b.Disc.SendDM(tgt.ID, ui.GrantNotice(b.guildName(inv.m.GuildID), actor.ID)); err != nil &&
			!errors.Is(err, moderation.ErrDMClosed) {
			return err
		}
		events.Publish(events.WhitelistChanged{Kind: "user", ID: authz.ParseID(tgt.ID), Added: true, ActorID: actor.ID})
	case disc.TargetRole:
		if err := b.WL.AddRole(authz.ParseID(tgt.ID)); err != nil {
			if errors.Is(err, whitelist.ErrAlreadyListed) {
				b.notify(inv.m.ChannelID,
					fmt.Sprintf("⚠️ Role %s is already whitelisted!", ui.RoleMention(tgt.ID)), 5*time.Second)
				return nil
			}
			return err
		}
		b.notifyEmbed(inv.m.ChannelID, ui.RoleWhitelisted(tgt.ID, tgt.Name, actor.Username), 0)
		events.Publish(events.WhitelistChanged{Kind: "role", ID: authz.ParseID(tgt.ID), Added: true, ActorID: actor.ID})
	}
	return nil
}

func (b *Bot) cmdWhitelistRemove(inv invocation) error {
	if len(inv.args) == 0 {
		return missingArg("target")
	}
	tgt, err := b.Disc.ResolveTarget(inv.m.GuildID, inv.args[0])
	if errors.Is(err, disc.ErrTargetNotFound) {
		b.notify(inv.m.ChannelID,
			"❌ Could not find user or role. Please use mentions: `@username` or `@rolename`",
			10*time.Second)
		return nil
	}
	if err != nil {
		return err
	}

	actor := inv.m.Author
	switch tgt.Kind {
	case disc.TargetUser:
		if err := b.WL.RemoveUser(authz.ParseID(tgt.ID)); err != nil {
			if errors.Is(err, whitelist.ErrNotListed) {
				b.notify(inv.m.ChannelID,
					fmt.Sprintf("⚠️ %s is not whitelisted!", ui.Mention(tgt.ID)), 5*time.Second)
				return nil
			}
			return err
		}
		b.notifyEmbed(inv.m.ChannelID, ui.UserRemoved(tgt.ID, actor.Username), 0)
		if err := b.Disc.SendDM(tgt.ID, ui.RevokeNotice(b.guildName(inv.m.GuildID), actor.ID)); err != nil &&
			!errors.Is(err, moderation.ErrDMClosed) {
			return err
		}
		events.Publish(events.WhitelistChanged{Kind: "user", ID: authz.ParseID(tgt.ID), Added: false, ActorID: actor.ID})
	case disc.TargetRole:
		if err := b.WL.RemoveRole(authz.ParseID(tgt.ID)); err != nil {
			if errors.Is(err, whitelist.ErrNotListed) {
				b.notify(inv.m.ChannelID,
					fmt.Sprintf("⚠️ Role %s is not whitelisted!", ui.RoleMention(tgt.ID)), 5*time.Second)
				return nil
			}
			return err
		}
		b.notifyEmbed(inv.m.ChannelID, ui.RoleRemoved(tgt.ID, actor.Username), 0)
		events.Publish(events.WhitelistChanged{Kind: "role", ID: authz.ParseID(tgt.ID), Added: false, ActorID: actor.ID})
	}
	return nil
}

func (b *Bot) cmdWhitelistList(inv invocation) error {
	var userLines []string
	for _, id := range b.WL.Users() {
		sid := strconv.FormatInt(id, 10)
		if u, err := inv.s.User(sid); err == nil {
			userLines = append(userLines, fmt.Sprintf("• %s (`%s`)", ui.Mention(sid), u.Username))
		} else {
			userLines = append(userLines, fmt.Sprintf("• Unknown User (`%s`)", sid))
		}
	}

	var roleLines []string
	for _, id := range b.WL.Roles() {
		sid := strconv.FormatInt(id, 10)
		if r, err := inv.s.State.Role(inv.m.GuildID, sid); err == nil && r != nil {
			roleLines = append(roleLines, fmt.Sprintf("• %s (`%s`)", ui.RoleMention(sid), r.Name))
		} else {
			roleLines = append(roleLines, fmt.Sprintf("• Unknown Role (`%s`)", sid))
		}
	}

	b.notifyEmbed(inv.m.ChannelID, ui.WhitelistList(userLines, roleLines, inv.m.Author.Username), 0)
	return nil
}

func (b *Bot) cmdWhitelistCheck(inv invocation) error {
	// no target: check the invoker, roles included
	if len(inv.args) == 0 {
		author := inv.m.Author
		var roleIDs []string
		if inv.m.Member != nil {
			roleIDs = inv.m.Member.Roles
		}
		g := b.Auth.Grants(authz.ParseID(author.ID), authz.ParseIDs(roleIDs))
		fields := []*discordgo.MessageEmbedField{
			{Name: "User ID", Value: "`" + author.ID + "`", Inline: true},
		}
		b.notifyEmbed(inv.m.ChannelID,
			ui.WhitelistCheck("**User:** "+ui.Mention(author.ID), g.Allowed(), fields, b.grantSources(inv, g)), 0)
		return nil
	}

	tgt, err := b.Disc.ResolveTarget(inv.m.GuildID, inv.args[0])
	if errors.Is(err, disc.ErrTargetNotFound) {
		b.notify(inv.m.ChannelID, "❌ Could not find user or role.", 5*time.Second)
		return nil
	}
	if err != nil {
		return err
	}

	switch tgt.Kind {
	case disc.TargetUser:
		// role membership of an arbitrary user is not tracked here; the
		// check covers owner and direct whitelist, like the lookup path
		g := b.Auth.Grants(authz.ParseID(tgt.ID), nil)
		fields := []*discordgo.MessageEmbedField{
			{Name: "Username", Value: "`" + tgt.Name + "`", Inline: true},
		}
		b.notifyEmbed(inv.m.ChannelID,
			ui.WhitelistCheck("**User:** "+ui.Mention(tgt.ID), g.Allowed(), fields, nil), 0)
	case disc.TargetRole:
		listed := b.WL.HasRole(authz.ParseID(tgt.ID))
		fields := []*discordgo.MessageEmbedField{
			{Name: "Role Name", Value: tgt.Name, Inline: true},
		}
		b.notifyEmbed(inv.m.ChannelID,
			ui.WhitelistCheck("**Role:** "+ui.RoleMention(tgt.ID), listed, fields, nil), 0)
	}
	return nil
}

// grantSources renders the "why allowed" lines for the invoker.
func (b *Bot) grantSources(inv invocation, g authz.Grant) []string {
	var sources []string
	if g.Owner {
		sources = append(sources, "👑 Bot Owner")
	}
	if g.User {
		sources = append(sources, "👤 Direct Whitelist")
	}
	if len(g.Roles) > 0 {
		names := make([]string, 0, len(g.Roles))
		for _, id := range g.Roles {
			sid := strconv.FormatInt(id, 10)
			if r, err := inv.s.State.Role(inv.m.GuildID, sid); err == nil && r != nil {
				names = append(names, r.Name)
			} else {
				names = append(names, sid)
			}
		}
		sources = append(sources, "🎭 Role(s): "+strings.Join(names, ", "))
	}
	return sources
}

func (b *Bot) cmdRequest(inv invocation) error {
	author := inv.m.Author
	var roleIDs []string
	if inv.m.Member != nil {
		roleIDs = inv.m.Member.Roles
	}
	if b.Auth.Allowed(authz.ParseID(author.ID), authz.ParseIDs(roleIDs)) {
		b.notify(inv.m.ChannelID, "✅ You are already whitelisted! You can post links.", 10*time.Second)
		return nil
	}

	req := ui.WhitelistRequest(author.ID, author.Username, b.guildName(inv.m.GuildID),
		inv.m.ChannelID, inv.rest, b.Cfg.Prefix)
	if err := b.Disc.SendDM(b.ownerIDString(), req); err != nil {
		b.notify(inv.m.ChannelID,
			"❌ Failed to send request to owner. They may have DMs disabled.", 10*time.Second)
		return nil
	}

	b.notifyEmbed(inv.m.ChannelID, ui.RequestSent(inv.rest), 30*time.Second)
	// DM copy to the requester, best effort
	_ = b.Disc.SendDM(author.ID, ui.RequestSubmitted(b.guildName(inv.m.GuildID)))
	return nil
}

func (b *Bot) cmdMyStatus(inv invocation) error {
	author := inv.m.Author
	var roleIDs []string
	if inv.m.Member != nil {
		roleIDs = inv.m.Member.Roles
	}
	g := b.Auth.Grants(authz.ParseID(author.ID), authz.ParseIDs(roleIDs))
	sources := b.grantSources(inv, g)
	b.notifyEmbed(inv.m.ChannelID,
		ui.MyStatus(g.Allowed(), sources, author.Username, b.Cfg.Prefix), 30*time.Second)
	return nil
}
