// internal/app/commands_admin.go
// Help plus the owner-only command set of the owner-only variant.
package app

import (
	"errors"
	"fmt"
	"time"

	disc "github.com/dmarquez/link-sentinel-bot/internal/adapters/discord"
	"github.com/dmarquez/link-sentinel-bot/internal/authz"
	"github.com/dmarquez/link-sentinel-bot/internal/moderation"
	"github.com/dmarquez/link-sentinel-bot/internal/ui"
)

func (b *Bot) cmdHelp(inv invocation) error {
	author := inv.m.Author

	if b.isOwner(author.ID) {
		b.notifyEmbed(inv.m.ChannelID,
			ui.OwnerHelp(b.ownerName(inv), b.Cfg.Prefix, b.Cfg.WhitelistEnabled), 0)
		return nil
	}

	if !b.Cfg.WhitelistEnabled {
		b.notifyEmbed(inv.m.ChannelID, ui.RestrictedHelp(b.Cfg.Prefix, false), 0)
		return nil
	}

	var roleIDs []string
	if inv.m.Member != nil {
		roleIDs = inv.m.Member.Roles
	}
	var emb = ui.RestrictedHelp(b.Cfg.Prefix, true)
	if b.Auth.Allowed(authz.ParseID(author.ID), authz.ParseIDs(roleIDs)) {
		emb = ui.WhitelistedHelp(author.Username, b.Cfg.Prefix)
	}
	b.notifyEmbed(inv.m.ChannelID, emb, 30*time.Second)
	return nil
}

// ownerName looks up the owner's display name for embed footers.
func (b *Bot) ownerName(inv invocation) string {
	if u, err := inv.s.User(b.ownerIDString()); err == nil {
		return u.Username
	}
	return "Owner"
}

func (b *Bot) cmdStatus(inv invocation) error {
	b.notifyEmbed(inv.m.ChannelID, ui.BotStatus(
		b.ownerIDString(),
		inv.s.HeartbeatLatency(),
		len(inv.s.State.Guilds),
		time.Since(b.started),
	), 0)
	return nil
}

func (b *Bot) cmdDeleteMsg(inv invocation) error {
	if len(inv.args) == 0 {
		return missingArg("message_id")
	}
	msgID := inv.args[0]

	msg, err := b.Disc.FetchMessage(inv.m.ChannelID, msgID)
	if disc.IsUnknownMessage(err) {
		b.notify(inv.m.ChannelID, "❌ Message not found!", 5*time.Second)
		return nil
	}
	if err != nil {
		return err
	}

	if msg.Author != nil && b.isOwner(msg.Author.ID) {
		b.notify(inv.m.ChannelID, "❌ Cannot delete owner's messages!", 5*time.Second)
		return nil
	}

	if err := b.Disc.DeleteMessage(inv.m.ChannelID, msgID); err != nil {
		if errors.Is(err, moderation.ErrMessageGone) {
			b.notify(inv.m.ChannelID, "❌ Message not found!", 5*time.Second)
			return nil
		}
		if disc.IsForbidden(err) {
			b.notify(inv.m.ChannelID, "❌ No permission to delete that message!", 5*time.Second)
			return nil
		}
		return err
	}

	authorID := ""
	if msg.Author != nil {
		authorID = msg.Author.ID
	}
	b.notifyEmbed(inv.m.ChannelID,
		ui.DeletedMessage(authorID, inv.m.Author.ID, msg.Content, inv.m.ChannelID), 30*time.Second)
	b.notify(inv.m.ChannelID, fmt.Sprintf("✅ Message `%s` deleted.", msgID), 5*time.Second)
	return nil
}

func (b *Bot) cmdShutdown(inv invocation) error {
	b.notifyEmbed(inv.m.ChannelID, ui.Shutdown(inv.m.Author.Username), 0)
	select {
	case b.Shutdown <- struct{}{}:
	default:
	}
	return nil
}
