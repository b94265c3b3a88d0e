// internal/app/cleanup.go
// History sweeps: clean (whitelist variant, up to 100) and cleanup
// (owner-only variant, up to 200). Both walk recent channel history and
// delete link messages from unauthorized authors, pacing deletes to stay
// inside the REST rate limits.
package app

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/dmarquez/link-sentinel-bot/internal/authz"
	"github.com/dmarquez/link-sentinel-bot/internal/linkdetect"
	"github.com/dmarquez/link-sentinel-bot/internal/ui"
)

const (
	defaultSweepLimit = 50
	cleanCeiling      = 100 // whitelist variant
	cleanupCeiling    = 200 // owner-only variant
)

func (b *Bot) cmdClean(inv invocation) error {
	return b.sweepLinks(inv, cleanCeiling)
}

func (b *Bot) cmdCleanup(inv invocation) error {
	return b.sweepLinks(inv, cleanupCeiling)
}

func (b *Bot) sweepLinks(inv invocation, ceiling int) error {
	limit := defaultSweepLimit
	if len(inv.args) > 0 {
		n, err := strconv.Atoi(inv.args[0])
		if err != nil || n < 1 {
			b.notify(inv.m.ChannelID, "❌ Limit must be a positive number.", 5*time.Second)
			return nil
		}
		limit = n
	}
	if limit > ceiling {
		limit = ceiling
	}

	noticeID, err := b.Disc.SendMessage(inv.m.ChannelID,
		fmt.Sprintf("🧹 Cleaning up to %d messages...", limit))
	if err != nil {
		return err
	}

	history, err := b.Disc.RecentMessages(inv.m.ChannelID, limit)
	if err != nil {
		_ = b.Disc.DeleteMessage(inv.m.ChannelID, noticeID)
		return err
	}

	// half a second between deletes keeps the sweep under the REST limits
	lim := rate.NewLimiter(rate.Every(500*time.Millisecond), 1)
	// REST history messages carry no member data, so roles are resolved
	// per author and cached for the rest of the sweep
	rolesByAuthor := map[string][]string{}
	deleted := 0
	for _, msg := range history {
		if msg.ID == noticeID || msg.ID == inv.m.ID {
			continue
		}
		if msg.Author == nil || msg.Author.Bot {
			continue
		}
		roleIDs, cached := rolesByAuthor[msg.Author.ID]
		if !cached {
			if msg.Member != nil {
				roleIDs = msg.Member.Roles
			} else if inv.m.GuildID != "" {
				roleIDs = b.Disc.MemberRoles(inv.m.GuildID, msg.Author.ID)
			}
			rolesByAuthor[msg.Author.ID] = roleIDs
		}
		if b.Auth.Allowed(authz.ParseID(msg.Author.ID), authz.ParseIDs(roleIDs)) {
			continue
		}
		if !linkdetect.ContainsLink(msg.Content) {
			continue
		}
		if err := lim.Wait(context.Background()); err != nil {
			break
		}
		if err := b.Disc.DeleteMessage(inv.m.ChannelID, msg.ID); err == nil {
			deleted++
		}
	}

	_ = b.Disc.DeleteMessage(inv.m.ChannelID, noticeID)

	b.notifyEmbed(inv.m.ChannelID,
		ui.CleanupSummary(inv.m.ChannelID, len(history), deleted, inv.m.Author.ID), 30*time.Second)
	b.notify(inv.m.ChannelID,
		fmt.Sprintf("✅ Cleaned %d messages with links.", deleted), 10*time.Second)
	return nil
}
