// internal/app/broadcast.go
// Reaction-confirmed fanout: wldm (DM every whitelisted user) and
// broadcast (post to every guild). Both pace sends at one per second.
package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"

	disc "github.com/dmarquez/link-sentinel-bot/internal/adapters/discord"
	"github.com/dmarquez/link-sentinel-bot/internal/ui"
)

const confirmWindow = 30 * time.Second

func (b *Bot) cmdWhitelistDM(inv invocation) error {
	users := b.WL.Users()
	if len(users) == 0 {
		b.notify(inv.m.ChannelID, "❌ No whitelisted users to DM.", 5*time.Second)
		return nil
	}

	prompt := fmt.Sprintf("📨 Send a DM to all **%d** whitelisted users? React %s to confirm or %s to cancel.",
		len(users), disc.ApproveEmoji, disc.RejectEmoji)
	approved, promptID, err := b.Disc.Confirm(inv.m.ChannelID, inv.m.Author.ID, prompt, confirmWindow)
	if errors.Is(err, disc.ErrConfirmTimeout) {
		_ = b.Disc.EditMessage(inv.m.ChannelID, promptID, "⏰ DM broadcast timed out.")
		return nil
	}
	if err != nil {
		return err
	}
	if !approved {
		_ = b.Disc.EditMessage(inv.m.ChannelID, promptID, "❌ DM broadcast cancelled.")
		return nil
	}

	_ = b.Disc.EditMessage(inv.m.ChannelID, promptID, "📨 Sending DMs...")
	emb := ui.Announcement(b.guildName(inv.m.GuildID))

	lim := rate.NewLimiter(rate.Every(time.Second), 1)
	sent, failed := 0, 0
	for _, id := range users {
		if err := lim.Wait(context.Background()); err != nil {
			break
		}
		if err := b.Disc.SendDM(strconv.FormatInt(id, 10), emb); err != nil {
			failed++
			continue
		}
		sent++
	}

	return b.Disc.EditMessage(inv.m.ChannelID, promptID,
		fmt.Sprintf("✅ DM broadcast complete: **%d** sent, **%d** failed.", sent, failed))
}

func (b *Bot) cmdBroadcast(inv invocation) error {
	if inv.rest == "" {
		return missingArg("message")
	}

	guilds := inv.s.State.Guilds
	prompt := fmt.Sprintf("📢 Broadcast to **%d** servers?\n>>> %s\nReact %s to confirm or %s to cancel.",
		len(guilds), ui.Truncate(inv.rest, 200), disc.ApproveEmoji, disc.RejectEmoji)
	approved, promptID, err := b.Disc.Confirm(inv.m.ChannelID, inv.m.Author.ID, prompt, confirmWindow)
	if errors.Is(err, disc.ErrConfirmTimeout) {
		_ = b.Disc.EditMessage(inv.m.ChannelID, promptID, "⏰ Broadcast timed out.")
		return nil
	}
	if err != nil {
		return err
	}
	if !approved {
		_ = b.Disc.EditMessage(inv.m.ChannelID, promptID, "❌ Broadcast cancelled.")
		return nil
	}

	_ = b.Disc.EditMessage(inv.m.ChannelID, promptID, "📢 Broadcasting...")
	emb := ui.Broadcast(inv.rest, inv.m.Author.Username)

	lim := rate.NewLimiter(rate.Every(time.Second), 1)
	sent, failed := 0, 0
	for _, g := range guilds {
		if err := lim.Wait(context.Background()); err != nil {
			break
		}
		chID := broadcastChannel(g)
		if chID == "" {
			failed++
			continue
		}
		if _, err := b.Disc.SendEmbed(chID, emb); err != nil {
			failed++
			continue
		}
		sent++
	}

	return b.Disc.EditMessage(inv.m.ChannelID, promptID,
		fmt.Sprintf("✅ Broadcast complete: **%d** sent, **%d** failed.", sent, failed))
}

// broadcastChannel picks where to post in a guild: the system channel when
// one is configured, otherwise the first text channel.
func broadcastChannel(g *discordgo.Guild) string {
	if g.SystemChannelID != "" {
		return g.SystemChannelID
	}
	for _, ch := range g.Channels {
		if ch.Type == discordgo.ChannelTypeGuildText {
			return ch.ID
		}
	}
	return ""
}
