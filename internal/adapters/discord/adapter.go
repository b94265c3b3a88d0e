// Package discord adapts the discordgo session to the narrow surfaces the
// rest of the bot consumes (moderation.Actions plus command helpers).
package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/dmarquez/link-sentinel-bot/internal/moderation"
)

type Adapter struct {
	Sess *discordgo.Session
}

func New(s *discordgo.Session) *Adapter { return &Adapter{Sess: s} }

// DeleteMessage removes a message. An already-gone target maps to
// moderation.ErrMessageGone so callers can suppress it.
func (a *Adapter) DeleteMessage(channelID, messageID string) error {
	err := a.Sess.ChannelMessageDelete(channelID, messageID)
	if IsUnknownMessage(err) {
		return moderation.ErrMessageGone
	}
	return err
}

func (a *Adapter) SendMessage(channelID, content string) (string, error) {
	msg, err := a.Sess.ChannelMessageSend(channelID, content)
	if err != nil {
		return "", err
	}
	return msg.ID, nil
}

func (a *Adapter) SendEmbed(channelID string, emb *discordgo.MessageEmbed) (string, error) {
	msg, err := a.Sess.ChannelMessageSendEmbed(channelID, emb)
	if err != nil {
		return "", err
	}
	return msg.ID, nil
}

// SendDM opens (or reuses) the DM channel with the user and sends the
// embed. Closed DMs map to moderation.ErrDMClosed.
func (a *Adapter) SendDM(userID string, emb *discordgo.MessageEmbed) error {
	ch, err := a.Sess.UserChannelCreate(userID)
	if err != nil {
		return err
	}
	_, err = a.Sess.ChannelMessageSendEmbed(ch.ID, emb)
	if IsCannotDM(err) {
		return moderation.ErrDMClosed
	}
	return err
}

// ScheduleRemoval deletes the message after the delay. Fire-and-forget:
// the timer's failure is never observed or escalated.
func (a *Adapter) ScheduleRemoval(channelID, messageID string, after time.Duration) {
	time.AfterFunc(after, func() {
		_ = a.Sess.ChannelMessageDelete(channelID, messageID)
	})
}

func (a *Adapter) EditMessage(channelID, messageID, content string) error {
	_, err := a.Sess.ChannelMessageEdit(channelID, messageID, content)
	return err
}

// FetchMessage loads a single message by id.
func (a *Adapter) FetchMessage(channelID, messageID string) (*discordgo.Message, error) {
	return a.Sess.ChannelMessage(channelID, messageID)
}

// RecentMessages walks channel history newest-first, up to limit entries.
// The REST API pages at 100, so larger limits fetch in batches.
func (a *Adapter) RecentMessages(channelID string, limit int) ([]*discordgo.Message, error) {
	var out []*discordgo.Message
	before := ""
	for len(out) < limit {
		n := limit - len(out)
		if n > 100 {
			n = 100
		}
		batch, err := a.Sess.ChannelMessages(channelID, n, before, "", "")
		if err != nil {
			return out, err
		}
		if len(batch) == 0 {
			break
		}
		out = append(out, batch...)
		before = batch[len(batch)-1].ID
	}
	return out, nil
}

// MemberRoles resolves the role ids a guild member holds. REST history
// messages carry no member data (only gateway events do), so sweeps need
// this lookup. State first, REST fallback; unknown members yield nil.
func (a *Adapter) MemberRoles(guildID, userID string) []string {
	if m, err := a.Sess.State.Member(guildID, userID); err == nil && m != nil {
		return m.Roles
	}
	if m, err := a.Sess.GuildMember(guildID, userID); err == nil && m != nil {
		return m.Roles
	}
	return nil
}

// interface guard
var _ moderation.Actions = (*Adapter)(nil)
