// internal/app/router.go
// Message intake: moderation pipeline first, command dispatch second.
package app

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/dmarquez/link-sentinel-bot/internal/moderation"
	"github.com/dmarquez/link-sentinel-bot/internal/ui"
)

// invocation bundles what a command handler needs.
type invocation struct {
	s    *discordgo.Session
	m    *discordgo.MessageCreate
	args []string
	rest string // raw text after the command name
}

type cmdFunc func(b *Bot, inv invocation) error

type command struct {
	run       cmdFunc
	ownerOnly bool
}

// missingArgError surfaces the specific parameter a command was missing.
type missingArgError struct{ param string }

func (e *missingArgError) Error() string { return "missing argument: " + e.param }

func missingArg(param string) error { return &missingArgError{param: param} }

// commandTable builds the dispatch map for the active variant.
func (b *Bot) commandTable() map[string]command {
	cmds := map[string]command{
		"help": {run: (*Bot).cmdHelp},
	}
	if b.Cfg.WhitelistEnabled {
		cmds["wladd"] = command{run: (*Bot).cmdWhitelistAdd, ownerOnly: true}
		cmds["wlremove"] = command{run: (*Bot).cmdWhitelistRemove, ownerOnly: true}
		cmds["wllist"] = command{run: (*Bot).cmdWhitelistList, ownerOnly: true}
		cmds["wlcheck"] = command{run: (*Bot).cmdWhitelistCheck, ownerOnly: true}
		cmds["wldm"] = command{run: (*Bot).cmdWhitelistDM, ownerOnly: true}
		cmds["clean"] = command{run: (*Bot).cmdClean, ownerOnly: true}
		cmds["request"] = command{run: (*Bot).cmdRequest}
		cmds["mystatus"] = command{run: (*Bot).cmdMyStatus}
	} else {
		cmds["status"] = command{run: (*Bot).cmdStatus, ownerOnly: true}
		cmds["deletemsg"] = command{run: (*Bot).cmdDeleteMsg, ownerOnly: true}
		cmds["cleanup"] = command{run: (*Bot).cmdCleanup, ownerOnly: true}
		cmds["broadcast"] = command{run: (*Bot).cmdBroadcast, ownerOnly: true}
		cmds["shutdown"] = command{run: (*Bot).cmdShutdown, ownerOnly: true}
	}
	return cmds
}

func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil {
		return
	}
	if b.Pipe.Handle(b.toModerationMessage(s, m)) != moderation.Passed {
		return
	}
	b.dispatch(s, m)
}

func (b *Bot) toModerationMessage(s *discordgo.Session, m *discordgo.MessageCreate) moderation.Message {
	msg := moderation.Message{
		GuildID:    m.GuildID,
		ChannelID:  m.ChannelID,
		MessageID:  m.ID,
		AuthorID:   m.Author.ID,
		AuthorName: m.Author.Username,
		AuthorBot:  m.Author.Bot,
		Content:    m.Content,
	}
	if m.Member != nil {
		msg.RoleIDs = m.Member.Roles
	}
	if ch, err := s.State.Channel(m.ChannelID); err == nil && ch != nil {
		msg.ChannelName = ch.Name
	}
	if g, err := s.State.Guild(m.GuildID); err == nil && g != nil {
		msg.GuildName = g.Name
	}
	return msg
}

func (b *Bot) dispatch(s *discordgo.Session, m *discordgo.MessageCreate) {
	name, args, rest, ok := splitCommand(b.Cfg.Prefix, m.Content)
	if !ok {
		return
	}
	cmd, known := b.commands[name]
	if !known {
		// unknown commands are silently ignored
		return
	}
	log.Printf("[command] %s by %s in %s", name, m.Author.ID, m.ChannelID)

	if cmd.ownerOnly && !b.isOwner(m.Author.ID) {
		if id, err := b.Disc.SendEmbed(m.ChannelID, ui.AccessDenied(b.Cfg.WhitelistEnabled)); err == nil {
			b.Disc.ScheduleRemoval(m.ChannelID, id, 10*time.Second)
		}
		return
	}

	if err := cmd.run(b, invocation{s: s, m: m, args: args, rest: rest}); err != nil {
		b.reportCommandError(m, name, err)
	}
}

// reportCommandError applies the error taxonomy: missing arguments name
// the parameter; anything else is logged and echoed (truncated) only to
// the owner.
func (b *Bot) reportCommandError(m *discordgo.MessageCreate, name string, err error) {
	var miss *missingArgError
	if errors.As(err, &miss) {
		b.notify(m.ChannelID, fmt.Sprintf("❌ Missing argument: `%s`", miss.param), 5*time.Second)
		return
	}
	log.Printf("[command] %s failed: %v", name, err)
	if b.isOwner(m.Author.ID) {
		b.notify(m.ChannelID, "❌ Error: "+ui.Truncate(err.Error(), 100), 10*time.Second)
	}
}

// notify sends a plain message and schedules its removal. ttl<=0 keeps it.
func (b *Bot) notify(channelID, content string, ttl time.Duration) {
	id, err := b.Disc.SendMessage(channelID, content)
	if err != nil {
		log.Printf("[notify] ch=%s: %v", channelID, err)
		return
	}
	if ttl > 0 {
		b.Disc.ScheduleRemoval(channelID, id, ttl)
	}
}

// notifyEmbed posts an embed with an optional self-removal.
func (b *Bot) notifyEmbed(channelID string, emb *discordgo.MessageEmbed, ttl time.Duration) {
	id, err := b.Disc.SendEmbed(channelID, emb)
	if err != nil {
		log.Printf("[notify] embed ch=%s: %v", channelID, err)
		return
	}
	if ttl > 0 {
		b.Disc.ScheduleRemoval(channelID, id, ttl)
	}
}

// splitCommand parses "<prefix><name> <args...>" and also returns the raw
// remainder after the name (for free-text arguments).
func splitCommand(prefix, content string) (name string, args []string, rest string, ok bool) {
	if !strings.HasPrefix(content, prefix) {
		return "", nil, "", false
	}
	body := strings.TrimPrefix(content, prefix)
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return "", nil, "", false
	}
	name = strings.ToLower(fields[0])
	args = fields[1:]
	idx := strings.Index(body, fields[0])
	rest = strings.TrimSpace(body[idx+len(fields[0]):])
	return name, args, rest, true
}
