// Package moderation runs every inbound message through the
// authorization check -> link detection -> delete/audit/warn/DM sequence.
package moderation

import (
	"errors"
	"log"
	"time"

	"github.com/dmarquez/link-sentinel-bot/internal/authz"
	"github.com/dmarquez/link-sentinel-bot/internal/domain/events"
	"github.com/dmarquez/link-sentinel-bot/internal/linkdetect"
	"github.com/dmarquez/link-sentinel-bot/internal/ui"
)

const (
	auditTTL   = 30 * time.Second
	warningTTL = 10 * time.Second
)

// Outcome is the terminal state of a message in the pipeline.
type Outcome int

const (
	// Passed: hand the message to command dispatch.
	Passed Outcome = iota
	// Deleted: the message was removed; dispatch is skipped.
	Deleted
	// Skipped: bot author; nothing runs, dispatch included.
	Skipped
)

// Message is the platform-independent view of an inbound message.
type Message struct {
	GuildID     string
	GuildName   string
	ChannelID   string
	ChannelName string
	MessageID   string
	AuthorID    string
	AuthorName  string
	AuthorBot   bool
	RoleIDs     []string
	Content     string
}

// Pipeline wires the evaluator to the channel collaborator. Prefix feeds
// the request hint in warnings and DMs.
type Pipeline struct {
	Auth   *authz.Evaluator
	Acts   Actions
	Prefix string
}

func (p *Pipeline) hasWhitelist() bool { return p.Auth.Whitelist != nil }

// Handle runs one message through the pipeline and reports its terminal
// state. Only Passed messages continue to command dispatch.
func (p *Pipeline) Handle(m Message) Outcome {
	if m.AuthorBot {
		return Skipped
	}
	if p.Auth.Allowed(authz.ParseID(m.AuthorID), authz.ParseIDs(m.RoleIDs)) {
		return Passed
	}
	if !linkdetect.ContainsLink(m.Content) {
		return Passed
	}
	p.removeAndNotify(m)
	return Deleted
}

// removeAndNotify performs the deletion plus the three notifications. Each
// sub-action is fault-isolated: one failing never stops the rest, and
// nothing here propagates to the caller.
func (p *Pipeline) removeAndNotify(m Message) {
	// capture before deletion; the content is gone afterwards
	content := m.Content
	links := linkdetect.ExtractLinks(content)

	if err := p.Acts.DeleteMessage(m.ChannelID, m.MessageID); err != nil &&
		!errors.Is(err, ErrMessageGone) {
		log.Printf("[moderation] delete msg=%s: %v", m.MessageID, err)
	}

	// audit record, self-removing
	audit := ui.AuditEmbed(m.AuthorID, m.AuthorName, content, links, m.ChannelID, p.hasWhitelist())
	if id, err := p.Acts.SendEmbed(m.ChannelID, audit); err != nil {
		log.Printf("[moderation] audit embed ch=%s: %v", m.ChannelID, err)
	} else {
		p.Acts.ScheduleRemoval(m.ChannelID, id, auditTTL)
	}

	// transient in-channel warning
	warn := ui.WarningText(m.AuthorID, p.hasWhitelist(), p.Prefix)
	if id, err := p.Acts.SendMessage(m.ChannelID, warn); err != nil {
		log.Printf("[moderation] warning ch=%s: %v", m.ChannelID, err)
	} else {
		p.Acts.ScheduleRemoval(m.ChannelID, id, warningTTL)
	}

	// private notice; closed DMs are an expected outcome
	notice := ui.RemovalNotice(m.GuildName, m.ChannelName, content, p.hasWhitelist(), p.Prefix)
	if err := p.Acts.SendDM(m.AuthorID, notice); err != nil && !errors.Is(err, ErrDMClosed) {
		log.Printf("[moderation] dm user=%s: %v", m.AuthorID, err)
	}

	events.Publish(events.LinkDeleted{
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		MessageID: m.MessageID,
		AuthorID:  m.AuthorID,
		Links:     links,
	})
}
