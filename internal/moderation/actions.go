// Package moderation - actions.go
// The narrow platform surface the pipeline needs, plus the comparable
// error kinds collaborators must return for expected denials.
package moderation

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// merr is a lightweight comparable error type (see whitelist.werr).
type merr string

func (e merr) Error() string { return string(e) }

var (
	// ErrMessageGone: the delete target no longer exists. Expected, never
	// escalated.
	ErrMessageGone = merr("message already deleted")
	// ErrDMClosed: the recipient has direct messages disabled. Expected.
	ErrDMClosed = merr("recipient has DMs disabled")
)

// Actions is the channel collaborator surface the pipeline consumes. The
// discordgo adapter implements it; tests use a recorder.
type Actions interface {
	DeleteMessage(channelID, messageID string) error
	SendMessage(channelID, content string) (messageID string, err error)
	SendEmbed(channelID string, emb *discordgo.MessageEmbed) (messageID string, err error)
	SendDM(userID string, emb *discordgo.MessageEmbed) error
	// ScheduleRemoval deletes a message after the delay, fire-and-forget:
	// the pipeline never waits for it and never sees its failure.
	ScheduleRemoval(channelID, messageID string, after time.Duration)
}
