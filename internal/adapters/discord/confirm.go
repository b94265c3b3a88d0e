// internal/adapters/discord/confirm.go
// Reaction-based confirmation for the broadcast commands.
package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

const (
	ApproveEmoji = "✅"
	RejectEmoji  = "❌"
)

type cerr string

func (e cerr) Error() string { return string(e) }

// ErrConfirmTimeout: the invoker never reacted inside the window.
var ErrConfirmTimeout = cerr("confirmation timed out")

// Confirm posts prompt, seeds the approve/reject reactions and waits for
// the invoker's decision. Returns the prompt's message id so the caller
// can edit it with the result. On timeout the pending action is simply
// abandoned; nothing needs cleanup.
func (a *Adapter) Confirm(channelID, invokerID, prompt string, timeout time.Duration) (approved bool, msgID string, err error) {
	msg, err := a.Sess.ChannelMessageSend(channelID, prompt)
	if err != nil {
		return false, "", err
	}
	msgID = msg.ID

	// seeding is best-effort; the invoker can still react manually
	_ = a.Sess.MessageReactionAdd(channelID, msgID, ApproveEmoji)
	_ = a.Sess.MessageReactionAdd(channelID, msgID, RejectEmoji)

	decision := make(chan bool, 1)
	remove := a.Sess.AddHandler(func(_ *discordgo.Session, r *discordgo.MessageReactionAdd) {
		if r.MessageID != msgID || r.UserID != invokerID {
			return
		}
		switch r.Emoji.Name {
		case ApproveEmoji:
			select {
			case decision <- true:
			default:
			}
		case RejectEmoji:
			select {
			case decision <- false:
			default:
			}
		}
	})
	defer remove()

	select {
	case ok := <-decision:
		return ok, msgID, nil
	case <-time.After(timeout):
		return false, msgID, ErrConfirmTimeout
	}
}
