// internal/adapters/discord/errors.go
// Predicates over Discord REST error codes. The moderation/command layers
// match on these to tell expected denials from real failures.
package discord

import (
	"errors"

	"github.com/bwmarrin/discordgo"
)

func restCode(err error) int {
	var re *discordgo.RESTError
	if errors.As(err, &re) && re.Message != nil {
		return re.Message.Code
	}
	return 0
}

// IsUnknownMessage: the message no longer exists (already deleted).
func IsUnknownMessage(err error) bool {
	return restCode(err) == discordgo.ErrCodeUnknownMessage
}

// IsCannotDM: the recipient has direct messages disabled.
func IsCannotDM(err error) bool {
	return restCode(err) == discordgo.ErrCodeCannotSendMessagesToThisUser
}

// IsForbidden: the bot lacks permission for the operation.
func IsForbidden(err error) bool {
	return restCode(err) == discordgo.ErrCodeMissingPermissions
}
