package discord

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func restErr(code int) error {
	return &discordgo.RESTError{Message: &discordgo.APIErrorMessage{Code: code}}
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsUnknownMessage(restErr(discordgo.ErrCodeUnknownMessage)))
	assert.True(t, IsCannotDM(restErr(discordgo.ErrCodeCannotSendMessagesToThisUser)))
	assert.True(t, IsForbidden(restErr(discordgo.ErrCodeMissingPermissions)))

	assert.False(t, IsUnknownMessage(restErr(discordgo.ErrCodeMissingPermissions)))
	assert.False(t, IsUnknownMessage(errors.New("plain")))
	assert.False(t, IsUnknownMessage(nil))
	assert.False(t, IsCannotDM(&discordgo.RESTError{})) // no API message body
}

func TestPredicates_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("sending: %w", restErr(discordgo.ErrCodeUnknownMessage))
	assert.True(t, IsUnknownMessage(wrapped))
}
