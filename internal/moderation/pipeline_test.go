package moderation

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarquez/link-sentinel-bot/internal/authz"
	"github.com/dmarquez/link-sentinel-bot/internal/whitelist"
)

// recorder implements Actions and records every call.
type recorder struct {
	deleted   [][2]string // channelID, messageID
	messages  []string
	embeds    []*discordgo.MessageEmbed
	dms       []string // userIDs
	scheduled []time.Duration

	deleteErr error
	dmErr     error
}

func (r *recorder) DeleteMessage(channelID, messageID string) error {
	r.deleted = append(r.deleted, [2]string{channelID, messageID})
	return r.deleteErr
}

func (r *recorder) SendMessage(channelID, content string) (string, error) {
	r.messages = append(r.messages, content)
	return "warn-id", nil
}

func (r *recorder) SendEmbed(channelID string, emb *discordgo.MessageEmbed) (string, error) {
	r.embeds = append(r.embeds, emb)
	return "audit-id", nil
}

func (r *recorder) SendDM(userID string, emb *discordgo.MessageEmbed) error {
	r.dms = append(r.dms, userID)
	return r.dmErr
}

func (r *recorder) ScheduleRemoval(channelID, messageID string, after time.Duration) {
	r.scheduled = append(r.scheduled, after)
}

func newPipeline(t *testing.T, withWhitelist bool) (*Pipeline, *recorder) {
	t.Helper()
	eval := &authz.Evaluator{OwnerID: 100}
	if withWhitelist {
		s, err := whitelist.Open(filepath.Join(t.TempDir(), "wl.json"))
		require.NoError(t, err)
		require.NoError(t, s.AddUser(200))
		eval.Whitelist = s
	}
	rec := &recorder{}
	return &Pipeline{Auth: eval, Acts: rec, Prefix: "!"}, rec
}

func msg(authorID, content string) Message {
	return Message{
		GuildID:     "g1",
		GuildName:   "Test Guild",
		ChannelID:   "c1",
		ChannelName: "general",
		MessageID:   "m1",
		AuthorID:    authorID,
		AuthorName:  "someone",
		Content:     content,
	}
}

func TestHandle_BotAuthorSkipsEverything(t *testing.T) {
	p, rec := newPipeline(t, true)
	m := msg("300", "https://discord.gg/abc")
	m.AuthorBot = true

	assert.Equal(t, Skipped, p.Handle(m))
	assert.Empty(t, rec.deleted)
}

func TestHandle_AuthorizedPrincipalPasses(t *testing.T) {
	p, rec := newPipeline(t, true)

	assert.Equal(t, Passed, p.Handle(msg("100", "join my server https://discord.gg/abc")))
	assert.Equal(t, Passed, p.Handle(msg("200", "join my server https://discord.gg/abc")))
	assert.Empty(t, rec.deleted)
	assert.Empty(t, rec.dms)
}

func TestHandle_LinkFreeMessagePasses(t *testing.T) {
	p, rec := newPipeline(t, true)

	assert.Equal(t, Passed, p.Handle(msg("300", "hello world, no links here")))
	assert.Empty(t, rec.deleted)
}

func TestHandle_UnauthorizedLinkIsDeleted(t *testing.T) {
	p, rec := newPipeline(t, true)

	out := p.Handle(msg("300", "join my server https://discord.gg/abc"))

	assert.Equal(t, Deleted, out)
	require.Len(t, rec.deleted, 1)
	assert.Equal(t, [2]string{"c1", "m1"}, rec.deleted[0])

	// audit embed posted and scheduled for removal
	require.Len(t, rec.embeds, 1)
	assert.Equal(t, "🔗 Link Deleted", rec.embeds[0].Title)

	// warning posted with the request hint
	require.Len(t, rec.messages, 1)
	assert.Contains(t, rec.messages[0], "<@300>")
	assert.Contains(t, rec.messages[0], "!request")

	// 30s audit removal, 10s warning removal
	assert.Equal(t, []time.Duration{30 * time.Second, 10 * time.Second}, rec.scheduled)

	// DM attempted
	assert.Equal(t, []string{"300"}, rec.dms)
}

func TestHandle_RoleWhitelistPasses(t *testing.T) {
	p, rec := newPipeline(t, true)
	require.NoError(t, p.Auth.Whitelist.AddRole(55))

	m := msg("300", "see youtu.be/abc123")
	m.RoleIDs = []string{"55"}

	assert.Equal(t, Passed, p.Handle(m))
	assert.Empty(t, rec.deleted)
}

func TestHandle_OwnerOnlyVariant(t *testing.T) {
	p, rec := newPipeline(t, false)

	assert.Equal(t, Passed, p.Handle(msg("100", "example.com")))
	assert.Equal(t, Deleted, p.Handle(msg("200", "example.com")))
	require.Len(t, rec.messages, 1)
	assert.Contains(t, rec.messages[0], "Only the bot owner can post links")
}

func TestRemove_AlreadyGoneDeleteIsSuppressed(t *testing.T) {
	p, rec := newPipeline(t, true)
	rec.deleteErr = ErrMessageGone

	// the remaining sub-actions still run
	assert.Equal(t, Deleted, p.Handle(msg("300", "https://discord.gg/abc")))
	assert.Len(t, rec.embeds, 1)
	assert.Len(t, rec.messages, 1)
	assert.Len(t, rec.dms, 1)
}

func TestRemove_ClosedDMsAreSuppressed(t *testing.T) {
	p, rec := newPipeline(t, true)
	rec.dmErr = ErrDMClosed

	assert.Equal(t, Deleted, p.Handle(msg("300", "https://discord.gg/abc")))
	assert.Len(t, rec.dms, 1)
}

func TestRemove_UnexpectedDeleteErrorDoesNotBlockRest(t *testing.T) {
	p, rec := newPipeline(t, true)
	rec.deleteErr = errors.New("boom")

	assert.Equal(t, Deleted, p.Handle(msg("300", "https://discord.gg/abc")))
	assert.Len(t, rec.embeds, 1)
	assert.Len(t, rec.messages, 1)
	assert.Len(t, rec.dms, 1)
}
