package app

import (
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	disc "github.com/dmarquez/link-sentinel-bot/internal/adapters/discord"
	"github.com/dmarquez/link-sentinel-bot/internal/authz"
	"github.com/dmarquez/link-sentinel-bot/internal/domain/events"
	"github.com/dmarquez/link-sentinel-bot/internal/moderation"
	"github.com/dmarquez/link-sentinel-bot/internal/whitelist"
	"github.com/dmarquez/link-sentinel-bot/pkg/config"
)

// channelOps is the slice of the discord adapter the router and command
// handlers depend on. Narrow so tests can substitute an in-memory recorder.
type channelOps interface {
	DeleteMessage(channelID, messageID string) error
	SendMessage(channelID, content string) (string, error)
	SendEmbed(channelID string, emb *discordgo.MessageEmbed) (string, error)
	SendDM(userID string, emb *discordgo.MessageEmbed) error
	ScheduleRemoval(channelID, messageID string, after time.Duration)
	EditMessage(channelID, messageID, content string) error
	FetchMessage(channelID, messageID string) (*discordgo.Message, error)
	RecentMessages(channelID string, limit int) ([]*discordgo.Message, error)
	Confirm(channelID, invokerID, prompt string, timeout time.Duration) (bool, string, error)
	ResolveTarget(guildID, token string) (*disc.Target, error)
	MemberRoles(guildID, userID string) []string
}

var _ channelOps = (*disc.Adapter)(nil)

type Bot struct {
	Sess *discordgo.Session
	Cfg  *config.Config
	WL   *whitelist.Store // nil in owner-only mode
	Auth *authz.Evaluator
	Disc channelOps
	Pipe *moderation.Pipeline

	commands map[string]command
	started  time.Time

	// Shutdown receives one value when the owner runs the shutdown command.
	Shutdown chan struct{}

	cancelBus func()
}

func NewBot(s *discordgo.Session, cfg *config.Config, wl *whitelist.Store) *Bot {
	adapter := disc.New(s)
	eval := &authz.Evaluator{OwnerID: cfg.OwnerID, Whitelist: wl}
	b := &Bot{
		Sess:     s,
		Cfg:      cfg,
		WL:       wl,
		Auth:     eval,
		Disc:     adapter,
		Pipe:     &moderation.Pipeline{Auth: eval, Acts: adapter, Prefix: cfg.Prefix},
		Shutdown: make(chan struct{}, 1),
	}
	b.commands = b.commandTable()
	return b
}

func (b *Bot) RegisterHandlers() {
	b.Sess.AddHandler(b.onReady)
	b.Sess.AddHandler(b.handleMessageCreate)
	b.cancelBus = b.startEventSubscribers()
}

// Stop cancels the bus subscribers; callable from main on the way out.
func (b *Bot) Stop() {
	if b.cancelBus != nil {
		b.cancelBus()
	}
}

func (b *Bot) onReady(s *discordgo.Session, _ *discordgo.Ready) {
	b.started = time.Now()

	presence := b.Cfg.Prefix + "help - Owner Only"
	if b.Cfg.WhitelistEnabled {
		presence = b.Cfg.Prefix + "help - Owner/Whitelist Only"
	}
	_ = s.UpdateGameStatus(0, presence)

	log.Printf("[bot] connected as %s", safeSelfName(s))
	log.Printf("[bot] owner id: %d", b.Cfg.OwnerID)
	if b.WL != nil {
		log.Printf("[bot] whitelisted users: %d, roles: %d", len(b.WL.Users()), len(b.WL.Roles()))
	}
}

// ownerIDString is handy for mentions and comparisons against snowflakes.
func (b *Bot) ownerIDString() string {
	return strconv.FormatInt(b.Cfg.OwnerID, 10)
}

func (b *Bot) isOwner(userID string) bool {
	return authz.ParseID(userID) == b.Cfg.OwnerID
}

var subsOnce sync.Once
var subsCancel = func() {}

// startEventSubscribers logs moderation and whitelist activity for
// operator visibility.
func (b *Bot) startEventSubscribers() func() {
	subsOnce.Do(func() {
		var cancels []func()

		cancels = append(cancels, events.Subscribe(func(ev events.LinkDeleted) {
			log.Printf("[audit] deleted msg=%s author=%s ch=%s links=%s",
				ev.MessageID, ev.AuthorID, ev.ChannelID, strings.Join(ev.Links, ","))
		}))

		cancels = append(cancels, events.Subscribe(func(ev events.WhitelistChanged) {
			verb := "removed"
			if ev.Added {
				verb = "added"
			}
			log.Printf("[audit] whitelist %s %s=%d by %s", verb, ev.Kind, ev.ID, ev.ActorID)
		}))

		subsCancel = func() {
			for _, c := range cancels {
				c()
			}
		}
		log.Printf("[bus] subscribers registered (once)")
	})
	return subsCancel
}

func safeSelfName(s *discordgo.Session) string {
	if s.State != nil && s.State.User != nil {
		return s.State.User.Username
	}
	return "unknown"
}

// guildName resolves the guild display name, best effort.
func (b *Bot) guildName(guildID string) string {
	if g, err := b.Sess.State.Guild(guildID); err == nil && g != nil {
		return g.Name
	}
	return "this server"
}
