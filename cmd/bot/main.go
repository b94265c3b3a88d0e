// Command bot starts the link moderation bot process
//
// this binary:
//  1. loads config from environment variables (.env during dev)
//  2. opens the whitelist store when whitelist mode is on
//  3. creates a discord session and registers the app handlers
//  4. opens the gateway connection and waits for an OS signal or the
//     owner's shutdown command to exit
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"github.com/dmarquez/link-sentinel-bot/internal/app"
	"github.com/dmarquez/link-sentinel-bot/internal/whitelist"
	"github.com/dmarquez/link-sentinel-bot/pkg/config"
)

func main() {
	// load .env for local development.
	_ = godotenv.Load()

	// read and validate the minimal config to work
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	// whitelist mode persists grants in a json file next to the binary
	var wl *whitelist.Store
	if cfg.WhitelistEnabled {
		wl, err = whitelist.Open(cfg.WhitelistFile)
		if err != nil {
			log.Fatalf("whitelist store error: %v", err)
		}
	}

	// the prefix "Bot " is required for bot tokens
	sess, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		log.Fatalf("discord session error: %v", err)
	}

	sess.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages | // MessageCreate in channels
		discordgo.IntentsMessageContent | // needed to scan message text for links
		discordgo.IntentsGuildMessageReactions | // broadcast confirmations
		discordgo.IntentsDirectMessages // whitelist requests over DM

	// instance the app Bot and register all handlers
	// this layer keeps wiring separate from domain
	b := app.NewBot(sess, cfg, wl)
	b.RegisterHandlers()

	// open websocket gateway
	if err := sess.Open(); err != nil {
		log.Fatalf("open gateway error: %v", err)
	}

	defer sess.Close()
	defer b.Stop()

	log.Printf("🤖 bot ready - %s", cfg.Redacted())

	// block until SIGINT/SIGTERM or the owner's shutdown command
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	select {
	case <-stop:
	case <-b.Shutdown:
		log.Printf("shutdown requested by owner")
	}
}
