package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Token   string
	OwnerID int64
	Prefix  string

	// Whitelist mode: false runs the owner-only variant.
	WhitelistEnabled bool
	WhitelistFile    string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Token:            os.Getenv("DISCORD_BOT_TOKEN"),
		Prefix:           firstNonEmpty(os.Getenv("COMMAND_PREFIX"), "!"),
		WhitelistEnabled: parseBool(os.Getenv("WHITELIST_ENABLED"), true),
		WhitelistFile:    firstNonEmpty(os.Getenv("WHITELIST_FILE"), "whitelist_data.json"),
	}

	if cfg.Token == "" {
		return nil, errors.New("missing DISCORD_BOT_TOKEN")
	}

	rawOwner := os.Getenv("BOT_OWNER_ID")
	if rawOwner == "" {
		return nil, errors.New("missing BOT_OWNER_ID")
	}
	owner, err := strconv.ParseInt(rawOwner, 10, 64)
	if err != nil || owner <= 0 {
		return nil, fmt.Errorf("invalid BOT_OWNER_ID %q", rawOwner)
	}
	cfg.OwnerID = owner

	return cfg, nil
}

func firstNonEmpty(v, d string) string {
	if v == "" {
		return d
	}
	return v
}

func parseBool(v string, d bool) bool {
	if v == "" {
		return d
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return d
	}
	return b
}

func (c *Config) Redacted() string {
	tok := "[set]"
	if c.Token == "" {
		tok = "[empty]"
	}
	return fmt.Sprintf(
		"ownerID=%d prefix=%q whitelist=%t file=%s token=%s",
		c.OwnerID, c.Prefix, c.WhitelistEnabled, c.WhitelistFile, tok,
	)
}
