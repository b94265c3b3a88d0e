// Package events - types.go
package events

// LinkDeleted is emitted after the moderation pipeline removes a message.
type LinkDeleted struct {
	GuildID   string
	ChannelID string
	MessageID string
	AuthorID  string
	Links     []string // distinct detected link substrings
}

// WhitelistChanged is emitted when an owner command mutates the whitelist.
type WhitelistChanged struct {
	Kind    string // "user" or "role"
	ID      int64
	Added   bool
	ActorID string
}
