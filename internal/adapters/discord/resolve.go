// internal/adapters/discord/resolve.go
// Turns a command argument into a user or role target. Users are tried
// first; a token matching neither yields ErrTargetNotFound.
package discord

import (
	"strings"
)

type TargetKind int

const (
	TargetUser TargetKind = iota + 1
	TargetRole
)

type Target struct {
	Kind TargetKind
	ID   string
	Name string
}

type rerr string

func (e rerr) Error() string { return string(e) }

// ErrTargetNotFound: the token resolves to neither a user nor a role.
var ErrTargetNotFound = rerr("could not find user or role")

// parseUserToken accepts `<@123>`, `<@!123>` or a raw numeric id.
func parseUserToken(token string) (string, bool) {
	t := token
	if strings.HasPrefix(t, "<@") && strings.HasSuffix(t, ">") {
		t = strings.TrimSuffix(strings.TrimPrefix(t, "<@"), ">")
		t = strings.TrimPrefix(t, "!")
		if t != "" && !strings.HasPrefix(t, "&") && isDigits(t) {
			return t, true
		}
		return "", false
	}
	if isDigits(t) {
		return t, true
	}
	return "", false
}

// parseRoleMention accepts `<@&123>`.
func parseRoleMention(token string) (string, bool) {
	if strings.HasPrefix(token, "<@&") && strings.HasSuffix(token, ">") {
		id := strings.TrimSuffix(strings.TrimPrefix(token, "<@&"), ">")
		if isDigits(id) {
			return id, true
		}
	}
	return "", false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ResolveTarget resolves token within the guild. Order: explicit role
// mention, then user (mention or id), then role by id or exact name.
func (a *Adapter) ResolveTarget(guildID, token string) (*Target, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrTargetNotFound
	}

	if roleID, ok := parseRoleMention(token); ok {
		return a.roleByID(guildID, roleID)
	}

	if id, ok := parseUserToken(token); ok {
		if u, err := a.Sess.User(id); err == nil {
			return &Target{Kind: TargetUser, ID: u.ID, Name: u.Username}, nil
		}
		// a raw id can also name a role
		if tgt, err := a.roleByID(guildID, id); err == nil {
			return tgt, nil
		}
	}

	return a.roleByName(guildID, token)
}

func (a *Adapter) roleByID(guildID, roleID string) (*Target, error) {
	roles, err := a.Sess.GuildRoles(guildID)
	if err != nil {
		return nil, err
	}
	for _, r := range roles {
		if r.ID == roleID {
			return &Target{Kind: TargetRole, ID: r.ID, Name: r.Name}, nil
		}
	}
	return nil, ErrTargetNotFound
}

func (a *Adapter) roleByName(guildID, name string) (*Target, error) {
	roles, err := a.Sess.GuildRoles(guildID)
	if err != nil {
		return nil, err
	}
	for _, r := range roles {
		if strings.EqualFold(r.Name, name) {
			return &Target{Kind: TargetRole, ID: r.ID, Name: r.Name}, nil
		}
	}
	return nil, ErrTargetNotFound
}
