// Package authz decides whether a principal may post links.
package authz

import (
	"strconv"

	"github.com/dmarquez/link-sentinel-bot/internal/whitelist"
)

// Evaluator is the single authorization check for both deployment modes.
// A nil Whitelist means owner-only mode; with a store attached it also
// consults the whitelisted user and role sets.
type Evaluator struct {
	OwnerID   int64
	Whitelist *whitelist.Store
}

// Allowed reports whether the principal may post links.
//
// Rules:
//   - The owner is always allowed.
//   - With a whitelist: a directly whitelisted user is allowed.
//   - With a whitelist: holding any whitelisted role is allowed.
//   - Otherwise deny.
func (e *Evaluator) Allowed(userID int64, roleIDs []int64) bool {
	if userID == e.OwnerID {
		return true
	}
	if e.Whitelist == nil {
		return false
	}
	if e.Whitelist.HasUser(userID) {
		return true
	}
	return e.Whitelist.HasAnyRole(roleIDs)
}

// Grant describes why a principal is allowed. Used by wlcheck/mystatus to
// show the access source.
type Grant struct {
	Owner bool
	User  bool
	Roles []int64 // the whitelisted roles the principal holds
}

func (g Grant) Allowed() bool { return g.Owner || g.User || len(g.Roles) > 0 }

// Grants returns the full breakdown for a principal.
func (e *Evaluator) Grants(userID int64, roleIDs []int64) Grant {
	g := Grant{Owner: userID == e.OwnerID}
	if e.Whitelist == nil {
		return g
	}
	g.User = e.Whitelist.HasUser(userID)
	for _, id := range roleIDs {
		if e.Whitelist.HasRole(id) {
			g.Roles = append(g.Roles, id)
		}
	}
	return g
}

// ParseID converts a Discord snowflake string to an int64. Malformed input
// yields 0, which never matches a real id.
func ParseID(s string) int64 {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// ParseIDs converts a slice of snowflake strings, dropping malformed ones.
func ParseIDs(ss []string) []int64 {
	out := make([]int64, 0, len(ss))
	for _, s := range ss {
		if id := ParseID(s); id != 0 {
			out = append(out, id)
		}
	}
	return out
}
