// Package whitelist - errors.go
// Centralized, comparable error values used across the store logic.
package whitelist

// werr is a lightweight comparable error type.
// Using constants of this type allows errors.Is to work as expected.
type werr string

func (e werr) Error() string { return string(e) }

var (
	ErrAlreadyListed = werr("already whitelisted")
	ErrNotListed     = werr("not whitelisted")
)
