// Package whitelist persists the set of user and role ids that are allowed
// to post links. The JSON file is the sole durable state: it is read in
// full at startup and rewritten in full after every mutation, so the
// in-memory sets and the file never diverge once a command completes.
package whitelist

import (
	"encoding/json"
	"errors"
	"os"
	"sort"
	"sync"
)

type Store struct {
	path  string
	mu    sync.Mutex
	users map[int64]struct{}
	roles map[int64]struct{}
}

// record is the on-disk shape: two integer arrays.
type record struct {
	Users []int64 `json:"whitelisted_users"`
	Roles []int64 `json:"whitelisted_roles"`
}

// Open loads the store from path. A missing file means empty sets, not an
// error.
func Open(path string) (*Store, error) {
	s := &Store{
		path:  path,
		users: make(map[int64]struct{}),
		roles: make(map[int64]struct{}),
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	for _, id := range rec.Users {
		s.users[id] = struct{}{}
	}
	for _, id := range rec.Roles {
		s.roles[id] = struct{}{}
	}
	return s, nil
}

// save rewrites the whole file from the in-memory sets. Caller must hold
// the mutex. A crash mid-write can corrupt the file; accepted risk, the
// data is operator-recreatable.
func (s *Store) save() error {
	rec := record{
		Users: sortedIDs(s.users),
		Roles: sortedIDs(s.roles),
	}
	raw, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

// AddUser whitelists a user id. Returns ErrAlreadyListed if present; the
// set is unchanged in that case.
func (s *Store) AddUser(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; ok {
		return ErrAlreadyListed
	}
	s.users[id] = struct{}{}
	return s.save()
}

// AddRole whitelists a role id.
func (s *Store) AddRole(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.roles[id]; ok {
		return ErrAlreadyListed
	}
	s.roles[id] = struct{}{}
	return s.save()
}

// RemoveUser drops a user id. Returns ErrNotListed if absent.
func (s *Store) RemoveUser(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return ErrNotListed
	}
	delete(s.users, id)
	return s.save()
}

// RemoveRole drops a role id.
func (s *Store) RemoveRole(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.roles[id]; !ok {
		return ErrNotListed
	}
	delete(s.roles, id)
	return s.save()
}

func (s *Store) HasUser(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.users[id]
	return ok
}

func (s *Store) HasRole(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.roles[id]
	return ok
}

// HasAnyRole reports whether any of the given role ids is whitelisted.
func (s *Store) HasAnyRole(ids []int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		if _, ok := s.roles[id]; ok {
			return true
		}
	}
	return false
}

// Users returns a sorted snapshot of the whitelisted user ids.
func (s *Store) Users() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedIDs(s.users)
}

// Roles returns a sorted snapshot of the whitelisted role ids.
func (s *Store) Roles() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedIDs(s.roles)
}

func sortedIDs(set map[int64]struct{}) []int64 {
	out := make([]int64, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
