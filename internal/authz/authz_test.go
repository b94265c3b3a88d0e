package authz

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarquez/link-sentinel-bot/internal/whitelist"
)

func storeWith(t *testing.T, users, roles []int64) *whitelist.Store {
	t.Helper()
	s, err := whitelist.Open(filepath.Join(t.TempDir(), "wl.json"))
	require.NoError(t, err)
	for _, id := range users {
		require.NoError(t, s.AddUser(id))
	}
	for _, id := range roles {
		require.NoError(t, s.AddRole(id))
	}
	return s
}

func TestAllowed_OwnerOnlyMode(t *testing.T) {
	e := &Evaluator{OwnerID: 100}
	assert.True(t, e.Allowed(100, nil))
	assert.False(t, e.Allowed(200, nil))
	assert.False(t, e.Allowed(200, []int64{1, 2, 3}))
}

func TestAllowed_WhitelistMode(t *testing.T) {
	e := &Evaluator{OwnerID: 100, Whitelist: storeWith(t, []int64{200}, []int64{55})}

	assert.True(t, e.Allowed(100, nil), "owner")
	assert.True(t, e.Allowed(200, nil), "direct user")
	assert.True(t, e.Allowed(300, []int64{55}), "via role")
	assert.True(t, e.Allowed(300, []int64{1, 55, 9}), "role among others")
	assert.False(t, e.Allowed(300, nil))
	assert.False(t, e.Allowed(300, []int64{1, 9}))
}

func TestGrants(t *testing.T) {
	e := &Evaluator{OwnerID: 100, Whitelist: storeWith(t, []int64{100}, []int64{55, 66})}

	g := e.Grants(100, []int64{55})
	assert.True(t, g.Owner)
	assert.True(t, g.User)
	assert.Equal(t, []int64{55}, g.Roles)
	assert.True(t, g.Allowed())

	g = e.Grants(300, []int64{1})
	assert.False(t, g.Allowed())
}

func TestParseID(t *testing.T) {
	assert.Equal(t, int64(123456789), ParseID("123456789"))
	assert.Equal(t, int64(0), ParseID("not-a-snowflake"))
	assert.Equal(t, []int64{1, 2}, ParseIDs([]string{"1", "x", "2"}))
}
