package whitelist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "whitelist_data.json"))
	require.NoError(t, err)
	return s
}

func TestOpen_MissingFileIsEmpty(t *testing.T) {
	s := tempStore(t)
	assert.Empty(t, s.Users())
	assert.Empty(t, s.Roles())
}

func TestAddUser_Idempotent(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.AddUser(200))

	err := s.AddUser(200)
	assert.ErrorIs(t, err, ErrAlreadyListed)
	assert.Equal(t, []int64{200}, s.Users())
}

func TestRemoveUser_Absent(t *testing.T) {
	s := tempStore(t)
	err := s.RemoveUser(42)
	assert.ErrorIs(t, err, ErrNotListed)
	assert.Empty(t, s.Users())
}

func TestRoles(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.AddRole(7))
	assert.True(t, s.HasRole(7))
	assert.True(t, s.HasAnyRole([]int64{1, 7, 9}))
	assert.False(t, s.HasAnyRole([]int64{1, 9}))
	assert.False(t, s.HasAnyRole(nil))

	require.NoError(t, s.RemoveRole(7))
	assert.False(t, s.HasRole(7))
	assert.ErrorIs(t, s.RemoveRole(7), ErrNotListed)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		users []int64
		roles []int64
	}{
		{"both empty", nil, nil},
		{"users only", []int64{3, 1, 2}, nil},
		{"roles only", nil, []int64{10}},
		{"both", []int64{100, 200}, []int64{5, 6}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "whitelist_data.json")
			s, err := Open(path)
			require.NoError(t, err)
			for _, id := range tc.users {
				require.NoError(t, s.AddUser(id))
			}
			for _, id := range tc.roles {
				require.NoError(t, s.AddRole(id))
			}

			reloaded, err := Open(path)
			require.NoError(t, err)
			assert.ElementsMatch(t, tc.users, reloaded.Users())
			assert.ElementsMatch(t, tc.roles, reloaded.Roles())
		})
	}
}

func TestOpen_RejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "whitelist_data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err := Open(path)
	assert.Error(t, err)
}
