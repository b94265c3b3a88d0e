package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserToken(t *testing.T) {
	cases := []struct {
		token string
		id    string
		ok    bool
	}{
		{"<@123456>", "123456", true},
		{"<@!123456>", "123456", true},
		{"123456", "123456", true},
		{"<@&123456>", "", false}, // role mention, not a user
		{"<@abc>", "", false},
		{"somename", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		id, ok := parseUserToken(tc.token)
		assert.Equal(t, tc.ok, ok, tc.token)
		assert.Equal(t, tc.id, id, tc.token)
	}
}

func TestParseRoleMention(t *testing.T) {
	id, ok := parseRoleMention("<@&987>")
	assert.True(t, ok)
	assert.Equal(t, "987", id)

	_, ok = parseRoleMention("<@987>")
	assert.False(t, ok)
	_, ok = parseRoleMention("987")
	assert.False(t, ok)
}
