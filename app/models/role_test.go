package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"user", "moderator", "admin"} {
		r, err := ParseRole(raw)
		require.NoError(t, err)
		assert.Equal(t, Role(raw), r)
	}
	for _, raw := range []string{"", "root", "Admin", "superuser"} {
		_, err := ParseRole(raw)
		assert.Error(t, err, "raw=%q", raw)
	}
}

func TestHasCapability(t *testing.T) {
	cases := []struct {
		role     Role
		required Role
		want     bool
	}{
		{RoleUser, RoleUser, true},
		{RoleUser, RoleModerator, false},
		{RoleUser, RoleAdmin, false},
		{RoleModerator, RoleUser, true},
		{RoleModerator, RoleModerator, true},
		{RoleModerator, RoleAdmin, false},
		{RoleAdmin, RoleUser, true},
		{RoleAdmin, RoleModerator, true},
		{RoleAdmin, RoleAdmin, true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.role.HasCapability(c.required), "%s vs %s", c.role, c.required)
	}
}
