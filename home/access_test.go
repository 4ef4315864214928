package home

import (
	"testing"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestDisplayName(t *testing.T) {
	u := discord.User{Username: "alice"}
	assert.Equal(t, "alice", displayName(discord.Member{User: u}))

	u.GlobalName = strPtr("Alice")
	assert.Equal(t, "Alice", displayName(discord.Member{User: u}))
	assert.Equal(t, "Alice", userDisplayName(u))

	assert.Equal(t, "Boss", displayName(discord.Member{User: u, Nick: strPtr("Boss")}))
	assert.Equal(t, "Alice", displayName(discord.Member{User: u, Nick: strPtr("")}))
}

func TestTopPosition(t *testing.T) {
	positions := map[snowflake.ID]int{1: 3, 2: 7, 3: 5}

	assert.Equal(t, 7, topPosition(positions, []snowflake.ID{1, 2, 3}))
	assert.Equal(t, 3, topPosition(positions, []snowflake.ID{1, 99}))
	assert.Equal(t, 0, topPosition(positions, nil))
}

func TestCanModifyMember(t *testing.T) {
	manage := discord.PermissionManageRoles
	admin := discord.PermissionAdministrator

	tests := []struct {
		name          string
		requester     snowflake.ID
		target        snowflake.ID
		reqTop, tgTop int
		perms         discord.Permissions
		want          bool
	}{
		{"lower target", 1, 2, 5, 3, manage, true},
		{"admin without manage roles", 1, 2, 5, 3, admin, true},
		{"self", 1, 1, 5, 0, admin, false},
		{"equal position", 1, 2, 5, 5, admin, false},
		{"higher target", 1, 2, 2, 5, manage, false},
		{"no permission", 1, 2, 5, 3, discord.PermissionSendMessages, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canModifyMember(tt.requester, tt.target, tt.reqTop, tt.tgTop, tt.perms))
		})
	}
}

func TestRoleTooHigh(t *testing.T) {
	assert.True(t, roleTooHigh(5, 5, discord.PermissionManageRoles))
	assert.True(t, roleTooHigh(6, 5, discord.PermissionManageRoles))
	assert.False(t, roleTooHigh(4, 5, discord.PermissionManageRoles))
	assert.False(t, roleTooHigh(9, 5, discord.PermissionAdministrator))
}

func TestMembersWithRole(t *testing.T) {
	members := []discord.Member{
		{User: discord.User{ID: 1}, RoleIDs: []snowflake.ID{10, 11}},
		{User: discord.User{ID: 2}, RoleIDs: []snowflake.ID{11}},
		{User: discord.User{ID: 3}},
	}

	got := membersWithRole(members, 11)
	assert.Len(t, got, 2)
	assert.Empty(t, membersWithRole(members, 12))
}

func TestCandidates(t *testing.T) {
	c := candidates([]discord.Member{{User: discord.User{ID: 4, Username: "bob", GlobalName: strPtr("Bobby")}}})
	assert.Equal(t, snowflake.ID(4), c[0].ID)
	assert.Equal(t, "bob", c[0].Name)
	assert.Equal(t, "Bobby", c[0].DisplayName)
}
