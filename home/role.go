package home

import (
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/omit"
	"github.com/leeineian/alpha/sys"
)

func init() {
	manageRoles := discord.PermissionManageRoles

	for _, add := range []bool{true, false} {
		name, desc, userDesc, roleDesc := "add-role", "Add a role to a user", "The user to add the role to (display name, username, or mention)", "The role to add"
		if !add {
			name, desc, userDesc, roleDesc = "remove-role", "Remove a role from a user", "The user to remove the role from (display name, username, or mention)", "The role to remove"
		}

		sys.RegisterCommand(discord.SlashCommandCreate{
			Name:                     name,
			Description:              desc,
			DefaultMemberPermissions: omit.New(&manageRoles),
			Contexts: []discord.InteractionContextType{
				discord.InteractionContextTypeGuild,
			},
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "user",
					Description: userDesc,
					Required:    true,
				},
				discord.ApplicationCommandOptionRole{
					Name:        "role",
					Description: roleDesc,
					Required:    true,
				},
			},
		}, func(event *events.ApplicationCommandInteractionCreate) { handleRoleChange(event, add) })
	}
}

func handleRoleChange(event *events.ApplicationCommandInteractionCreate, add bool) {
	member, guildID, ok := requireGuild(event)
	if !ok {
		return
	}
	if !canManageRoles(member.Permissions) {
		reply(event, sys.Failure(sys.MsgAccessDeniedTitle, sys.MsgAccessDeniedRoles), true)
		return
	}

	data := event.SlashCommandInteractionData()
	identifier := data.String("user")
	role := data.Role("role")

	_ = event.DeferCreateMessage(true)

	ctx := sys.AppContext
	client := event.Client()

	target, err := findMember(ctx, client, guildID, identifier)
	if err != nil {
		edit(event, memberLookupFailure(identifier, err))
		return
	}
	name := displayName(target)

	positions := rolePositions(client, guildID, member.RoleIDs, target.RoleIDs)
	requesterTop := topPosition(positions, member.RoleIDs)
	targetTop := topPosition(positions, target.RoleIDs)

	if !canModifyMember(member.User.ID, target.User.ID, requesterTop, targetTop, member.Permissions) {
		edit(event, sys.Failure(sys.MsgPermissionErrorTitle, sys.MsgRoleCannotModify))
		return
	}

	held := hasRole(target.RoleIDs, role.ID)
	switch {
	case add && roleTooHigh(role.Position, requesterTop, member.Permissions):
		edit(event, sys.Failure(sys.MsgRoleTooHighTitle, sys.MsgRoleTooHighBody))
		return
	case add && held:
		edit(event, sys.Warning(sys.MsgRoleAlreadyHasTitle, fmt.Sprintf(sys.MsgRoleAlreadyHasBody, name, role.Name)))
		return
	case !add && !held:
		edit(event, sys.Warning(sys.MsgRoleMissingTitle, fmt.Sprintf(sys.MsgRoleMissingBody, name, role.Name)))
		return
	}

	if add {
		reason := fmt.Sprintf(sys.MsgRoleAddReason, event.User().Username)
		err = client.Rest.AddMemberRole(guildID, target.User.ID, role.ID, rest.WithCtx(ctx), rest.WithReason(reason))
	} else {
		reason := fmt.Sprintf(sys.MsgRoleRemoveReason, event.User().Username)
		err = client.Rest.RemoveMemberRole(guildID, target.User.ID, role.ID, rest.WithCtx(ctx), rest.WithReason(reason))
	}
	if err != nil {
		if sys.IsForbidden(err) {
			edit(event, sys.Failure(sys.MsgPermissionErrorTitle, sys.MsgRoleForbidden))
			return
		}
		sys.LogError(sys.MsgRoleChangeFailed, role.Name, target.User.ID, err)
		if add {
			edit(event, sys.Failure(sys.MsgErrorTitle, sys.MsgRoleAddGeneric))
		} else {
			edit(event, sys.Failure(sys.MsgErrorTitle, sys.MsgRoleRemoveGeneric))
		}
		return
	}

	if add {
		sys.LogAudit(sys.MsgAuditRoleAdded, event.User().Username, role.Name, target.User.Username)
		edit(event, sys.Success(sys.MsgRoleAddedTitle, fmt.Sprintf(sys.MsgRoleAddedBody, role.Name, name)))
		return
	}
	sys.LogAudit(sys.MsgAuditRoleRemoved, event.User().Username, role.Name, target.User.Username)
	edit(event, sys.Success(sys.MsgRoleRemovedTitle, fmt.Sprintf(sys.MsgRoleRemovedBody, role.Name, name)))
}
