package home

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/omit"
	"github.com/disgoorg/snowflake/v2"
	"github.com/google/uuid"
	"github.com/leeineian/alpha/proc"
	"github.com/leeineian/alpha/sys"
)

const massDMPrefix = "massdm:"

type massDMPrompt struct {
	owner    snowflake.ID
	answered bool
	decision chan bool
}

type promptOutcome int

const (
	promptConfirmed promptOutcome = iota
	promptCancelled
	promptExpired
	promptAbandoned
)

type clickResult int

const (
	clickAccepted clickResult = iota
	clickExpired
	clickNotOwner
)

// massDMPrompts tracks open confirmation prompts by id. Only the user who opened a prompt
// may answer it, and an unanswered prompt counts as a refusal once its timeout passes.
type massDMPrompts struct {
	mu      sync.Mutex
	after   func(time.Duration) <-chan time.Time
	pending map[string]*massDMPrompt
}

func newMassDMPrompts() *massDMPrompts {
	return &massDMPrompts{after: time.After, pending: map[string]*massDMPrompt{}}
}

var massDMs = newMassDMPrompts()

func (p *massDMPrompts) open(owner snowflake.ID) string {
	id := uuid.NewString()
	p.mu.Lock()
	p.pending[id] = &massDMPrompt{owner: owner, decision: make(chan bool, 1)}
	p.mu.Unlock()
	return id
}

func (p *massDMPrompts) close(id string) {
	p.mu.Lock()
	delete(p.pending, id)
	p.mu.Unlock()
}

// click records a button press on prompt id. The first answer from the owner wins.
func (p *massDMPrompts) click(id string, user snowflake.ID, confirm bool) clickResult {
	p.mu.Lock()
	defer p.mu.Unlock()

	prompt, ok := p.pending[id]
	if !ok || prompt.answered {
		return clickExpired
	}
	if prompt.owner != user {
		return clickNotOwner
	}
	prompt.answered = true
	prompt.decision <- confirm
	return clickAccepted
}

// wait blocks until prompt id is answered or its timeout passes, then closes it.
func (p *massDMPrompts) wait(ctx context.Context, id string, timeout time.Duration) promptOutcome {
	p.mu.Lock()
	prompt, ok := p.pending[id]
	p.mu.Unlock()
	if !ok {
		return promptExpired
	}

	select {
	case confirmed := <-prompt.decision:
		p.close(id)
		return decided(confirmed)
	case <-p.after(timeout):
	case <-ctx.Done():
		p.close(id)
		return promptAbandoned
	}

	// An answer that raced the timer still counts once the prompt is closed to new clicks.
	p.close(id)
	select {
	case confirmed := <-prompt.decision:
		return decided(confirmed)
	default:
		return promptExpired
	}
}

func decided(confirmed bool) promptOutcome {
	if confirmed {
		return promptConfirmed
	}
	return promptCancelled
}

func init() {
	adminPerm := discord.PermissionAdministrator

	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:                     "mass-dm",
		Description:              "Send a message to all users with a specific role",
		DefaultMemberPermissions: omit.New(&adminPerm),
		Contexts: []discord.InteractionContextType{
			discord.InteractionContextTypeGuild,
		},
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionRole{
				Name:        "role",
				Description: "The role to message",
				Required:    true,
			},
			discord.ApplicationCommandOptionString{
				Name:        "message",
				Description: "The message to send to all role members",
				Required:    true,
			},
		},
	}, handleMassDM)

	sys.RegisterComponentHandler(massDMPrefix, handleMassDMDecision)
}

// massDMPromptID builds the custom id of one prompt button.
func massDMPromptID(prompt, action string) string {
	return massDMPrefix + prompt + ":" + action
}

// parseMassDMPromptID splits a button custom id into prompt id and action.
func parseMassDMPromptID(customID string) (string, string, bool) {
	tail, ok := strings.CutPrefix(customID, massDMPrefix)
	if !ok {
		return "", "", false
	}
	prompt, action, ok := strings.Cut(tail, ":")
	if !ok || prompt == "" || (action != "confirm" && action != "cancel") {
		return "", "", false
	}
	return prompt, action, true
}

func tallyNotice(t proc.Tally) sys.Notice {
	return sys.Success(sys.MsgMassDMCompleteTitle, fmt.Sprintf(sys.MsgMassDMCompleteBody, t.Successful, t.Failed, t.Total))
}

func handleMassDM(event *events.ApplicationCommandInteractionCreate) {
	member, guildID, ok := requireAdmin(event, sys.MsgAccessDeniedAdmin)
	if !ok {
		return
	}
	data := event.SlashCommandInteractionData()
	role := data.Role("role")

	_ = event.DeferCreateMessage(true)

	ctx := sys.AppContext
	client := event.Client()
	cfg := sys.Cfg()

	members, err := fetchMembers(ctx, client, guildID)
	if err != nil {
		sys.LogError(sys.MsgMemberLookupFailed, role.Name, err)
		edit(event, sys.Failure(sys.MsgErrorTitle, sys.MsgMemberLookupGeneric))
		return
	}
	targets := membersWithRole(members, role.ID)
	if len(targets) == 0 {
		edit(event, sys.Warning(sys.MsgMassDMNoMembersTitle, fmt.Sprintf(sys.MsgMassDMNoMembersBody, role.Name)))
		return
	}

	promptID := massDMs.open(event.User().ID)

	confirm := sys.Warning(sys.MsgMassDMConfirmTitle, fmt.Sprintf(sys.MsgMassDMConfirmBody, len(targets), role.Name))
	prompt := discord.NewMessageUpdate().
		WithIsComponentsV2(true).
		WithComponents(
			confirm.Container(),
			discord.NewActionRow(
				discord.NewButton(discord.ButtonStyleDanger, sys.MsgMassDMConfirmLabel, massDMPromptID(promptID, "confirm"), "", 0),
				discord.NewButton(discord.ButtonStyleSecondary, sys.MsgMassDMCancelLabel, massDMPromptID(promptID, "cancel"), "", 0),
			),
		)
	if _, err := client.Rest.UpdateInteractionResponse(event.ApplicationID(), event.Token(), prompt); err != nil {
		sys.LogDebug(sys.MsgReplyFailed, "mass-dm", err)
		massDMs.close(promptID)
		return
	}

	switch massDMs.wait(ctx, promptID, cfg.ConfirmTimeout) {
	case promptConfirmed:
	case promptExpired:
		edit(event, sys.Warning(sys.MsgMassDMExpiredTitle, sys.MsgMassDMExpiredBody))
		return
	default:
		return
	}

	notice := staffMessage(fmt.Sprintf(sys.MsgMassDMTitle, role.Name), data.String("message"), guildName(event, guildID), displayName(member.Member))
	create := notice.Create(false)

	ids := make([]snowflake.ID, len(targets))
	for i, m := range targets {
		ids[i] = m.User.ID
	}

	sys.LogBroadcast(sys.MsgBroadcastStarting, len(ids), role.Name)
	tally := proc.Broadcast(ctx, ids, func(ctx context.Context, id snowflake.ID) error {
		dm, err := client.Rest.CreateDMChannel(id, rest.WithCtx(ctx))
		if err == nil {
			_, err = client.Rest.CreateMessage(dm.ID(), create, rest.WithCtx(ctx))
		}
		if err != nil && !sys.IsForbidden(err) {
			sys.LogBroadcast(sys.MsgBroadcastSendFailed, id, err)
		}
		return err
	}, proc.NewPacer(cfg.MassDMDelay))
	sys.LogBroadcast(sys.MsgBroadcastFinished, tally.Successful, tally.Failed, tally.Total)
	sys.LogAudit(sys.MsgAuditMassDM, event.User().Username, role.Name, tally.Total)

	edit(event, tallyNotice(tally))
}

func handleMassDMDecision(event *events.ComponentInteractionCreate) {
	promptID, action, ok := parseMassDMPromptID(event.Data.CustomID())
	if !ok {
		return
	}

	confirm := action == "confirm"
	switch massDMs.click(promptID, event.User().ID, confirm) {
	case clickExpired:
		_ = event.UpdateMessage(sys.Warning(sys.MsgMassDMExpiredTitle, sys.MsgMassDMExpiredBody).Update())
	case clickNotOwner:
		_ = event.CreateMessage(sys.Failure(sys.MsgAccessDeniedTitle, sys.MsgMassDMNotYours).Create(true))
	case clickAccepted:
		if confirm {
			_ = event.UpdateMessage(sys.Info(sys.MsgMassDMSendingTitle, sys.MsgMassDMSendingBody).Update())
			return
		}
		_ = event.UpdateMessage(sys.Info(sys.MsgMassDMCancelledTitle, sys.MsgMassDMCancelledBody).Update())
	}
}
