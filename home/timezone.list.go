package home

import (
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/leeineian/alpha/resolve"
	"github.com/leeineian/alpha/sys"
)

const timezonesPerField = 10

func init() {
	choices := make([]discord.ApplicationCommandOptionChoiceString, 0, len(resolve.Regions))
	for _, r := range resolve.Regions {
		choices = append(choices, discord.ApplicationCommandOptionChoiceString{Name: r.Title, Value: r.Key})
	}

	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "list-timezones",
		Description: "Browse all available timezones by region",
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionString{
				Name:        "region",
				Description: "Filter by region (optional)",
				Required:    false,
				Choices:     choices,
			},
		},
	}, handleListTimezones)
}

// regionNotice lists one region's zones in fields of at most ten.
func regionNotice(r resolve.Region) sys.Notice {
	n := sys.Info(fmt.Sprintf(sys.MsgRegionTitle, r.Title), sys.MsgRegionBody)
	for i := 0; i < len(r.Zones); i += timezonesPerField {
		chunk := r.Zones[i:min(i+timezonesPerField, len(r.Zones))]
		lines := make([]string, len(chunk))
		for j, z := range chunk {
			lines[j] = fmt.Sprintf("`%s - %s`", z.Name, z.Label)
		}
		name := sys.MsgRegionFieldSingle
		if len(r.Zones) > timezonesPerField {
			name = fmt.Sprintf(sys.MsgRegionFieldNumbered, i/timezonesPerField+1)
		}
		n = n.WithField(name, strings.Join(lines, "\n"), false)
	}
	return n
}

func regionsOverview() sys.Notice {
	n := sys.Info(sys.MsgRegionsTitle, sys.MsgRegionsBody)
	for _, r := range resolve.Regions {
		n = n.WithField(r.Title, fmt.Sprintf(sys.MsgRegionsEntry, len(r.Zones), r.Key), true)
	}
	return n
}

func timezoneListNotice(regionKey string) sys.Notice {
	var n sys.Notice
	if r, ok := resolve.RegionByKey(regionKey); ok {
		n = regionNotice(r)
	} else {
		n = regionsOverview()
	}
	return n.WithField(sys.MsgFieldHowToUse, sys.MsgTimezoneHowToUse, false).
		WithFooter(sys.MsgTimezoneListFooter)
}

func handleListTimezones(event *events.ApplicationCommandInteractionCreate) {
	region, _ := event.SlashCommandInteractionData().OptString("region")
	reply(event, timezoneListNotice(region), true)
}
