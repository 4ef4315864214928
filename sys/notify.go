package sys

import (
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
)

// Footer is stamped on every notice that does not carry its own.
const DefaultFooter = "Alpha Bot"

type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Notice is a styled outcome message: a title, a body, a palette color and optional fields.
type Notice struct {
	Title     string
	Body      string
	Color     int
	Author    string
	Fields    []Field
	Footer    string
	Timestamp time.Time
}

func NewNotice(title, body string, color int) Notice {
	return Notice{Title: title, Body: body, Color: color}
}

func Success(title, body string) Notice { return NewNotice(title, body, ColorSuccess) }
func Failure(title, body string) Notice { return NewNotice(title, body, ColorError) }
func Warning(title, body string) Notice { return NewNotice(title, body, ColorWarning) }
func Info(title, body string) Notice    { return NewNotice(title, body, ColorInfo) }
func Primary(title, body string) Notice { return NewNotice(title, body, ColorPrimary) }

func (n Notice) WithField(name, value string, inline bool) Notice {
	n.Fields = append(append([]Field(nil), n.Fields...), Field{Name: name, Value: value, Inline: inline})
	return n
}

func (n Notice) WithFooter(footer string) Notice {
	n.Footer = footer
	return n
}

func (n Notice) WithAuthor(author string) Notice {
	n.Author = author
	return n
}

func (n Notice) WithTimestamp(t time.Time) Notice {
	n.Timestamp = t
	return n
}

// Render flattens the notice into markdown blocks: header, fields, footer.
func (n Notice) Render() []string {
	var blocks []string

	var head strings.Builder
	if n.Author != "" {
		head.WriteString(fmt.Sprintf("-# %s\n", n.Author))
	}
	if n.Title != "" {
		head.WriteString(fmt.Sprintf("### %s", n.Title))
	}
	if n.Body != "" {
		if head.Len() > 0 {
			head.WriteString("\n")
		}
		head.WriteString(n.Body)
	}
	if head.Len() > 0 {
		blocks = append(blocks, head.String())
	}

	var fields strings.Builder
	for i, f := range n.Fields {
		if i > 0 {
			if f.Inline && n.Fields[i-1].Inline {
				fields.WriteString("\n")
			} else {
				fields.WriteString("\n\n")
			}
		}
		fields.WriteString(fmt.Sprintf("**%s**\n%s", f.Name, f.Value))
	}
	if fields.Len() > 0 {
		blocks = append(blocks, fields.String())
	}

	footer := n.Footer
	if footer == "" {
		footer = DefaultFooter
	}
	if !n.Timestamp.IsZero() {
		footer = fmt.Sprintf("%s • <t:%d:f>", footer, n.Timestamp.Unix())
	}
	blocks = append(blocks, "-# "+footer)

	return blocks
}

// Container renders the notice as a components-v2 container tinted with its color.
func (n Notice) Container() discord.ContainerComponent {
	return n.container()
}

func (n Notice) container(lead ...string) discord.ContainerComponent {
	blocks := n.Render()
	components := make([]discord.ContainerSubComponent, 0, len(blocks)*2+len(lead))
	for _, l := range lead {
		components = append(components, discord.NewTextDisplay(l))
	}
	for i, b := range blocks {
		if i == len(blocks)-1 && len(blocks) > 1 {
			components = append(components, discord.NewSeparator(discord.SeparatorSpacingSizeSmall).WithDivider(true))
		}
		components = append(components, discord.NewTextDisplay(b))
	}
	return discord.NewContainer(components...).WithAccentColor(n.Color)
}

func (n Notice) Create(ephemeral bool) discord.MessageCreate {
	return discord.NewMessageCreate().
		WithIsComponentsV2(true).
		AddComponents(n.Container()).
		WithEphemeral(ephemeral)
}

// CreateWithMention leads the container with a mention line so the user is pinged.
func (n Notice) CreateWithMention(mention string) discord.MessageCreate {
	return discord.NewMessageCreate().
		WithIsComponentsV2(true).
		AddComponents(n.container(mention))
}

func (n Notice) Update() discord.MessageUpdate {
	return discord.NewMessageUpdate().
		WithIsComponentsV2(true).
		WithComponents(n.Container())
}
