package platform

import (
	"errors"
	"net/http"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/json"
	"github.com/disgoorg/snowflake/v2"
)

// Discord adapts a disgo client to Client. IDs cross this boundary as
// strings and are parsed back into snowflakes here, nowhere else.
type Discord struct {
	client bot.Client
}

func NewDiscord(c bot.Client) *Discord {
	return &Discord{client: c}
}

var _ Client = (*Discord)(nil)

func (d *Discord) FetchMessage(channelID, messageID string) (*Message, error) {
	msg, err := d.client.Rest().
		GetMessage(snowflake.MustParse(channelID), snowflake.MustParse(messageID))
	if err != nil {
		return nil, classify("fetch message", err)
	}

	return &Message{
		ID:        msg.ID.String(),
		ChannelID: msg.ChannelID.String(),
		AuthorID:  msg.Author.ID.String(),
	}, nil
}

func (d *Discord) SendPost(channelID string, content PostContent) (*Message, error) {
	msg, err := d.client.Rest().CreateMessage(
		snowflake.MustParse(channelID),
		discord.MessageCreate{
			Embeds: []discord.Embed{postEmbed(content)},
		},
	)
	if err != nil {
		return nil, classify("send post", err)
	}

	return &Message{
		ID:        msg.ID.String(),
		ChannelID: msg.ChannelID.String(),
		AuthorID:  msg.Author.ID.String(),
	}, nil
}

func (d *Discord) UpdatePost(channelID, messageID string, content PostContent) error {
	_, err := d.client.Rest().UpdateMessage(
		snowflake.MustParse(channelID),
		snowflake.MustParse(messageID),
		discord.MessageUpdate{
			Embeds: json.Ptr([]discord.Embed{postEmbed(content)}),
		},
	)
	if err != nil {
		return classify("update post", err)
	}

	return nil
}

func (d *Discord) SendLine(channelID, content string) error {
	// Empty AllowedMentions keeps role/user mentions readable without pinging.
	_, err := d.client.Rest().CreateMessage(
		snowflake.MustParse(channelID),
		discord.MessageCreate{
			Content:         content,
			AllowedMentions: &discord.AllowedMentions{},
		},
	)
	if err != nil {
		return classify("send line", err)
	}

	return nil
}

func (d *Discord) AddReaction(channelID, messageID string, emoji Emoji) error {
	err := d.client.Rest().AddReaction(
		snowflake.MustParse(channelID),
		snowflake.MustParse(messageID),
		emoji.Reaction(),
	)
	if err != nil {
		return classify("add reaction", err)
	}

	return nil
}

func (d *Discord) ClearReaction(channelID, messageID string, emoji Emoji) error {
	err := d.client.Rest().RemoveAllReactionsForEmoji(
		snowflake.MustParse(channelID),
		snowflake.MustParse(messageID),
		emoji.Reaction(),
	)
	if err != nil {
		return classify("clear reaction", err)
	}

	return nil
}

func (d *Discord) GrantRole(guildID, userID, roleID string) error {
	err := d.client.Rest().AddMemberRole(
		snowflake.MustParse(guildID),
		snowflake.MustParse(userID),
		snowflake.MustParse(roleID),
	)
	if err != nil {
		return classify("grant role", err)
	}

	return nil
}

func (d *Discord) RevokeRole(guildID, userID, roleID string) error {
	err := d.client.Rest().RemoveMemberRole(
		snowflake.MustParse(guildID),
		snowflake.MustParse(userID),
		snowflake.MustParse(roleID),
	)
	if err != nil {
		return classify("revoke role", err)
	}

	return nil
}

func (d *Discord) GuildEmoji(guildID, emojiID string) (*Emoji, error) {
	em, err := d.client.Rest().
		GetEmoji(snowflake.MustParse(guildID), snowflake.MustParse(emojiID))
	if err != nil {
		return nil, classify("guild emoji", err)
	}

	return &Emoji{ID: em.ID.String(), Name: em.Name}, nil
}

func (d *Discord) GuildRole(guildID, roleID string) (*Role, error) {
	// Discord has no single-role endpoint; list and scan.
	guildRoles, err := d.client.Rest().GetRoles(snowflake.MustParse(guildID))
	if err != nil {
		return nil, classify("guild role", err)
	}

	for _, r := range guildRoles {
		if r.ID.String() == roleID {
			return &Role{ID: r.ID.String(), Name: r.Name}, nil
		}
	}

	return nil, &Error{Op: "guild role", Kind: ErrNotFound}
}

func (d *Discord) CreateRole(guildID, name string) (*Role, error) {
	role, err := d.client.Rest().CreateRole(
		snowflake.MustParse(guildID),
		discord.RoleCreate{
			Name:        name,
			Mentionable: true,
		},
	)
	if err != nil {
		return nil, classify("create role", err)
	}

	return &Role{ID: role.ID.String(), Name: role.Name}, nil
}

func postEmbed(content PostContent) discord.Embed {
	embed := discord.Embed{
		Title:       content.Title,
		Description: content.Description,
		Color:       content.Color,
		Timestamp:   json.Ptr(time.Now()),
	}

	if content.Footer != "" {
		embed.Footer = &discord.EmbedFooter{Text: content.Footer}
	}

	return embed
}

// classify maps a disgo REST failure onto a kind. Anything without a
// definitive HTTP status is transient, timeouts included.
func classify(op string, err error) error {
	var restErr rest.Error
	if errors.As(err, &restErr) && restErr.Response != nil {
		switch restErr.Response.StatusCode {
		case http.StatusNotFound:
			return &Error{Op: op, Kind: ErrNotFound, Err: err}
		case http.StatusForbidden:
			return &Error{Op: op, Kind: ErrForbidden, Err: err}
		case http.StatusTooManyRequests:
			return &Error{Op: op, Kind: ErrRateLimited, Err: err}
		}
	}

	return &Error{Op: op, Kind: ErrTransient, Err: err}
}
