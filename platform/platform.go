// Package platform narrows the chat platform to the calls the reaction-role
// subsystem needs, behind value types that keep the SDK out of domain code.
package platform

import "fmt"

// Emoji is a guild custom emoji.
type Emoji struct {
	ID   string
	Name string
}

// Reaction renders the name:id form reaction endpoints expect.
func (e Emoji) Reaction() string {
	return fmt.Sprintf("%v:%v", e.Name, e.ID)
}

// Mention renders the <:name:id> form message content expects.
func (e Emoji) Mention() string {
	return fmt.Sprintf("<:%v:%v>", e.Name, e.ID)
}

type Role struct {
	ID   string
	Name string
}

func (r Role) Mention() string {
	return fmt.Sprintf("<@&%v>", r.ID)
}

// Message identifies a fetched or sent message.
type Message struct {
	ID        string
	ChannelID string
	AuthorID  string
}

// PostContent is the rendered body of a reaction-role post embed.
type PostContent struct {
	Title       string
	Description string
	Footer      string
	Color       int
}

// Client is the narrow surface the subsystem uses. Every call is a remote
// call and fails with one of the kinds in errors.go.
type Client interface {
	// FetchMessage resolves a message that is expected to exist; a NotFound
	// or Forbidden result is the reconciliation trigger, not a crash.
	FetchMessage(channelID, messageID string) (*Message, error)

	// SendPost publishes a reaction-role post embed.
	SendPost(channelID string, content PostContent) (*Message, error)

	// UpdatePost repaints an existing post embed.
	UpdatePost(channelID, messageID string, content PostContent) error

	// SendLine writes a plain audit/notice line. Mention markup inside is
	// rendered but never pings.
	SendLine(channelID, content string) error

	// AddReaction attaches the bot's own marker reaction.
	AddReaction(channelID, messageID string, emoji Emoji) error

	// ClearReaction strips every reaction of that emoji from the message.
	ClearReaction(channelID, messageID string, emoji Emoji) error

	// GrantRole and RevokeRole are idempotent on the platform side: granting
	// a held role or revoking an absent one succeeds.
	GrantRole(guildID, userID, roleID string) error
	RevokeRole(guildID, userID, roleID string) error

	// GuildEmoji resolves a custom emoji inside the guild; NotFound means the
	// emoji does not belong to it.
	GuildEmoji(guildID, emojiID string) (*Emoji, error)

	GuildRole(guildID, roleID string) (*Role, error)

	// CreateRole makes a new mentionable guild role.
	CreateRole(guildID, name string) (*Role, error)
}
