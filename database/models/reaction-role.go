package models

import (
	"fmt"

	"github.com/kamva/mgm/v3"
)

// ReactionRole binds one custom emoji to one role inside a guild. At most one
// document may exist per (guild_id, emoji_id); the same role may appear under
// several emojis.
type ReactionRole struct {
	mgm.DefaultModel `bson:",inline"`

	GuildId string `json:"guild_id" bson:"guild_id"`

	// Custom emoji ID. Default (unicode) emojis are rejected before this
	// record is ever created.
	EmojiId string `json:"emoji_id" bson:"emoji_id"`

	// Emoji name as last seen, kept so posts and audit lines can render a
	// mention without fetching the emoji again.
	EmojiName string `json:"emoji_name" bson:"emoji_name"`

	RoleId string `json:"role_id" bson:"role_id"`

	// Free text shown next to the role on posts.
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

func (rr *ReactionRole) CollectionName() string {
	return "reaction_roles"
}

// EmojiMention renders the <:name:id> form Discord expects in message content.
func (rr *ReactionRole) EmojiMention() string {
	return fmt.Sprintf("<:%v:%v>", rr.EmojiName, rr.EmojiId)
}

// ReactionName renders the name:id form Discord expects in reaction endpoints.
func (rr *ReactionRole) ReactionName() string {
	return fmt.Sprintf("%v:%v", rr.EmojiName, rr.EmojiId)
}

func (rr *ReactionRole) RoleMention() string {
	return fmt.Sprintf("<@&%v>", rr.RoleId)
}

func ReactionRoleColl() *mgm.Collection {
	return mgm.Coll(&ReactionRole{})
}
