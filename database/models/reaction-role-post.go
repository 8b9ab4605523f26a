package models

import (
	"github.com/kamva/mgm/v3"
)

// ReactionRolePost records one message the bot posted that carries the guild's
// reaction markers. Several posts may coexist per guild; stale records are
// pruned during check.
type ReactionRolePost struct {
	mgm.DefaultModel `bson:",inline"`

	GuildId   string `json:"guild_id" bson:"guild_id"`
	ChannelId string `json:"channel_id" bson:"channel_id"`
	MessageId string `json:"message_id" bson:"message_id"`
}

func (p *ReactionRolePost) CollectionName() string {
	return "reaction_role_posts"
}

func ReactionRolePostColl() *mgm.Collection {
	return mgm.Coll(&ReactionRolePost{})
}
