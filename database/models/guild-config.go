package models

import (
	"github.com/kamva/mgm/v3"
)

// GuildConfig is keyed by the guild snowflake (_id). LogChannelId empty means
// no log channel has been set for the guild.
type GuildConfig struct {
	DefaultModel `bson:",inline"`

	Lang string `json:"lang" bson:"lang"`

	LogChannelId string `json:"log_channel_id,omitempty" bson:"log_channel_id,omitempty"`
}

func (gconfig *GuildConfig) CollectionName() string {
	return "guilds_config"
}

func GuildConfigColl() *mgm.Collection {
	return mgm.Coll(&GuildConfig{})
}
