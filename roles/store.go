package roles

import (
	"github.com/harvey-bot/harvey/database/models"
)

// Store is the durable, guild-scoped state behind the subsystem. Point
// lookups report absence with mongo.ErrNoDocuments; any other failure is a
// *StorageError. Single-record writes are atomic and writes to different
// guilds never block each other; serializing writes inside one guild is the
// Registry's job, not the Store's.
type Store interface {
	// UpsertReactionRole inserts rr or replaces the binding already stored
	// under its (guild, emoji) pair.
	UpsertReactionRole(rr *models.ReactionRole) error
	DeleteReactionRole(guildID, emojiID string) error
	GetReactionRole(guildID, emojiID string) (*models.ReactionRole, error)
	// ListReactionRoles returns the guild's bindings in insertion order.
	ListReactionRoles(guildID string) ([]models.ReactionRole, error)

	AddPost(post *models.ReactionRolePost) error
	GetPost(guildID, messageID string) (*models.ReactionRolePost, error)
	RemovePost(guildID, messageID string) error
	// ListPosts returns the guild's recorded posts in creation order.
	ListPosts(guildID string) ([]models.ReactionRolePost, error)

	SetLogChannel(guildID, channelID string) error
	// GetLogChannel returns "" with a nil error when no channel is set.
	GetLogChannel(guildID string) (string, error)
}
