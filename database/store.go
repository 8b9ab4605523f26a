package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harvey-bot/harvey/database/models"
	"github.com/harvey-bot/harvey/langs"
	"github.com/harvey-bot/harvey/roles"
)

// Store keeps reaction-role state in the mgm collections. Every record is
// one document, so single-record writes are atomic; Mongo never serializes
// across guilds, the Registry's guild locks do that where it matters.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

var _ roles.Store = (*Store)(nil)

func (s *Store) UpsertReactionRole(rr *models.ReactionRole) error {
	existing := &models.ReactionRole{}
	err := models.ReactionRoleColl().First(bson.M{
		"guild_id": rr.GuildId,
		"emoji_id": rr.EmojiId,
	}, existing)
	if err == mongo.ErrNoDocuments {
		if err := models.ReactionRoleColl().Create(rr); err != nil {
			return &roles.StorageError{Op: "create reaction role", Err: err}
		}

		return nil
	} else if err != nil {
		return &roles.StorageError{Op: "find reaction role", Err: err}
	}

	existing.EmojiName = rr.EmojiName
	existing.RoleId = rr.RoleId
	existing.Description = rr.Description
	if err := models.ReactionRoleColl().Update(existing); err != nil {
		return &roles.StorageError{Op: "update reaction role", Err: err}
	}

	*rr = *existing

	return nil
}

func (s *Store) DeleteReactionRole(guildID, emojiID string) error {
	_, err := models.ReactionRoleColl().DeleteOne(context.TODO(), bson.M{
		"guild_id": guildID,
		"emoji_id": emojiID,
	})
	if err != nil {
		return &roles.StorageError{Op: "delete reaction role", Err: err}
	}

	return nil
}

func (s *Store) GetReactionRole(guildID, emojiID string) (*models.ReactionRole, error) {
	rr := &models.ReactionRole{}
	err := models.ReactionRoleColl().First(bson.M{
		"guild_id": guildID,
		"emoji_id": emojiID,
	}, rr)
	if err == mongo.ErrNoDocuments {
		return nil, err
	} else if err != nil {
		return nil, &roles.StorageError{Op: "find reaction role", Err: err}
	}

	return rr, nil
}

func (s *Store) ListReactionRoles(guildID string) ([]models.ReactionRole, error) {
	out := []models.ReactionRole{}
	err := models.ReactionRoleColl().SimpleFind(
		&out,
		bson.M{"guild_id": guildID},
		options.Find().SetSort(bson.M{"created_at": 1}),
	)
	if err != nil && err != mongo.ErrNoDocuments {
		return nil, &roles.StorageError{Op: "list reaction roles", Err: err}
	}

	return out, nil
}

func (s *Store) AddPost(post *models.ReactionRolePost) error {
	if err := models.ReactionRolePostColl().Create(post); err != nil {
		return &roles.StorageError{Op: "create post", Err: err}
	}

	return nil
}

func (s *Store) GetPost(guildID, messageID string) (*models.ReactionRolePost, error) {
	post := &models.ReactionRolePost{}
	err := models.ReactionRolePostColl().First(bson.M{
		"guild_id":   guildID,
		"message_id": messageID,
	}, post)
	if err == mongo.ErrNoDocuments {
		return nil, err
	} else if err != nil {
		return nil, &roles.StorageError{Op: "find post", Err: err}
	}

	return post, nil
}

func (s *Store) RemovePost(guildID, messageID string) error {
	_, err := models.ReactionRolePostColl().DeleteOne(context.TODO(), bson.M{
		"guild_id":   guildID,
		"message_id": messageID,
	})
	if err != nil {
		return &roles.StorageError{Op: "delete post", Err: err}
	}

	return nil
}

func (s *Store) ListPosts(guildID string) ([]models.ReactionRolePost, error) {
	out := []models.ReactionRolePost{}
	err := models.ReactionRolePostColl().SimpleFind(
		&out,
		bson.M{"guild_id": guildID},
		options.Find().SetSort(bson.M{"created_at": 1}),
	)
	if err != nil && err != mongo.ErrNoDocuments {
		return nil, &roles.StorageError{Op: "list posts", Err: err}
	}

	return out, nil
}

func (s *Store) SetLogChannel(guildID, channelID string) error {
	guildData := &models.GuildConfig{}
	err := models.GuildConfigColl().FindByID(guildID, guildData)
	if err == mongo.ErrNoDocuments {
		guildData = &models.GuildConfig{
			DefaultModel: models.DefaultModel{ID: guildID},
			Lang:         langs.DefaultLang,
			LogChannelId: channelID,
		}
		if err := models.GuildConfigColl().Create(guildData); err != nil {
			return &roles.StorageError{Op: "create guild config", Err: err}
		}

		return nil
	} else if err != nil {
		return &roles.StorageError{Op: "find guild config", Err: err}
	}

	guildData.LogChannelId = channelID
	if err := models.GuildConfigColl().Update(guildData); err != nil {
		return &roles.StorageError{Op: "update guild config", Err: err}
	}

	return nil
}

func (s *Store) GetLogChannel(guildID string) (string, error) {
	guildData := &models.GuildConfig{}
	err := models.GuildConfigColl().FindByID(guildID, guildData)
	if err == mongo.ErrNoDocuments {
		return "", nil
	} else if err != nil {
		return "", &roles.StorageError{Op: "find guild config", Err: err}
	}

	return guildData.LogChannelId, nil
}
