package roles

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harvey-bot/harvey/database/models"
	"github.com/harvey-bot/harvey/platform"
)

// Registry owns the binding rules: at most one role per emoji per guild, and
// only custom emojis of the guild may carry a role. Mutations serialize per
// guild so concurrent adds cannot slip past the duplicate check.
type Registry struct {
	store Store
	chat  platform.Client
	locks *guildLocks
}

func NewRegistry(store Store, chat platform.Client) *Registry {
	return &Registry{
		store: store,
		chat:  chat,
		locks: newGuildLocks(),
	}
}

// Add binds emoji input to a role. The input must resolve to a custom emoji
// of the guild or it fails with UnsupportedEmojiError, and the role must
// still exist in the guild or it fails with UnknownRoleError; an emoji that
// already carries a role fails with DuplicateBindingError and changes
// nothing.
func (r *Registry) Add(guildID, emojiInput, roleID, description string) (*models.ReactionRole, error) {
	emojiID, err := parseEmojiInput(emojiInput)
	if err != nil {
		return nil, err
	}

	em, err := r.chat.GuildEmoji(guildID, emojiID)
	if err != nil {
		if platform.IsNotFound(err) {
			return nil, &UnsupportedEmojiError{
				Input:  emojiInput,
				Reason: "no such emoji in this server",
			}
		}

		return nil, err
	}

	// A deleted role would leave a binding whose grants always fail.
	if _, err := r.chat.GuildRole(guildID, roleID); err != nil {
		if platform.IsNotFound(err) {
			return nil, &UnknownRoleError{RoleId: roleID}
		}

		return nil, err
	}

	lock := r.locks.get(guildID)
	lock.Lock()
	defer lock.Unlock()

	existing, err := r.store.GetReactionRole(guildID, em.ID)
	if err != nil && err != mongo.ErrNoDocuments {
		return nil, err
	} else if err == nil {
		return nil, &DuplicateBindingError{Existing: *existing}
	}

	rr := &models.ReactionRole{
		GuildId:     guildID,
		EmojiId:     em.ID,
		EmojiName:   em.Name,
		RoleId:      roleID,
		Description: description,
	}

	if err := r.store.UpsertReactionRole(rr); err != nil {
		return nil, err
	}

	return rr, nil
}

// Remove unbinds an emoji and returns the binding that was dropped. Removing
// an unbound emoji is a no-op reported as (nil, nil) so callers can answer
// "nothing to remove". The emoji is not resolved against the guild here: a
// binding must stay removable after its emoji got deleted, so a bare ID is
// accepted.
func (r *Registry) Remove(guildID, emojiInput string) (*models.ReactionRole, error) {
	emojiID, err := parseEmojiInput(emojiInput)
	if err != nil {
		return nil, err
	}

	lock := r.locks.get(guildID)
	lock.Lock()
	defer lock.Unlock()

	existing, err := r.store.GetReactionRole(guildID, emojiID)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	if err := r.store.DeleteReactionRole(guildID, emojiID); err != nil {
		return nil, err
	}

	return existing, nil
}

// List returns the guild's bindings in insertion order.
func (r *Registry) List(guildID string) ([]models.ReactionRole, error) {
	return r.store.ListReactionRoles(guildID)
}

// Resolve looks up the binding behind an emoji ID, nil when unbound.
func (r *Registry) Resolve(guildID, emojiID string) (*models.ReactionRole, error) {
	rr, err := r.store.GetReactionRole(guildID, emojiID)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return rr, nil
}
