package roles

import (
	"fmt"

	"github.com/harvey-bot/harvey/database/models"
)

// DuplicateBindingError rejects an add for an emoji already bound in that
// guild. Existing is the binding that stays in place; the admin removes it
// first if a rebind is wanted.
type DuplicateBindingError struct {
	Existing models.ReactionRole
}

func (e *DuplicateBindingError) Error() string {
	return fmt.Sprintf(
		"emoji %v is already bound to role %v",
		e.Existing.EmojiMention(),
		e.Existing.RoleId,
	)
}

// UnsupportedEmojiError rejects binding input that is not a custom emoji of
// the guild: platform defaults, unparseable text, or another guild's emoji.
type UnsupportedEmojiError struct {
	Input  string
	Reason string
}

func (e *UnsupportedEmojiError) Error() string {
	return fmt.Sprintf("unsupported emoji %q: %v", e.Input, e.Reason)
}

// UnknownRoleError rejects a binding whose role is not in the guild anymore,
// usually because it was deleted between being picked and the add landing.
type UnknownRoleError struct {
	RoleId string
}

func (e *UnknownRoleError) Error() string {
	return fmt.Sprintf("role %v does not exist in this server", e.RoleMention())
}

func (e *UnknownRoleError) RoleMention() string {
	return fmt.Sprintf("<@&%v>", e.RoleId)
}

// StorageError wraps a persistence failure. It fails the one operation that
// hit it and is never retried automatically; a blind retry could double a
// write that actually landed.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %v: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
