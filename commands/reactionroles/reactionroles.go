package reactionroles

import (
	"errors"

	"github.com/disgoorg/disgo/discord"

	"github.com/harvey-bot/harvey/langs"
	"github.com/harvey-bot/harvey/roles"
)

var ReactionRoles = discord.SlashCommandCreate{
	Name:        "reactionroles",
	Description: "Bind emojis to roles and manage the posts members react on.",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "add",
			Description: "Bind a custom emoji to a role.",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "emoji",
					Description: `The emoji that hands out the role. Formats: "<:name:id>" or the emoji ID.`,
					Required:    true,
				},
				discord.ApplicationCommandOptionRole{
					Name:        "role",
					Description: "The role the emoji hands out.",
					Required:    true,
				},
				discord.ApplicationCommandOptionString{
					Name:        "description",
					Description: "A short line shown next to the role on the posts.",
					Required:    false,
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "remove",
			Description: "Unbind an emoji and strip its marker from the posts.",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "emoji",
					Description: `The emoji to unbind. Formats: "<:name:id>" or the emoji ID.`,
					Required:    true,
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "list",
			Description: "List every emoji-role binding of this server.",
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "post",
			Description: "Publish a reaction-role post members can react on.",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionChannel{
					Name:         "channel",
					Description:  "The channel for the post. Defaults to the current one.",
					Required:     false,
					ChannelTypes: []discord.ChannelType{discord.ChannelTypeGuildText, discord.ChannelTypeGuildNews},
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "check",
			Description: "Verify the recorded posts still exist and forget the dead ones.",
		},
	},
}

// rejectionText turns the registry's typed rejections into the reply text
// for the invoking admin.
func rejectionText(pack *langs.LangPack, err error) string {
	cmdPack := pack.Command("reactionroles")

	var dup *roles.DuplicateBindingError
	var unsupported *roles.UnsupportedEmojiError
	var unknownRole *roles.UnknownRoleError
	var storage *roles.StorageError

	switch {
	case errors.As(err, &dup):
		return *cmdPack.Getf("duplicate", dup.Existing.EmojiMention(), dup.Existing.RoleMention())
	case errors.As(err, &unsupported):
		return *cmdPack.Getf("unsupportedEmoji", unsupported.Reason)
	case errors.As(err, &unknownRole):
		return *cmdPack.Getf("unknownRole", unknownRole.RoleMention())
	case errors.As(err, &storage):
		return *cmdPack.Getf("storageErr", storage.Err)
	default:
		return *cmdPack.Getf("errUnexpected", err)
	}
}
