package reactionroles

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/json"
	"github.com/rs/zerolog/log"

	"github.com/harvey-bot/harvey/commands/cmd_util"
	"github.com/harvey-bot/harvey/langs"
	"github.com/harvey-bot/harvey/roles"
)

func RemoveHandler(registry *roles.Registry, posts *roles.PostManager) func(ctx *handler.CommandEvent) error {
	return func(ctx *handler.CommandEvent) error {
		err := ctx.DeferCreateMessage(false)
		if err != nil {
			log.Error().Err(err).Msg(`Error ocurred when trying to defer message in "reactionroles:remove"`)
			return err
		}

		pack := langs.Pack(cmd_util.GuildLang(ctx))
		if !cmd_util.RequireGuildAdmin(ctx, pack) {
			return nil
		}

		cmdPack := pack.Command("reactionroles").SubCommand("remove")

		data := ctx.SlashCommandInteractionData()
		emoji, ok := data.OptString("emoji")
		if !ok {
			ctx.UpdateInteractionResponse(discord.MessageUpdate{
				Content: cmdPack.Get("noEmoji"),
			})

			return nil
		}

		removed, err := registry.Remove(ctx.GuildID().String(), emoji)
		if err != nil {
			ctx.UpdateInteractionResponse(discord.MessageUpdate{
				Content: json.Ptr(rejectionText(pack, err)),
			})

			return nil
		}

		if removed == nil {
			ctx.UpdateInteractionResponse(discord.MessageUpdate{
				Content: cmdPack.Get("notBound"),
			})

			return nil
		}

		if err := posts.PruneOnRemove(ctx.GuildID().String(), removed); err != nil {
			log.Error().Err(err).Msg(`Error ocurred when pruning posts in "reactionroles:remove"`)

			ctx.UpdateInteractionResponse(discord.MessageUpdate{
				Content: cmdPack.Getf("removedNoPrune", removed.EmojiMention(), removed.RoleMention()),
			})

			return nil
		}

		ctx.UpdateInteractionResponse(discord.MessageUpdate{
			Content: cmdPack.Getf("removed", removed.EmojiMention(), removed.RoleMention()),
		})

		return nil
	}
}
