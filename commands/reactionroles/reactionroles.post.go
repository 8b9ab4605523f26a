package reactionroles

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/rs/zerolog/log"

	"github.com/harvey-bot/harvey/commands/cmd_util"
	"github.com/harvey-bot/harvey/langs"
	"github.com/harvey-bot/harvey/roles"
)

func PostHandler(registry *roles.Registry, posts *roles.PostManager) func(ctx *handler.CommandEvent) error {
	return func(ctx *handler.CommandEvent) error {
		err := ctx.DeferCreateMessage(false)
		if err != nil {
			log.Error().Err(err).Msg(`Error ocurred when trying to defer message in "reactionroles:post"`)
			return err
		}

		pack := langs.Pack(cmd_util.GuildLang(ctx))
		if !cmd_util.RequireGuildAdmin(ctx, pack) {
			return nil
		}

		cmdPack := pack.Command("reactionroles").SubCommand("post")

		channelID := ctx.ChannelID()
		data := ctx.SlashCommandInteractionData()
		if channel, ok := data.OptChannel("channel"); ok {
			channelID = channel.ID
		}

		post, err := posts.CreatePost(ctx.GuildID().String(), channelID.String())
		if err != nil {
			ctx.UpdateInteractionResponse(discord.MessageUpdate{
				Content: cmdPack.Getf("failed", err),
			})

			return nil
		}

		bindings, err := registry.List(ctx.GuildID().String())
		if err != nil {
			log.Error().Err(err).Msg(`Error ocurred when counting bindings in "reactionroles:post"`)
		}

		key := "posted"
		if len(bindings) == 0 {
			key = "postedEmpty"
		}

		ctx.UpdateInteractionResponse(discord.MessageUpdate{
			Content: cmdPack.Getf(key, post.ChannelId),
		})

		return nil
	}
}
