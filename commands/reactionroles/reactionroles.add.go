package reactionroles

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/json"
	"github.com/rs/zerolog/log"

	"github.com/harvey-bot/harvey/commands/cmd_util"
	"github.com/harvey-bot/harvey/constants"
	"github.com/harvey-bot/harvey/langs"
	"github.com/harvey-bot/harvey/roles"
)

func AddHandler(registry *roles.Registry, posts *roles.PostManager) func(ctx *handler.CommandEvent) error {
	return func(ctx *handler.CommandEvent) error {
		err := ctx.DeferCreateMessage(false)
		if err != nil {
			log.Error().Err(err).Msg(`Error ocurred when trying to defer message in "reactionroles:add"`)
			return err
		}

		pack := langs.Pack(cmd_util.GuildLang(ctx))
		if !cmd_util.RequireGuildAdmin(ctx, pack) {
			return nil
		}

		cmdPack := pack.Command("reactionroles").SubCommand("add")

		data := ctx.SlashCommandInteractionData()
		emoji, ok := data.OptString("emoji")
		if !ok {
			ctx.UpdateInteractionResponse(discord.MessageUpdate{
				Content: cmdPack.Get("noEmoji"),
			})

			return nil
		}

		role, ok := data.OptRole("role")
		if !ok {
			ctx.UpdateInteractionResponse(discord.MessageUpdate{
				Content: cmdPack.Get("noRole"),
			})

			return nil
		}

		description, _ := data.OptString("description")

		rr, err := registry.Add(ctx.GuildID().String(), emoji, role.ID.String(), description)
		if err != nil {
			ctx.UpdateInteractionResponse(discord.MessageUpdate{
				Content: json.Ptr(rejectionText(pack, err)),
			})

			return nil
		}

		if err := posts.SyncNewBinding(ctx.GuildID().String(), rr); err != nil {
			log.Error().Err(err).Msg(`Error ocurred when syncing posts in "reactionroles:add"`)

			ctx.UpdateInteractionResponse(discord.MessageUpdate{
				Content: cmdPack.Getf("addedNoSync", rr.EmojiMention(), rr.RoleMention()),
			})

			return nil
		}

		fields := []discord.EmbedField{
			{
				Name:   " ",
				Value:  *cmdPack.Getf("added", rr.EmojiMention(), rr.RoleMention()),
				Inline: json.Ptr(true),
			},
		}
		if rr.Description != "" {
			fields = append(fields, discord.EmbedField{
				Name:   " ",
				Value:  *cmdPack.Getf("addedDesc", rr.Description),
				Inline: json.Ptr(true),
			})
		}

		ctx.UpdateInteractionResponse(discord.MessageUpdate{
			Embeds: json.Ptr([]discord.Embed{
				{
					Author: json.Ptr(discord.EmbedAuthor{
						Name:    ctx.User().Username,
						IconURL: *ctx.User().AvatarURL(),
					}),
					Title:  *cmdPack.Get("embedTitle"),
					Color:  constants.Colors.Good,
					Fields: fields,
				},
			}),
		})

		return nil
	}
}
