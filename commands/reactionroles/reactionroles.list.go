package reactionroles

import (
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/json"
	"github.com/rs/zerolog/log"

	"github.com/harvey-bot/harvey/commands/cmd_util"
	"github.com/harvey-bot/harvey/constants"
	"github.com/harvey-bot/harvey/langs"
	"github.com/harvey-bot/harvey/roles"
)

func ListHandler(registry *roles.Registry) func(ctx *handler.CommandEvent) error {
	return func(ctx *handler.CommandEvent) error {
		err := ctx.DeferCreateMessage(false)
		if err != nil {
			log.Error().Err(err).Msg(`Error ocurred when trying to defer message in "reactionroles:list"`)
			return err
		}

		pack := langs.Pack(cmd_util.GuildLang(ctx))
		if !cmd_util.RequireGuildAdmin(ctx, pack) {
			return nil
		}

		cmdPack := pack.Command("reactionroles").SubCommand("list")

		bindings, err := registry.List(ctx.GuildID().String())
		if err != nil {
			ctx.UpdateInteractionResponse(discord.MessageUpdate{
				Content: json.Ptr(rejectionText(pack, err)),
			})

			return nil
		}

		if len(bindings) == 0 {
			ctx.UpdateInteractionResponse(discord.MessageUpdate{
				Content: cmdPack.Get("empty"),
			})

			return nil
		}

		description := strings.Join(roles.BindingLines(bindings), "\n")
		if runes := []rune(description); len(runes) > 4096 {
			description = string(runes[:4095]) + "…"
		}

		ctx.UpdateInteractionResponse(discord.MessageUpdate{
			Embeds: json.Ptr([]discord.Embed{
				{
					Author: json.Ptr(discord.EmbedAuthor{
						Name:    ctx.User().Username,
						IconURL: *ctx.User().AvatarURL(),
					}),
					Title:       *cmdPack.Get("embedTitle"),
					Description: description,
					Color:       constants.Colors.Main,
					Footer: json.Ptr(discord.EmbedFooter{
						Text: *cmdPack.Getf("embedFooter", len(bindings)),
					}),
				},
			}),
		})

		return nil
	}
}
