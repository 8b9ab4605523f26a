package admin

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/rs/zerolog/log"

	"github.com/harvey-bot/harvey/commands/cmd_util"
	"github.com/harvey-bot/harvey/langs"
	"github.com/harvey-bot/harvey/platform"
)

var Role = discord.SlashCommandCreate{
	Name:        "role",
	Description: "Create a mentionable role ready to bind to an emoji.",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "name",
			Description: "The name of the new role.",
			Required:    true,
		},
	},
}

func RoleHandler(chat platform.Client) func(ctx *handler.CommandEvent) error {
	return func(ctx *handler.CommandEvent) error {
		err := ctx.DeferCreateMessage(false)
		if err != nil {
			log.Error().Err(err).Msg(`Error ocurred when trying to defer message in "role"`)
			return err
		}

		pack := langs.Pack(cmd_util.GuildLang(ctx))
		if !cmd_util.RequireGuildAdmin(ctx, pack) {
			return nil
		}

		cmdPack := pack.Command("role")

		data := ctx.SlashCommandInteractionData()
		name, ok := data.OptString("name")
		if !ok {
			ctx.UpdateInteractionResponse(discord.MessageUpdate{
				Content: cmdPack.Get("noName"),
			})

			return nil
		}

		role, err := chat.CreateRole(ctx.GuildID().String(), name)
		if err != nil {
			ctx.UpdateInteractionResponse(discord.MessageUpdate{
				Content: cmdPack.Getf("failed", err),
			})

			return nil
		}

		ctx.UpdateInteractionResponse(discord.MessageUpdate{
			Content: cmdPack.Getf("created", role.Mention()),
		})

		return nil
	}
}
