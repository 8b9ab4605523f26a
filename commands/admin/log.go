package admin

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/rs/zerolog/log"

	"github.com/harvey-bot/harvey/commands/cmd_util"
	"github.com/harvey-bot/harvey/langs"
	"github.com/harvey-bot/harvey/roles"
)

var Log = discord.SlashCommandCreate{
	Name:        "log",
	Description: "Pick the channel where role grants and removals get logged.",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionChannel{
			Name:         "channel",
			Description:  "The channel for the audit lines.",
			Required:     true,
			ChannelTypes: []discord.ChannelType{discord.ChannelTypeGuildText, discord.ChannelTypeGuildNews},
		},
	},
}

func LogHandler(store roles.Store) func(ctx *handler.CommandEvent) error {
	return func(ctx *handler.CommandEvent) error {
		err := ctx.DeferCreateMessage(false)
		if err != nil {
			log.Error().Err(err).Msg(`Error ocurred when trying to defer message in "log"`)
			return err
		}

		pack := langs.Pack(cmd_util.GuildLang(ctx))
		if !cmd_util.RequireGuildAdmin(ctx, pack) {
			return nil
		}

		cmdPack := pack.Command("log")

		data := ctx.SlashCommandInteractionData()
		channel, ok := data.OptChannel("channel")
		if !ok {
			ctx.UpdateInteractionResponse(discord.MessageUpdate{
				Content: cmdPack.Get("noChannel"),
			})

			return nil
		}

		if err := store.SetLogChannel(ctx.GuildID().String(), channel.ID.String()); err != nil {
			ctx.UpdateInteractionResponse(discord.MessageUpdate{
				Content: cmdPack.Getf("failed", err),
			})

			return nil
		}

		ctx.UpdateInteractionResponse(discord.MessageUpdate{
			Content: cmdPack.Getf("set", channel.ID),
		})

		return nil
	}
}
