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

func CheckHandler(posts *roles.PostManager) func(ctx *handler.CommandEvent) error {
	return func(ctx *handler.CommandEvent) error {
		err := ctx.DeferCreateMessage(false)
		if err != nil {
			log.Error().Err(err).Msg(`Error ocurred when trying to defer message in "reactionroles:check"`)
			return err
		}

		pack := langs.Pack(cmd_util.GuildLang(ctx))
		if !cmd_util.RequireGuildAdmin(ctx, pack) {
			return nil
		}

		cmdPack := pack.Command("reactionroles").SubCommand("check")

		kept, pruned, err := posts.Check(ctx.GuildID().String())
		if err != nil {
			ctx.UpdateInteractionResponse(discord.MessageUpdate{
				Content: json.Ptr(rejectionText(pack, err)),
			})

			return nil
		}

		if len(kept) == 0 && len(pruned) == 0 {
			ctx.UpdateInteractionResponse(discord.MessageUpdate{
				Content: cmdPack.Get("empty"),
			})

			return nil
		}

		lines := []string{}
		for i := range kept {
			post := &kept[i]
			lines = append(lines, *cmdPack.Getf("line", i+1, post.ChannelId, post.MessageId))
		}

		description := *cmdPack.Get("empty")
		if len(lines) != 0 {
			description = strings.Join(lines, "\n")
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
					Color:       constants.Colors.Info,
					Footer: json.Ptr(discord.EmbedFooter{
						Text: *cmdPack.Getf("embedFooter", len(kept), len(pruned)),
					}),
				},
			}),
		})

		return nil
	}
}
