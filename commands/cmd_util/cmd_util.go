package cmd_util

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/harvey-bot/harvey/database/models"
	"github.com/harvey-bot/harvey/langs"
)

// GuildLang reads the guild's configured language, DefaultLang when the
// guild never got a config document or the field is empty.
func GuildLang(ctx *handler.CommandEvent) string {
	if ctx.GuildID() == nil {
		return langs.DefaultLang
	}

	guildData := models.GuildConfig{Lang: langs.DefaultLang}
	err := models.GuildConfigColl().FindByID(ctx.GuildID().String(), &guildData)
	if err != nil || guildData.Lang == "" {
		return langs.DefaultLang
	}

	return guildData.Lang
}

// RequireGuildAdmin rejects the interaction unless it comes from a guild
// member holding Administrator. Call only after the response was deferred;
// the rejection goes out through UpdateInteractionResponse.
func RequireGuildAdmin(ctx *handler.CommandEvent, pack *langs.LangPack) bool {
	if ctx.GuildID() == nil {
		ctx.UpdateInteractionResponse(discord.MessageUpdate{
			Content: pack.Command("common").Get("guildOnly"),
		})

		return false
	}

	member := ctx.Member()
	if member == nil || !member.Permissions.Has(discord.PermissionAdministrator) {
		ctx.UpdateInteractionResponse(discord.MessageUpdate{
			Content: pack.Command("common").Get("needAdmin"),
		})

		return false
	}

	return true
}
