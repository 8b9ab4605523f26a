package commands

import (
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/harvey-bot/harvey/commands/admin"
	"github.com/harvey-bot/harvey/commands/information"
	"github.com/harvey-bot/harvey/commands/reactionroles"
	"github.com/harvey-bot/harvey/platform"
	"github.com/harvey-bot/harvey/roles"
)

var CommandsData = []discord.ApplicationCommandCreate{
	information.Ping,
	reactionroles.ReactionRoles,
	admin.Log,
	admin.Role,
}

// Main client
func HandleCommands(_ bot.Client, registry *roles.Registry, posts *roles.PostManager, store roles.Store, chat platform.Client) handler.Router {
	h := handler.New()

	h.Group(func(r handler.Router) {
		r.HandleCommand("/"+information.Ping.Name, information.PingHandler)
	})

	h.Group(func(r handler.Router) {
		r.Route("/"+reactionroles.ReactionRoles.Name, func(r handler.Router) {
			r.HandleCommand(
				"/"+reactionroles.ReactionRoles.Options[0].OptionName(),
				reactionroles.AddHandler(registry, posts),
			)
			r.HandleCommand(
				"/"+reactionroles.ReactionRoles.Options[1].OptionName(),
				reactionroles.RemoveHandler(registry, posts),
			)
			r.HandleCommand(
				"/"+reactionroles.ReactionRoles.Options[2].OptionName(),
				reactionroles.ListHandler(registry),
			)
			r.HandleCommand(
				"/"+reactionroles.ReactionRoles.Options[3].OptionName(),
				reactionroles.PostHandler(registry, posts),
			)
			r.HandleCommand(
				"/"+reactionroles.ReactionRoles.Options[4].OptionName(),
				reactionroles.CheckHandler(posts),
			)
		})
	})

	h.Group(func(r handler.Router) {
		r.HandleCommand("/"+admin.Log.Name, admin.LogHandler(store))
		r.HandleCommand("/"+admin.Role.Name, admin.RoleHandler(chat))
	})

	return h
}
