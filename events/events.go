package events

import (
	"github.com/disgoorg/disgo/bot"

	msgevents "github.com/harvey-bot/harvey/events/message_events"
	"github.com/harvey-bot/harvey/roles"
)

func GetEvents(c bot.Client, router *roles.Router) []bot.EventListener {
	return []bot.EventListener{
		Ready(c),
		msgevents.MessageReactionAdd(c, router),
		msgevents.MessageReactionRemove(c, router),
	}
}
