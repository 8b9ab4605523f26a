package msgevents

import (
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/events"

	"github.com/harvey-bot/harvey/roles"
)

func MessageReactionRemove(c bot.Client, router *roles.Router) bot.EventListener {
	return bot.NewListenerFunc(func(e *events.MessageReactionRemove) {
		go func() {
			if e.GuildID == nil {
				return
			}
			if e.Emoji.ID == 0 {
				return
			}
			if e.UserID == c.ID() {
				return
			}

			router.Dispatch(roles.Event{
				Kind:      roles.ReactionRemoved,
				GuildID:   e.GuildID.String(),
				ChannelID: e.ChannelID.String(),
				MessageID: e.MessageID.String(),
				EmojiID:   e.Emoji.ID.String(),
				UserID:    e.UserID.String(),
			})
		}()
	})
}
