package msgevents

import (
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/events"

	"github.com/harvey-bot/harvey/roles"
)

func MessageReactionAdd(c bot.Client, router *roles.Router) bot.EventListener {
	return bot.NewListenerFunc(func(e *events.MessageReactionAdd) {
		go func() {
			if e.GuildID == nil {
				return
			}
			// Only custom emojis can carry a binding; default emojis come
			// through with a zero ID.
			if e.Emoji.ID == 0 {
				return
			}
			// The bot's own marker reactions come through here too.
			if e.UserID == c.ID() {
				return
			}

			router.Dispatch(roles.Event{
				Kind:      roles.ReactionAdded,
				GuildID:   e.GuildID.String(),
				ChannelID: e.ChannelID.String(),
				MessageID: e.MessageID.String(),
				EmojiID:   e.Emoji.ID.String(),
				UserID:    e.UserID.String(),
			})
		}()
	})
}
