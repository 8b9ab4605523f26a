package events

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog/log"

	"github.com/harvey-bot/harvey/constants"
)

var (
	scheduler    *gocron.Scheduler
	presenceOnce sync.Once
)

func init() {
	scheduler = gocron.NewScheduler(time.UTC)
}

func Ready(c bot.Client) bot.EventListener {
	return bot.NewListenerFunc(func(e *events.Ready) {
		log.Info().Msgf("Logged as: %v 👤", e.User.Username)

		rotatePresence(c)

		// Ready fires again on every resume; schedule only once.
		presenceOnce.Do(func() {
			if _, err := scheduler.Every("3m").Do(func() {
				rotatePresence(c)
			}); err != nil {
				log.Error().Err(err).Msg("Error ocurred scheduling presence rotation: ")
				return
			}

			scheduler.StartAsync()
		})
	})
}

func rotatePresence(c bot.Client) {
	presence := constants.Presences[rand.Intn(len(constants.Presences))]

	if err := c.SetPresence(
		context.TODO(),
		gateway.WithWatchingActivity(presence),
		gateway.WithOnlineStatus(discord.OnlineStatusIdle),
	); err != nil {
		log.Error().
			Err(err).
			Msg("Error ocurred trying to set presence: ")
	}
}
