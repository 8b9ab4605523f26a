package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	snowflake "github.com/disgoorg/snowflake/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/harvey-bot/harvey/commands"
	"github.com/harvey-bot/harvey/config"
	"github.com/harvey-bot/harvey/database"
	"github.com/harvey-bot/harvey/events"
	"github.com/harvey-bot/harvey/langs"
	"github.com/harvey-bot/harvey/platform"
	"github.com/harvey-bot/harvey/roles"
)

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.Kitchen,
		FormatLevel: func(i interface{}) string {
			if i == nil {
				i = "log"
			}

			return strings.ToUpper(
				fmt.Sprintf("| %v |", strings.ToUpper(fmt.Sprint(i))),
			)
		},
	})
}

func main() {
	err := database.Connect()
	if err != nil {
		log.Panic().Err(err).Msg("Error when trying to connect to MongoDB: ")
	}

	log.Info().Msg("Connected to MongoDB 📁")

	err = langs.Load()
	if err != nil {
		log.Panic().Err(err).Send()
	}

	client, err := disgo.New(config.Token,
		bot.WithGatewayConfigOpts(
			config.Intents,
		),
		bot.WithCacheConfigOpts(
			cache.WithCaches(
				cache.FlagGuilds|cache.FlagMembers|cache.FlagMessages|cache.FlagChannels|cache.FlagEmojis,
			),
		),
	)
	if err != nil {
		log.Panic().Err(err).Msg("Error when trying to create client: ")
	}

	store := database.NewStore()
	chat := platform.NewDiscord(client)
	registry := roles.NewRegistry(store, chat)
	posts := roles.NewPostManager(store, chat)
	router := roles.NewRouter(store, registry, chat)

	client.AddEventListeners(events.GetEvents(client, router)...)
	client.AddEventListeners(commands.HandleCommands(client, registry, posts, store, chat))

	if os.Getenv("APP_ENV") == "development" {
		for _, id := range config.DevServersId {
			_, err := client.Rest().
				SetGuildCommands(client.ApplicationID(), snowflake.MustParse(id), commands.CommandsData)
			if err != nil {
				log.Panic().
					Err(err).
					Msg("Error when creating commands (development mode): ")
			}
		}
	} else {
		_, err := client.Rest().SetGlobalCommands(client.ApplicationID(), commands.CommandsData)
		if err != nil {
			log.Panic().Err(err).Msg("Error when creating commands: ")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	if err = client.OpenGateway(ctx); err != nil {
		log.Panic().Err(err).Msg("Error when trying to connect to gateway: ")
	}

	defer client.Close(context.TODO())

	log.Info().Msg("Harvey is now running 🚀.  Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
}
