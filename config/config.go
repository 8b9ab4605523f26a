package config

import (
	"os"
	"strings"

	"github.com/disgoorg/disgo/gateway"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var (
	MongoUri string
	Token    string
	Intents  gateway.ConfigOpt = gateway.WithIntents(
		gateway.IntentGuilds,
		gateway.IntentGuildEmojisAndStickers,
		gateway.IntentGuildMessages,
		gateway.IntentGuildMessageReactions,
	)
	DevServersId = []string{}
)

func init() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Warn().Msgf("No .env file found, using process environment: %v", err)
	}

	if os.Getenv("APP_ENV") == "development" {
		Token = os.Getenv("TEST_BOT_TOKEN")
	} else {
		Token = os.Getenv("BOT_TOKEN")
	}

	MongoUri = os.Getenv("MONGO_URI")
	if raw := os.Getenv("DEV_SERVER_ID"); raw != "" {
		DevServersId = strings.Split(raw, ",")
	}
}
