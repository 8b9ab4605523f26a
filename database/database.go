package database

import (
	"github.com/kamva/mgm/v3"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harvey-bot/harvey/config"
)

func Connect() error {
	return mgm.SetDefaultConfig(nil, "harvey", options.Client().ApplyURI(config.MongoUri))
}
