package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/helpmate/helpmate-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("helpmate")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS helpmate`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO helpmate").Error; err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.Account{},
		&schema.AccountProfile{},
		&schema.Request{},
		&schema.Interest{},
		&schema.Rejection{},
		&schema.Conversation{},
		&schema.Bargain{},
		&schema.BargainOffer{},
		&schema.ServiceTransaction{},
		&schema.Rating{},
	).Error; err != nil {
		panic(err)
	}

	// one active bargain per conversation; gorm tags cannot express a
	// partial index
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_bargain_active_conversation
		ON bargains (conversation_id) WHERE status != 'CANCELLED'`).Error; err != nil {
		panic(err)
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
}
