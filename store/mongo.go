package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

// MongoStore bundles the discovery-side operations: account profiles, rating
// aggregates and nearest-helper lookups.
type MongoStore interface {
	ProfileOperator
	Discovery

	Ping() error
	Close()
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

func (m mongoDB) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

func (m mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

func NewMongoStore(client *mongo.Client, database string) MongoStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}
