package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/helpmate/helpmate-api/schema"
)

// Discovery - geospatial queries over discovery profiles
type Discovery interface {
	NearestHelpers(distance int, loc schema.Location) ([]string, error)
}

// NearestHelpers - find helper account numbers within the given distance in
// meters, nearest first
func (m *mongoDB) NearestHelpers(distance int, loc schema.Location) ([]string, error) {
	query := helperDistanceQuery(distance, loc)
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cur, err := c.Find(ctx, query)
	if nil != err {
		log.WithField("prefix", mongoLogPrefix).Errorf("query nearest helpers with error: %s", err)
		return []string{}, fmt.Errorf("nearest helpers query with error: %s", err)
	}

	accountNumbers := make([]string, 0)
	var record schema.Profile

	// iterate
	for cur.Next(ctx) {
		err = cur.Decode(&record)
		if nil != err {
			log.WithField("prefix", mongoLogPrefix).Infof("query nearest helpers with error: %s", err)
			return []string{}, fmt.Errorf("nearest helpers query decode record with error: %s", err)
		}
		accountNumbers = append(accountNumbers, record.AccountNumber)
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("nearest helpers query gets %d account numbers", len(accountNumbers))

	return accountNumbers, nil
}

// $nearSphere provides documents from nearest to farthest
// reference: https://docs.mongodb.com/manual/reference/operator/query/nearSphere/#op._S_nearSphere
func helperDistanceQuery(distance int, loc schema.Location) bson.D {
	return bson.D{{
		Key:   "is_helper",
		Value: true,
	}, {
		Key: "location",
		Value: bson.D{{
			Key: "$nearSphere",
			Value: bson.D{{
				Key: "$geometry",
				Value: bson.D{{
					Key:   "type",
					Value: "Point",
				}, {
					Key:   "coordinates",
					Value: bson.A{loc.Longitude, loc.Latitude},
				}},
			}, {
				Key:   "$maxDistance",
				Value: distance,
			}},
		}},
	}}
}
