package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/helpmate/helpmate-api/schema"
)

// ProfileOperator - operations on discovery profiles
type ProfileOperator interface {
	CreateProfile(profile schema.Profile) error
	GetProfile(accountNumber string) (*schema.Profile, error)
	GetProfiles(accountNumbers []string) (map[string]schema.Profile, error)
	UpdateProfileGeoPosition(accountNumber string, loc schema.Location) error
	UpdateProfileRating(accountNumber, role string, rating schema.RatingSummary) error
}

func (m *mongoDB) CreateProfile(profile schema.Profile) error {
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if _, err := c.InsertOne(ctx, profile); err != nil {
		log.WithFields(log.Fields{
			"prefix":         mongoLogPrefix,
			"account_number": profile.AccountNumber,
			"error":          err,
		}).Error("create profile")
		return err
	}
	return nil
}

func (m *mongoDB) GetProfile(accountNumber string) (*schema.Profile, error) {
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var p schema.Profile
	if err := c.FindOne(ctx, bson.M{"account_number": accountNumber}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProfiles resolves a batch of account numbers in one query; missing
// accounts are simply absent from the map.
func (m *mongoDB) GetProfiles(accountNumbers []string) (map[string]schema.Profile, error) {
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cur, err := c.Find(ctx, bson.M{"account_number": bson.M{"$in": accountNumbers}})
	if err != nil {
		return nil, fmt.Errorf("profiles query with error: %s", err)
	}

	profiles := make(map[string]schema.Profile)
	for cur.Next(ctx) {
		var p schema.Profile
		if err := cur.Decode(&p); err != nil {
			return nil, fmt.Errorf("profiles query decode record with error: %s", err)
		}
		profiles[p.AccountNumber] = p
	}
	return profiles, nil
}

func (m *mongoDB) UpdateProfileGeoPosition(accountNumber string, loc schema.Location) error {
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := c.UpdateOne(ctx,
		bson.M{"account_number": accountNumber},
		bson.M{"$set": bson.M{
			"location": schema.GeoJSON{
				Type:        "Point",
				Coordinates: []float64{loc.Longitude, loc.Latitude},
			},
		}})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":         mongoLogPrefix,
			"account_number": accountNumber,
			"error":          err,
		}).Error("update profile geo position")
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (m *mongoDB) UpdateProfileRating(accountNumber, role string, rating schema.RatingSummary) error {
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	field := "helper_rating"
	if role == RatingRoleSeeker {
		field = "seeker_rating"
	}

	result, err := c.UpdateOne(ctx,
		bson.M{"account_number": accountNumber},
		bson.M{"$set": bson.M{field: rating}})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":         mongoLogPrefix,
			"account_number": accountNumber,
			"error":          err,
		}).Error("update profile rating")
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
