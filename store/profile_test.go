package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/helpmate/helpmate-api/schema"
)

type ProfileTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewProfileTestSuite(connURI, dbName string) *ProfileTestSuite {
	return &ProfileTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *ProfileTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

// LoadMongoDBFixtures preloads discovery profiles: two helpers in Taipei a
// few kilometers apart and one seeker without helper role.
func (s *ProfileTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()

	_, err := s.testDatabase.Collection(schema.ProfileCollection).InsertMany(ctx, []interface{}{
		schema.Profile{
			ID:            "profile-helper-near",
			AccountNumber: "helper-near",
			IsHelper:      true,
			Location: &schema.GeoJSON{
				Type:        "Point",
				Coordinates: []float64{121.5654, 25.0330},
			},
		},
		schema.Profile{
			ID:            "profile-helper-far",
			AccountNumber: "helper-far",
			IsHelper:      true,
			Location: &schema.GeoJSON{
				Type:        "Point",
				Coordinates: []float64{121.5319, 25.0478},
			},
		},
		schema.Profile{
			ID:            "profile-seeker",
			AccountNumber: "seeker-only",
			IsSeeker:      true,
			Location: &schema.GeoJSON{
				Type:        "Point",
				Coordinates: []float64{121.5654, 25.0330},
			},
		},
	})
	return err
}

// CleanMongoDB drops the whole test mongodb
func (s *ProfileTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *ProfileTestSuite) TestGetProfilesBatch() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	profiles, err := store.GetProfiles([]string{"helper-near", "seeker-only", "no-such-account"})
	s.NoError(err)
	s.Len(profiles, 2)
	s.True(profiles["helper-near"].IsHelper)
	s.True(profiles["seeker-only"].IsSeeker)
}

func (s *ProfileTestSuite) TestUpdateProfileRating() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	err := store.UpdateProfileRating("helper-near", RatingRoleHelper, schema.RatingSummary{
		Average: 4.5,
		Count:   2,
	})
	s.NoError(err)

	var profile schema.Profile
	err = s.testDatabase.Collection(schema.ProfileCollection).FindOne(context.Background(), bson.M{
		"account_number": "helper-near",
	}).Decode(&profile)
	s.NoError(err)

	s.Equal(4.5, profile.HelperRating.Average)
	s.Equal(int64(2), profile.HelperRating.Count)
	s.Equal(float64(0), profile.SeekerRating.Average)
}

func (s *ProfileTestSuite) TestUpdateProfileRatingUnknownAccount() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	err := store.UpdateProfileRating("no-such-account", RatingRoleHelper, schema.RatingSummary{
		Average: 5,
		Count:   1,
	})
	s.Equal(mongo.ErrNoDocuments, err)
}

func (s *ProfileTestSuite) TestNearestHelpersOrdering() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	// query from helper-near's spot; both helpers are within 10km, the
	// seeker-only profile must never show up
	helpers, err := store.NearestHelpers(10000, schema.Location{
		Latitude:  25.0330,
		Longitude: 121.5654,
	})
	s.NoError(err)
	s.Equal([]string{"helper-near", "helper-far"}, helpers)
}

func (s *ProfileTestSuite) TestNearestHelpersDistanceCutoff() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	// 1km around helper-near excludes helper-far (about 3.7km away)
	helpers, err := store.NearestHelpers(1000, schema.Location{
		Latitude:  25.0330,
		Longitude: 121.5654,
	})
	s.NoError(err)
	s.Equal([]string{"helper-near"}, helpers)
}

func (s *ProfileTestSuite) TestUpdateProfileGeoPosition() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	err := store.UpdateProfileGeoPosition("seeker-only", schema.Location{
		Latitude:  24.1477,
		Longitude: 120.6736,
	})
	s.NoError(err)

	var profile schema.Profile
	err = s.testDatabase.Collection(schema.ProfileCollection).FindOne(context.Background(), bson.M{
		"account_number": "seeker-only",
	}).Decode(&profile)
	s.NoError(err)
	s.Equal([]float64{120.6736, 24.1477}, profile.Location.Coordinates)
}

func TestProfileTestSuite(t *testing.T) {
	suite.Run(t, NewProfileTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
