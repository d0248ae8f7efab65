package schema

const (
	ProfileCollection = "profile"
)

// Profile - discovery profile of an account, kept in mongodb for geospatial
// queries and rating display
type Profile struct {
	ID            string        `bson:"id"`
	AccountNumber string        `bson:"account_number"`
	Location      *GeoJSON      `bson:"location,omitempty"`
	IsHelper      bool          `bson:"is_helper"`
	IsSeeker      bool          `bson:"is_seeker"`
	HelperRating  RatingSummary `bson:"helper_rating"`
	SeekerRating  RatingSummary `bson:"seeker_rating"`
}

// RatingSummary is the running arithmetic mean over all ratings an account
// received in one role.
type RatingSummary struct {
	Average float64 `bson:"average"`
	Count   int64   `bson:"count"`
}

// GeoJSON - mongo location format
type GeoJSON struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}
