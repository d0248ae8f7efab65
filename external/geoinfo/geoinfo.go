package geoinfo

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/helpmate/helpmate-api/schema"
)

const (
	logPrefix      = "geoinfo"
	defaultTimeout = 5 * time.Second
)

// GeoInfo reverse-geocodes a request location into political divisions.
type GeoInfo interface {
	Get(schema.Location) ([]maps.GeocodingResult, error)
}

type geoInfo struct {
	client *maps.Client
}

func (g geoInfo) Get(loc schema.Location) ([]maps.GeocodingResult, error) {
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"lat":    loc.Latitude,
		"lng":    loc.Longitude,
	}).Info("query geo info")

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	req := maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: loc.Latitude, Lng: loc.Longitude},
	}
	return g.client.Geocode(ctx, &req)
}

// New returns a GeoInfo backed by the google maps geocoding API.
func New(apiKey string) (GeoInfo, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")
		return nil, err
	}

	return &geoInfo{client: client}, nil
}
