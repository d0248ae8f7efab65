package utils

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/helpmate/helpmate-api/external/geoinfo"
	"github.com/helpmate/helpmate-api/schema"
)

var ErrGeoClientNotInit = fmt.Errorf("geo location client is not initialized")
var ErrEmptyGeo = fmt.Errorf("empty geo info")

var geoClient geoinfo.GeoInfo

func InitGeoInfo(apiKey string) {
	c, err := geoinfo.New(apiKey)
	if nil != err {
		log.Panicf("get geo client with error: %s", err)
	}

	geoClient = c
}

func SetGeoClient(c geoinfo.GeoInfo) {
	geoClient = c
}

// PoliticalGeoInfo fills the country and county display fields of a location
// by reverse geocoding its coordinates. Already-resolved locations pass
// through unchanged.
func PoliticalGeoInfo(loc schema.Location) (schema.Location, error) {
	if loc.Country != "" {
		return loc, nil
	}

	if geoClient == nil {
		return loc, ErrGeoClientNotInit
	}

	geos, err := geoClient.Get(loc)
	if nil != err {
		return loc, err
	}
	if len(geos) == 0 {
		return loc, ErrEmptyGeo
	}

	for _, a := range geos[0].AddressComponents {
		if len(a.Types) == 0 {
			continue
		}
		switch a.Types[0] {
		case "country":
			loc.Country = a.LongName
		case "administrative_area_level_2":
			loc.County = a.LongName
		case "administrative_area_level_1":
			if loc.County == "" {
				loc.County = a.LongName
			}
		}
	}

	return loc, nil
}
