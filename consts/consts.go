package consts

import "time"

const (
	// BROADCAST_DISTANCE_RANGE is the radius in meters of the helper cohort
	// notified about a freshly posted request.
	BROADCAST_DISTANCE_RANGE = 50000

	// REQUEST_EXPIRY_WINDOW is how long an OPEN request stays browsable
	// before the background worker closes it.
	REQUEST_EXPIRY_WINDOW = 7 * 24 * time.Hour
)
