package model

import (
	"fmt"
	"strconv"
	"time"
)

// WeatherQuery is the validated input of a store request. It is transient:
// it feeds the upstream archive call and the generated object name, and is
// never persisted itself.
type WeatherQuery struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	StartDate string  `json:"start_date" validate:"datetime=2006-01-02"`
	EndDate   string  `json:"end_date" validate:"datetime=2006-01-02"`
}

// fileTimeLayout is the second-resolution UTC timestamp suffix of stored
// object names.
const fileTimeLayout = "20060102150405"

// FileName builds the object name for a stored query result:
// weather_{lat}_{lon}_{start}_{end}_{YYYYMMDDHHMMSS}.json.
// Coordinates are rendered in their shortest decimal form, so integral
// values carry no trailing ".0". Names generated within the same second for
// identical queries collide; the write is an overwrite and the last one wins.
func FileName(q WeatherQuery, ts time.Time) string {
	return fmt.Sprintf("weather_%s_%s_%s_%s_%s.json",
		strconv.FormatFloat(q.Latitude, 'f', -1, 64),
		strconv.FormatFloat(q.Longitude, 'f', -1, 64),
		q.StartDate,
		q.EndDate,
		ts.UTC().Format(fileTimeLayout),
	)
}
