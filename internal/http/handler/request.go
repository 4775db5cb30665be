package handler

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"

	"weatherarchive/internal/model"
)

var validate = validator.New()

// Validation failures of the store request, checked strictly in this order.
var (
	errMalformedPayload = errors.New("malformed payload")
	errMissingFields    = errors.New("missing fields")
	errInvalidType      = errors.New("invalid coordinate type")
	errInvalidDate      = errors.New("invalid date format")
)

var requiredFields = []string{"latitude", "longitude", "start_date", "end_date"}

var nullLiteral = []byte("null")

// parseWeatherQuery turns a raw request body into a validated WeatherQuery.
//
// Checks run in a fixed order so each failure reports its own condition:
// well-formed JSON object, all four fields present and non-null, numeric
// coordinates, YYYY-MM-DD dates. Nothing beyond that is validated: date
// ordering and coordinate ranges are deliberately unconstrained.
func parseWeatherQuery(body []byte) (model.WeatherQuery, error) {
	var q model.WeatherQuery

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return q, errMalformedPayload
	}

	for _, name := range requiredFields {
		v, ok := fields[name]
		if !ok || bytes.Equal(v, nullLiteral) {
			return q, errMissingFields
		}
	}

	if err := json.Unmarshal(fields["latitude"], &q.Latitude); err != nil {
		return q, errInvalidType
	}
	if err := json.Unmarshal(fields["longitude"], &q.Longitude); err != nil {
		return q, errInvalidType
	}

	if err := json.Unmarshal(fields["start_date"], &q.StartDate); err != nil {
		return q, errInvalidDate
	}
	if err := json.Unmarshal(fields["end_date"], &q.EndDate); err != nil {
		return q, errInvalidDate
	}
	if err := validate.Struct(q); err != nil {
		return q, errInvalidDate
	}

	return q, nil
}

// validationMessage maps each validation failure to its response body text.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, errMissingFields):
		return "Missing required fields: latitude, longitude, start_date, end_date"
	case errors.Is(err, errInvalidType):
		return "Latitude and longitude must be numbers"
	case errors.Is(err, errInvalidDate):
		return "Dates must be in YYYY-MM-DD format"
	default:
		return "Invalid JSON payload"
	}
}
