package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFileName(t *testing.T) {
	ts := time.Date(2024, 6, 15, 8, 30, 45, 0, time.UTC)

	t.Run("fractional coordinates", func(t *testing.T) {
		q := WeatherQuery{Latitude: 40.7, Longitude: -74.1, StartDate: "2024-01-01", EndDate: "2024-01-31"}
		assert.Equal(t, "weather_40.7_-74.1_2024-01-01_2024-01-31_20240615083045.json", FileName(q, ts))
	})

	t.Run("integral coordinates have no trailing decimals", func(t *testing.T) {
		q := WeatherQuery{Latitude: 52, Longitude: 0, StartDate: "2023-06-01", EndDate: "2023-06-30"}
		assert.Equal(t, "weather_52_0_2023-06-01_2023-06-30_20240615083045.json", FileName(q, ts))
	})

	t.Run("timestamp is converted to UTC", func(t *testing.T) {
		local := time.Date(2024, 6, 15, 10, 30, 45, 0, time.FixedZone("CEST", 2*3600))
		q := WeatherQuery{Latitude: 1, Longitude: 2, StartDate: "2024-01-01", EndDate: "2024-01-02"}
		assert.Equal(t, "weather_1_2_2024-01-01_2024-01-02_20240615083045.json", FileName(q, local))
	})

	t.Run("different seconds give distinct names", func(t *testing.T) {
		q := WeatherQuery{Latitude: 1, Longitude: 2, StartDate: "2024-01-01", EndDate: "2024-01-02"}
		assert.NotEqual(t, FileName(q, ts), FileName(q, ts.Add(time.Second)))
	})
}
