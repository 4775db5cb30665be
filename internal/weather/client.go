package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"weatherarchive/internal/model"
)

// archiveBaseURL is the Open-Meteo historical archive endpoint.
const archiveBaseURL = "https://archive-api.open-meteo.com/v1/archive"

// dailyVariables is the fixed set of daily aggregates requested for every
// query, joined into the single comma-separated "daily" parameter.
var dailyVariables = strings.Join([]string{
	"temperature_2m_max",
	"temperature_2m_min",
	"temperature_2m_mean",
	"apparent_temperature_max",
	"apparent_temperature_min",
	"apparent_temperature_mean",
}, ",")

// UpstreamError reports a failed Open-Meteo call: a transport-level failure,
// a non-2xx status, or an unreadable/non-JSON body. Detail is included in the
// 502 response body.
type UpstreamError struct {
	Detail string
}

func (e *UpstreamError) Error() string {
	return "open-meteo request failed: " + e.Detail
}

// Fetcher issues archive queries against the upstream weather provider.
type Fetcher interface {
	// FetchArchive performs one GET against the archive API and returns the
	// response body verbatim. No retry is attempted.
	FetchArchive(ctx context.Context, q model.WeatherQuery) (json.RawMessage, error)
}

// Client is the HTTP implementation of Fetcher. It is safe for concurrent
// use by multiple goroutines.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds an Open-Meteo archive client. The timeout bounds the
// whole outbound call; outbound requests carry OpenTelemetry spans.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		baseURL: archiveBaseURL,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// FetchArchive fetches daily historical aggregates for the query window and
// returns the upstream JSON document without inspecting or altering any field.
func (c *Client) FetchArchive(ctx context.Context, q model.WeatherQuery) (json.RawMessage, error) {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(q.Latitude, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(q.Longitude, 'f', -1, 64))
	values.Set("start_date", q.StartDate)
	values.Set("end_date", q.EndDate)
	values.Set("daily", dailyVariables)
	values.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return nil, &UpstreamError{Detail: err.Error()}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &UpstreamError{Detail: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Detail: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{Detail: fmt.Sprintf("%s for url: %s", resp.Status, req.URL)}
	}

	if !json.Valid(body) {
		return nil, &UpstreamError{Detail: "response body is not valid JSON"}
	}

	return json.RawMessage(body), nil
}
