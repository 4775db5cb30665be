package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"weatherarchive/internal/logger"
	"weatherarchive/internal/model"
	"weatherarchive/internal/storage"
	"weatherarchive/internal/weather"
)

// ErrCorruptObject is returned by FileContent when a stored blob turns out
// not to be valid JSON.
var ErrCorruptObject = errors.New("stored object is not valid JSON")

var tracer = otel.Tracer("weatherarchive/internal/service")

// WeatherService defines the use cases around stored weather documents.
type WeatherService interface {
	// Store fetches historical data for the query from the upstream provider
	// and writes it to object storage. It returns the generated file name.
	Store(ctx context.Context, q model.WeatherQuery) (string, error)

	// ListFiles returns the names of all stored weather files, in backend
	// order.
	ListFiles(ctx context.Context) ([]string, error)

	// FileContent returns the stored JSON document with the given name, or
	// storage.ErrNotFound.
	FileContent(ctx context.Context, name string) (json.RawMessage, error)
}

type weatherService struct {
	fetcher weather.Fetcher
	store   storage.Store
	now     func() time.Time
}

// NewWeatherService constructs a WeatherService on top of the upstream
// fetcher and the object store gateway.
func NewWeatherService(fetcher weather.Fetcher, store storage.Store) WeatherService {
	return &weatherService{fetcher: fetcher, store: store, now: time.Now}
}

func (s *weatherService) Store(ctx context.Context, q model.WeatherQuery) (string, error) {
	ctx, span := tracer.Start(ctx, "WeatherService.Store", trace.WithAttributes(
		attribute.Float64("weather.latitude", q.Latitude),
		attribute.Float64("weather.longitude", q.Longitude),
		attribute.String("weather.start_date", q.StartDate),
		attribute.String("weather.end_date", q.EndDate),
	))
	defer span.End()

	raw, err := s.fetcher.FetchArchive(ctx, q)
	if err != nil {
		return "", err
	}

	// Reformat with two-space indentation; bytes and key order are preserved.
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return "", fmt.Errorf("indent weather document: %w", err)
	}

	name := model.FileName(q, s.now().UTC())
	if err := s.store.WriteBlob(ctx, name, buf.Bytes(), "application/json"); err != nil {
		logger.Errorw("weather document write failed", "file_name", name, "error", err)
		return "", fmt.Errorf("store weather document: %w", err)
	}

	span.SetAttributes(attribute.String("weather.file_name", name))
	logger.Infow("weather document stored", "file_name", name)
	return name, nil
}

func (s *weatherService) ListFiles(ctx context.Context) ([]string, error) {
	names, err := s.store.ListBlobs(ctx)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (s *weatherService) FileContent(ctx context.Context, name string) (json.RawMessage, error) {
	ok, err := s.store.Exists(ctx, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, storage.ErrNotFound
	}

	data, err := s.store.ReadBlob(ctx, name)
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: %s", ErrCorruptObject, name)
	}
	return json.RawMessage(data), nil
}
