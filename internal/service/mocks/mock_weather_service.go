package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"weatherarchive/internal/model"
)

type MockWeatherService struct {
	mock.Mock
}

func (m *MockWeatherService) Store(ctx context.Context, q model.WeatherQuery) (string, error) {
	args := m.Called(ctx, q)
	return args.String(0), args.Error(1)
}

func (m *MockWeatherService) ListFiles(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockWeatherService) FileContent(ctx context.Context, name string) (json.RawMessage, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}
