package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"weatherarchive/internal/model"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) FetchArchive(ctx context.Context, q model.WeatherQuery) (json.RawMessage, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}
