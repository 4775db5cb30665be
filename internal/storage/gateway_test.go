package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weatherarchive/internal/config"
)

// fakeStore is an in-memory Store used to exercise the gateway passthrough.
type fakeStore struct {
	objects map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (f *fakeStore) WriteBlob(_ context.Context, name string, data []byte, _ string) error {
	f.objects[name] = data
	return nil
}

func (f *fakeStore) ListBlobs(_ context.Context) ([]string, error) {
	var names []string
	for name := range f.objects {
		names = append(names, name)
	}
	return names, nil
}

func (f *fakeStore) ReadBlob(_ context.Context, name string) ([]byte, error) {
	data, ok := f.objects[name]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

func (f *fakeStore) Exists(_ context.Context, name string) (bool, error) {
	_, ok := f.objects[name]
	return ok, nil
}

func (f *fakeStore) Ping(_ context.Context) error { return nil }

func TestDisabledGateway(t *testing.T) {
	ctx := context.Background()
	gw := &Gateway{}

	assert.False(t, gw.Available())

	err := gw.WriteBlob(ctx, "a.json", []byte("{}"), "application/json")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = gw.ListBlobs(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = gw.ReadBlob(ctx, "a.json")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = gw.Exists(ctx, "a.json")
	assert.ErrorIs(t, err, ErrUnavailable)

	assert.ErrorIs(t, gw.Ping(ctx), ErrUnavailable)
	assert.NoError(t, gw.Close())
}

func TestGatewayPassthrough(t *testing.T) {
	ctx := context.Background()
	gw := &Gateway{driver: newFakeStore()}

	assert.True(t, gw.Available())
	require.NoError(t, gw.Ping(ctx))

	require.NoError(t, gw.WriteBlob(ctx, "a.json", []byte(`{"x":1}`), "application/json"))

	ok, err := gw.Exists(ctx, "a.json")
	require.NoError(t, err)
	assert.True(t, ok)

	data, err := gw.ReadBlob(ctx, "a.json")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"x":1}`), data)

	names, err := gw.ListBlobs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json"}, names)

	_, err = gw.ReadBlob(ctx, "missing.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewGatewayWithBadConfig(t *testing.T) {
	t.Run("unknown driver disables the gateway", func(t *testing.T) {
		gw := NewGateway(config.StorageConfig{Driver: "ftp", Bucket: "b"})
		assert.False(t, gw.Available())
	})

	t.Run("minio without endpoint disables the gateway", func(t *testing.T) {
		gw := NewGateway(config.StorageConfig{Driver: config.DriverMinIO, Bucket: "b"})
		assert.False(t, gw.Available())
	})
}

func TestNewDriverValidation(t *testing.T) {
	_, err := newDriver(config.StorageConfig{Driver: config.DriverMinIO, Bucket: "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint")

	_, err = newDriver(config.StorageConfig{
		Driver: config.DriverMinIO,
		Bucket: "b",
		MinIO:  config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "ak"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credentials")

	_, err = newDriver(config.StorageConfig{
		Driver: config.DriverMinIO,
		MinIO:  config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "ak", SecretKey: "sk"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket")

	_, err = newDriver(config.StorageConfig{Driver: config.DriverGCS})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket")
}
