package storage

import (
	"context"
	"fmt"
	"io"

	"weatherarchive/internal/config"
	"weatherarchive/internal/logger"
)

// Gateway is the process-wide handle to object storage. It is constructed
// once at startup and read-only afterwards. When the configured driver cannot
// be initialized the gateway stays permanently disabled: Available reports
// false and every operation returns ErrUnavailable without touching the
// backend.
type Gateway struct {
	driver Store
}

// NewGateway selects and initializes the configured storage driver. It never
// fails the process: on a driver error it logs and returns a disabled
// gateway, so the non-storage endpoints keep serving.
func NewGateway(cfg config.StorageConfig) *Gateway {
	driver, err := newDriver(cfg)
	if err != nil {
		logger.Errorw("object storage initialization failed, storage endpoints disabled",
			"driver", cfg.Driver, "bucket", cfg.Bucket, "error", err)
		return &Gateway{}
	}
	logger.Infow("object storage initialized", "driver", cfg.Driver, "bucket", cfg.Bucket)
	return &Gateway{driver: driver}
}

func newDriver(cfg config.StorageConfig) (Store, error) {
	switch cfg.Driver {
	case config.DriverGCS:
		return newGCSStore(cfg)
	case config.DriverMinIO:
		return newMinIOStore(cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// Available reports whether the backend was configured at startup. Handlers
// that touch storage check this before doing any work.
func (g *Gateway) Available() bool {
	return g.driver != nil
}

// Close releases the driver's underlying client, if it holds one.
func (g *Gateway) Close() error {
	if c, ok := g.driver.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (g *Gateway) WriteBlob(ctx context.Context, name string, data []byte, contentType string) error {
	if g.driver == nil {
		return ErrUnavailable
	}
	return g.driver.WriteBlob(ctx, name, data, contentType)
}

func (g *Gateway) ListBlobs(ctx context.Context) ([]string, error) {
	if g.driver == nil {
		return nil, ErrUnavailable
	}
	return g.driver.ListBlobs(ctx)
}

func (g *Gateway) ReadBlob(ctx context.Context, name string) ([]byte, error) {
	if g.driver == nil {
		return nil, ErrUnavailable
	}
	return g.driver.ReadBlob(ctx, name)
}

func (g *Gateway) Exists(ctx context.Context, name string) (bool, error) {
	if g.driver == nil {
		return false, ErrUnavailable
	}
	return g.driver.Exists(ctx, name)
}

func (g *Gateway) Ping(ctx context.Context) error {
	if g.driver == nil {
		return ErrUnavailable
	}
	return g.driver.Ping(ctx)
}
