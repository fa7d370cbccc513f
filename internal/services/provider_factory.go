package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vaporis/vaporis-site/internal/config"
)

// NewProvider builds the backend selected by cfg.Driver
func NewProvider(ctx context.Context, cfg config.StorageConfig) (Provider, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	switch cfg.Driver {
	case config.DriverSupabase, "":
		return NewSupabaseProvider(cfg.URL, cfg.Key, timeout)
	case config.DriverMinio:
		return NewMinioProvider(cfg.URL, cfg.Key, cfg.Secret, cfg.Region, timeout)
	case config.DriverS3:
		return NewS3Provider(ctx, cfg.URL, cfg.Key, cfg.Secret, cfg.Region, timeout)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidDriver, cfg.Driver)
	}
}
