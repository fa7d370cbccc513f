package services

import (
	"context"
	"strings"
	"time"

	"github.com/vaporis/vaporis-site/internal/metrics"
	"github.com/vaporis/vaporis-site/internal/models"
	"go.uber.org/zap"
)

// DefaultPageSize is the number of objects requested by a single list call.
// Only the first page is ever fetched.
const DefaultPageSize = 100

// ListOptions controls one provider list request
type ListOptions struct {
	Folder string
	Limit  int
	Offset int
}

// Provider is implemented by each storage backend (supabase, minio, s3)
type Provider interface {
	// List returns the objects directly inside opts.Folder, in provider order.
	List(ctx context.Context, bucket string, opts ListOptions) ([]models.StorageObjectRecord, error)
	// PublicURL builds the unauthenticated URL of an object without a network call.
	PublicURL(bucket, objectPath string) string
}

// ListResult is the outcome of ListObjects: either Objects or Err is meaningful.
type ListResult struct {
	Objects []models.StorageObjectRecord
	Err     error
}

// OK reports whether the listing succeeded
func (r ListResult) OK() bool {
	return r.Err == nil
}

// Storage is the single point of contact with the storage provider.
type Storage struct {
	provider Provider
	driver   string
	timeout  time.Duration
	log      *zap.Logger
}

// NewStorage wraps a provider backend. A zero timeout leaves the caller's context unbounded.
func NewStorage(provider Provider, driver string, timeout time.Duration, log *zap.Logger) *Storage {
	if log == nil {
		log = zap.NewNop()
	}
	return &Storage{
		provider: provider,
		driver:   driver,
		timeout:  timeout,
		log:      log.With(zap.String("driver", driver)),
	}
}

// PublicURL resolves the public URL of bucket/objectPath
func (s *Storage) PublicURL(bucket, objectPath string) string {
	return s.provider.PublicURL(bucket, objectPath)
}

// ListObjects lists the first page (DefaultPageSize objects, offset 0) of folder.
// Failures are logged and returned in the result rather than as an empty listing.
func (s *Storage) ListObjects(ctx context.Context, bucket, folder string) ListResult {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	objects, err := s.provider.List(ctx, bucket, ListOptions{
		Folder: folder,
		Limit:  DefaultPageSize,
		Offset: 0,
	})
	metrics.RecordStorageList(s.driver, err == nil, time.Since(start))

	if err != nil {
		s.log.Error("Error listing files",
			zap.String("bucket", bucket),
			zap.String("folder", folder),
			zap.Error(err),
		)
		return ListResult{Err: err}
	}

	s.log.Debug("Listed files",
		zap.String("bucket", bucket),
		zap.String("folder", folder),
		zap.Int("count", len(objects)),
	)
	return ListResult{Objects: objects}
}

// ObjectPath joins a folder and an object name into a bucket-relative path
func ObjectPath(folder, name string) string {
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return name
	}
	return folder + "/" + name
}
