package services

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/vaporis/vaporis-site/internal/models"
)

// MinioProvider lists a MinIO (or any S3-compatible) bucket with minio-go
type MinioProvider struct {
	client *minio.Client
}

// shouldUseSSL determines if SSL should be used based on the endpoint.
// Returns false for localhost, 127.0.0.1, and docker service names.
func shouldUseSSL(endpoint string) bool {
	// Local development endpoints
	if endpoint == "localhost:9000" || endpoint == "127.0.0.1:9000" {
		return false
	}
	// Docker service names (minio:9000, minio1:9000, minio2:9000, etc.)
	// Only match simple hostnames without dots (not domain names like minio.example.com)
	if strings.HasPrefix(endpoint, "minio") && !strings.Contains(strings.Split(endpoint, ":")[0], ".") && strings.Contains(endpoint, ":9000") {
		return false
	}
	return true
}

// splitEndpoint strips an optional scheme. An explicit scheme wins over shouldUseSSL.
func splitEndpoint(endpoint string) (host string, secure bool) {
	switch {
	case strings.HasPrefix(endpoint, "https://"):
		return strings.TrimSuffix(strings.TrimPrefix(endpoint, "https://"), "/"), true
	case strings.HasPrefix(endpoint, "http://"):
		return strings.TrimSuffix(strings.TrimPrefix(endpoint, "http://"), "/"), false
	default:
		host = strings.TrimSuffix(endpoint, "/")
		return host, shouldUseSSL(host)
	}
}

// NewMinioProvider creates the client. Empty keys give anonymous access to public buckets.
func NewMinioProvider(endpoint, accessKey, secretKey, region string, timeout time.Duration) (*MinioProvider, error) {
	host, secure := splitEndpoint(endpoint)
	if host == "" {
		return nil, fmt.Errorf("invalid storage url %q", endpoint)
	}

	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeout,
	}

	client, err := minio.New(host, &minio.Options{
		Creds:     credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure:    secure,
		Region:    region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return &MinioProvider{client: client}, nil
}

// List reads at most opts.Limit entries and stops the listing there.
func (p *MinioProvider) List(ctx context.Context, bucket string, opts ListOptions) ([]models.StorageObjectRecord, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	prefix := folderPrefix(opts.Folder)
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}

	records := make([]models.StorageObjectRecord, 0, limit)
	skipped := 0
	for obj := range p.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Prefix:       prefix,
		Recursive:    false,
		MaxKeys:      limit,
		WithMetadata: true,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		if skipped < opts.Offset {
			skipped++
			continue
		}

		records = append(records, minioRecord(prefix, obj))
		if len(records) >= limit {
			break
		}
	}
	return records, nil
}

// PublicURL returns the path-style URL {endpoint}/{bucket}/{path}
func (p *MinioProvider) PublicURL(bucket, objectPath string) string {
	return p.client.EndpointURL().JoinPath(bucket, objectPath).String()
}

func minioRecord(prefix string, obj minio.ObjectInfo) models.StorageObjectRecord {
	contentType := obj.ContentType
	if contentType == "" {
		for k, v := range obj.UserMetadata {
			if strings.EqualFold(k, "content-type") {
				contentType = v
				break
			}
		}
	}

	rec := keyRecord(prefix, obj.Key, obj.Size, obj.LastModified, obj.ETag, contentType)
	if obj.Metadata != nil {
		rec.Metadata.CacheControl = obj.Metadata.Get("Cache-Control")
	}
	return rec
}
