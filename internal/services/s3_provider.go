package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/vaporis/vaporis-site/internal/models"
)

// S3ListAPI is the subset of the S3 client used for listing
type S3ListAPI interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// S3Provider lists buckets through the AWS SDK against a configured endpoint
type S3Provider struct {
	client   S3ListAPI
	endpoint *url.URL
}

// NewS3Provider builds a path-style S3 client for endpoint. Empty keys give anonymous access.
func NewS3Provider(ctx context.Context, endpoint, accessKey, secretKey, region string, timeout time.Duration) (*S3Provider, error) {
	u, err := url.Parse(strings.TrimSpace(endpoint))
	if err != nil {
		return nil, fmt.Errorf("invalid storage url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid storage url %q: expected http(s)://host", endpoint)
	}

	var creds aws.CredentialsProvider = aws.AnonymousCredentials{}
	if accessKey != "" && secretKey != "" {
		creds = credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(creds),
		awsconfig.WithHTTPClient(awshttp.NewBuildableClient().WithTimeout(timeout)),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(u.String())
		o.UsePathStyle = true
	})

	return newS3ProviderWithClient(client, u), nil
}

func newS3ProviderWithClient(client S3ListAPI, endpoint *url.URL) *S3Provider {
	return &S3Provider{client: client, endpoint: endpoint}
}

// List issues a single ListObjectsV2 request; folders come back as entries without MIME type.
func (p *S3Provider) List(ctx context.Context, bucket string, opts ListOptions) ([]models.StorageObjectRecord, error) {
	prefix := folderPrefix(opts.Folder)
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}

	out, err := p.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:    aws.String(bucket),
		Prefix:    aws.String(prefix),
		Delimiter: aws.String("/"),
		MaxKeys:   aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", bucket, err)
	}

	records := make([]models.StorageObjectRecord, 0, len(out.Contents)+len(out.CommonPrefixes))
	for _, cp := range out.CommonPrefixes {
		records = append(records, keyRecord(prefix, aws.ToString(cp.Prefix), 0, time.Time{}, "", ""))
	}
	for _, obj := range out.Contents {
		key := aws.ToString(obj.Key)
		if key == prefix {
			continue
		}
		records = append(records, keyRecord(prefix, key, aws.ToInt64(obj.Size), aws.ToTime(obj.LastModified), aws.ToString(obj.ETag), ""))
	}

	if opts.Offset >= len(records) {
		return records[:0], nil
	}
	records = records[opts.Offset:]
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// PublicURL returns the path-style URL {endpoint}/{bucket}/{path}
func (p *S3Provider) PublicURL(bucket, objectPath string) string {
	return p.endpoint.JoinPath(bucket, objectPath).String()
}
