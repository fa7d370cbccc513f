package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vaporis/vaporis-site/internal/models"
)

// ProviderError is a non-success response from the storage provider
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("storage provider returned %d: %s", e.StatusCode, e.Message)
}

// SupabaseProvider talks to the Supabase Storage REST API with the project's public key
type SupabaseProvider struct {
	baseURL    *url.URL
	key        string
	httpClient *http.Client
}

type supabaseSortBy struct {
	Column string `json:"column"`
	Order  string `json:"order"`
}

type supabaseListRequest struct {
	Prefix string         `json:"prefix"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
	SortBy supabaseSortBy `json:"sortBy"`
}

type supabaseErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewSupabaseProvider validates the project URL and builds the provider
func NewSupabaseProvider(rawURL, key string, timeout time.Duration) (*SupabaseProvider, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("invalid storage url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid storage url %q: expected http(s)://host", rawURL)
	}
	if key == "" {
		return nil, fmt.Errorf("storage key is required")
	}

	return &SupabaseProvider{
		baseURL:    u,
		key:        key,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// List calls POST /storage/v1/object/list/{bucket}
func (p *SupabaseProvider) List(ctx context.Context, bucket string, opts ListOptions) ([]models.StorageObjectRecord, error) {
	body, err := json.Marshal(supabaseListRequest{
		Prefix: strings.Trim(opts.Folder, "/"),
		Limit:  opts.Limit,
		Offset: opts.Offset,
		SortBy: supabaseSortBy{Column: "name", Order: "asc"},
	})
	if err != nil {
		return nil, err
	}

	endpoint := p.baseURL.JoinPath("storage", "v1", "object", "list", bucket)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", p.key)
	req.Header.Set("Authorization", "Bearer "+p.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", bucket, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, readProviderError(resp)
	}

	var records []models.StorageObjectRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}
	return records, nil
}

// PublicURL returns {url}/storage/v1/object/public/{bucket}/{path}
func (p *SupabaseProvider) PublicURL(bucket, objectPath string) string {
	return p.baseURL.JoinPath("storage", "v1", "object", "public", bucket, objectPath).String()
}

func readProviderError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var body supabaseErrorBody
	msg := strings.TrimSpace(string(raw))
	if json.Unmarshal(raw, &body) == nil {
		if body.Message != "" {
			msg = body.Message
		} else if body.Error != "" {
			msg = body.Error
		}
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &ProviderError{StatusCode: resp.StatusCode, Message: msg}
}
