package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vaporis/vaporis-site/internal/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) List(ctx context.Context, bucket string, opts ListOptions) ([]models.StorageObjectRecord, error) {
	args := m.Called(ctx, bucket, opts)
	if recs, ok := args.Get(0).([]models.StorageObjectRecord); ok {
		return recs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProvider) PublicURL(bucket, objectPath string) string {
	return "https://cdn.test/" + bucket + "/" + objectPath
}

func TestStorage_ListObjectsRequestsFirstPage(t *testing.T) {
	provider := new(mockProvider)
	records := []models.StorageObjectRecord{{Name: "cover.png"}}
	provider.On("List", mock.Anything, "teaser", ListOptions{Folder: "promo", Limit: 100, Offset: 0}).Return(records, nil)

	s := NewStorage(provider, "test", 0, zap.NewNop())
	result := s.ListObjects(context.Background(), "teaser", "promo")

	assert.True(t, result.OK())
	assert.NoError(t, result.Err)
	assert.Equal(t, records, result.Objects)
	provider.AssertExpectations(t)
}

func TestStorage_ListObjectsReturnsFailureInsteadOfEmpty(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	provider := new(mockProvider)
	providerErr := errors.New("bucket not found")
	provider.On("List", mock.Anything, "teaser", mock.Anything).Return(nil, providerErr)

	s := NewStorage(provider, "test", 0, zap.New(core))
	result := s.ListObjects(context.Background(), "teaser", "")

	assert.False(t, result.OK())
	assert.ErrorIs(t, result.Err, providerErr)
	assert.Nil(t, result.Objects)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Error listing files", entry.Message)
	assert.Equal(t, "teaser", entry.ContextMap()["bucket"])
	assert.Equal(t, "test", entry.ContextMap()["driver"])
}

func TestStorage_ListObjectsEmptySuccessIsOK(t *testing.T) {
	provider := new(mockProvider)
	provider.On("List", mock.Anything, "teaser", mock.Anything).Return([]models.StorageObjectRecord{}, nil)

	s := NewStorage(provider, "test", 0, nil)
	result := s.ListObjects(context.Background(), "teaser", "")

	assert.True(t, result.OK())
	assert.Empty(t, result.Objects)
}

func TestStorage_ListObjectsAppliesTimeout(t *testing.T) {
	provider := new(mockProvider)
	provider.On("List", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	}), "teaser", mock.Anything).Return([]models.StorageObjectRecord{}, nil)

	s := NewStorage(provider, "test", time.Second, nil)
	result := s.ListObjects(context.Background(), "teaser", "")

	assert.True(t, result.OK())
	provider.AssertExpectations(t)
}

func TestStorage_PublicURLDelegates(t *testing.T) {
	s := NewStorage(new(mockProvider), "test", 0, nil)
	assert.Equal(t, "https://cdn.test/teaser/clip.mp4", s.PublicURL("teaser", "clip.mp4"))
}

func TestObjectPath(t *testing.T) {
	tests := []struct {
		folder, name, want string
	}{
		{"", "clip.mp4", "clip.mp4"},
		{"promo", "clip.mp4", "promo/clip.mp4"},
		{"/promo/", "clip.mp4", "promo/clip.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ObjectPath(tt.folder, tt.name))
		})
	}
}

func TestGetContentTypeFromExt(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"clip.mp4", "video/mp4"},
		{"COVER.PNG", "image/png"},
		{"song.mp3", "audio/mpeg"},
		{"notes.pdf", "application/pdf"},
		{"data.bin", ""},
		{"README", ""},
		{"folder/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, getContentTypeFromExt(tt.name))
		})
	}
}

func TestKeyRecord(t *testing.T) {
	modified := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)

	rec := keyRecord("promo/", "promo/clip.mp4", 42, modified, `"etag-1"`, "")
	assert.Equal(t, "clip.mp4", rec.Name)
	assert.Equal(t, "etag-1", rec.ID)
	assert.Equal(t, "video/mp4", rec.Metadata.MimeType)
	assert.Equal(t, int64(42), rec.Metadata.Size)
	assert.Equal(t, modified, rec.CreatedAt)

	folder := keyRecord("promo/", "promo/archive/", 0, time.Time{}, "", "")
	assert.Equal(t, "archive/", folder.Name)
	assert.Empty(t, folder.Metadata.MimeType)

	explicit := keyRecord("", "track", 1, modified, "", "audio/wav")
	assert.Equal(t, "audio/wav", explicit.Metadata.MimeType)
}
