// Package models contains data structures used across handlers
package models

import (
	"strings"
	"time"
)

// ObjectMetadata is the provider-reported metadata of a stored object
type ObjectMetadata struct {
	MimeType     string `json:"mimetype"`
	Size         int64  `json:"size"`
	CacheControl string `json:"cacheControl"`
	ETag         string `json:"eTag"`
}

// StorageObjectRecord represents one object returned by a listing call
type StorageObjectRecord struct {
	Name           string         `json:"name"`
	ID             string         `json:"id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	LastAccessedAt time.Time      `json:"last_accessed_at"`
	Metadata       ObjectMetadata `json:"metadata"`
}

// MediaKind is the preview category of an object
type MediaKind string

const (
	KindImage MediaKind = "image"
	KindVideo MediaKind = "video"
	KindAudio MediaKind = "audio"
	KindFile  MediaKind = "file"
)

// ClassifyMimeType maps a MIME type to its preview kind by prefix
func ClassifyMimeType(mimeType string) MediaKind {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return KindImage
	case strings.HasPrefix(mimeType, "video/"):
		return KindVideo
	case strings.HasPrefix(mimeType, "audio/"):
		return KindAudio
	default:
		return KindFile
	}
}

// ClassifiedMedia is a record paired with its kind, public URL and display fields
type ClassifiedMedia struct {
	Record       StorageObjectRecord
	Kind         MediaKind
	URL          string
	Title        string
	SizeLabel    string
	CreatedLabel string
	Playing      bool
}

// Name returns the object name as stored
func (m ClassifiedMedia) Name() string {
	return m.Record.Name
}

// MimeType returns the object's MIME type
func (m ClassifiedMedia) MimeType() string {
	return m.Record.Metadata.MimeType
}

// KindLabel is the badge text shown on a card
func (m ClassifiedMedia) KindLabel() string {
	return strings.ToUpper(string(m.Kind))
}
