package services

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/vaporis/vaporis-site/internal/models"
)

var contentTypesByExt = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".avif": "image/avif",
	".svg":  "image/svg+xml",
	".mp4":  "video/mp4",
	".m4v":  "video/x-m4v",
	".mov":  "video/quicktime",
	".webm": "video/webm",
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".flac": "audio/flac",
	".ogg":  "audio/ogg",
	".m4a":  "audio/mp4",
	".txt":  "text/plain",
	".md":   "text/markdown",
	".json": "application/json",
	".pdf":  "application/pdf",
	".zip":  "application/zip",
}

// getContentTypeFromExt guesses a MIME type from the file extension.
// Unknown extensions yield "" so the object is treated as having no MIME metadata.
func getContentTypeFromExt(filename string) string {
	if strings.HasSuffix(filename, "/") {
		return ""
	}
	return contentTypesByExt[strings.ToLower(filepath.Ext(filename))]
}

// folderPrefix turns a folder name into a listing prefix ("promo" -> "promo/")
func folderPrefix(folder string) string {
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return ""
	}
	return folder + "/"
}

// keyRecord builds a record for S3-style listings, which carry no creation time
// and usually no content type.
func keyRecord(prefix, key string, size int64, modified time.Time, etag, contentType string) models.StorageObjectRecord {
	if contentType == "" {
		contentType = getContentTypeFromExt(key)
	}
	if strings.HasSuffix(key, "/") {
		contentType = ""
	}
	etag = strings.Trim(etag, `"`)
	return models.StorageObjectRecord{
		Name:      strings.TrimPrefix(key, prefix),
		ID:        etag,
		CreatedAt: modified,
		UpdatedAt: modified,
		Metadata: models.ObjectMetadata{
			MimeType: contentType,
			Size:     size,
			ETag:     etag,
		},
	}
}
