// Package gallery holds the teaser gallery component: one Gallery per visitor,
// loaded from the storage adapter and rendered as classified media cards.
package gallery

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/vaporis/vaporis-site/internal/models"
	"github.com/vaporis/vaporis-site/internal/services"
	"github.com/vaporis/vaporis-site/internal/utils"
)

// Status is the gallery lifecycle state
type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusEmpty   Status = "empty"
	StatusError   Status = "error"
)

// LoadErrorMessage is shown to visitors when the listing fails
const LoadErrorMessage = "Failed to load teaser content"

// ErrUnknownItem is returned when toggling playback of a name that is not a listed video
var ErrUnknownItem = errors.New("no such video in gallery")

// Source is the part of the storage adapter the gallery depends on
type Source interface {
	ListObjects(ctx context.Context, bucket, folder string) services.ListResult
	PublicURL(bucket, objectPath string) string
}

// Gallery is the state of one visitor's teaser gallery.
// The mutex is never held across the storage call, so overlapping loads
// race and whichever finishes last overwrites the state.
type Gallery struct {
	source Source
	bucket string
	folder string

	mu      sync.Mutex
	status  Status
	records []models.StorageObjectRecord
	err     error
	playing string
}

// New creates a gallery in the loading state. Nothing is fetched until Load.
func New(source Source, bucket, folder string) *Gallery {
	return &Gallery{
		source: source,
		bucket: bucket,
		folder: folder,
		status: StatusLoading,
	}
}

// Load enters loading, lists the bucket and settles in ready, empty or error.
// It is used both for the initial mount and for manual refresh.
func (g *Gallery) Load(ctx context.Context) Status {
	g.mu.Lock()
	g.status = StatusLoading
	g.mu.Unlock()

	result := g.source.ListObjects(ctx, g.bucket, g.folder)

	g.mu.Lock()
	defer g.mu.Unlock()

	if !result.OK() {
		g.status = StatusError
		g.err = result.Err
		g.records = nil
		g.playing = ""
		return g.status
	}

	g.err = nil
	g.records = Filter(result.Objects)
	if len(g.records) == 0 {
		g.status = StatusEmpty
	} else {
		g.status = StatusReady
	}
	if g.playing != "" && !g.isVideo(g.playing) {
		g.playing = ""
	}
	return g.status
}

// Err returns the error of the last failed load, if any
func (g *Gallery) Err() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.err
}

// Playing returns the name of the video currently playing, or ""
func (g *Gallery) Playing() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.playing
}

// TogglePlayback makes name the playing video, or stops it if it already was.
// Only one video plays at a time. It returns the new playing name.
func (g *Gallery) TogglePlayback(name string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status != StatusReady || !g.isVideo(name) {
		return g.playing, ErrUnknownItem
	}

	if g.playing == name {
		g.playing = ""
	} else {
		g.playing = name
	}
	return g.playing, nil
}

// isVideo reports whether name is a listed video item. Caller holds mu.
func (g *Gallery) isVideo(name string) bool {
	for _, rec := range g.records {
		if rec.Name == name {
			return models.ClassifyMimeType(rec.Metadata.MimeType) == models.KindVideo
		}
	}
	return false
}

// View is an immutable snapshot of the gallery used for rendering
type View struct {
	Status  Status
	Message string
	Items   []models.ClassifiedMedia
}

func (v View) Loading() bool { return v.Status == StatusLoading }
func (v View) Ready() bool   { return v.Status == StatusReady }
func (v View) Empty() bool   { return v.Status == StatusEmpty }
func (v View) Failed() bool  { return v.Status == StatusError }

// View classifies the current records into cards. Cards are rebuilt on every call.
func (g *Gallery) View() View {
	g.mu.Lock()
	status := g.status
	records := g.records
	playing := g.playing
	g.mu.Unlock()

	view := View{Status: status}
	switch status {
	case StatusError:
		view.Message = LoadErrorMessage
	case StatusReady:
		view.Items = make([]models.ClassifiedMedia, 0, len(records))
		for _, rec := range records {
			view.Items = append(view.Items, g.classify(rec, playing))
		}
	}
	return view
}

func (g *Gallery) classify(rec models.StorageObjectRecord, playing string) models.ClassifiedMedia {
	kind := models.ClassifyMimeType(rec.Metadata.MimeType)
	return models.ClassifiedMedia{
		Record:       rec,
		Kind:         kind,
		URL:          g.source.PublicURL(g.bucket, services.ObjectPath(g.folder, rec.Name)),
		Title:        utils.StripExtension(rec.Name),
		SizeLabel:    utils.FormatSize(rec.Metadata.Size),
		CreatedLabel: utils.FormatDate(rec.CreatedAt),
		Playing:      kind == models.KindVideo && rec.Name == playing,
	}
}

// Filter drops hidden entries (leading "."), unnamed entries and entries
// without a MIME type. Order is preserved.
func Filter(records []models.StorageObjectRecord) []models.StorageObjectRecord {
	kept := make([]models.StorageObjectRecord, 0, len(records))
	for _, rec := range records {
		if rec.Name == "" || strings.HasPrefix(rec.Name, ".") {
			continue
		}
		if rec.Metadata.MimeType == "" {
			continue
		}
		kept = append(kept, rec)
	}
	return kept
}
