// Package utils provides shared utility functions
package utils

import (
	"math"
	"path"
	"strconv"
	"time"
)

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatSize converts bytes to a human-readable label (e.g. "1.5 KB").
// Values are rounded to two decimals and larger sizes stay in GB.
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	// floor(log1024(bytes)) computed on integers to avoid float drift
	unitIndex := 0
	div := int64(1)
	for unitIndex < len(sizeUnits)-1 && bytes/div >= 1024 {
		div *= 1024
		unitIndex++
	}

	value := math.Round(float64(bytes)/float64(div)*100) / 100
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + sizeUnits[unitIndex]
}

// FormatDate formats a timestamp for display on cards. Zero times render empty.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 02, 2006")
}

// StripExtension removes the last file extension from a name ("clip.mp4" -> "clip")
func StripExtension(name string) string {
	ext := path.Ext(name)
	if len(ext) <= 1 || len(ext) == len(name) {
		return name
	}
	return name[:len(name)-len(ext)]
}
