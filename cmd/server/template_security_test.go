package main

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesUsePinnedCDNVersions(t *testing.T) {
	files := []string{
		"../../views/layouts/base.html",
		"../../views/pages/home.html",
	}

	for _, file := range files {
		contentBytes, err := os.ReadFile(file)
		require.NoError(t, err)
		content := string(contentBytes)

		assert.NotContains(t, content, "@latest", file)
		assert.NotContains(t, content, ".x.x", file)
	}
}

func TestInteractiveTemplatesAttachCSRFHeaderForHTMX(t *testing.T) {
	contentBytes, err := os.ReadFile("../../views/layouts/base.html")
	require.NoError(t, err)
	content := string(contentBytes)

	assert.True(t, strings.Contains(content, "htmx:configRequest") && strings.Contains(content, "X-CSRF-Token"))
}

func TestBaseLayoutDoesNotGloballyOverrideHTMXTargeting(t *testing.T) {
	contentBytes, err := os.ReadFile("../../views/layouts/base.html")
	require.NoError(t, err)
	content := string(contentBytes)

	assert.NotContains(t, content, `hx-target="#main-content"`)
	assert.NotContains(t, content, `hx-select="#main-content"`)
	assert.NotContains(t, content, `hx-swap="outerHTML"`)
}

func TestTeaserLinksOpenSafelyInNewTab(t *testing.T) {
	contentBytes, err := os.ReadFile("../../views/partials/teaser_gallery.html")
	require.NoError(t, err)
	content := string(contentBytes)

	assert.Equal(t, strings.Count(content, `target="_blank"`), strings.Count(content, `rel="noopener noreferrer"`))
	assert.Contains(t, content, `loading="lazy"`)
}

func TestGalleryContainerLoadsOnMount(t *testing.T) {
	contentBytes, err := os.ReadFile("../../views/pages/home.html")
	require.NoError(t, err)
	content := string(contentBytes)

	assert.Equal(t, 1, strings.Count(content, `hx-get="/teasers"`))
	assert.Contains(t, content, `hx-trigger="load"`)
}
