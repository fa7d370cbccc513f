package site

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/vaporis/vaporis-site/internal/config"
)

// URLResolver resolves public object URLs
type URLResolver interface {
	PublicURL(bucket, objectPath string) string
}

// Hero describes the background of the hero section.
// Sources are tried in order by the browser; YouTubeEmbed is used when there are none.
type Hero struct {
	Sources      []string
	YouTubeEmbed string
}

// UseVideo reports whether the hero renders a <video> element
func (h Hero) UseVideo() bool {
	return len(h.Sources) > 0
}

// ResolveHero builds the hero fallback chain: storage object, then local file, then YouTube.
func ResolveHero(urls URLResolver, bucket string, cfg config.SiteConfig) Hero {
	var hero Hero
	if cfg.HeroVideo != "" && urls != nil {
		hero.Sources = append(hero.Sources, urls.PublicURL(bucket, cfg.HeroVideo))
	}
	if cfg.LocalVideo != "" {
		hero.Sources = append(hero.Sources, "/static/"+strings.TrimPrefix(cfg.LocalVideo, "/"))
	}
	if !hero.UseVideo() && cfg.YouTubeID != "" {
		hero.YouTubeEmbed = YouTubeEmbedURL(cfg.YouTubeID)
	}
	return hero
}

// YouTubeEmbedURL returns a muted, looping, chrome-less autoplay embed URL
func YouTubeEmbedURL(id string) string {
	id = url.PathEscape(id)
	return fmt.Sprintf("https://www.youtube.com/embed/%s?autoplay=1&mute=1&loop=1&playlist=%s"+
		"&controls=0&showinfo=0&rel=0&iv_load_policy=3&modestbranding=1&playsinline=1", id, id)
}
