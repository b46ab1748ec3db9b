// Package embed derives inline-player embed URLs and markup from raw
// YouTube and Instagram video links.
package embed

import (
	"fmt"
	"html/template"
	"strings"
)

// Provider identifies the video host a URL was recognized as.
type Provider string

// Recognized providers.
const (
	ProviderYouTube   Provider = "youtube"
	ProviderInstagram Provider = "instagram"
	ProviderUnknown   Provider = ""
)

// Aspect-ratio padding percentages for responsive iframes.
const (
	paddingStandard = "56.25%"  // 16:9
	paddingShorts   = "177.78%" // 9:16 vertical video
)

// Result is the tagged outcome of parsing a raw video URL.
// When Recognized is false, EmbedURL carries the original URL unchanged.
type Result struct {
	Provider   Provider
	Recognized bool
	VideoID    string // YouTube only
	IsShort    bool   // YouTube Shorts use a vertical aspect ratio
	EmbedURL   string
}

// youtube URL markers, checked in order.
var youtubeMarkers = []struct {
	marker  string
	isShort bool
}{
	{"watch?v=", false},
	{"youtu.be/", false},
	{"/shorts/", true},
}

// Parse inspects a raw video URL for the given type ("youtube" or
// "instagram") and returns a tagged result. Unrecognized URLs pass through
// unchanged rather than failing.
func Parse(rawURL, videoType string) Result {
	switch videoType {
	case string(ProviderYouTube):
		return parseYouTube(rawURL)
	case string(ProviderInstagram):
		return parseInstagram(rawURL)
	default:
		return Result{EmbedURL: rawURL}
	}
}

func parseYouTube(rawURL string) Result {
	for _, m := range youtubeMarkers {
		_, rest, found := strings.Cut(rawURL, m.marker)
		if !found {
			continue
		}
		// The ID runs up to the next query separator, whichever comes first.
		if i := strings.IndexAny(rest, "&?"); i >= 0 {
			rest = rest[:i]
		}
		return Result{
			Provider:   ProviderYouTube,
			Recognized: true,
			VideoID:    rest,
			IsShort:    m.isShort,
			EmbedURL:   "https://www.youtube.com/embed/" + rest,
		}
	}
	return Result{Provider: ProviderYouTube, EmbedURL: rawURL}
}

func parseInstagram(rawURL string) Result {
	if !strings.Contains(rawURL, "/p/") && !strings.Contains(rawURL, "/reel/") {
		return Result{Provider: ProviderInstagram, EmbedURL: rawURL}
	}
	return Result{
		Provider:   ProviderInstagram,
		Recognized: true,
		EmbedURL:   strings.TrimRight(rawURL, "/") + "/embed/",
	}
}

// HTML returns the embed markup for a parsed result. Recognized YouTube
// videos get a responsive iframe, Instagram posts get the official
// blockquote + embed script, and anything unrecognized falls back to a
// plain link to the original URL.
func HTML(rawURL string, res Result) template.HTML {
	if !res.Recognized {
		return linkFallback(rawURL)
	}

	switch res.Provider {
	case ProviderYouTube:
		padding := paddingStandard
		if res.IsShort {
			padding = paddingShorts
		}
		return template.HTML(fmt.Sprintf(
			`<div style="position: relative; padding-bottom: %s; height: 0; overflow: hidden;">
  <iframe src="%s"
          style="position: absolute; top:0; left:0; width:100%%; height:100%%;"
          frameborder="0"
          allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture; web-share"
          allowfullscreen>
  </iframe>
</div>`, padding, template.HTMLEscapeString(res.EmbedURL)))
	case ProviderInstagram:
		return template.HTML(fmt.Sprintf(
			`<blockquote class="instagram-media" data-instgrm-permalink="%s" data-instgrm-version="14" style="width:100%%; max-width:540px; margin:auto;">
</blockquote>
<script async src="//www.instagram.com/embed.js"></script>`,
			template.HTMLEscapeString(rawURL)))
	default:
		return linkFallback(rawURL)
	}
}

func linkFallback(rawURL string) template.HTML {
	escaped := template.HTMLEscapeString(rawURL)
	return template.HTML(fmt.Sprintf(
		`<p>Unable to embed video: <a href="%s" target="_blank" rel="noopener">%s</a></p>`,
		escaped, escaped))
}
