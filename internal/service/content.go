// Package service contains read-side domain services built on the store.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"html/template"
	"log/slog"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/grandstage/stagecms/internal/embed"
	"github.com/grandstage/stagecms/internal/store"
)

var titleCaser = cases.Title(language.English)

// PageVideo is a video record with its derived embed URL and markup.
type PageVideo struct {
	store.Video
	EmbedURL  string
	EmbedHTML template.HTML
}

// PageData is everything one public page render needs.
type PageData struct {
	PageName        string
	Settings        store.SiteSettings
	Content         template.HTML
	MetaTitle       string
	MetaDescription string
	Images          []store.Image
	Videos          []PageVideo
}

// ContentService assembles page bundles from independent store reads.
// Every call re-reads storage; rendering is cheap enough at this site's
// traffic that no caching layer sits in between.
type ContentService struct {
	queries *store.Queries
}

// NewContentService creates a ContentService.
func NewContentService(db *sql.DB) *ContentService {
	return &ContentService{queries: store.New(db)}
}

// PlaceholderContent is the generated body for pages with no stored content.
func PlaceholderContent(pageName string) string {
	return fmt.Sprintf("<h2>Welcome to %s</h2>", titleCaser.String(pageName))
}

// Settings returns the stored site settings, or the built-in defaults when
// the site has not been configured yet.
func (s *ContentService) Settings(ctx context.Context) store.SiteSettings {
	settings, err := s.queries.GetSiteSettings(ctx)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("failed to load site settings", "error", err)
		}
		return store.DefaultSiteSettings()
	}
	return settings
}

// ResolvePage assembles the full render bundle for a page: settings,
// content (or a placeholder), and the active, sort-ordered media lists.
func (s *ContentService) ResolvePage(ctx context.Context, pageName string) (PageData, error) {
	data := PageData{
		PageName: pageName,
		Settings: s.Settings(ctx),
	}

	content, err := s.queries.GetPageContent(ctx, pageName)
	switch {
	case err == nil:
		data.Content = template.HTML(content.Content)
		data.MetaTitle = content.MetaTitle
		data.MetaDescription = content.MetaDescription
	case errors.Is(err, sql.ErrNoRows):
		data.Content = template.HTML(PlaceholderContent(pageName))
	default:
		return PageData{}, fmt.Errorf("loading content for %q: %w", pageName, err)
	}

	images, err := s.queries.ListActiveImagesByPage(ctx, pageName)
	if err != nil {
		return PageData{}, fmt.Errorf("loading images for %q: %w", pageName, err)
	}
	data.Images = images

	videos, err := s.queries.ListActiveVideosByPage(ctx, pageName)
	if err != nil {
		return PageData{}, fmt.Errorf("loading videos for %q: %w", pageName, err)
	}
	for _, v := range videos {
		res := embed.Parse(v.VideoURL, v.VideoType)
		data.Videos = append(data.Videos, PageVideo{
			Video:     v,
			EmbedURL:  res.EmbedURL,
			EmbedHTML: embed.HTML(v.VideoURL, res),
		})
	}

	return data, nil
}
