package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/grandstage/stagecms/internal/service"
	"github.com/grandstage/stagecms/internal/store"
	"github.com/grandstage/stagecms/internal/testutil"
)

func TestPlaceholderContent(t *testing.T) {
	tests := []struct {
		page string
		want string
	}{
		{"home", "<h2>Welcome to Home</h2>"},
		{"about", "<h2>Welcome to About</h2>"},
		{"gallery", "<h2>Welcome to Gallery</h2>"},
	}
	for _, tt := range tests {
		if got := service.PlaceholderContent(tt.page); got != tt.want {
			t.Errorf("PlaceholderContent(%q) = %q, want %q", tt.page, got, tt.want)
		}
	}
}

func TestSettingsDefaultsWhenUnconfigured(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	svc := service.NewContentService(db)
	settings := svc.Settings(context.Background())
	if settings.SiteTitle != store.DefaultSiteTitle {
		t.Errorf("SiteTitle = %q, want default %q", settings.SiteTitle, store.DefaultSiteTitle)
	}
	if settings.SiteSlogan != store.DefaultSiteSlogan {
		t.Errorf("SiteSlogan = %q, want default %q", settings.SiteSlogan, store.DefaultSiteSlogan)
	}
}

func TestSettingsReturnsStoredRow(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()
	if _, err := store.New(db).UpsertSiteSettings(ctx, store.UpsertSiteSettingsParams{
		SiteTitle:  "Custom Theater",
		SiteSlogan: "Custom slogan",
		LogoURL:    "/custom.svg",
		UpdatedAt:  time.Now(),
	}); err != nil {
		t.Fatalf("UpsertSiteSettings: %v", err)
	}

	settings := service.NewContentService(db).Settings(ctx)
	if settings.SiteTitle != "Custom Theater" {
		t.Errorf("SiteTitle = %q, want stored value", settings.SiteTitle)
	}
}

func TestResolvePagePlaceholder(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	data, err := service.NewContentService(db).ResolvePage(context.Background(), "about")
	if err != nil {
		t.Fatalf("ResolvePage: %v", err)
	}
	if string(data.Content) != service.PlaceholderContent("about") {
		t.Errorf("Content = %q, want placeholder", data.Content)
	}
	if data.MetaTitle != "" {
		t.Errorf("MetaTitle = %q, want empty for placeholder page", data.MetaTitle)
	}
	if len(data.Images) != 0 || len(data.Videos) != 0 {
		t.Error("expected no media on an empty page")
	}
}

func TestResolvePageWithContentAndMedia(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()
	queries := store.New(db)
	now := time.Now()

	if _, err := queries.UpsertPageContent(ctx, store.UpsertPageContentParams{
		PageName:        "gallery",
		Content:         "<h2>Our Gallery</h2>",
		MetaTitle:       "Gallery | Grand Stage",
		MetaDescription: "Photos and videos",
		UpdatedAt:       now,
	}); err != nil {
		t.Fatalf("UpsertPageContent: %v", err)
	}

	for _, img := range []store.CreateImageParams{
		{Title: "second", ImageURL: "https://img.example/2.jpg", PageName: "gallery", IsActive: true, SortOrder: 2, CreatedAt: now},
		{Title: "first", ImageURL: "https://img.example/1.jpg", PageName: "gallery", IsActive: true, SortOrder: 1, CreatedAt: now},
		{Title: "hidden", ImageURL: "https://img.example/x.jpg", PageName: "gallery", IsActive: false, CreatedAt: now},
	} {
		if _, err := queries.CreateImage(ctx, img); err != nil {
			t.Fatalf("CreateImage %s: %v", img.Title, err)
		}
	}

	if _, err := queries.CreateVideo(ctx, store.CreateVideoParams{
		Title:     "Trailer",
		VideoURL:  "https://www.youtube.com/watch?v=ABC123",
		VideoType: store.VideoTypeYouTube,
		PageName:  "gallery",
		IsActive:  true,
		CreatedAt: now,
	}); err != nil {
		t.Fatalf("CreateVideo: %v", err)
	}

	data, err := service.NewContentService(db).ResolvePage(ctx, "gallery")
	if err != nil {
		t.Fatalf("ResolvePage: %v", err)
	}

	if string(data.Content) != "<h2>Our Gallery</h2>" {
		t.Errorf("Content = %q", data.Content)
	}
	if data.MetaTitle != "Gallery | Grand Stage" {
		t.Errorf("MetaTitle = %q", data.MetaTitle)
	}

	if len(data.Images) != 2 {
		t.Fatalf("got %d images, want 2 active", len(data.Images))
	}
	if data.Images[0].Title != "first" || data.Images[1].Title != "second" {
		t.Errorf("images out of sort order: %q, %q", data.Images[0].Title, data.Images[1].Title)
	}

	if len(data.Videos) != 1 {
		t.Fatalf("got %d videos, want 1", len(data.Videos))
	}
	v := data.Videos[0]
	if v.EmbedURL != "https://www.youtube.com/embed/ABC123" {
		t.Errorf("EmbedURL = %q", v.EmbedURL)
	}
	if !strings.Contains(string(v.EmbedHTML), "https://www.youtube.com/embed/ABC123") {
		t.Errorf("EmbedHTML does not reference the embed URL: %s", v.EmbedHTML)
	}
}
