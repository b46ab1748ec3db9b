package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/grandstage/stagecms/internal/auth"
)

// Default admin credentials for first boot. Change immediately after login.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminEmail    = "admin@grandstageprod.com"
	DefaultAdminPassword = "admin123"
)

// SeedPages are the page names given starter content at bootstrap.
var SeedPages = []string{"home", "about", "gallery", "contact"}

var seedPageContent = map[string]string{
	"home": `<div class="hero-section text-center py-5">
    <h1 class="display-4 text-theatrical mb-4">Welcome to Grand Stage Productions</h1>
    <p class="lead">Where every performance tells a story, and every story comes to life on stage.</p>
    <p>Grand Stage Productions is dedicated to bringing the magic of theater to our community. From classic dramas to contemporary comedies, we create unforgettable experiences that transport audiences to different worlds.</p>
</div>`,
	"about": `<h2 class="text-theatrical mb-4">About Grand Stage Productions</h2>
<p>Founded with a passion for storytelling, Grand Stage Productions has been entertaining audiences with high-quality theatrical performances. Our company brings together talented actors, directors, and crew members who share a common love for the arts.</p>
<p>We believe in the power of live theater to connect people, inspire emotions, and create lasting memories. Every production we stage is carefully crafted to deliver an exceptional experience for our audience.</p>`,
	"contact": `<h2 class="text-theatrical mb-4">Contact Us</h2>
<p>Get in touch with Grand Stage Productions for booking inquiries, audition information, or general questions about our upcoming performances.</p>
<p>We'd love to hear from you and discuss how we can bring our theatrical magic to your venue or event.</p>`,
}

// Seed creates the initial admin account, settings row, and page content.
// Safe to run on every startup; existing rows are left untouched.
func Seed(ctx context.Context, db *sql.DB, doSeed bool) error {
	if !doSeed {
		return nil
	}

	now := time.Now()

	// All-or-nothing bootstrap
	return ExecTx(ctx, db, func(queries *Queries) error {
		if err := seedAdmin(ctx, queries, now); err != nil {
			return err
		}
		if err := seedSettings(ctx, queries, now); err != nil {
			return err
		}
		return seedPages(ctx, queries, now)
	})
}

func seedAdmin(ctx context.Context, queries *Queries, now time.Time) error {
	count, err := queries.CountAdmins(ctx)
	if err != nil {
		return fmt.Errorf("counting admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	passwordHash, err := auth.HashPassword(DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	admin, err := queries.CreateAdmin(ctx, CreateAdminParams{
		Username:     DefaultAdminUsername,
		Email:        DefaultAdminEmail,
		PasswordHash: passwordHash,
		CreatedAt:    now,
	})
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	slog.Info("created default admin user",
		"id", admin.ID,
		"username", admin.Username,
		"password", DefaultAdminPassword,
	)
	return nil
}

func seedSettings(ctx context.Context, queries *Queries, now time.Time) error {
	_, err := queries.GetSiteSettings(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking site settings: %w", err)
	}

	_, err = queries.UpsertSiteSettings(ctx, UpsertSiteSettingsParams{
		SiteTitle:       DefaultSiteTitle,
		SiteSlogan:      DefaultSiteSlogan,
		LogoURL:         DefaultLogoURL,
		ContactEmail:    "info@grandstageprod.com",
		ContactPhone:    "(555) 123-4567",
		InstagramURL:    "https://instagram.com/grandstageprod",
		FacebookURL:     "https://facebook.com/grandstageprod",
		TwitterURL:      "https://twitter.com/grandstageprod",
		WhatsappURL:     "https://wa.me/15551234567",
		MetaDescription: DefaultMetaDescription,
		UpdatedAt:       now,
	})
	if err != nil {
		return fmt.Errorf("creating default site settings: %w", err)
	}

	slog.Info("created default site settings")
	return nil
}

func seedPages(ctx context.Context, queries *Queries, now time.Time) error {
	for _, pageName := range SeedPages {
		_, err := queries.GetPageContent(ctx, pageName)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("checking page content %q: %w", pageName, err)
		}

		content, ok := seedPageContent[pageName]
		if !ok {
			content = fmt.Sprintf("<h2 class='text-theatrical mb-4'>%s</h2><p>Content for the %s page.</p>",
				pageName, pageName)
		}

		if _, err := queries.UpsertPageContent(ctx, UpsertPageContentParams{
			PageName:  pageName,
			Content:   content,
			UpdatedAt: now,
		}); err != nil {
			return fmt.Errorf("creating page content %q: %w", pageName, err)
		}
	}

	slog.Info("default page content ready", "pages", SeedPages)
	return nil
}
