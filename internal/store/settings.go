package store

import (
	"context"
	"database/sql"
	"time"
)

// Defaults applied when no settings row exists yet.
const (
	DefaultSiteTitle       = "Grand Stage Productions"
	DefaultSiteSlogan      = "Bringing Stories to Life"
	DefaultLogoURL         = "/static/images/default-logo.svg"
	DefaultMetaDescription = "Grand Stage Productions – Bringing Stories to Life " +
		"through theatre, creativity, and storytelling."
)

// DefaultSiteSettings returns the built-in settings used when the table is empty.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		ID:              1,
		SiteTitle:       DefaultSiteTitle,
		SiteSlogan:      DefaultSiteSlogan,
		LogoURL:         DefaultLogoURL,
		MetaDescription: DefaultMetaDescription,
	}
}

const settingsColumns = `id, site_title, site_slogan, logo_url, contact_email,
contact_phone, contact_address, instagram_url, facebook_url, twitter_url,
whatsapp_url, meta_description, updated_at`

func scanSettings(row *sql.Row) (SiteSettings, error) {
	var s SiteSettings
	err := row.Scan(&s.ID, &s.SiteTitle, &s.SiteSlogan, &s.LogoURL, &s.ContactEmail,
		&s.ContactPhone, &s.ContactAddress, &s.InstagramURL, &s.FacebookURL,
		&s.TwitterURL, &s.WhatsappURL, &s.MetaDescription, &s.UpdatedAt)
	return s, err
}

const getSiteSettings = `SELECT ` + settingsColumns + ` FROM site_settings WHERE id = 1`

// GetSiteSettings returns the singleton settings row.
// Returns sql.ErrNoRows if the site has not been configured yet.
func (q *Queries) GetSiteSettings(ctx context.Context) (SiteSettings, error) {
	return scanSettings(q.db.QueryRowContext(ctx, getSiteSettings))
}

const upsertSiteSettings = `
INSERT INTO site_settings (
	id, site_title, site_slogan, logo_url, contact_email, contact_phone,
	contact_address, instagram_url, facebook_url, twitter_url, whatsapp_url,
	meta_description, updated_at
) VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
	site_title = excluded.site_title,
	site_slogan = excluded.site_slogan,
	logo_url = excluded.logo_url,
	contact_email = excluded.contact_email,
	contact_phone = excluded.contact_phone,
	contact_address = excluded.contact_address,
	instagram_url = excluded.instagram_url,
	facebook_url = excluded.facebook_url,
	twitter_url = excluded.twitter_url,
	whatsapp_url = excluded.whatsapp_url,
	meta_description = excluded.meta_description,
	updated_at = excluded.updated_at
RETURNING ` + settingsColumns

// UpsertSiteSettingsParams holds the fields for UpsertSiteSettings.
type UpsertSiteSettingsParams struct {
	SiteTitle       string
	SiteSlogan      string
	LogoURL         string
	ContactEmail    string
	ContactPhone    string
	ContactAddress  string
	InstagramURL    string
	FacebookURL     string
	TwitterURL      string
	WhatsappURL     string
	MetaDescription string
	UpdatedAt       time.Time
}

// UpsertSiteSettings creates or updates the singleton settings row.
// The fixed key guarantees idempotency: a second create becomes an update.
func (q *Queries) UpsertSiteSettings(ctx context.Context, arg UpsertSiteSettingsParams) (SiteSettings, error) {
	row := q.db.QueryRowContext(ctx, upsertSiteSettings,
		arg.SiteTitle, arg.SiteSlogan, arg.LogoURL, arg.ContactEmail,
		arg.ContactPhone, arg.ContactAddress, arg.InstagramURL, arg.FacebookURL,
		arg.TwitterURL, arg.WhatsappURL, arg.MetaDescription, arg.UpdatedAt)
	return scanSettings(row)
}
