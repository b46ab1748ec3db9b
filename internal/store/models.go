package store

import "time"

// Video types supported by the embed deriver.
const (
	VideoTypeYouTube   = "youtube"
	VideoTypeInstagram = "instagram"
)

// Admin represents a CMS administrator account.
type Admin struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// SiteSettings is the single site-wide configuration record.
// Optional fields default to the empty string at write time.
type SiteSettings struct {
	ID              int64     `json:"id"`
	SiteTitle       string    `json:"site_title"`
	SiteSlogan      string    `json:"site_slogan"`
	LogoURL         string    `json:"logo_url"`
	ContactEmail    string    `json:"contact_email"`
	ContactPhone    string    `json:"contact_phone"`
	ContactAddress  string    `json:"contact_address"`
	InstagramURL    string    `json:"instagram_url"`
	FacebookURL     string    `json:"facebook_url"`
	TwitterURL      string    `json:"twitter_url"`
	WhatsappURL     string    `json:"whatsapp_url"`
	MetaDescription string    `json:"meta_description"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PageContent holds the stored rich-text body for one logical site page.
type PageContent struct {
	ID              int64     `json:"id"`
	PageName        string    `json:"page_name"`
	Content         string    `json:"content"`
	MetaTitle       string    `json:"meta_title"`
	MetaDescription string    `json:"meta_description"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Image is a media record pointing at an externally hosted image.
type Image struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	ImageURL    string    `json:"image_url"`
	Description string    `json:"description"`
	PageName    string    `json:"page_name"`
	IsActive    bool      `json:"is_active"`
	SortOrder   int64     `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

// Video is a media record pointing at a YouTube or Instagram video.
type Video struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	VideoURL    string    `json:"video_url"`
	Description string    `json:"description"`
	VideoType   string    `json:"video_type"`
	PageName    string    `json:"page_name"`
	IsActive    bool      `json:"is_active"`
	SortOrder   int64     `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

// EmailCredentials is the single outbound SMTP configuration record.
// The app password is a live secret stored as-is; access is admin-only.
type EmailCredentials struct {
	ID           int64     `json:"id"`
	EmailAddress string    `json:"email_address"`
	AppPassword  string    `json:"-"`
	SMTPServer   string    `json:"smtp_server"`
	SMTPPort     int64     `json:"smtp_port"`
	FromName     string    `json:"from_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ContactSubmission is one public contact-form submission.
// Immutable after insert except for the is_read flag.
type ContactSubmission struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
	IsRead      bool      `json:"is_read"`
}
