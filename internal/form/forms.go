package form

import "net/url"

// PageNames are the site pages offered in admin select fields. The storage
// layer deliberately leaves page_name open so future pages keep working.
var PageNames = []string{"home", "about", "gallery", "contact"}

// VideoTypes are the supported embed providers.
var VideoTypes = []string{"youtube", "instagram"}

// Login carries admin sign-in credentials.
type Login struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// LoginFromValues binds a login form.
func LoginFromValues(values url.Values) Login {
	return Login{
		Username: trimmed(values, "username"),
		Password: values.Get("password"),
	}
}

// PageContent carries an admin content edit.
type PageContent struct {
	PageName        string `form:"page_name" validate:"required,max=50"`
	Content         string `form:"content" validate:"required"`
	MetaTitle       string `form:"meta_title" validate:"max=200"`
	MetaDescription string `form:"meta_description"`
}

// PageContentFromValues binds a page-content form.
func PageContentFromValues(values url.Values) PageContent {
	return PageContent{
		PageName:        trimmed(values, "page_name"),
		Content:         values.Get("content"),
		MetaTitle:       trimmed(values, "meta_title"),
		MetaDescription: trimmed(values, "meta_description"),
	}
}

// SiteSettings carries the site settings edit. Optional URL fields accept
// the empty string (omitempty) but must parse as URLs when present.
type SiteSettings struct {
	SiteTitle       string `form:"site_title" validate:"required,max=100"`
	SiteSlogan      string `form:"site_slogan" validate:"required,max=200"`
	LogoURL         string `form:"logo_url" validate:"required,max=500"`
	ContactEmail    string `form:"contact_email" validate:"omitempty,email,max=120"`
	ContactPhone    string `form:"contact_phone" validate:"max=50"`
	ContactAddress  string `form:"contact_address"`
	InstagramURL    string `form:"instagram_url" validate:"omitempty,url,max=500"`
	FacebookURL     string `form:"facebook_url" validate:"omitempty,url,max=500"`
	TwitterURL      string `form:"twitter_url" validate:"omitempty,url,max=500"`
	WhatsappURL     string `form:"whatsapp_url" validate:"omitempty,url,max=500"`
	MetaDescription string `form:"meta_description"`
}

// SiteSettingsFromValues binds a site-settings form.
func SiteSettingsFromValues(values url.Values) SiteSettings {
	return SiteSettings{
		SiteTitle:       trimmed(values, "site_title"),
		SiteSlogan:      trimmed(values, "site_slogan"),
		LogoURL:         trimmed(values, "logo_url"),
		ContactEmail:    trimmed(values, "contact_email"),
		ContactPhone:    trimmed(values, "contact_phone"),
		ContactAddress:  trimmed(values, "contact_address"),
		InstagramURL:    trimmed(values, "instagram_url"),
		FacebookURL:     trimmed(values, "facebook_url"),
		TwitterURL:      trimmed(values, "twitter_url"),
		WhatsappURL:     trimmed(values, "whatsapp_url"),
		MetaDescription: trimmed(values, "meta_description"),
	}
}

// Image carries an image create or edit.
type Image struct {
	Title       string `form:"title" validate:"required,max=200"`
	ImageURL    string `form:"image_url" validate:"required,url,max=500"`
	Description string `form:"description"`
	PageName    string `form:"page_name" validate:"required,max=50"`
	IsActive    bool   `form:"is_active"`
	SortOrder   int64  `form:"sort_order"`
}

// ImageFromValues binds an image form. Sort order defaults to 0 on blank
// or unparseable input.
func ImageFromValues(values url.Values) Image {
	return Image{
		Title:       trimmed(values, "title"),
		ImageURL:    trimmed(values, "image_url"),
		Description: trimmed(values, "description"),
		PageName:    trimmed(values, "page_name"),
		IsActive:    ParseCheckbox(values.Get("is_active")),
		SortOrder:   ParseSortOrder(values.Get("sort_order")),
	}
}

// Video carries a video create or edit.
type Video struct {
	Title       string `form:"title" validate:"required,max=200"`
	VideoURL    string `form:"video_url" validate:"required,url,max=500"`
	Description string `form:"description"`
	VideoType   string `form:"video_type" validate:"required,oneof=youtube instagram"`
	PageName    string `form:"page_name" validate:"required,max=50"`
	IsActive    bool   `form:"is_active"`
	SortOrder   int64  `form:"sort_order"`
}

// VideoFromValues binds a video form.
func VideoFromValues(values url.Values) Video {
	return Video{
		Title:       trimmed(values, "title"),
		VideoURL:    trimmed(values, "video_url"),
		Description: trimmed(values, "description"),
		VideoType:   trimmed(values, "video_type"),
		PageName:    trimmed(values, "page_name"),
		IsActive:    ParseCheckbox(values.Get("is_active")),
		SortOrder:   ParseSortOrder(values.Get("sort_order")),
	}
}

// Contact carries a public contact-form submission.
type Contact struct {
	Name    string `form:"name" validate:"required,max=100"`
	Email   string `form:"email" validate:"required,email,max=150"`
	Subject string `form:"subject" validate:"required,max=200"`
	Message string `form:"message" validate:"required"`
}

// ContactFromValues binds a contact form.
func ContactFromValues(values url.Values) Contact {
	return Contact{
		Name:    trimmed(values, "name"),
		Email:   trimmed(values, "email"),
		Subject: trimmed(values, "subject"),
		Message: trimmed(values, "message"),
	}
}

// EmailCredentials carries the outbound SMTP configuration edit.
type EmailCredentials struct {
	EmailAddress string `form:"email_address" validate:"required,email,max=150"`
	AppPassword  string `form:"app_password" validate:"required,max=200"`
	SMTPServer   string `form:"smtp_server" validate:"required,max=100"`
	SMTPPort     int64  `form:"smtp_port" validate:"required,min=1,max=65535"`
	FromName     string `form:"from_name" validate:"max=100"`
}

// EmailCredentialsFromValues binds a credentials form. A blank or invalid
// port falls back to 587, the conventional STARTTLS submission port.
func EmailCredentialsFromValues(values url.Values) EmailCredentials {
	port := ParseSortOrder(values.Get("smtp_port"))
	if port == 0 {
		port = 587
	}
	return EmailCredentials{
		EmailAddress: trimmed(values, "email_address"),
		AppPassword:  values.Get("app_password"),
		SMTPServer:   trimmed(values, "smtp_server"),
		SMTPPort:     port,
		FromName:     trimmed(values, "from_name"),
	}
}
