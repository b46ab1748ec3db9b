package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/grandstage/stagecms/internal/form"
	"github.com/grandstage/stagecms/internal/render"
	"github.com/grandstage/stagecms/internal/store"
)

// SettingsHandler manages the singleton site settings record.
type SettingsHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(db *sql.DB, renderer *render.Renderer) *SettingsHandler {
	return &SettingsHandler{
		queries:  store.New(db),
		renderer: renderer,
	}
}

// Edit renders the settings form preloaded with the stored values, or the
// built-in defaults when the site has not been configured yet.
func (h *SettingsHandler) Edit(w http.ResponseWriter, r *http.Request) {
	settings, err := h.queries.GetSiteSettings(r.Context())
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logAndInternalError(w, "failed to load site settings", "error", err)
			return
		}
		settings = store.DefaultSiteSettings()
	}

	h.renderForm(w, r, form.SiteSettings{
		SiteTitle:       settings.SiteTitle,
		SiteSlogan:      settings.SiteSlogan,
		LogoURL:         settings.LogoURL,
		ContactEmail:    settings.ContactEmail,
		ContactPhone:    settings.ContactPhone,
		ContactAddress:  settings.ContactAddress,
		InstagramURL:    settings.InstagramURL,
		FacebookURL:     settings.FacebookURL,
		TwitterURL:      settings.TwitterURL,
		WhatsappURL:     settings.WhatsappURL,
		MetaDescription: settings.MetaDescription,
	}, nil)
}

// Update writes the submitted settings to the singleton row.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteAdminSettings) {
		return
	}

	f := form.SiteSettingsFromValues(r.PostForm)
	if errs := form.Validate(f); errs.Any() {
		h.renderForm(w, r, f, errs)
		return
	}

	if _, err := h.queries.UpsertSiteSettings(r.Context(), store.UpsertSiteSettingsParams{
		SiteTitle:       f.SiteTitle,
		SiteSlogan:      f.SiteSlogan,
		LogoURL:         f.LogoURL,
		ContactEmail:    f.ContactEmail,
		ContactPhone:    f.ContactPhone,
		ContactAddress:  f.ContactAddress,
		InstagramURL:    f.InstagramURL,
		FacebookURL:     f.FacebookURL,
		TwitterURL:      f.TwitterURL,
		WhatsappURL:     f.WhatsappURL,
		MetaDescription: f.MetaDescription,
		UpdatedAt:       time.Now(),
	}); err != nil {
		slog.Error("failed to save site settings", "error", err)
		flashError(w, r, h.renderer, RouteAdminSettings, "Error saving settings")
		return
	}

	flashSuccess(w, r, h.renderer, RouteAdminSettings, "Settings updated successfully!")
}

func (h *SettingsHandler) renderForm(w http.ResponseWriter, r *http.Request, f form.SiteSettings, errs form.Errors) {
	if err := h.renderer.Render(w, r, "admin/settings", render.TemplateData{
		Title:  "Site Settings",
		Data:   map[string]any{"Form": f},
		Errors: errs,
	}); err != nil {
		logAndInternalError(w, "failed to render settings form", "error", err)
	}
}
