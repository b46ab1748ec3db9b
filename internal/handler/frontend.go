package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/grandstage/stagecms/internal/form"
	"github.com/grandstage/stagecms/internal/mailer"
	"github.com/grandstage/stagecms/internal/render"
	"github.com/grandstage/stagecms/internal/service"
	"github.com/grandstage/stagecms/internal/store"
)

// PublicHandler serves the public site pages.
type PublicHandler struct {
	queries  *store.Queries
	content  *service.ContentService
	renderer *render.Renderer
	mailer   *mailer.Mailer
}

// NewPublicHandler creates a PublicHandler.
func NewPublicHandler(db *sql.DB, renderer *render.Renderer, m *mailer.Mailer) *PublicHandler {
	return &PublicHandler{
		queries:  store.New(db),
		content:  service.NewContentService(db),
		renderer: renderer,
		mailer:   m,
	}
}

// Home renders the home page.
func (h *PublicHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "public/home", "home")
}

// About renders the about page.
func (h *PublicHandler) About(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "public/about", "about")
}

// Gallery renders the gallery page.
func (h *PublicHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "public/gallery", "gallery")
}

// Contact renders the contact page with an empty form.
func (h *PublicHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.renderContact(w, r, form.Contact{}, nil)
}

// ContactSubmit handles the public contact form. The submission is stored
// first; email notification is a single best-effort attempt afterwards,
// and the visitor sees the same success message either way.
func (h *PublicHandler) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteContact) {
		return
	}

	f := form.ContactFromValues(r.PostForm)
	if errs := form.Validate(f); errs.Any() {
		h.renderContact(w, r, f, errs)
		return
	}

	sub, err := h.queries.CreateContactSubmission(r.Context(), store.CreateContactSubmissionParams{
		Name:        f.Name,
		Email:       f.Email,
		Subject:     f.Subject,
		Message:     f.Message,
		SubmittedAt: time.Now(),
	})
	if err != nil {
		slog.Error("failed to store contact submission", "error", err)
		flashError(w, r, h.renderer, RouteContact, "There was an error saving your message. Please try again.")
		return
	}

	h.notify(r, sub)

	flashSuccess(w, r, h.renderer, RouteContact, "Thank you for your message! We'll get back to you soon.")
}

// notify attempts the thank-you and alert emails for a stored submission.
// Failures are logged and never surfaced to the visitor.
func (h *PublicHandler) notify(r *http.Request, sub store.ContactSubmission) {
	creds, err := h.queries.GetEmailCredentials(r.Context())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			slog.Info("email credentials not configured, skipping notification", "submission_id", sub.ID)
		} else {
			slog.Error("failed to load email credentials", "error", err, "submission_id", sub.ID)
		}
		return
	}

	result := h.mailer.Dispatch(r.Context(), creds, sub)
	if !result.OK() {
		slog.Warn("contact notification incomplete",
			"submission_id", sub.ID,
			"ack_error", result.Ack.Err,
			"alert_error", result.Alert.Err,
		)
	}
}

func (h *PublicHandler) renderContact(w http.ResponseWriter, r *http.Request, f form.Contact, errs form.Errors) {
	data, err := h.content.ResolvePage(r.Context(), "contact")
	if err != nil {
		logAndInternalError(w, "failed to resolve page", "error", err, "page", "contact")
		return
	}

	if err := h.renderer.Render(w, r, "public/contact", render.TemplateData{
		Title: h.pageTitle(data),
		Data: map[string]any{
			"Page": data,
			"Form": f,
		},
		Errors: errs,
	}); err != nil {
		logAndInternalError(w, "failed to render page", "error", err, "page", "contact")
	}
}

func (h *PublicHandler) renderPage(w http.ResponseWriter, r *http.Request, template, pageName string) {
	data, err := h.content.ResolvePage(r.Context(), pageName)
	if err != nil {
		logAndInternalError(w, "failed to resolve page", "error", err, "page", pageName)
		return
	}

	if err := h.renderer.Render(w, r, template, render.TemplateData{
		Title: h.pageTitle(data),
		Data:  map[string]any{"Page": data},
	}); err != nil {
		logAndInternalError(w, "failed to render page", "error", err, "page", pageName)
	}
}

// pageTitle prefers the stored meta title and falls back to the site title.
func (h *PublicHandler) pageTitle(data service.PageData) string {
	if data.MetaTitle != "" {
		return data.MetaTitle
	}
	return data.Settings.SiteTitle
}
