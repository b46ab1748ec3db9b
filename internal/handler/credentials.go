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

// CredentialsHandler manages the singleton SMTP credentials record.
type CredentialsHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
}

// NewCredentialsHandler creates a CredentialsHandler.
func NewCredentialsHandler(db *sql.DB, renderer *render.Renderer) *CredentialsHandler {
	return &CredentialsHandler{
		queries:  store.New(db),
		renderer: renderer,
	}
}

// Edit renders the credentials form together with the most recent contact
// submissions, so the operator can see what the credentials are used for.
func (h *CredentialsHandler) Edit(w http.ResponseWriter, r *http.Request) {
	f := form.EmailCredentials{SMTPServer: "smtp.gmail.com", SMTPPort: 587}
	configured := false

	creds, err := h.queries.GetEmailCredentials(r.Context())
	switch {
	case err == nil:
		configured = true
		f = form.EmailCredentials{
			EmailAddress: creds.EmailAddress,
			SMTPServer:   creds.SMTPServer,
			SMTPPort:     creds.SMTPPort,
			FromName:     creds.FromName,
		}
	case errors.Is(err, sql.ErrNoRows):
		// Not configured yet, show the defaults
	default:
		logAndInternalError(w, "failed to load email credentials", "error", err)
		return
	}

	h.renderForm(w, r, f, configured, nil)
}

// Update writes the submitted credentials to the singleton row. The app
// password must be re-entered on every save; it is never echoed back.
func (h *CredentialsHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteAdminCredentials) {
		return
	}

	f := form.EmailCredentialsFromValues(r.PostForm)
	if errs := form.Validate(f); errs.Any() {
		h.renderForm(w, r, f, false, errs)
		return
	}
	if f.FromName == "" {
		f.FromName = store.DefaultSiteTitle
	}

	now := time.Now()
	if _, err := h.queries.UpsertEmailCredentials(r.Context(), store.UpsertEmailCredentialsParams{
		EmailAddress: f.EmailAddress,
		AppPassword:  f.AppPassword,
		SMTPServer:   f.SMTPServer,
		SMTPPort:     f.SMTPPort,
		FromName:     f.FromName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		slog.Error("failed to save email credentials", "error", err)
		flashError(w, r, h.renderer, RouteAdminCredentials, "Error saving credentials. Please try again.")
		return
	}

	flashSuccess(w, r, h.renderer, RouteAdminCredentials, "Email credentials saved successfully!")
}

func (h *CredentialsHandler) renderForm(w http.ResponseWriter, r *http.Request, f form.EmailCredentials, configured bool, errs form.Errors) {
	// Password is write-only in the form
	f.AppPassword = ""

	submissions, err := h.queries.ListRecentContactSubmissions(r.Context(), RecentSubmissionsLimit)
	if err != nil {
		slog.Error("failed to list recent submissions", "error", err)
	}

	if err := h.renderer.Render(w, r, "admin/credentials", render.TemplateData{
		Title: "System Credentials",
		Data: map[string]any{
			"Form":        f,
			"Configured":  configured,
			"Submissions": submissions,
		},
		Errors: errs,
	}); err != nil {
		logAndInternalError(w, "failed to render credentials form", "error", err)
	}
}
