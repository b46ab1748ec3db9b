package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/grandstage/stagecms/internal/auth"
	"github.com/grandstage/stagecms/internal/form"
	"github.com/grandstage/stagecms/internal/middleware"
	"github.com/grandstage/stagecms/internal/render"
	"github.com/grandstage/stagecms/internal/store"
)

// AuthHandler handles admin authentication routes.
type AuthHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager) *AuthHandler {
	return &AuthHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
	}
}

// LoginForm renders the login page. Already-authenticated admins are
// redirected to the dashboard.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if adminID := h.sessionManager.GetInt64(r.Context(), middleware.SessionKeyAdminID); adminID > 0 {
		http.Redirect(w, r, RouteAdmin, http.StatusSeeOther)
		return
	}

	if err := h.renderer.Render(w, r, "admin/login", render.TemplateData{
		Title: "Admin Login",
		Data: map[string]any{
			"Next": middleware.SafeNextURL(r.URL.Query().Get("next")),
		},
	}); err != nil {
		logAndInternalError(w, "failed to render login page", "error", err)
	}
}

// Login handles the login form submission. Both unknown usernames and bad
// passwords produce the same message to avoid account enumeration.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteAdminLogin) {
		return
	}

	f := form.LoginFromValues(r.PostForm)
	if errs := form.Validate(f); errs.Any() {
		flashError(w, r, h.renderer, RouteAdminLogin, "Username and password are required")
		return
	}

	admin, err := h.queries.GetAdminByUsername(r.Context(), f.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			slog.Debug("login attempt for unknown admin", "username", f.Username)
		} else {
			slog.Error("database error during login", "error", err)
		}
		flashError(w, r, h.renderer, RouteAdminLogin, "Invalid username or password")
		return
	}

	valid, err := auth.CheckPassword(f.Password, admin.PasswordHash)
	if err != nil {
		slog.Error("password check error", "error", err)
		flashError(w, r, h.renderer, RouteAdminLogin, "Invalid username or password")
		return
	}
	if !valid {
		slog.Debug("invalid password attempt", "username", f.Username)
		flashError(w, r, h.renderer, RouteAdminLogin, "Invalid username or password")
		return
	}

	// Re-hash if the stored hash uses outdated parameters
	if auth.NeedsRehash(admin.PasswordHash) {
		if newHash, err := auth.HashPassword(f.Password); err == nil {
			if err := h.queries.UpdateAdminPassword(r.Context(), store.UpdateAdminPasswordParams{
				PasswordHash: newHash,
				ID:           admin.ID,
			}); err != nil {
				slog.Error("failed to re-hash password", "error", err, "admin_id", admin.ID)
			} else {
				slog.Info("password re-hashed with updated parameters", "admin_id", admin.ID)
			}
		}
	}

	// Regenerate session ID to prevent session fixation
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		logAndInternalError(w, "session renewal error", "error", err)
		return
	}

	h.sessionManager.Put(r.Context(), middleware.SessionKeyAdminID, admin.ID)

	slog.Info("admin logged in", "admin_id", admin.ID, "username", admin.Username)

	http.Redirect(w, r, middleware.SafeNextURL(r.PostForm.Get("next")), http.StatusSeeOther)
}

// Logout destroys the session and returns to the public site.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	adminID := h.sessionManager.GetInt64(r.Context(), middleware.SessionKeyAdminID)

	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		slog.Error("session destroy error", "error", err)
	}

	slog.Info("admin logged out", "admin_id", adminID)

	flashAndRedirect(w, r, h.renderer, RouteRoot, "You have been logged out.", "info")
}
