// Package middleware provides HTTP middleware for authentication,
// security headers, and request handling.
package middleware

import (
	"context"
	"database/sql"
	"net/http"
	"net/url"
	"strings"

	"github.com/alexedwards/scs/v2"

	"github.com/grandstage/stagecms/internal/store"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeyAdmin holds the authenticated admin in the request context.
const ContextKeyAdmin ContextKey = "admin"

// SessionKeyAdminID is the session key under which the logged-in
// admin's ID is stored.
const SessionKeyAdminID = "admin_id"

// Auth creates middleware that requires an authenticated admin session.
// Unauthenticated requests are redirected to the login page with the
// original path preserved in the "next" query parameter.
func Auth(sm *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			adminID := sm.GetInt64(r.Context(), SessionKeyAdminID)
			if adminID == 0 {
				loginURL := "/admin/login?next=" + url.QueryEscape(r.URL.RequestURI())
				http.Redirect(w, r, loginURL, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// LoadAdmin creates middleware that loads the current admin into the
// request context. Use after Auth. If the session references an admin
// that no longer exists, the session is destroyed and the request is
// redirected to login.
func LoadAdmin(sm *scs.SessionManager, db *sql.DB) func(http.Handler) http.Handler {
	queries := store.New(db)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			adminID := sm.GetInt64(r.Context(), SessionKeyAdminID)
			if adminID == 0 {
				next.ServeHTTP(w, r)
				return
			}

			admin, err := queries.GetAdminByID(r.Context(), adminID)
			if err != nil {
				_ = sm.Destroy(r.Context())
				http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAdmin, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdmin retrieves the current admin from the request context.
// Returns nil if no admin is in context.
func GetAdmin(r *http.Request) *store.Admin {
	admin, ok := r.Context().Value(ContextKeyAdmin).(store.Admin)
	if !ok {
		return nil
	}
	return &admin
}

// GetAdminID returns the current admin's ID from context, or 0 if not found.
func GetAdminID(r *http.Request) int64 {
	if admin := GetAdmin(r); admin != nil {
		return admin.ID
	}
	return 0
}

// SafeNextURL validates a post-login redirect target. Only local paths
// are allowed; anything that could leave the site falls back to the
// dashboard.
func SafeNextURL(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, "\\") {
		return "/admin"
	}
	return next
}
