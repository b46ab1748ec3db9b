package handler

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/grandstage/stagecms/internal/render"
	"github.com/grandstage/stagecms/internal/service"
	"github.com/grandstage/stagecms/internal/store"
)

// AdminHandler serves the admin dashboard.
type AdminHandler struct {
	queries  *store.Queries
	content  *service.ContentService
	renderer *render.Renderer
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(db *sql.DB, renderer *render.Renderer) *AdminHandler {
	return &AdminHandler{
		queries:  store.New(db),
		content:  service.NewContentService(db),
		renderer: renderer,
	}
}

// Dashboard renders the admin dashboard with content counts.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	count := func(name string, fn func() (int64, error)) int64 {
		n, err := fn()
		if err != nil {
			slog.Error("failed to count "+name, "error", err)
		}
		return n
	}

	data := map[string]any{
		"Settings":          h.content.Settings(ctx),
		"TotalImages":       count("images", func() (int64, error) { return h.queries.CountImages(ctx) }),
		"TotalVideos":       count("videos", func() (int64, error) { return h.queries.CountVideos(ctx) }),
		"TotalPages":        count("pages", func() (int64, error) { return h.queries.CountPageContent(ctx) }),
		"TotalSubmissions":  count("submissions", func() (int64, error) { return h.queries.CountContactSubmissions(ctx) }),
		"UnreadSubmissions": count("unread submissions", func() (int64, error) { return h.queries.CountUnreadContactSubmissions(ctx) }),
	}

	if err := h.renderer.Render(w, r, "admin/dashboard", render.TemplateData{
		Title: "Dashboard",
		Data:  data,
	}); err != nil {
		logAndInternalError(w, "failed to render dashboard", "error", err)
	}
}
