package handler

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/grandstage/stagecms/internal/render"
	"github.com/grandstage/stagecms/internal/store"
)

// SubmissionHandler manages contact-form submissions in the admin panel.
type SubmissionHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
}

// NewSubmissionHandler creates a SubmissionHandler.
func NewSubmissionHandler(db *sql.DB, renderer *render.Renderer) *SubmissionHandler {
	return &SubmissionHandler{
		queries:  store.New(db),
		renderer: renderer,
	}
}

// List renders all contact submissions, newest first.
func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.queries.ListContactSubmissions(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list contact submissions", "error", err)
		return
	}

	unread, err := h.queries.CountUnreadContactSubmissions(r.Context())
	if err != nil {
		slog.Error("failed to count unread submissions", "error", err)
	}

	if err := h.renderer.Render(w, r, "admin/submissions", render.TemplateData{
		Title: "Contact Submissions",
		Data: map[string]any{
			"Submissions": submissions,
			"Unread":      unread,
		},
	}); err != nil {
		logAndInternalError(w, "failed to render submission listing", "error", err)
	}
}

// MarkRead flags a submission as read. Marking an already-read submission
// succeeds and changes nothing.
func (h *SubmissionHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if _, ok := requireEntityWithError(w, "submission", id,
		func(id int64) (store.ContactSubmission, error) {
			return h.queries.GetContactSubmissionByID(r.Context(), id)
		}); !ok {
		return
	}

	if err := h.queries.MarkSubmissionRead(r.Context(), id); err != nil {
		slog.Error("failed to mark submission read", "error", err, "submission_id", id)
		flashError(w, r, h.renderer, RouteAdminSubmissions, "Error updating submission.")
		return
	}

	flashSuccess(w, r, h.renderer, RouteAdminSubmissions, "Submission marked as read.")
}
