package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"

	"github.com/grandstage/stagecms/internal/form"
	"github.com/grandstage/stagecms/internal/render"
	"github.com/grandstage/stagecms/internal/store"
	"github.com/grandstage/stagecms/internal/util"
)

// contentPolicy sanitizes admin-authored page HTML before storage. UGCPolicy
// allows the formatting tags the editor produces while stripping scripts.
var contentPolicy = bluemonday.UGCPolicy()

// ContentHandler manages per-page editable content.
type ContentHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(db *sql.DB, renderer *render.Renderer) *ContentHandler {
	return &ContentHandler{
		queries:  store.New(db),
		renderer: renderer,
	}
}

// Edit renders the content editor, preloading the stored content when a
// page name is present in the URL.
func (h *ContentHandler) Edit(w http.ResponseWriter, r *http.Request) {
	pageName := chi.URLParam(r, "pageName")
	if pageName != "" && !util.IsValidSlug(pageName) {
		http.NotFound(w, r)
		return
	}

	f := form.PageContent{PageName: pageName}
	if pageName != "" {
		content, err := h.queries.GetPageContent(r.Context(), pageName)
		switch {
		case err == nil:
			f = form.PageContent{
				PageName:        content.PageName,
				Content:         content.Content,
				MetaTitle:       content.MetaTitle,
				MetaDescription: content.MetaDescription,
			}
		case errors.Is(err, sql.ErrNoRows):
			// New page, leave the form empty
		default:
			logAndInternalError(w, "failed to load page content", "error", err, "page", pageName)
			return
		}
	}

	h.renderForm(w, r, f, nil)
}

// Update stores the submitted page content, creating or replacing the row
// for that page name.
func (h *ContentHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteAdminContent) {
		return
	}

	f := form.PageContentFromValues(r.PostForm)
	if f.PageName == "" {
		f.PageName = chi.URLParam(r, "pageName")
	}
	f.PageName = util.Slugify(f.PageName)
	errs := form.Validate(f)
	if !errs.Any() && !validPageName(f.PageName, form.PageNames) {
		errs = form.Errors{"page_name": "Please select a valid page"}
	}
	if errs.Any() {
		h.renderForm(w, r, f, errs)
		return
	}

	sanitized := contentPolicy.Sanitize(f.Content)

	if _, err := h.queries.UpsertPageContent(r.Context(), store.UpsertPageContentParams{
		PageName:        f.PageName,
		Content:         sanitized,
		MetaTitle:       f.MetaTitle,
		MetaDescription: f.MetaDescription,
		UpdatedAt:       time.Now(),
	}); err != nil {
		slog.Error("failed to save page content", "error", err, "page", f.PageName)
		flashError(w, r, h.renderer, RouteAdminContent, "Error saving content")
		return
	}

	flashSuccess(w, r, h.renderer, RouteAdminContent+"/"+f.PageName,
		fmt.Sprintf("Content for %s page updated successfully!", f.PageName))
}

func (h *ContentHandler) renderForm(w http.ResponseWriter, r *http.Request, f form.PageContent, errs form.Errors) {
	if err := h.renderer.Render(w, r, "admin/content", render.TemplateData{
		Title: "Edit Content",
		Data: map[string]any{
			"Form":      f,
			"PageNames": form.PageNames,
		},
		Errors: errs,
	}); err != nil {
		logAndInternalError(w, "failed to render content editor", "error", err)
	}
}
