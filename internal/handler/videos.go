package handler

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/grandstage/stagecms/internal/embed"
	"github.com/grandstage/stagecms/internal/form"
	"github.com/grandstage/stagecms/internal/render"
	"github.com/grandstage/stagecms/internal/store"
)

// VideoHandler manages video listings in the admin panel.
type VideoHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
}

// NewVideoHandler creates a VideoHandler.
func NewVideoHandler(db *sql.DB, renderer *render.Renderer) *VideoHandler {
	return &VideoHandler{
		queries:  store.New(db),
		renderer: renderer,
	}
}

// videoRow pairs a stored video with its derived embed state for the listing.
type videoRow struct {
	store.Video
	Recognized bool
	EmbedURL   string
}

// List renders the paginated video listing.
func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request) {
	page := pageParam(r)

	total, err := h.queries.CountVideos(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to count videos", "error", err)
		return
	}

	videos, err := h.queries.ListVideos(r.Context(), store.ListVideosParams{
		Limit:  ItemsPerPage,
		Offset: int64((page - 1) * ItemsPerPage),
	})
	if err != nil {
		logAndInternalError(w, "failed to list videos", "error", err)
		return
	}

	rows := make([]videoRow, 0, len(videos))
	for _, v := range videos {
		res := embed.Parse(v.VideoURL, v.VideoType)
		rows = append(rows, videoRow{Video: v, Recognized: res.Recognized, EmbedURL: res.EmbedURL})
	}

	if err := h.renderer.Render(w, r, "admin/videos", render.TemplateData{
		Title: "Manage Videos",
		Data: map[string]any{
			"Videos":     rows,
			"Page":       page,
			"TotalPages": totalPages(total, ItemsPerPage),
			"Total":      total,
		},
	}); err != nil {
		logAndInternalError(w, "failed to render video listing", "error", err)
	}
}

// New renders an empty video form.
func (h *VideoHandler) New(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, form.Video{IsActive: true, VideoType: store.VideoTypeYouTube}, 0, nil)
}

// Create stores a new video record.
func (h *VideoHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteAdminVideos) {
		return
	}

	f := form.VideoFromValues(r.PostForm)
	if errs := h.validateVideo(f); errs.Any() {
		h.renderForm(w, r, f, 0, errs)
		return
	}

	if _, err := h.queries.CreateVideo(r.Context(), store.CreateVideoParams{
		Title:       f.Title,
		VideoURL:    f.VideoURL,
		Description: f.Description,
		VideoType:   f.VideoType,
		PageName:    f.PageName,
		IsActive:    f.IsActive,
		SortOrder:   f.SortOrder,
		CreatedAt:   time.Now(),
	}); err != nil {
		slog.Error("failed to create video", "error", err)
		flashError(w, r, h.renderer, RouteAdminVideos, "Error saving video")
		return
	}

	flashSuccess(w, r, h.renderer, RouteAdminVideos, "Video saved successfully!")
}

// Edit renders the form preloaded with an existing video.
func (h *VideoHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	video, ok := requireEntityWithRedirect(w, r, h.renderer, RouteAdminVideos, "video", id,
		func(id int64) (store.Video, error) { return h.queries.GetVideoByID(r.Context(), id) })
	if !ok {
		return
	}

	h.renderForm(w, r, form.Video{
		Title:       video.Title,
		VideoURL:    video.VideoURL,
		Description: video.Description,
		VideoType:   video.VideoType,
		PageName:    video.PageName,
		IsActive:    video.IsActive,
		SortOrder:   video.SortOrder,
	}, video.ID, nil)
}

// Update replaces an existing video record.
func (h *VideoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if !parseFormOrRedirect(w, r, h.renderer, RouteAdminVideos) {
		return
	}

	f := form.VideoFromValues(r.PostForm)
	if errs := h.validateVideo(f); errs.Any() {
		h.renderForm(w, r, f, id, errs)
		return
	}

	if _, ok := requireEntityWithRedirect(w, r, h.renderer, RouteAdminVideos, "video", id,
		func(id int64) (store.Video, error) { return h.queries.GetVideoByID(r.Context(), id) }); !ok {
		return
	}

	if _, err := h.queries.UpdateVideo(r.Context(), store.UpdateVideoParams{
		Title:       f.Title,
		VideoURL:    f.VideoURL,
		Description: f.Description,
		VideoType:   f.VideoType,
		PageName:    f.PageName,
		IsActive:    f.IsActive,
		SortOrder:   f.SortOrder,
		ID:          id,
	}); err != nil {
		slog.Error("failed to update video", "error", err, "video_id", id)
		flashError(w, r, h.renderer, RouteAdminVideos, "Error saving video")
		return
	}

	flashSuccess(w, r, h.renderer, RouteAdminVideos, "Video saved successfully!")
}

// Delete removes a video record.
func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if _, ok := requireEntityWithRedirect(w, r, h.renderer, RouteAdminVideos, "video", id,
		func(id int64) (store.Video, error) { return h.queries.GetVideoByID(r.Context(), id) }); !ok {
		return
	}

	if err := h.queries.DeleteVideo(r.Context(), id); err != nil {
		slog.Error("failed to delete video", "error", err, "video_id", id)
		flashError(w, r, h.renderer, RouteAdminVideos, "Error deleting video")
		return
	}

	flashSuccess(w, r, h.renderer, RouteAdminVideos, "Video deleted successfully!")
}

func (h *VideoHandler) validateVideo(f form.Video) form.Errors {
	errs := form.Validate(f)
	if !errs.Any() && !validPageName(f.PageName, form.PageNames) {
		errs = form.Errors{"page_name": "Please select a valid page"}
	}
	return errs
}

func (h *VideoHandler) renderForm(w http.ResponseWriter, r *http.Request, f form.Video, id int64, errs form.Errors) {
	title := "Add Video"
	if id > 0 {
		title = "Edit Video"
	}

	if err := h.renderer.Render(w, r, "admin/video_form", render.TemplateData{
		Title: title,
		Data: map[string]any{
			"Form":       f,
			"VideoID":    id,
			"PageNames":  form.PageNames,
			"VideoTypes": form.VideoTypes,
		},
		Errors: errs,
	}); err != nil {
		logAndInternalError(w, "failed to render video form", "error", err)
	}
}
