package handler

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/grandstage/stagecms/internal/form"
	"github.com/grandstage/stagecms/internal/render"
	"github.com/grandstage/stagecms/internal/store"
)

// ImageHandler manages image listings in the admin panel.
type ImageHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
}

// NewImageHandler creates an ImageHandler.
func NewImageHandler(db *sql.DB, renderer *render.Renderer) *ImageHandler {
	return &ImageHandler{
		queries:  store.New(db),
		renderer: renderer,
	}
}

// List renders the paginated image listing.
func (h *ImageHandler) List(w http.ResponseWriter, r *http.Request) {
	page := pageParam(r)

	total, err := h.queries.CountImages(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to count images", "error", err)
		return
	}

	images, err := h.queries.ListImages(r.Context(), store.ListImagesParams{
		Limit:  ItemsPerPage,
		Offset: int64((page - 1) * ItemsPerPage),
	})
	if err != nil {
		logAndInternalError(w, "failed to list images", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "admin/images", render.TemplateData{
		Title: "Manage Images",
		Data: map[string]any{
			"Images":     images,
			"Page":       page,
			"TotalPages": totalPages(total, ItemsPerPage),
			"Total":      total,
		},
	}); err != nil {
		logAndInternalError(w, "failed to render image listing", "error", err)
	}
}

// New renders an empty image form.
func (h *ImageHandler) New(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, form.Image{IsActive: true}, 0, nil)
}

// Create stores a new image record.
func (h *ImageHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteAdminImages) {
		return
	}

	f := form.ImageFromValues(r.PostForm)
	if errs := h.validateImage(f); errs.Any() {
		h.renderForm(w, r, f, 0, errs)
		return
	}

	if _, err := h.queries.CreateImage(r.Context(), store.CreateImageParams{
		Title:       f.Title,
		ImageURL:    f.ImageURL,
		Description: f.Description,
		PageName:    f.PageName,
		IsActive:    f.IsActive,
		SortOrder:   f.SortOrder,
		CreatedAt:   time.Now(),
	}); err != nil {
		slog.Error("failed to create image", "error", err)
		flashError(w, r, h.renderer, RouteAdminImages, "Error saving image")
		return
	}

	flashSuccess(w, r, h.renderer, RouteAdminImages, "Image saved successfully!")
}

// Edit renders the form preloaded with an existing image.
func (h *ImageHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	image, ok := requireEntityWithRedirect(w, r, h.renderer, RouteAdminImages, "image", id,
		func(id int64) (store.Image, error) { return h.queries.GetImageByID(r.Context(), id) })
	if !ok {
		return
	}

	h.renderForm(w, r, form.Image{
		Title:       image.Title,
		ImageURL:    image.ImageURL,
		Description: image.Description,
		PageName:    image.PageName,
		IsActive:    image.IsActive,
		SortOrder:   image.SortOrder,
	}, image.ID, nil)
}

// Update replaces an existing image record.
func (h *ImageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if !parseFormOrRedirect(w, r, h.renderer, RouteAdminImages) {
		return
	}

	f := form.ImageFromValues(r.PostForm)
	if errs := h.validateImage(f); errs.Any() {
		h.renderForm(w, r, f, id, errs)
		return
	}

	if _, ok := requireEntityWithRedirect(w, r, h.renderer, RouteAdminImages, "image", id,
		func(id int64) (store.Image, error) { return h.queries.GetImageByID(r.Context(), id) }); !ok {
		return
	}

	if _, err := h.queries.UpdateImage(r.Context(), store.UpdateImageParams{
		Title:       f.Title,
		ImageURL:    f.ImageURL,
		Description: f.Description,
		PageName:    f.PageName,
		IsActive:    f.IsActive,
		SortOrder:   f.SortOrder,
		ID:          id,
	}); err != nil {
		slog.Error("failed to update image", "error", err, "image_id", id)
		flashError(w, r, h.renderer, RouteAdminImages, "Error saving image")
		return
	}

	flashSuccess(w, r, h.renderer, RouteAdminImages, "Image saved successfully!")
}

// Delete removes an image record.
func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if _, ok := requireEntityWithRedirect(w, r, h.renderer, RouteAdminImages, "image", id,
		func(id int64) (store.Image, error) { return h.queries.GetImageByID(r.Context(), id) }); !ok {
		return
	}

	if err := h.queries.DeleteImage(r.Context(), id); err != nil {
		slog.Error("failed to delete image", "error", err, "image_id", id)
		flashError(w, r, h.renderer, RouteAdminImages, "Error deleting image")
		return
	}

	flashSuccess(w, r, h.renderer, RouteAdminImages, "Image deleted successfully!")
}

func (h *ImageHandler) validateImage(f form.Image) form.Errors {
	errs := form.Validate(f)
	if !errs.Any() && !validPageName(f.PageName, form.PageNames) {
		errs = form.Errors{"page_name": "Please select a valid page"}
	}
	return errs
}

func (h *ImageHandler) renderForm(w http.ResponseWriter, r *http.Request, f form.Image, id int64, errs form.Errors) {
	title := "Add Image"
	if id > 0 {
		title = "Edit Image"
	}

	if err := h.renderer.Render(w, r, "admin/image_form", render.TemplateData{
		Title: title,
		Data: map[string]any{
			"Form":      f,
			"ImageID":   id,
			"PageNames": form.PageNames,
		},
		Errors: errs,
	}); err != nil {
		logAndInternalError(w, "failed to render image form", "error", err)
	}
}
