package store

import (
	"context"
	"time"
)

const imageColumns = `id, title, image_url, description, page_name, is_active, sort_order, created_at`

func scanImage(s interface{ Scan(...any) error }) (Image, error) {
	var i Image
	err := s.Scan(&i.ID, &i.Title, &i.ImageURL, &i.Description, &i.PageName,
		&i.IsActive, &i.SortOrder, &i.CreatedAt)
	return i, err
}

const createImage = `
INSERT INTO images (title, image_url, description, page_name, is_active, sort_order, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING ` + imageColumns

// CreateImageParams holds the fields for CreateImage.
type CreateImageParams struct {
	Title       string
	ImageURL    string
	Description string
	PageName    string
	IsActive    bool
	SortOrder   int64
	CreatedAt   time.Time
}

// CreateImage inserts a new image record.
func (q *Queries) CreateImage(ctx context.Context, arg CreateImageParams) (Image, error) {
	return scanImage(q.db.QueryRowContext(ctx, createImage,
		arg.Title, arg.ImageURL, arg.Description, arg.PageName,
		arg.IsActive, arg.SortOrder, arg.CreatedAt))
}

const getImageByID = `SELECT ` + imageColumns + ` FROM images WHERE id = ?`

// GetImageByID fetches an image by primary key.
func (q *Queries) GetImageByID(ctx context.Context, id int64) (Image, error) {
	return scanImage(q.db.QueryRowContext(ctx, getImageByID, id))
}

const updateImage = `
UPDATE images
SET title = ?, image_url = ?, description = ?, page_name = ?, is_active = ?, sort_order = ?
WHERE id = ?
RETURNING ` + imageColumns

// UpdateImageParams holds the fields for UpdateImage.
type UpdateImageParams struct {
	Title       string
	ImageURL    string
	Description string
	PageName    string
	IsActive    bool
	SortOrder   int64
	ID          int64
}

// UpdateImage replaces the mutable fields of an image record.
func (q *Queries) UpdateImage(ctx context.Context, arg UpdateImageParams) (Image, error) {
	return scanImage(q.db.QueryRowContext(ctx, updateImage,
		arg.Title, arg.ImageURL, arg.Description, arg.PageName,
		arg.IsActive, arg.SortOrder, arg.ID))
}

const deleteImage = `DELETE FROM images WHERE id = ?`

// DeleteImage removes an image record.
func (q *Queries) DeleteImage(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteImage, id)
	return err
}

const listImages = `
SELECT ` + imageColumns + ` FROM images
ORDER BY page_name, sort_order
LIMIT ? OFFSET ?
`

// ListImagesParams holds pagination bounds for ListImages.
type ListImagesParams struct {
	Limit  int64
	Offset int64
}

// ListImages returns a page of all image records ordered by page and sort order.
func (q *Queries) ListImages(ctx context.Context, arg ListImagesParams) ([]Image, error) {
	rows, err := q.db.QueryContext(ctx, listImages, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Image
	for rows.Next() {
		i, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listActiveImagesByPage = `
SELECT ` + imageColumns + ` FROM images
WHERE page_name = ? AND is_active = 1
ORDER BY sort_order
`

// ListActiveImagesByPage returns the active images for a page, ascending by sort order.
func (q *Queries) ListActiveImagesByPage(ctx context.Context, pageName string) ([]Image, error) {
	rows, err := q.db.QueryContext(ctx, listActiveImagesByPage, pageName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Image
	for rows.Next() {
		i, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countImages = `SELECT COUNT(*) FROM images`

// CountImages returns the total number of image records.
func (q *Queries) CountImages(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countImages).Scan(&count)
	return count, err
}
