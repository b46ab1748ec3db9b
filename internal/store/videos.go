package store

import (
	"context"
	"time"
)

const videoColumns = `id, title, video_url, description, video_type, page_name, is_active, sort_order, created_at`

func scanVideo(s interface{ Scan(...any) error }) (Video, error) {
	var v Video
	err := s.Scan(&v.ID, &v.Title, &v.VideoURL, &v.Description, &v.VideoType,
		&v.PageName, &v.IsActive, &v.SortOrder, &v.CreatedAt)
	return v, err
}

const createVideo = `
INSERT INTO videos (title, video_url, description, video_type, page_name, is_active, sort_order, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + videoColumns

// CreateVideoParams holds the fields for CreateVideo.
type CreateVideoParams struct {
	Title       string
	VideoURL    string
	Description string
	VideoType   string
	PageName    string
	IsActive    bool
	SortOrder   int64
	CreatedAt   time.Time
}

// CreateVideo inserts a new video record.
func (q *Queries) CreateVideo(ctx context.Context, arg CreateVideoParams) (Video, error) {
	return scanVideo(q.db.QueryRowContext(ctx, createVideo,
		arg.Title, arg.VideoURL, arg.Description, arg.VideoType, arg.PageName,
		arg.IsActive, arg.SortOrder, arg.CreatedAt))
}

const getVideoByID = `SELECT ` + videoColumns + ` FROM videos WHERE id = ?`

// GetVideoByID fetches a video by primary key.
func (q *Queries) GetVideoByID(ctx context.Context, id int64) (Video, error) {
	return scanVideo(q.db.QueryRowContext(ctx, getVideoByID, id))
}

const updateVideo = `
UPDATE videos
SET title = ?, video_url = ?, description = ?, video_type = ?, page_name = ?, is_active = ?, sort_order = ?
WHERE id = ?
RETURNING ` + videoColumns

// UpdateVideoParams holds the fields for UpdateVideo.
type UpdateVideoParams struct {
	Title       string
	VideoURL    string
	Description string
	VideoType   string
	PageName    string
	IsActive    bool
	SortOrder   int64
	ID          int64
}

// UpdateVideo replaces the mutable fields of a video record.
func (q *Queries) UpdateVideo(ctx context.Context, arg UpdateVideoParams) (Video, error) {
	return scanVideo(q.db.QueryRowContext(ctx, updateVideo,
		arg.Title, arg.VideoURL, arg.Description, arg.VideoType, arg.PageName,
		arg.IsActive, arg.SortOrder, arg.ID))
}

const deleteVideo = `DELETE FROM videos WHERE id = ?`

// DeleteVideo removes a video record.
func (q *Queries) DeleteVideo(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteVideo, id)
	return err
}

const listVideos = `
SELECT ` + videoColumns + ` FROM videos
ORDER BY page_name, sort_order
LIMIT ? OFFSET ?
`

// ListVideosParams holds pagination bounds for ListVideos.
type ListVideosParams struct {
	Limit  int64
	Offset int64
}

// ListVideos returns a page of all video records ordered by page and sort order.
func (q *Queries) ListVideos(ctx context.Context, arg ListVideosParams) ([]Video, error) {
	rows, err := q.db.QueryContext(ctx, listVideos, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Video
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, rows.Err()
}

const listActiveVideosByPage = `
SELECT ` + videoColumns + ` FROM videos
WHERE page_name = ? AND is_active = 1
ORDER BY sort_order
`

// ListActiveVideosByPage returns the active videos for a page, ascending by sort order.
func (q *Queries) ListActiveVideosByPage(ctx context.Context, pageName string) ([]Video, error) {
	rows, err := q.db.QueryContext(ctx, listActiveVideosByPage, pageName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Video
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, rows.Err()
}

const countVideos = `SELECT COUNT(*) FROM videos`

// CountVideos returns the total number of video records.
func (q *Queries) CountVideos(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countVideos).Scan(&count)
	return count, err
}
