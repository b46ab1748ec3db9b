package store

import (
	"context"
	"time"
)

const contentColumns = `id, page_name, content, meta_title, meta_description, updated_at`

const getPageContent = `
SELECT ` + contentColumns + ` FROM page_content WHERE page_name = ?
`

// GetPageContent fetches the stored content for a page by its unique name.
func (q *Queries) GetPageContent(ctx context.Context, pageName string) (PageContent, error) {
	row := q.db.QueryRowContext(ctx, getPageContent, pageName)
	var c PageContent
	err := row.Scan(&c.ID, &c.PageName, &c.Content, &c.MetaTitle, &c.MetaDescription, &c.UpdatedAt)
	return c, err
}

const upsertPageContent = `
INSERT INTO page_content (page_name, content, meta_title, meta_description, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (page_name) DO UPDATE SET
	content = excluded.content,
	meta_title = excluded.meta_title,
	meta_description = excluded.meta_description,
	updated_at = excluded.updated_at
RETURNING ` + contentColumns

// UpsertPageContentParams holds the fields for UpsertPageContent.
type UpsertPageContentParams struct {
	PageName        string
	Content         string
	MetaTitle       string
	MetaDescription string
	UpdatedAt       time.Time
}

// UpsertPageContent creates or replaces the content row for a page.
func (q *Queries) UpsertPageContent(ctx context.Context, arg UpsertPageContentParams) (PageContent, error) {
	row := q.db.QueryRowContext(ctx, upsertPageContent,
		arg.PageName, arg.Content, arg.MetaTitle, arg.MetaDescription, arg.UpdatedAt)
	var c PageContent
	err := row.Scan(&c.ID, &c.PageName, &c.Content, &c.MetaTitle, &c.MetaDescription, &c.UpdatedAt)
	return c, err
}

const listPageContent = `
SELECT ` + contentColumns + ` FROM page_content ORDER BY page_name
`

// ListPageContent returns all stored page content rows ordered by page name.
func (q *Queries) ListPageContent(ctx context.Context) ([]PageContent, error) {
	rows, err := q.db.QueryContext(ctx, listPageContent)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []PageContent
	for rows.Next() {
		var c PageContent
		if err := rows.Scan(&c.ID, &c.PageName, &c.Content, &c.MetaTitle, &c.MetaDescription, &c.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

const countPageContent = `SELECT COUNT(*) FROM page_content`

// CountPageContent returns the number of stored page content rows.
func (q *Queries) CountPageContent(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countPageContent).Scan(&count)
	return count, err
}
