package store

import (
	"context"
	"time"
)

const submissionColumns = `id, name, email, subject, message, submitted_at, is_read`

func scanSubmission(s interface{ Scan(...any) error }) (ContactSubmission, error) {
	var c ContactSubmission
	err := s.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.SubmittedAt, &c.IsRead)
	return c, err
}

const createContactSubmission = `
INSERT INTO contact_submissions (name, email, subject, message, submitted_at, is_read)
VALUES (?, ?, ?, ?, ?, 0)
RETURNING ` + submissionColumns

// CreateContactSubmissionParams holds the fields for CreateContactSubmission.
type CreateContactSubmissionParams struct {
	Name        string
	Email       string
	Subject     string
	Message     string
	SubmittedAt time.Time
}

// CreateContactSubmission inserts a new contact-form submission, unread.
func (q *Queries) CreateContactSubmission(ctx context.Context, arg CreateContactSubmissionParams) (ContactSubmission, error) {
	return scanSubmission(q.db.QueryRowContext(ctx, createContactSubmission,
		arg.Name, arg.Email, arg.Subject, arg.Message, arg.SubmittedAt))
}

const getContactSubmissionByID = `SELECT ` + submissionColumns + ` FROM contact_submissions WHERE id = ?`

// GetContactSubmissionByID fetches a submission by primary key.
func (q *Queries) GetContactSubmissionByID(ctx context.Context, id int64) (ContactSubmission, error) {
	return scanSubmission(q.db.QueryRowContext(ctx, getContactSubmissionByID, id))
}

const listContactSubmissions = `
SELECT ` + submissionColumns + ` FROM contact_submissions
ORDER BY submitted_at DESC
`

// ListContactSubmissions returns all submissions, newest first.
func (q *Queries) ListContactSubmissions(ctx context.Context) ([]ContactSubmission, error) {
	rows, err := q.db.QueryContext(ctx, listContactSubmissions)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ContactSubmission
	for rows.Next() {
		c, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

const listRecentContactSubmissions = `
SELECT ` + submissionColumns + ` FROM contact_submissions
ORDER BY submitted_at DESC
LIMIT ?
`

// ListRecentContactSubmissions returns the N most recent submissions.
func (q *Queries) ListRecentContactSubmissions(ctx context.Context, limit int64) ([]ContactSubmission, error) {
	rows, err := q.db.QueryContext(ctx, listRecentContactSubmissions, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ContactSubmission
	for rows.Next() {
		c, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

const markSubmissionRead = `
UPDATE contact_submissions SET is_read = 1 WHERE id = ?
`

// MarkSubmissionRead flags a submission as read. Idempotent.
func (q *Queries) MarkSubmissionRead(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, markSubmissionRead, id)
	return err
}

const countContactSubmissions = `SELECT COUNT(*) FROM contact_submissions`

// CountContactSubmissions returns the total number of submissions.
func (q *Queries) CountContactSubmissions(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countContactSubmissions).Scan(&count)
	return count, err
}

const countUnreadContactSubmissions = `SELECT COUNT(*) FROM contact_submissions WHERE is_read = 0`

// CountUnreadContactSubmissions returns the number of unread submissions.
func (q *Queries) CountUnreadContactSubmissions(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countUnreadContactSubmissions).Scan(&count)
	return count, err
}
