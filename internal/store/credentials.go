package store

import (
	"context"
	"database/sql"
	"time"
)

const credentialsColumns = `id, email_address, app_password, smtp_server, smtp_port, from_name, created_at, updated_at`

func scanCredentials(row *sql.Row) (EmailCredentials, error) {
	var c EmailCredentials
	err := row.Scan(&c.ID, &c.EmailAddress, &c.AppPassword, &c.SMTPServer,
		&c.SMTPPort, &c.FromName, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

const getEmailCredentials = `SELECT ` + credentialsColumns + ` FROM email_credentials WHERE id = 1`

// GetEmailCredentials returns the singleton SMTP credentials row.
// Returns sql.ErrNoRows when outbound email has not been configured.
func (q *Queries) GetEmailCredentials(ctx context.Context) (EmailCredentials, error) {
	return scanCredentials(q.db.QueryRowContext(ctx, getEmailCredentials))
}

const upsertEmailCredentials = `
INSERT INTO email_credentials (
	id, email_address, app_password, smtp_server, smtp_port, from_name, created_at, updated_at
) VALUES (1, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
	email_address = excluded.email_address,
	app_password = excluded.app_password,
	smtp_server = excluded.smtp_server,
	smtp_port = excluded.smtp_port,
	from_name = excluded.from_name,
	updated_at = excluded.updated_at
RETURNING ` + credentialsColumns

// UpsertEmailCredentialsParams holds the fields for UpsertEmailCredentials.
type UpsertEmailCredentialsParams struct {
	EmailAddress string
	AppPassword  string
	SMTPServer   string
	SMTPPort     int64
	FromName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UpsertEmailCredentials creates or updates the singleton credentials row.
func (q *Queries) UpsertEmailCredentials(ctx context.Context, arg UpsertEmailCredentialsParams) (EmailCredentials, error) {
	row := q.db.QueryRowContext(ctx, upsertEmailCredentials,
		arg.EmailAddress, arg.AppPassword, arg.SMTPServer, arg.SMTPPort,
		arg.FromName, arg.CreatedAt, arg.UpdatedAt)
	return scanCredentials(row)
}
