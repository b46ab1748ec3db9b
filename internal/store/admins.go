package store

import (
	"context"
	"time"
)

const createAdmin = `
INSERT INTO admins (username, email, password_hash, created_at)
VALUES (?, ?, ?, ?)
RETURNING id, username, email, password_hash, created_at
`

// CreateAdminParams holds the fields for CreateAdmin.
type CreateAdminParams struct {
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// CreateAdmin inserts a new administrator account.
func (q *Queries) CreateAdmin(ctx context.Context, arg CreateAdminParams) (Admin, error) {
	row := q.db.QueryRowContext(ctx, createAdmin,
		arg.Username, arg.Email, arg.PasswordHash, arg.CreatedAt)
	var a Admin
	err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt)
	return a, err
}

const getAdminByID = `
SELECT id, username, email, password_hash, created_at
FROM admins WHERE id = ?
`

// GetAdminByID fetches an administrator by primary key.
func (q *Queries) GetAdminByID(ctx context.Context, id int64) (Admin, error) {
	row := q.db.QueryRowContext(ctx, getAdminByID, id)
	var a Admin
	err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt)
	return a, err
}

const getAdminByUsername = `
SELECT id, username, email, password_hash, created_at
FROM admins WHERE username = ?
`

// GetAdminByUsername fetches an administrator by unique username.
func (q *Queries) GetAdminByUsername(ctx context.Context, username string) (Admin, error) {
	row := q.db.QueryRowContext(ctx, getAdminByUsername, username)
	var a Admin
	err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt)
	return a, err
}

const updateAdminPassword = `
UPDATE admins SET password_hash = ? WHERE id = ?
`

// UpdateAdminPasswordParams holds the fields for UpdateAdminPassword.
type UpdateAdminPasswordParams struct {
	PasswordHash string
	ID           int64
}

// UpdateAdminPassword replaces an administrator's password hash.
func (q *Queries) UpdateAdminPassword(ctx context.Context, arg UpdateAdminPasswordParams) error {
	_, err := q.db.ExecContext(ctx, updateAdminPassword, arg.PasswordHash, arg.ID)
	return err
}

const countAdmins = `SELECT COUNT(*) FROM admins`

// CountAdmins returns the number of administrator accounts.
func (q *Queries) CountAdmins(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countAdmins).Scan(&count)
	return count, err
}
