package repositories

import (
	"context"
	"database/sql"

	"garageFront/internal/models"
)

// SessionRepository stores refresh sessions in MySQL. Tokens have the form
// "<session id>.<secret>"; only a bcrypt hash of the secret is persisted.
type SessionRepository struct {
	DB *sql.DB
}

// CreateSession inserts a session row, replacing any previous session with
// the same id.
func (r *SessionRepository) CreateSession(ctx context.Context, id string, s models.Session) error {
	_, err := r.DB.ExecContext(ctx, `
		REPLACE INTO sessions (id, subscriber_id, business_id, role, refresh_hash, expires_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		id, s.SubscriberID, s.BusinessID, s.Role, s.RefreshHash, s.ExpiresAt)
	return err
}

// GetSessionByID loads a session row.
func (r *SessionRepository) GetSessionByID(ctx context.Context, id string) (models.Session, error) {
	var s models.Session
	err := r.DB.QueryRowContext(ctx, `
		SELECT subscriber_id, business_id, role, refresh_hash, expires_at
		FROM sessions WHERE id = ?`, id).
		Scan(&s.SubscriberID, &s.BusinessID, &s.Role, &s.RefreshHash, &s.ExpiresAt)
	if err == sql.ErrNoRows {
		return models.Session{}, models.ErrNoRecord
	}
	if err != nil {
		return models.Session{}, err
	}
	return s, nil
}

// DeleteSession removes a session row.
func (r *SessionRepository) DeleteSession(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	return err
}
