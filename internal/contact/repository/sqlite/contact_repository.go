package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"portfolio-backend/internal/contact/usecase"
	"portfolio-backend/internal/domain"
)

// ContactRepository implements usecase.ContactRepository on SQLite.
type ContactRepository struct {
	db *sql.DB
}

// NewContactRepository creates a new SQLite-backed contact repository
func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

var _ usecase.ContactRepository = (*ContactRepository)(nil)

func (r *ContactRepository) Save(ctx context.Context, msg *domain.ContactMessage) error {
	status := msg.Status
	if status == "" {
		status = domain.MessageStatusUnread
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO contact_messages (name, email, subject, message, created_at, status)
VALUES (?, ?, ?, ?, ?, ?)`,
		msg.Name, msg.Email, msg.Subject, msg.Message, msg.CreatedAt.Unix(), status,
	)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	msg.ID = id
	msg.Status = status
	return nil
}
