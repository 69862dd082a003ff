package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/links/usecase"
)

// LinkRepository implements usecase.LinkRepository on SQLite.
type LinkRepository struct {
	db *sql.DB
}

// NewLinkRepository creates a new SQLite-backed link repository
func NewLinkRepository(db *sql.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

// Ensure LinkRepository implements usecase.LinkRepository at compile time
var _ usecase.LinkRepository = (*LinkRepository)(nil)

const linkColumns = `id, link_id, project_name, project_type, original_url, description,
	created_at, expires_at, is_active, click_count`

// Save inserts the link and sets its ID. ClickCount is stored as given so seeded
// links can start from a consistent count.
func (r *LinkRepository) Save(ctx context.Context, link *domain.Link) error {
	const q = `
INSERT INTO generated_links
    (link_id, project_name, project_type, original_url, description, created_at, expires_at, is_active, click_count)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, q,
		link.LinkID,
		link.ProjectName,
		link.ProjectType,
		link.OriginalURL,
		link.Description,
		link.CreatedAt.Unix(),
		unixOrNil(link.ExpiresAt),
		link.IsActive,
		link.ClickCount,
	)
	if err != nil {
		return fmt.Errorf("insert link: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert link: %w", err)
	}
	link.ID = id
	return nil
}

// FindByLinkID retrieves a link by its identifier
func (r *LinkRepository) FindByLinkID(ctx context.Context, linkID string) (*domain.Link, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+linkColumns+` FROM generated_links WHERE link_id = ?`, linkID)

	link, err := ScanLink(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, fmt.Errorf("find link: %w", err)
	}
	return link, nil
}

// SetActive updates the is_active flag
func (r *LinkRepository) SetActive(ctx context.Context, linkID string, active bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE generated_links SET is_active = ? WHERE link_id = ?`, active, linkID)
	if err != nil {
		return fmt.Errorf("update link: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update link: %w", err)
	}
	if n == 0 {
		return domain.ErrLinkNotFound
	}
	return nil
}

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// ScanLink reads the columns listed in linkColumns, in order, plus any extra
// destinations appended after them.
func ScanLink(s Scanner, extra ...any) (*domain.Link, error) {
	var (
		link        domain.Link
		originalURL sql.NullString
		description sql.NullString
		createdAt   int64
		expiresAt   sql.NullInt64
	)

	dest := []any{
		&link.ID,
		&link.LinkID,
		&link.ProjectName,
		&link.ProjectType,
		&originalURL,
		&description,
		&createdAt,
		&expiresAt,
		&link.IsActive,
		&link.ClickCount,
	}
	if err := s.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	if originalURL.Valid {
		link.OriginalURL = &originalURL.String
	}
	if description.Valid {
		link.Description = &description.String
	}
	link.CreatedAt = time.Unix(createdAt, 0).UTC()
	if expiresAt.Valid {
		t := time.Unix(expiresAt.Int64, 0).UTC()
		link.ExpiresAt = &t
	}
	return &link, nil
}

func unixOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Unix()
}
