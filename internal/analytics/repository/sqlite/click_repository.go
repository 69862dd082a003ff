package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"portfolio-backend/internal/analytics/usecase"
	"portfolio-backend/internal/domain"
)

// ClickRepository implements usecase.ClickRepository on SQLite.
type ClickRepository struct {
	db *sql.DB
}

// NewClickRepository creates a new SQLite-backed click repository
func NewClickRepository(db *sql.DB) *ClickRepository {
	return &ClickRepository{db: db}
}

// Ensure ClickRepository implements usecase.ClickRepository at compile time
var _ usecase.ClickRepository = (*ClickRepository)(nil)

// InsertClick bumps the link counter and appends the event in one transaction.
// The counter update runs first so the write lock is taken up front.
func (r *ClickRepository) InsertClick(ctx context.Context, click domain.ClickEvent) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin click tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		`UPDATE generated_links SET click_count = click_count + 1 WHERE link_id = ?`,
		click.LinkID,
	)
	if err != nil {
		return fmt.Errorf("increment click count: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("increment click count: %w", err)
	}
	if n == 0 {
		return domain.ErrLinkNotFound
	}

	_, err = tx.ExecContext(ctx, `
INSERT INTO analytics (link_id, ip_address, user_agent, referer, device_type, traffic_source, clicked_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		click.LinkID,
		click.IPAddress,
		click.UserAgent,
		click.Referer,
		click.DeviceType,
		click.TrafficSource,
		click.ClickedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert click: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit click tx: %w", err)
	}
	return nil
}
