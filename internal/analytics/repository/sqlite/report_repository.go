package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"portfolio-backend/internal/analytics/usecase"
	"portfolio-backend/internal/domain"
	linksqlite "portfolio-backend/internal/links/repository/sqlite"
)

// ReportRepository implements usecase.ReportRepository on SQLite.
type ReportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a new SQLite-backed report repository
func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

var _ usecase.ReportRepository = (*ReportRepository)(nil)

const linkWithClicksQuery = `
SELECT gl.id, gl.link_id, gl.project_name, gl.project_type, gl.original_url, gl.description,
       gl.created_at, gl.expires_at, gl.is_active, gl.click_count,
       COUNT(a.id) AS total_clicks
FROM generated_links gl
LEFT JOIN analytics a ON a.link_id = gl.link_id`

// LinkWithClicks returns one link; total clicks come from the event log, not the counter.
func (r *ReportRepository) LinkWithClicks(ctx context.Context, linkID string) (*domain.LinkWithClicks, error) {
	row := r.db.QueryRowContext(ctx, linkWithClicksQuery+`
WHERE gl.link_id = ?
GROUP BY gl.id`, linkID)

	var total int64
	link, err := linksqlite.ScanLink(row, &total)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, fmt.Errorf("query link summary: %w", err)
	}
	return &domain.LinkWithClicks{Link: *link, TotalClicks: total}, nil
}

// AllLinksWithClicks returns all links, newest first
func (r *ReportRepository) AllLinksWithClicks(ctx context.Context) ([]domain.LinkWithClicks, error) {
	rows, err := r.db.QueryContext(ctx, linkWithClicksQuery+`
GROUP BY gl.id
ORDER BY gl.created_at DESC, gl.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query links: %w", err)
	}
	defer rows.Close()

	result := []domain.LinkWithClicks{}
	for rows.Next() {
		var total int64
		link, err := linksqlite.ScanLink(rows, &total)
		if err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		result = append(result, domain.LinkWithClicks{Link: *link, TotalClicks: total})
	}
	return result, rows.Err()
}

// AllMessages returns all contact messages, newest first
func (r *ReportRepository) AllMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, email, subject, message, created_at, status
FROM contact_messages
ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	result := []domain.ContactMessage{}
	for rows.Next() {
		var (
			m         domain.ContactMessage
			createdAt int64
		)
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &createdAt, &m.Status); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		m.CreatedAt = time.Unix(createdAt, 0).UTC()
		result = append(result, m)
	}
	return result, rows.Err()
}

// DailyClicksSince counts clicks per UTC day from since onwards, oldest day first.
func (r *ReportRepository) DailyClicksSince(ctx context.Context, since time.Time) ([]domain.DailyClicks, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT date(clicked_at, 'unixepoch') AS day, COUNT(*) AS clicks
FROM analytics
WHERE clicked_at >= ?
GROUP BY day
ORDER BY day`, since.Unix())
	if err != nil {
		return nil, fmt.Errorf("query click trends: %w", err)
	}
	defer rows.Close()

	result := []domain.DailyClicks{}
	for rows.Next() {
		var d domain.DailyClicks
		if err := rows.Scan(&d.Date, &d.Clicks); err != nil {
			return nil, fmt.Errorf("scan click trend: %w", err)
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

// ProjectTypeStats groups links by project type, most clicked type first
func (r *ReportRepository) ProjectTypeStats(ctx context.Context) ([]domain.ProjectTypeStats, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT project_type, COUNT(*) AS count, COALESCE(SUM(click_count), 0) AS total_clicks
FROM generated_links
GROUP BY project_type
ORDER BY total_clicks DESC, project_type`)
	if err != nil {
		return nil, fmt.Errorf("query project types: %w", err)
	}
	defer rows.Close()

	result := []domain.ProjectTypeStats{}
	for rows.Next() {
		var p domain.ProjectTypeStats
		if err := rows.Scan(&p.ProjectType, &p.Count, &p.TotalClicks); err != nil {
			return nil, fmt.Errorf("scan project type: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// TopActiveLinks returns the most clicked active links
func (r *ReportRepository) TopActiveLinks(ctx context.Context, limit int) ([]domain.TopLink, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT link_id, project_name, project_type, click_count, created_at
FROM generated_links
WHERE is_active = 1
ORDER BY click_count DESC, created_at DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query top links: %w", err)
	}
	defer rows.Close()

	result := []domain.TopLink{}
	for rows.Next() {
		var (
			l         domain.TopLink
			createdAt int64
		)
		if err := rows.Scan(&l.LinkID, &l.ProjectName, &l.ProjectType, &l.ClickCount, &createdAt); err != nil {
			return nil, fmt.Errorf("scan top link: %w", err)
		}
		l.CreatedAt = time.Unix(createdAt, 0).UTC()
		result = append(result, l)
	}
	return result, rows.Err()
}

// Engagement computes the scalar metrics over all links
func (r *ReportRepository) Engagement(ctx context.Context) (*domain.Engagement, error) {
	var e domain.Engagement
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*),
       COALESCE(SUM(click_count), 0),
       COALESCE(AVG(click_count), 0.0),
       COUNT(CASE WHEN is_active = 1 THEN 1 END)
FROM generated_links`).Scan(&e.TotalLinks, &e.TotalClicks, &e.AvgClicks, &e.ActiveLinks)
	if err != nil {
		return nil, fmt.Errorf("query engagement: %w", err)
	}
	return &e, nil
}

// RecentClicks returns click activity since the given instant, newest first
func (r *ReportRepository) RecentClicks(ctx context.Context, since time.Time, limit int) ([]domain.Activity, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT gl.project_name, a.clicked_at, a.ip_address
FROM analytics a
JOIN generated_links gl ON a.link_id = gl.link_id
WHERE a.clicked_at >= ?
ORDER BY a.clicked_at DESC, a.id DESC
LIMIT ?`, since.Unix(), limit)
	if err != nil {
		return nil, fmt.Errorf("query recent clicks: %w", err)
	}
	defer rows.Close()

	result := []domain.Activity{}
	for rows.Next() {
		var (
			a  domain.Activity
			ts int64
		)
		if err := rows.Scan(&a.Description, &ts, &a.Actor); err != nil {
			return nil, fmt.Errorf("scan recent click: %w", err)
		}
		a.Type = domain.ActivityLinkClick
		a.Timestamp = time.Unix(ts, 0).UTC()
		result = append(result, a)
	}
	return result, rows.Err()
}

// RecentMessages returns contact activity since the given instant, newest first
func (r *ReportRepository) RecentMessages(ctx context.Context, since time.Time, limit int) ([]domain.Activity, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT name, email, created_at
FROM contact_messages
WHERE created_at >= ?
ORDER BY created_at DESC, id DESC
LIMIT ?`, since.Unix(), limit)
	if err != nil {
		return nil, fmt.Errorf("query recent messages: %w", err)
	}
	defer rows.Close()

	result := []domain.Activity{}
	for rows.Next() {
		var (
			name string
			a    domain.Activity
			ts   int64
		)
		if err := rows.Scan(&name, &a.Actor, &ts); err != nil {
			return nil, fmt.Errorf("scan recent message: %w", err)
		}
		a.Type = domain.ActivityMessage
		a.Description = "New message from " + name
		a.Timestamp = time.Unix(ts, 0).UTC()
		result = append(result, a)
	}
	return result, rows.Err()
}

// DailyVisitors returns clicks and distinct IPs per UTC day for a link, most recent day first
func (r *ReportRepository) DailyVisitors(ctx context.Context, linkID string, limit int) ([]domain.DailyVisitors, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT date(clicked_at, 'unixepoch') AS day, COUNT(*) AS clicks, COUNT(DISTINCT ip_address) AS unique_visitors
FROM analytics
WHERE link_id = ?
GROUP BY day
ORDER BY day DESC
LIMIT ?`, linkID, limit)
	if err != nil {
		return nil, fmt.Errorf("query daily visitors: %w", err)
	}
	defer rows.Close()

	result := []domain.DailyVisitors{}
	for rows.Next() {
		var d domain.DailyVisitors
		if err := rows.Scan(&d.Date, &d.Clicks, &d.UniqueVisitors); err != nil {
			return nil, fmt.Errorf("scan daily visitors: %w", err)
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

// TopReferers returns the most frequent non-null referers of a link
func (r *ReportRepository) TopReferers(ctx context.Context, linkID string, limit int) ([]domain.RefererCount, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT referer, COUNT(*) AS count
FROM analytics
WHERE link_id = ? AND referer IS NOT NULL
GROUP BY referer
ORDER BY count DESC, referer
LIMIT ?`, linkID, limit)
	if err != nil {
		return nil, fmt.Errorf("query referers: %w", err)
	}
	defer rows.Close()

	result := []domain.RefererCount{}
	for rows.Next() {
		var rc domain.RefererCount
		if err := rows.Scan(&rc.Referer, &rc.Count); err != nil {
			return nil, fmt.Errorf("scan referer: %w", err)
		}
		result = append(result, rc)
	}
	return result, rows.Err()
}

// CountByDevice returns click counts grouped by device type
func (r *ReportRepository) CountByDevice(ctx context.Context, linkID string) ([]domain.GroupCount, error) {
	return r.countBy(ctx, "device_type", linkID)
}

// CountBySource returns click counts grouped by traffic source
func (r *ReportRepository) CountBySource(ctx context.Context, linkID string) ([]domain.GroupCount, error) {
	return r.countBy(ctx, "traffic_source", linkID)
}

// countBy groups a link's clicks by column. column is never user input.
func (r *ReportRepository) countBy(ctx context.Context, column, linkID string) ([]domain.GroupCount, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT `+column+` AS value, COUNT(*) AS count
FROM analytics
WHERE link_id = ?
GROUP BY value
ORDER BY count DESC, value`, linkID)
	if err != nil {
		return nil, fmt.Errorf("query %s breakdown: %w", column, err)
	}
	defer rows.Close()

	result := []domain.GroupCount{}
	for rows.Next() {
		var g domain.GroupCount
		if err := rows.Scan(&g.Value, &g.Count); err != nil {
			return nil, fmt.Errorf("scan %s breakdown: %w", column, err)
		}
		result = append(result, g)
	}
	return result, rows.Err()
}
