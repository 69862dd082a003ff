package domain

import "time"

// Link is a generated project link.
type Link struct {
	ID          int64      `json:"id"`
	LinkID      string     `json:"link_id"`
	ProjectName string     `json:"project_name"`
	ProjectType string     `json:"project_type"`
	OriginalURL *string    `json:"original_url"`
	Description *string    `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
	IsActive    bool       `json:"is_active"`
	ClickCount  int64      `json:"click_count"`
}

// Resolvable reports whether the link may be followed at the given instant.
func (l *Link) Resolvable(now time.Time) bool {
	if !l.IsActive {
		return false
	}
	return l.ExpiresAt == nil || l.ExpiresAt.After(now)
}

// ClickEvent is one recorded resolution of a link.
type ClickEvent struct {
	ID            int64     `json:"id"`
	LinkID        string    `json:"link_id"`
	IPAddress     string    `json:"ip_address"`
	UserAgent     string    `json:"user_agent"`
	Referer       *string   `json:"referer"`
	DeviceType    string    `json:"device_type"`
	TrafficSource string    `json:"traffic_source"`
	ClickedAt     time.Time `json:"clicked_at"`
}
