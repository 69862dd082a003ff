package domain

import "time"

// Activity types in the recent activity feed.
const (
	ActivityLinkClick = "link_click"
	ActivityMessage   = "message"
)

// LinkWithClicks is a link together with its click count computed from the event log.
type LinkWithClicks struct {
	Link
	TotalClicks int64 `json:"total_clicks"`
}

type DailyClicks struct {
	Date   string `json:"date"`
	Clicks int64  `json:"clicks"`
}

type DailyVisitors struct {
	Date           string `json:"date"`
	Clicks         int64  `json:"clicks"`
	UniqueVisitors int64  `json:"unique_visitors"`
}

type ProjectTypeStats struct {
	ProjectType string `json:"project_type"`
	Count       int64  `json:"count"`
	TotalClicks int64  `json:"total_clicks"`
}

type TopLink struct {
	LinkID      string    `json:"link_id"`
	ProjectName string    `json:"project_name"`
	ProjectType string    `json:"project_type"`
	ClickCount  int64     `json:"click_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type Engagement struct {
	TotalLinks  int64   `json:"total_links"`
	TotalClicks int64   `json:"total_clicks"`
	AvgClicks   float64 `json:"avg_clicks"`
	ActiveLinks int64   `json:"active_links"`
}

// Activity is one entry of the recent activity feed. Actor holds the visitor IP
// for clicks and the sender e-mail for messages.
type Activity struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Actor       string    `json:"ip_address"`
}

type RefererCount struct {
	Referer string `json:"referer"`
	Count   int64  `json:"count"`
}

// GroupCount is a count for a single group value (device type, traffic source).
type GroupCount struct {
	Value string
	Count int64
}

type BreakdownItem struct {
	Value      string  `json:"value"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type Dashboard struct {
	ClickTrends    []DailyClicks      `json:"clickTrends"`
	ProjectTypes   []ProjectTypeStats `json:"projectTypes"`
	TopLinks       []TopLink          `json:"topLinks"`
	Engagement     Engagement         `json:"engagement"`
	RecentActivity []Activity         `json:"recentActivity"`
}

type LinkAnalytics struct {
	Link           Link            `json:"link"`
	ClickAnalytics []DailyVisitors `json:"clickAnalytics"`
	Referrers      []RefererCount  `json:"referrers"`
	DeviceTypes    []BreakdownItem `json:"deviceTypes"`
	TrafficSources []BreakdownItem `json:"trafficSources"`
}
