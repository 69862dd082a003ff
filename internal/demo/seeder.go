// Package demo fills an empty database with plausible links, visits and messages
// so the dashboard has something to show.
package demo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"portfolio-backend/internal/domain"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	linkCount     = 10
	messageCount  = 15
	minClicks     = 10
	maxClicks     = 110
	historyWindow = 30 * 24 * time.Hour
	messageWindow = 14 * 24 * time.Hour
)

var projectTypes = []string{"Data Analysis", "Machine Learning", "Web Development", "Visualization", "Research"}

var projectNames = []string{
	"E-commerce Sales Analysis",
	"Customer Behavior Prediction",
	"Portfolio Website",
	"COVID-19 Data Visualization",
	"Stock Market Analysis",
	"Social Media Sentiment Analysis",
	"Weather Prediction Model",
	"E-learning Platform",
	"Sales Dashboard",
	"Predictive Maintenance System",
}

// Empty string means direct traffic.
var referers = []string{
	"https://google.com",
	"https://linkedin.com",
	"https://github.com",
	"https://twitter.com",
	"",
	"https://facebook.com",
	"https://reddit.com",
}

type LinkRepository interface {
	Save(ctx context.Context, link *domain.Link) error
}

type ClickRecorder interface {
	Record(ctx context.Context, click domain.ClickEvent) error
}

type MessageRepository interface {
	Save(ctx context.Context, msg *domain.ContactMessage) error
}

// Summary reports what Seed created.
type Summary struct {
	Links    int
	Clicks   int
	Messages int
}

type Seeder struct {
	links    LinkRepository
	clicks   ClickRecorder
	messages MessageRepository
	faker    *gofakeit.Faker
	logger   *zap.Logger
	nowFunc  func() time.Time
}

// NewSeeder creates a seeder. A zero seed picks a random one.
func NewSeeder(links LinkRepository, clicks ClickRecorder, messages MessageRepository, seed int64, logger *zap.Logger) *Seeder {
	return &Seeder{
		links:    links,
		clicks:   clicks,
		messages: messages,
		faker:    gofakeit.New(seed),
		logger:   logger,
		nowFunc:  time.Now,
	}
}

func (s *Seeder) WithClock(now func() time.Time) *Seeder {
	s.nowFunc = now
	return s
}

// Seed creates the demo links with their click history and a batch of contact messages.
// Clicks go through the recorder so counters match the event log.
func (s *Seeder) Seed(ctx context.Context) (Summary, error) {
	var sum Summary
	now := s.nowFunc().UTC()

	for i := 0; i < linkCount; i++ {
		link := s.newLink(projectNames[i%len(projectNames)], now)
		if err := s.links.Save(ctx, link); err != nil {
			return sum, fmt.Errorf("seed link %q: %w", link.ProjectName, err)
		}
		sum.Links++

		n := s.faker.Number(minClicks, maxClicks)
		for j := 0; j < n; j++ {
			if err := s.clicks.Record(ctx, s.newClick(link, now)); err != nil {
				return sum, fmt.Errorf("seed click for %s: %w", link.LinkID, err)
			}
		}
		sum.Clicks += n
	}

	for i := 0; i < messageCount; i++ {
		msg := s.newMessage(now)
		if err := s.messages.Save(ctx, msg); err != nil {
			return sum, fmt.Errorf("seed message: %w", err)
		}
		sum.Messages++
	}

	s.logger.Info("demo data generated",
		zap.Int("links", sum.Links),
		zap.Int("clicks", sum.Clicks),
		zap.Int("messages", sum.Messages),
	)
	return sum, nil
}

func (s *Seeder) newLink(name string, now time.Time) *domain.Link {
	projectType := s.faker.RandomString(projectTypes)
	url := "https://github.com/" + s.faker.Username() + "/" + strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	description := fmt.Sprintf("A comprehensive %s project focusing on %s.",
		strings.ToLower(projectType), strings.ToLower(name))

	return &domain.Link{
		LinkID:      uuid.NewString(),
		ProjectName: name,
		ProjectType: projectType,
		OriginalURL: &url,
		Description: &description,
		CreatedAt:   s.faker.DateRange(now.Add(-historyWindow), now).Truncate(time.Second),
		IsActive:    s.faker.Float64Range(0, 1) > 0.1,
	}
}

// newClick picks a visit time between the link's creation and now.
func (s *Seeder) newClick(link *domain.Link, now time.Time) domain.ClickEvent {
	click := domain.ClickEvent{
		LinkID:    link.LinkID,
		IPAddress: s.faker.IPv4Address(),
		UserAgent: s.faker.UserAgent(),
		ClickedAt: s.faker.DateRange(link.CreatedAt, now).Truncate(time.Second),
	}
	if ref := s.faker.RandomString(referers); ref != "" {
		click.Referer = &ref
	}
	return click
}

func (s *Seeder) newMessage(now time.Time) *domain.ContactMessage {
	return &domain.ContactMessage{
		Name:      s.faker.Name(),
		Email:     s.faker.Email(),
		Subject:   strings.TrimSuffix(s.faker.Sentence(5), "."),
		Message:   s.faker.Paragraph(1, 3, 12, " "),
		CreatedAt: s.faker.DateRange(now.Add(-messageWindow), now).Truncate(time.Second),
		Status:    domain.MessageStatusUnread,
	}
}
