package usecase

import (
	"context"
	"fmt"
	"strings"

	"portfolio-backend/internal/domain"
	linkusecase "portfolio-backend/internal/links/usecase"
)

type DeviceDetector interface {
	DetectDevice(userAgent string) string
}

type RefererClassifier interface {
	ClassifySource(referer string) string
}

// Recorder appends click events, enriched with device type and traffic source.
type Recorder struct {
	repo     ClickRepository
	device   DeviceDetector
	referers RefererClassifier
}

func NewRecorder(repo ClickRepository, device DeviceDetector, referers RefererClassifier) *Recorder {
	return &Recorder{repo: repo, device: device, referers: referers}
}

var _ linkusecase.ClickRecorder = (*Recorder)(nil)

// Record stores one click. An empty referer is stored as NULL, meaning direct traffic.
func (r *Recorder) Record(ctx context.Context, click domain.ClickEvent) error {
	if strings.TrimSpace(click.LinkID) == "" {
		return fmt.Errorf("%w: link id is required", domain.ErrValidation)
	}

	referer := ""
	if click.Referer != nil {
		referer = strings.TrimSpace(*click.Referer)
	}
	if referer == "" {
		click.Referer = nil
	} else {
		click.Referer = &referer
	}

	click.DeviceType = r.device.DetectDevice(click.UserAgent)
	click.TrafficSource = r.referers.ClassifySource(referer)

	return r.repo.InsertClick(ctx, click)
}
