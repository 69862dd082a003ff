package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"portfolio-backend/internal/domain/event"
	"portfolio-backend/internal/infra/eventbus"

	"go.uber.org/zap"
)

var contactTemplate = template.Must(template.New("contact").Parse(`
<h3>New Contact Form Submission</h3>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p><strong>Message:</strong></p>
<p>{{range $i, $line := .Lines}}{{if $i}}<br>{{end}}{{$line}}{{end}}</p>
`))

// ContactNotifier e-mails the site owner about new contact messages.
type ContactNotifier struct {
	mailer Mailer
	from   string
	to     string
	logger *zap.Logger
}

// NewContactNotifier creates a notifier. When to is empty the mail goes back to the sender.
func NewContactNotifier(mailer Mailer, from, to string, logger *zap.Logger) *ContactNotifier {
	return &ContactNotifier{mailer: mailer, from: from, to: to, logger: logger}
}

var _ eventbus.EventHandler = (*ContactNotifier)(nil)

func (n *ContactNotifier) HandlerName() string {
	return "contact_notifier"
}

func (n *ContactNotifier) EventName() string {
	return event.ContactSubmittedName
}

// Handle returns send failures so the router retries them. Events that cannot
// be decoded or rendered are logged and skipped.
func (n *ContactNotifier) Handle(ctx context.Context, envelope *eventbus.EventEnvelope) error {
	var evt event.ContactSubmitted
	if err := json.Unmarshal(envelope.Payload, &evt); err != nil {
		n.logger.Error("failed to decode contact event",
			zap.String("event_id", envelope.EventID),
			zap.Error(err),
		)
		return nil
	}

	mail, err := n.render(evt)
	if err != nil {
		n.logger.Error("failed to render contact email", zap.Int64("message_id", evt.MessageID), zap.Error(err))
		return nil
	}

	if err := n.mailer.Send(ctx, mail); err != nil {
		n.logger.Warn("failed to send contact email",
			zap.Int64("message_id", evt.MessageID),
			zap.Error(err),
		)
		return fmt.Errorf("send contact email %d: %w", evt.MessageID, err)
	}

	n.logger.Info("contact email sent", zap.Int64("message_id", evt.MessageID))
	return nil
}

func (n *ContactNotifier) render(evt event.ContactSubmitted) (Mail, error) {
	var body bytes.Buffer
	err := contactTemplate.Execute(&body, struct {
		Name, Email, Subject string
		Lines                []string
	}{
		Name:    evt.Name,
		Email:   evt.Email,
		Subject: evt.Subject,
		Lines:   strings.Split(strings.ReplaceAll(evt.Message, "\r\n", "\n"), "\n"),
	})
	if err != nil {
		return Mail{}, err
	}

	to := n.to
	if to == "" {
		to = evt.Email
	}
	return Mail{
		From:    n.from,
		To:      to,
		Subject: "Portfolio Contact: " + evt.Subject,
		HTML:    body.String(),
	}, nil
}
