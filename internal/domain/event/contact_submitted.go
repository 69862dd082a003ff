package event

import (
	"strconv"
	"time"
)

// ContactSubmittedName is the name of the ContactSubmitted event.
const ContactSubmittedName = "contact.submitted"

// Compile-time interface check
var _ Event = ContactSubmitted{}

// ContactSubmitted is raised after a contact message has been stored.
type ContactSubmitted struct {
	Base
	MessageID int64     `json:"message_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// NewContactSubmitted creates a new ContactSubmitted event.
func NewContactSubmitted(id int64, name, email, subject, message string, createdAt time.Time) ContactSubmitted {
	return ContactSubmitted{
		Base:      NewBase(strconv.FormatInt(id, 10), createdAt),
		MessageID: id,
		Name:      name,
		Email:     email,
		Subject:   subject,
		Message:   message,
		CreatedAt: createdAt,
	}
}

// EventName returns the event name.
func (e ContactSubmitted) EventName() string {
	return ContactSubmittedName
}
