package domain

import (
	"context"

	"go-investment-backend/pkg/mailer"
)

// Attachment is one uploaded file, buffered in full before dispatch.
type Attachment struct {
	Filename string
	Content  []byte
}

// ContactSubmission represents a contact form submission. The four tagged
// fields plus PrivacyAgreed form the required-field gate; everything else is
// optional and rendered with an "N/A" fallback. Email and phone are checked
// for presence only, matching what the form accepts.
type ContactSubmission struct {
	Name        string `validate:"required"`
	Email       string `validate:"required"`
	Phone       string `validate:"required"`
	Message     string `validate:"required"`
	RequestType string
	Company     string
	JobTitle    string
	City        string
	// Both consents arrive as the literal strings "true"/"false"
	PrivacyAgreed    bool
	NewsletterAgreed bool
	Attachments      []Attachment
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SubmitContact validates the submission, composes the outbound email
	// and dispatches it over the relay
	SubmitContact(ctx context.Context, sub *ContactSubmission) error
}

// Mailer is the outbound relay port. Verify is called before Send; when
// verification fails no send attempt is made. Send returns the provider
// message identifier for logging.
type Mailer interface {
	Verify(ctx context.Context) error
	Send(ctx context.Context, email *mailer.OutboundEmail) (string, error)
}
