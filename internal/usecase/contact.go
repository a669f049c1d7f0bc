package usecase

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"go-investment-backend/internal/domain"
	"go-investment-backend/pkg/apperror"
	"go-investment-backend/pkg/logger"
	"go-investment-backend/pkg/mailer"

	"github.com/go-playground/validator/v10"
)

type contactUsecase struct {
	mail     domain.Mailer
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(mail domain.Mailer, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		mail:     mail,
		validate: validate,
	}
}

// SubmitContact validates the submission, composes the outbound email and
// dispatches it. Validation failures never touch the relay.
func (uc *contactUsecase) SubmitContact(ctx context.Context, sub *domain.ContactSubmission) error {
	// The gate is pass/fail as a whole: callers are not told which field
	// was missing, only the failure class
	if err := uc.validate.Struct(sub); err != nil || !sub.PrivacyAgreed {
		return apperror.BadRequest("missing required fields")
	}

	email, err := composeContactEmail(sub)
	if err != nil {
		return apperror.Internal(err)
	}

	if err := uc.mail.Verify(ctx); err != nil {
		return fmt.Errorf("relay verification failed: %w", err)
	}

	messageID, err := uc.mail.Send(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	logger.Log.Info("contact email dispatched",
		"message_id", messageID,
		"request_type", sub.RequestType,
	)
	return nil
}

// contactEmailTemplate is the HTML template for contact form emails.
// html/template escapes every interpolated field, so submitted text cannot
// inject markup into the rendered message.
const contactEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Request</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1a3c34; color: white; padding: 20px; text-align: center; }
        .section { padding: 15px 20px; background: #f9f9f9; margin-top: 10px; }
        .section h2 { font-size: 16px; color: #1a3c34; margin: 0 0 10px; }
        .field { margin-bottom: 8px; }
        .label { font-weight: bold; color: #555; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #1a3c34; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Contact Request</h1>
        </div>
        <div class="section">
            <h2>Request Type</h2>
            <div class="field">{{.RequestType}}</div>
        </div>
        <div class="section">
            <h2>Personal Details</h2>
            <div class="field"><span class="label">Name:</span> {{.Name}}</div>
            <div class="field"><span class="label">Email:</span> {{.Email}}</div>
            <div class="field"><span class="label">Phone:</span> {{.Phone}}</div>
            <div class="field"><span class="label">City:</span> {{.City}}</div>
        </div>
        <div class="section">
            <h2>Professional Details</h2>
            <div class="field"><span class="label">Company:</span> {{.Company}}</div>
            <div class="field"><span class="label">Job Title:</span> {{.JobTitle}}</div>
        </div>
        <div class="section">
            <h2>Message</h2>
            <div class="message-box">{{.Message}}</div>
        </div>
        <div class="section">
            <h2>Consent</h2>
            <div class="field"><span class="label">Privacy policy agreed:</span> {{.PrivacyAgreed}}</div>
            <div class="field"><span class="label">Newsletter subscription:</span> {{.NewsletterAgreed}}</div>
        </div>
        <div class="footer">
            <p>Sent from the website contact form. Reply to this email to reach the sender.</p>
        </div>
    </div>
</body>
</html>`

// contactEmailData holds the template fields with optional values already
// defaulted to "N/A"
type contactEmailData struct {
	RequestType      string
	Name             string
	Email            string
	Phone            string
	City             string
	Company          string
	JobTitle         string
	Message          string
	PrivacyAgreed    string
	NewsletterAgreed string
}

// composeContactEmail is a pure transformation from a valid submission to the
// outbound message; it performs no I/O
func composeContactEmail(sub *domain.ContactSubmission) (*mailer.OutboundEmail, error) {
	tmpl, err := template.New("contact").Parse(contactEmailTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse email template: %w", err)
	}

	data := contactEmailData{
		RequestType:      orNA(sub.RequestType),
		Name:             sub.Name,
		Email:            sub.Email,
		Phone:            sub.Phone,
		City:             orNA(sub.City),
		Company:          orNA(sub.Company),
		JobTitle:         orNA(sub.JobTitle),
		Message:          sub.Message,
		PrivacyAgreed:    yesNo(sub.PrivacyAgreed),
		NewsletterAgreed: yesNo(sub.NewsletterAgreed),
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}

	attachments := make([]mailer.Attachment, 0, len(sub.Attachments))
	for _, att := range sub.Attachments {
		attachments = append(attachments, mailer.Attachment{
			Filename: att.Filename,
			Content:  att.Content,
		})
	}

	return &mailer.OutboundEmail{
		Subject:     fmt.Sprintf("New Contact Request: %s - %s", sub.RequestType, sub.Name),
		HTMLBody:    body.String(),
		ReplyTo:     sub.Email,
		Attachments: attachments,
	}, nil
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

func yesNo(agreed bool) string {
	if agreed {
		return "Yes"
	}
	return "No"
}
