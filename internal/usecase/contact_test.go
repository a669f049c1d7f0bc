package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"go-investment-backend/internal/domain"
	"go-investment-backend/internal/usecase"
	"go-investment-backend/pkg/logger"
	"go-investment-backend/pkg/mailer"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// MockMailer is a relay double recording Verify/Send invocations
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Verify(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockMailer) Send(ctx context.Context, email *mailer.OutboundEmail) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func validSubmission() *domain.ContactSubmission {
	return &domain.ContactSubmission{
		Name:          "Ahmed",
		Email:         "a@x.com",
		Phone:         "0500000000",
		Message:       "hello",
		PrivacyAgreed: true,
	}
}

func TestContactRequiredFieldGate(t *testing.T) {
	cases := map[string]func(*domain.ContactSubmission){
		"missing name":    func(s *domain.ContactSubmission) { s.Name = "" },
		"missing email":   func(s *domain.ContactSubmission) { s.Email = "" },
		"missing phone":   func(s *domain.ContactSubmission) { s.Phone = "" },
		"missing message": func(s *domain.ContactSubmission) { s.Message = "" },
		"privacy refused": func(s *domain.ContactSubmission) { s.PrivacyAgreed = false },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			mockMailer := new(MockMailer)
			uc := usecase.NewContactUsecase(mockMailer, validator.New())

			sub := validSubmission()
			mutate(sub)

			err := uc.SubmitContact(context.Background(), sub)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "missing required fields")

			// An invalid submission must never touch the relay
			mockMailer.AssertNotCalled(t, "Verify", mock.Anything)
			mockMailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

func TestContactHappyPath(t *testing.T) {
	mockMailer := new(MockMailer)
	uc := usecase.NewContactUsecase(mockMailer, validator.New())

	var sent *mailer.OutboundEmail
	mockMailer.On("Verify", mock.Anything).Return(nil)
	mockMailer.On("Send", mock.Anything, mock.AnythingOfType("*mailer.OutboundEmail")).
		Return("<id@relay>", nil).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(*mailer.OutboundEmail)
		})

	sub := validSubmission()
	sub.RequestType = "Investment"

	err := uc.SubmitContact(context.Background(), sub)
	assert.NoError(t, err)

	if assert.NotNil(t, sent) {
		assert.Equal(t, "a@x.com", sent.ReplyTo)
		assert.Equal(t, "New Contact Request: Investment - Ahmed", sent.Subject)
		assert.Contains(t, sent.HTMLBody, "Ahmed")
		assert.Contains(t, sent.HTMLBody, "hello")
	}
}

func TestContactRelayDown(t *testing.T) {
	mockMailer := new(MockMailer)
	uc := usecase.NewContactUsecase(mockMailer, validator.New())

	mockMailer.On("Verify", mock.Anything).Return(mailer.ErrTransportUnavailable)

	err := uc.SubmitContact(context.Background(), validSubmission())
	assert.Error(t, err)
	assert.True(t, errors.Is(err, mailer.ErrTransportUnavailable))

	// Verification failure must abort before any send attempt
	mockMailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestContactSendFailure(t *testing.T) {
	mockMailer := new(MockMailer)
	uc := usecase.NewContactUsecase(mockMailer, validator.New())

	mockMailer.On("Verify", mock.Anything).Return(nil)
	mockMailer.On("Send", mock.Anything, mock.Anything).Return("", mailer.ErrDeliveryFailed)

	err := uc.SubmitContact(context.Background(), validSubmission())
	assert.Error(t, err)
	assert.True(t, errors.Is(err, mailer.ErrDeliveryFailed))
}

func TestContactOptionalFieldDefaulting(t *testing.T) {
	mockMailer := new(MockMailer)
	uc := usecase.NewContactUsecase(mockMailer, validator.New())

	var sent *mailer.OutboundEmail
	mockMailer.On("Verify", mock.Anything).Return(nil)
	mockMailer.On("Send", mock.Anything, mock.Anything).
		Return("<id@relay>", nil).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(*mailer.OutboundEmail)
		})

	// company, jobTitle, city and newsletterAgreed all omitted
	err := uc.SubmitContact(context.Background(), validSubmission())
	assert.NoError(t, err)

	if assert.NotNil(t, sent) {
		// company, jobTitle, city each render as N/A
		assert.GreaterOrEqual(t, strings.Count(sent.HTMLBody, "N/A"), 3)
		assert.Contains(t, sent.HTMLBody, "Newsletter subscription:</span> No")
		assert.Contains(t, sent.HTMLBody, "Privacy policy agreed:</span> Yes")
	}
}

func TestContactBodyEscapesSubmittedText(t *testing.T) {
	mockMailer := new(MockMailer)
	uc := usecase.NewContactUsecase(mockMailer, validator.New())

	var sent *mailer.OutboundEmail
	mockMailer.On("Verify", mock.Anything).Return(nil)
	mockMailer.On("Send", mock.Anything, mock.Anything).
		Return("<id@relay>", nil).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(*mailer.OutboundEmail)
		})

	sub := validSubmission()
	sub.Message = `<script>alert("x")</script>`

	err := uc.SubmitContact(context.Background(), sub)
	assert.NoError(t, err)

	if assert.NotNil(t, sent) {
		assert.NotContains(t, sent.HTMLBody, "<script>")
		assert.Contains(t, sent.HTMLBody, "&lt;script&gt;")
	}
}

func TestContactAttachmentPassThrough(t *testing.T) {
	mockMailer := new(MockMailer)
	uc := usecase.NewContactUsecase(mockMailer, validator.New())

	var sent *mailer.OutboundEmail
	mockMailer.On("Verify", mock.Anything).Return(nil)
	mockMailer.On("Send", mock.Anything, mock.Anything).
		Return("<id@relay>", nil).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(*mailer.OutboundEmail)
		})

	first := []byte("%PDF-1.4 first document")
	second := []byte{0x89, 0x50, 0x4E, 0x47, 0x00, 0x01}

	sub := validSubmission()
	sub.Attachments = []domain.Attachment{
		{Filename: "profile.pdf", Content: first},
		{Filename: "site-plan.png", Content: second},
	}

	err := uc.SubmitContact(context.Background(), sub)
	assert.NoError(t, err)

	if assert.NotNil(t, sent) && assert.Len(t, sent.Attachments, 2) {
		assert.Equal(t, "profile.pdf", sent.Attachments[0].Filename)
		assert.Equal(t, "site-plan.png", sent.Attachments[1].Filename)
		assert.True(t, bytes.Equal(first, sent.Attachments[0].Content))
		assert.True(t, bytes.Equal(second, sent.Attachments[1].Content))
	}
}
