package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"go-investment-backend/config"
	"go-investment-backend/internal/delivery/http/response"
	"go-investment-backend/internal/domain"
	"go-investment-backend/pkg/apperror"
	"go-investment-backend/pkg/mailer"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC          domain.ContactUsecase
	maxAttachments     int
	maxAttachmentBytes int64
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, cfg *config.Config) {
	handler := &ContactHandler{
		contactUC:          contactUC,
		maxAttachments:     cfg.MaxAttachments,
		maxAttachmentBytes: cfg.MaxAttachmentBytes,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Send a message through the contact form, optionally with file attachments. This is a public endpoint.
// @Tags         contact
// @Accept       multipart/form-data
// @Produce      json
// @Param        name formData string true "Sender name"
// @Param        email formData string true "Sender email"
// @Param        phone formData string true "Sender phone"
// @Param        message formData string true "Message body"
// @Param        requestType formData string false "Request type label"
// @Param        company formData string false "Company"
// @Param        jobTitle formData string false "Job title"
// @Param        city formData string false "City"
// @Param        privacyAgreed formData string true "Must be the literal string true"
// @Param        newsletterAgreed formData string false "Literal string true or false"
// @Param        files formData file false "Attachments"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response
// @Failure      413 {object} response.Response
// @Failure      500 {object} response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.Error(apperror.New(http.StatusBadRequest, "could not parse form data", err))
		return
	}

	sub := &domain.ContactSubmission{
		Name:        c.PostForm("name"),
		Email:       c.PostForm("email"),
		Phone:       c.PostForm("phone"),
		Message:     c.PostForm("message"),
		RequestType: c.PostForm("requestType"),
		Company:     c.PostForm("company"),
		JobTitle:    c.PostForm("jobTitle"),
		City:        c.PostForm("city"),
		// Consents arrive as literal strings; anything but "true" is false
		PrivacyAgreed:    c.PostForm("privacyAgreed") == "true",
		NewsletterAgreed: c.PostForm("newsletterAgreed") == "true",
	}

	files := form.File["files"]
	if len(files) > h.maxAttachments {
		c.Error(apperror.PayloadTooLarge(fmt.Sprintf("too many attachments (max %d)", h.maxAttachments)))
		return
	}

	var totalBytes int64
	for _, fh := range files {
		totalBytes += fh.Size
		if totalBytes > h.maxAttachmentBytes {
			c.Error(apperror.PayloadTooLarge(fmt.Sprintf("attachments exceed %d bytes", h.maxAttachmentBytes)))
			return
		}

		f, err := fh.Open()
		if err != nil {
			c.Error(apperror.New(http.StatusBadRequest, "could not read attachment", err))
			return
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.Error(apperror.New(http.StatusBadRequest, "could not read attachment", err))
			return
		}

		sub.Attachments = append(sub.Attachments, domain.Attachment{
			Filename: fh.Filename,
			Content:  content,
		})
	}

	if err := h.contactUC.SubmitContact(c.Request.Context(), sub); err != nil {
		switch {
		case errors.Is(err, mailer.ErrTransportUnavailable):
			c.Error(apperror.New(http.StatusInternalServerError, "contact service unavailable", err))
		case errors.Is(err, mailer.ErrDeliveryFailed):
			c.Error(apperror.New(http.StatusInternalServerError, "failed to send", err))
		default:
			c.Error(err)
		}
		return
	}

	response.Success(c, http.StatusOK, "email sent successfully", nil)
}
