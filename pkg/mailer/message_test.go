package mailer

import (
	"bytes"
	"encoding/base64"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeProducesParsableMessage(t *testing.T) {
	pdf := []byte("%PDF-1.4 fake document body")
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00}

	email := &OutboundEmail{
		Subject:  "New Contact Request: Investment - Ahmed",
		HTMLBody: "<p>مرحبا - hello</p>",
		ReplyTo:  "a@x.com",
		Attachments: []Attachment{
			{Filename: "profile.pdf", Content: pdf},
			{Filename: "plan.png", Content: png},
		},
	}

	raw, err := email.encode("site@example.com", "info@example.com", "<id-123@example.com>")
	require.NoError(t, err)

	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, "site@example.com", msg.Header.Get("From"))
	assert.Equal(t, "info@example.com", msg.Header.Get("To"))
	assert.Equal(t, "a@x.com", msg.Header.Get("Reply-To"))
	assert.Equal(t, "<id-123@example.com>", msg.Header.Get("Message-ID"))
	assert.Equal(t, "1.0", msg.Header.Get("MIME-Version"))

	decoder := new(mime.WordDecoder)
	subject, err := decoder.DecodeHeader(msg.Header.Get("Subject"))
	require.NoError(t, err)
	assert.Equal(t, "New Contact Request: Investment - Ahmed", subject)

	mediaType, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/mixed", mediaType)
	require.NotEmpty(t, params["boundary"])

	mr := multipart.NewReader(msg.Body, params["boundary"])

	// First part is the HTML body
	part, err := mr.NextPart()
	require.NoError(t, err)
	assert.Contains(t, part.Header.Get("Content-Type"), "text/html")
	body, err := io.ReadAll(part)
	require.NoError(t, err)
	assert.Equal(t, email.HTMLBody, string(body))

	// Attachments follow in submission order and round-trip byte for byte
	for _, want := range []struct {
		filename string
		content  []byte
	}{
		{"profile.pdf", pdf},
		{"plan.png", png},
	} {
		part, err := mr.NextPart()
		require.NoError(t, err)
		assert.Equal(t, want.filename, part.FileName())
		assert.Equal(t, "base64", part.Header.Get("Content-Transfer-Encoding"))

		encoded, err := io.ReadAll(part)
		require.NoError(t, err)
		decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(string(encoded), "\r\n", ""))
		require.NoError(t, err)
		assert.True(t, bytes.Equal(want.content, decoded))
	}

	_, err = mr.NextPart()
	assert.Equal(t, io.EOF, err)
}

func TestEncodeArabicSubjectIsQEncoded(t *testing.T) {
	email := &OutboundEmail{
		Subject:  "طلب تواصل جديد",
		HTMLBody: "<p>hi</p>",
		ReplyTo:  "a@x.com",
	}

	raw, err := email.encode("site@example.com", "info@example.com", "<id@example.com>")
	require.NoError(t, err)

	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	require.NoError(t, err)

	header := msg.Header.Get("Subject")
	assert.Contains(t, header, "=?utf-8?q?")

	decoder := new(mime.WordDecoder)
	subject, err := decoder.DecodeHeader(header)
	require.NoError(t, err)
	assert.Equal(t, "طلب تواصل جديد", subject)
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "application/pdf", contentTypeFor("report.pdf"))
	assert.Equal(t, "application/octet-stream", contentTypeFor("blob.unknownext"))
}

func TestWriteBase64WrapsLines(t *testing.T) {
	var buf bytes.Buffer
	err := writeBase64(&buf, bytes.Repeat([]byte{0xAB}, 200))
	require.NoError(t, err)

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\r\n"), "\r\n") {
		assert.LessOrEqual(t, len(line), 76)
	}
}
