package mailer

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"time"
)

// Attachment mirrors an uploaded file as a (filename, bytes) MIME part
type Attachment struct {
	Filename string
	Content  []byte
}

// OutboundEmail is the fully composed message handed to the dispatcher.
// Building it performs no I/O; the dispatcher owns the relay session.
type OutboundEmail struct {
	Subject     string
	HTMLBody    string
	ReplyTo     string
	Attachments []Attachment
}

// encode renders the RFC 5322 message: a multipart/mixed envelope holding one
// HTML part followed by the attachments in submission order. The subject is
// Q-encoded so Arabic text survives the transport.
func (e *OutboundEmail) encode(from, to, messageID string) ([]byte, error) {
	var msg bytes.Buffer
	mw := multipart.NewWriter(&msg)

	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Reply-To: %s\r\n", e.ReplyTo)
	fmt.Fprintf(&msg, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", e.Subject))
	fmt.Fprintf(&msg, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	fmt.Fprintf(&msg, "Message-ID: %s\r\n", messageID)
	fmt.Fprintf(&msg, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", mw.Boundary())

	bodyHeader := textproto.MIMEHeader{}
	bodyHeader.Set("Content-Type", "text/html; charset=UTF-8")
	body, err := mw.CreatePart(bodyHeader)
	if err != nil {
		return nil, fmt.Errorf("failed to create body part: %w", err)
	}
	if _, err := body.Write([]byte(e.HTMLBody)); err != nil {
		return nil, fmt.Errorf("failed to write body part: %w", err)
	}

	for _, att := range e.Attachments {
		header := textproto.MIMEHeader{}
		header.Set("Content-Type", contentTypeFor(att.Filename))
		header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", att.Filename))
		header.Set("Content-Transfer-Encoding", "base64")
		part, err := mw.CreatePart(header)
		if err != nil {
			return nil, fmt.Errorf("failed to create attachment part: %w", err)
		}
		if err := writeBase64(part, att.Content); err != nil {
			return nil, fmt.Errorf("failed to write attachment %s: %w", att.Filename, err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize message: %w", err)
	}
	return msg.Bytes(), nil
}

func contentTypeFor(filename string) string {
	if ct := mime.TypeByExtension(filepath.Ext(filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// writeBase64 encodes content wrapped at 76 columns per RFC 2045
func writeBase64(w io.Writer, content []byte) error {
	encoded := base64.StdEncoding.EncodeToString(content)
	for len(encoded) > 0 {
		n := 76
		if n > len(encoded) {
			n = len(encoded)
		}
		if _, err := w.Write([]byte(encoded[:n])); err != nil {
			return err
		}
		if _, err := w.Write([]byte("\r\n")); err != nil {
			return err
		}
		encoded = encoded[n:]
	}
	return nil
}
