// Package mail decodes raw inbound email bytes into headers and
// attachment parts, extracts candidate report payloads and recovers the
// routing token from the recipient address.
package mail

import (
	"bytes"
	"strings"

	"github.com/jhillyerd/enmime"
	log "github.com/sirupsen/logrus"
)

// AttachmentPart is a single decoded attachment.
type AttachmentPart struct {
	Filename    string
	ContentType string
	Bytes       []byte
}

// Message is a decoded inbound email: a header map plus the attachment
// list. Header lookup is case-insensitive; when a header repeats, the
// first occurrence wins.
type Message struct {
	headers     map[string][]string
	Attachments []AttachmentPart
}

// Header returns the first value of a header, case-insensitively, or
// "" when absent.
func (m *Message) Header(name string) string {
	vs := m.headers[strings.ToLower(name)]
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}

// Decode parses raw email bytes. Malformed MIME is a normal occurrence
// at scale: any parse failure degrades to an empty message with no
// attachments rather than an error.
func Decode(raw []byte) *Message {
	msg := &Message{headers: map[string][]string{}}

	env, err := enmime.ReadEnvelope(bytes.NewReader(raw))
	if err != nil {
		log.WithError(err).Debug("Inbound message failed MIME decoding, treating as no attachments")
		return msg
	}

	for _, key := range env.GetHeaderKeys() {
		msg.headers[strings.ToLower(key)] = env.GetHeaderValues(key)
	}

	for _, att := range env.Attachments {
		msg.Attachments = append(msg.Attachments, AttachmentPart{
			Filename:    att.FileName,
			ContentType: att.ContentType,
			Bytes:       att.Content,
		})
	}

	return msg
}
