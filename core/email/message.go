package email

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Message is a single plain-text email ready for delivery.
// Build it with NewMessage so header constraints are enforced.
type Message struct {
	From    Mailbox
	To      Mailbox
	Subject string
	Body    string
}

// NewMessage assembles a message and checks that its content can be carried
// in an RFC 5322 message: the subject must be a single line and neither
// subject nor body may contain NUL bytes or invalid UTF-8.
func NewMessage(from, to Mailbox, subject, body string) (Message, error) {
	if from.IsZero() {
		return Message{}, fmt.Errorf("%w: missing sender", ErrInvalidPayload)
	}
	if to.IsZero() {
		return Message{}, fmt.Errorf("%w: missing recipient", ErrInvalidPayload)
	}
	if !utf8.ValidString(subject) || strings.ContainsAny(subject, "\r\n\x00") {
		return Message{}, fmt.Errorf("%w: subject contains disallowed characters", ErrInvalidPayload)
	}
	if !utf8.ValidString(body) || strings.ContainsRune(body, 0) {
		return Message{}, fmt.Errorf("%w: body contains disallowed characters", ErrInvalidPayload)
	}

	return Message{
		From:    from,
		To:      to,
		Subject: subject,
		Body:    body,
	}, nil
}
