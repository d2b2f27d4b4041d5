package bridge

import (
	"strings"

	"github.com/dmitrymomot/mailbridge/core/email"
)

// SendRequest is the body of POST /send-email. All three keys must be
// present; unknown keys are ignored.
type SendRequest struct {
	Title *string `json:"title"`
	To    *string `json:"to"`
	Body  *string `json:"body"`
}

// Message validates the request and builds the message to deliver from the
// configured sender. Checks run in a fixed order and the first failure wins.
func (req SendRequest) Message(from email.Mailbox) (email.Message, error) {
	if req.Title == nil || req.To == nil || req.Body == nil {
		return email.Message{}, reject(ErrMalformedBody, nil)
	}

	if strings.TrimSpace(*req.Title) == "" {
		return email.Message{}, reject(ErrEmptyTitle, nil)
	}
	if strings.TrimSpace(*req.Body) == "" {
		return email.Message{}, reject(ErrEmptyBody, nil)
	}

	to := strings.TrimSpace(*req.To)
	if to == "" {
		return email.Message{}, reject(ErrEmptyRecipient, nil)
	}
	rcpt, err := email.ParseMailbox(to)
	if err != nil {
		return email.Message{}, reject(ErrInvalidRecipient, err)
	}

	msg, err := email.NewMessage(from, rcpt, *req.Title, *req.Body)
	if err != nil {
		return email.Message{}, reject(ErrInvalidPayload, err)
	}
	return msg, nil
}
