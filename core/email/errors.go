package email

import "errors"

var (
	// ErrFailedToSendEmail wraps every delivery failure, joined with the cause.
	ErrFailedToSendEmail = errors.New("failed to send email")

	// ErrInvalidConfig means a Sender cannot be built from its configuration.
	ErrInvalidConfig = errors.New("invalid email configuration")

	// ErrInvalidMailbox means an address does not parse as one RFC 5322 mailbox.
	ErrInvalidMailbox = errors.New("invalid mailbox")

	// ErrInvalidPayload means subject or body cannot be carried in a message.
	ErrInvalidPayload = errors.New("invalid email payload")
)
