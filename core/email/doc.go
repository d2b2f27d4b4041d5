// Package email defines the message model and the delivery contract shared by
// the HTTP bridge and the SMTP integration.
//
// # Mailboxes
//
// A Mailbox is an address with an optional display name, parsed with the
// RFC 5322 grammar:
//
//	to, err := email.ParseMailbox("Jane Doe <jane@example.com>")
//	if err != nil {
//		// errors.Is(err, email.ErrInvalidMailbox)
//	}
//
// Mailbox implements encoding.TextUnmarshaler, so it can be used directly as a
// field of an env-tagged configuration struct.
//
// # Messages
//
// NewMessage validates content before anything touches the network:
//
//	msg, err := email.NewMessage(from, to, "Welcome", "Hello!")
//	if errors.Is(err, email.ErrInvalidPayload) {
//		// subject spans lines, or NUL bytes were found
//	}
//
// # Sender Interface
//
//	type Sender interface {
//		Send(ctx context.Context, msg Message) error
//	}
//
// The SMTP implementation lives in integration/email/smtp. SenderFunc turns a
// plain function into a Sender, which is handy for tests:
//
//	sender := email.SenderFunc(func(ctx context.Context, msg email.Message) error {
//		return nil
//	})
//
// DevSender writes each message to a directory as a .txt body plus a .json
// envelope instead of delivering it. The CLI uses it for send --outbox.
package email
