package email_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailbridge/core/email"
)

func TestParseMailbox(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    email.Mailbox
		wantErr bool
	}{
		{"plain address", "user@example.com", email.Mailbox{Address: "user@example.com"}, false},
		{"surrounding spaces", "  user@example.com ", email.Mailbox{Address: "user@example.com"}, false},
		{"display name", "Jane Doe <jane@example.com>", email.Mailbox{Name: "Jane Doe", Address: "jane@example.com"}, false},
		{"quoted display name", `"Doe, Jane" <jane@example.com>`, email.Mailbox{Name: "Doe, Jane", Address: "jane@example.com"}, false},
		{"plus tag", "user+tag@mail.example.com", email.Mailbox{Address: "user+tag@mail.example.com"}, false},
		{"no at sign", "not-an-email", email.Mailbox{}, true},
		{"empty", "", email.Mailbox{}, true},
		{"whitespace only", "   ", email.Mailbox{}, true},
		{"missing domain", "a@", email.Mailbox{}, true},
		{"missing local part", "@example.com", email.Mailbox{}, true},
		{"two addresses", "a@example.com, b@example.com", email.Mailbox{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := email.ParseMailbox(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, email.ErrInvalidMailbox)
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMailbox_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<user@example.com>", email.Mailbox{Address: "user@example.com"}.String())
	assert.Equal(t, `"Jane Doe" <jane@example.com>`, email.Mailbox{Name: "Jane Doe", Address: "jane@example.com"}.String())
	assert.Empty(t, email.Mailbox{}.String())
}

func TestMailbox_UnmarshalText(t *testing.T) {
	t.Parallel()

	var m email.Mailbox
	require.NoError(t, m.UnmarshalText([]byte("Bridge <noreply@example.com>")))
	assert.Equal(t, "Bridge", m.Name)
	assert.Equal(t, "noreply@example.com", m.Address)

	err := m.UnmarshalText([]byte("nope"))
	assert.ErrorIs(t, err, email.ErrInvalidMailbox)
}

func TestMustParseMailbox(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { email.MustParseMailbox("user@example.com") })
	assert.Panics(t, func() { email.MustParseMailbox("invalid") })
}

func TestNewMessage(t *testing.T) {
	t.Parallel()

	from := email.MustParseMailbox("Bridge <noreply@example.com>")
	to := email.MustParseMailbox("user@example.com")

	tests := []struct {
		name    string
		from    email.Mailbox
		to      email.Mailbox
		subject string
		body    string
		wantErr bool
	}{
		{"valid", from, to, "Hi", "hello", false},
		{"multiline body", from, to, "Hi", "line 1\nline 2\r\n", false},
		{"unicode", from, to, "Привет", "世界", false},
		{"subject with newline", from, to, "Hi\nBcc: x@example.com", "hello", true},
		{"subject with carriage return", from, to, "Hi\r", "hello", true},
		{"subject with NUL", from, to, "Hi\x00", "hello", true},
		{"body with NUL", from, to, "Hi", "hel\x00lo", true},
		{"invalid utf-8 subject", from, to, "\xff\xfe", "hello", true},
		{"missing sender", email.Mailbox{}, to, "Hi", "hello", true},
		{"missing recipient", from, email.Mailbox{}, "Hi", "hello", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			msg, err := email.NewMessage(tt.from, tt.to, tt.subject, tt.body)
			if tt.wantErr {
				assert.ErrorIs(t, err, email.ErrInvalidPayload)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.from, msg.From)
			assert.Equal(t, tt.to, msg.To)
			assert.Equal(t, tt.subject, msg.Subject)
			assert.Equal(t, tt.body, msg.Body)
		})
	}
}

func TestSenderFunc(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("boom")
	var got email.Message

	var sender email.Sender = email.SenderFunc(func(_ context.Context, msg email.Message) error {
		got = msg
		return sentinel
	})

	msg := email.Message{Subject: "Hi"}
	err := sender.Send(context.Background(), msg)

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, msg, got)
}
