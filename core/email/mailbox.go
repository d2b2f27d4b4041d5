package email

import (
	"fmt"
	"net/mail"
	"strings"
)

// Mailbox is a validated address with an optional display name,
// e.g. "Support <support@example.com>".
type Mailbox struct {
	Name    string
	Address string
}

// ParseMailbox parses a single RFC 5322 mailbox. Surrounding whitespace is
// ignored; groups and address lists are rejected.
func ParseMailbox(s string) (Mailbox, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Mailbox{}, fmt.Errorf("%w: empty", ErrInvalidMailbox)
	}

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return Mailbox{}, fmt.Errorf("%w: %q: %v", ErrInvalidMailbox, s, err)
	}

	return Mailbox{Name: addr.Name, Address: addr.Address}, nil
}

// MustParseMailbox is like ParseMailbox but panics on error.
func MustParseMailbox(s string) Mailbox {
	m, err := ParseMailbox(s)
	if err != nil {
		panic(err)
	}
	return m
}

// IsZero reports whether the mailbox holds no address.
func (m Mailbox) IsZero() bool {
	return m.Address == ""
}

// String formats the mailbox for use in a header, quoting and encoding the
// display name when needed.
func (m Mailbox) String() string {
	if m.IsZero() {
		return ""
	}
	return (&mail.Address{Name: m.Name, Address: m.Address}).String()
}

// UnmarshalText implements encoding.TextUnmarshaler so a Mailbox can be read
// straight from an environment variable.
func (m *Mailbox) UnmarshalText(text []byte) error {
	parsed, err := ParseMailbox(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m Mailbox) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
