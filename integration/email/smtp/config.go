package smtp

import (
	"time"

	"github.com/dmitrymomot/mailbridge/core/config"
	"github.com/dmitrymomot/mailbridge/core/email"
)

// Config holds SMTP relay configuration.
// Host, credentials and sender are required; everything else has a default.
type Config struct {
	Host     string        `env:"SMTP_HOST,required,notEmpty"`
	Port     uint16        `env:"SMTP_PORT" envDefault:"587"`
	Username string        `env:"SMTP_USERNAME,required,notEmpty"`
	Password string        `env:"SMTP_PASSWORD,required,notEmpty"`
	From     email.Mailbox `env:"SMTP_FROM,required,notEmpty"`

	// TLS accepts 1/true/yes/on and 0/false/no/off. Unset or unrecognized
	// values keep encryption on.
	TLS config.Switch `env:"SMTP_TLS"`

	// Timeout bounds the dial and every SMTP command.
	Timeout time.Duration `env:"SMTP_TIMEOUT" envDefault:"30s"`

	// LocalName is sent with EHLO; go-mail uses "localhost" when empty.
	LocalName string `env:"SMTP_HELO_NAME"`
}

// UseTLS reports whether the relay connection must be encrypted.
func (c Config) UseTLS() bool {
	return c.TLS.Or(true)
}
