package smtp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-mail/mail"
	"github.com/google/uuid"
	"golang.org/x/net/idna"

	"github.com/dmitrymomot/mailbridge/core/email"
)

// ErrTLSSetup is returned by New when TLS is required but the relay host
// cannot be used as a TLS server name.
var ErrTLSSetup = errors.New("smtp: invalid TLS relay configuration")

// ErrRelayUnreachable is returned by Ping when no connection can be opened.
var ErrRelayUnreachable = errors.New("smtp: relay unreachable")

// Client implements email.Sender on top of an SMTP relay.
// It is bound to a single host, port, credential set and TLS policy for its
// whole life and is safe for concurrent use: every delivery dials its own
// connection from a private copy of the dialer.
type Client struct {
	dialer *mail.Dialer
	now    func() time.Time
}

// New builds an SMTP client from configuration without touching the network.
//
// With TLS on, port 465 uses implicit TLS and every other port requires a
// STARTTLS upgrade. With TLS off the client never upgrades and sends PLAIN
// credentials over the clear connection; use it only for trusted relays.
func New(cfg Config) (*Client, error) {
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		return nil, fmt.Errorf("%w: Host is required", email.ErrInvalidConfig)
	}
	if cfg.Username == "" {
		return nil, fmt.Errorf("%w: Username is required", email.ErrInvalidConfig)
	}
	if cfg.Password == "" {
		return nil, fmt.Errorf("%w: Password is required", email.ErrInvalidConfig)
	}

	d := mail.NewDialer(host, int(cfg.Port), cfg.Username, cfg.Password)
	d.LocalName = cfg.LocalName
	if cfg.Timeout > 0 {
		d.Timeout = cfg.Timeout
	}

	if cfg.UseTLS() {
		serverName, err := tlsServerName(host)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrTLSSetup, host, err)
		}
		d.SSL = cfg.Port == 465
		d.StartTLSPolicy = mail.MandatoryStartTLS
		d.TLSConfig = &tls.Config{
			ServerName: serverName,
			MinVersion: tls.VersionTLS12,
		}
	} else {
		d.SSL = false
		d.StartTLSPolicy = mail.NoStartTLS
		d.Auth = clearTextAuth{username: cfg.Username, password: cfg.Password}
	}

	return &Client{dialer: d, now: time.Now}, nil
}

// MustNew creates an SMTP client that panics on invalid config.
func MustNew(cfg Config) *Client {
	client, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// Send delivers msg and blocks until the relay accepts it or fails.
// If ctx ends first Send returns immediately; the SMTP exchange already in
// flight is bounded by the dialer timeout and its outcome is discarded.
func (c *Client) Send(ctx context.Context, msg email.Message) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}

	m := c.buildMessage(msg)

	// go-mail fills in Auth while dialing, so each delivery needs its own copy.
	d := *c.dialer

	done := make(chan error, 1)
	go func() {
		done <- d.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return errors.Join(email.ErrFailedToSendEmail, err)
		}
		return nil
	case <-ctx.Done():
		return errors.Join(email.ErrFailedToSendEmail, ctx.Err())
	}
}

// Ping checks that the relay accepts TCP connections. It does not speak SMTP
// and never authenticates, so it is cheap enough for readiness probes.
func (c *Client) Ping(ctx context.Context) error {
	d := net.Dialer{Timeout: c.dialer.Timeout}
	conn, err := d.DialContext(ctx, "tcp", c.Addr())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRelayUnreachable, err)
	}
	return conn.Close()
}

// Addr returns the relay address the client dials.
func (c *Client) Addr() string {
	return net.JoinHostPort(c.dialer.Host, strconv.Itoa(c.dialer.Port))
}

// buildMessage converts a validated message into its MIME form.
func (c *Client) buildMessage(msg email.Message) *mail.Message {
	m := mail.NewMessage()
	m.SetAddressHeader("From", msg.From.Address, msg.From.Name)
	m.SetAddressHeader("To", msg.To.Address, msg.To.Name)
	m.SetHeader("Subject", msg.Subject)
	m.SetDateHeader("Date", c.now())
	m.SetHeader("Message-ID", messageID(msg.From.Address))
	m.SetBody("text/plain", msg.Body)
	return m
}

func messageID(from string) string {
	domain := "localhost"
	if i := strings.LastIndexByte(from, '@'); i >= 0 && i < len(from)-1 {
		domain = from[i+1:]
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}

// tlsServerName validates host as something a certificate can be checked
// against: an IP literal or a DNS name. IDN hosts are converted to punycode.
func tlsServerName(host string) (string, error) {
	if ip := net.ParseIP(host); ip != nil {
		return host, nil
	}
	if strings.ContainsAny(host, " \t\r\n/\\:@") {
		return "", errors.New("host contains invalid characters")
	}

	name, err := idna.Lookup.ToASCII(strings.TrimSuffix(host, "."))
	if err != nil {
		return "", err
	}
	if len(name) > 253 {
		return "", errors.New("host name too long")
	}
	for _, label := range strings.Split(name, ".") {
		if label == "" || len(label) > 63 {
			return "", fmt.Errorf("invalid label in %q", name)
		}
	}
	return name, nil
}
