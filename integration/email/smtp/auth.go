package smtp

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

// clearTextAuth authenticates without insisting on an encrypted connection.
// net/smtp's PlainAuth refuses to send credentials to anything but localhost
// without TLS, which rules out trusted internal relays.
//
// PLAIN is used when the relay advertises it or advertises nothing; a relay
// that offers only LOGIN gets the LOGIN challenge exchange.
type clearTextAuth struct {
	username string
	password string
}

func (a clearTextAuth) Start(server *smtp.ServerInfo) (string, []byte, error) {
	if server == nil || len(server.Auth) == 0 || hasMechanism(server.Auth, "PLAIN") {
		return "PLAIN", []byte("\x00" + a.username + "\x00" + a.password), nil
	}
	if hasMechanism(server.Auth, "LOGIN") {
		return "LOGIN", nil, nil
	}
	return "", nil, fmt.Errorf("no supported auth mechanism in %v", server.Auth)
}

// Next answers LOGIN challenges. PLAIN never receives one.
func (a clearTextAuth) Next(fromServer []byte, more bool) ([]byte, error) {
	if !more {
		return nil, nil
	}
	switch strings.ToLower(strings.TrimSpace(string(fromServer))) {
	case "username:", "user name", "username":
		return []byte(a.username), nil
	case "password:", "password":
		return []byte(a.password), nil
	}
	return nil, errors.New("unexpected server challenge")
}

func hasMechanism(advertised []string, mech string) bool {
	for _, m := range advertised {
		if strings.EqualFold(m, mech) {
			return true
		}
	}
	return false
}
