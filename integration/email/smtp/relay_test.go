package smtp_test

import (
	"encoding/base64"
	"net"
	"net/textproto"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeRelay is a minimal in-process SMTP server. It speaks just enough of the
// protocol for go-mail to authenticate and hand over one message per session.
type fakeRelay struct {
	ln         net.Listener
	rejectAuth bool
	loginOnly  bool
	stall      bool

	mu       sync.Mutex
	conns    []net.Conn
	auth     []string
	messages []string
}

func startRelay(t *testing.T, opts ...func(*fakeRelay)) *fakeRelay {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	r := &fakeRelay{ln: ln}
	for _, opt := range opts {
		opt(r)
	}

	go r.serve()
	t.Cleanup(r.close)
	return r
}

func rejectingAuth(r *fakeRelay) { r.rejectAuth = true }

func stalled(r *fakeRelay) { r.stall = true }

// loginOnly advertises AUTH LOGIN alone and refuses PLAIN.
func loginOnly(r *fakeRelay) { r.loginOnly = true }

func (r *fakeRelay) host() string {
	host, _, _ := net.SplitHostPort(r.ln.Addr().String())
	return host
}

func (r *fakeRelay) port() uint16 {
	_, port, _ := net.SplitHostPort(r.ln.Addr().String())
	p, _ := strconv.ParseUint(port, 10, 16)
	return uint16(p)
}

func (r *fakeRelay) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}

func (r *fakeRelay) AuthLines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.auth...)
}

func (r *fakeRelay) close() {
	_ = r.ln.Close()
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.conns {
		_ = c.Close()
	}
}

func (r *fakeRelay) serve() {
	for {
		conn, err := r.ln.Accept()
		if err != nil {
			return
		}
		r.mu.Lock()
		r.conns = append(r.conns, conn)
		r.mu.Unlock()

		if r.stall {
			continue
		}
		go r.handle(conn)
	}
}

func (r *fakeRelay) handle(conn net.Conn) {
	defer conn.Close()

	tp := textproto.NewConn(conn)
	_ = tp.PrintfLine("220 localhost ESMTP test relay")

	for {
		line, err := tp.ReadLine()
		if err != nil {
			return
		}

		verb, _, _ := strings.Cut(line, " ")
		switch strings.ToUpper(verb) {
		case "EHLO", "HELO":
			_ = tp.PrintfLine("250-localhost")
			if r.loginOnly {
				_ = tp.PrintfLine("250 AUTH LOGIN")
			} else {
				_ = tp.PrintfLine("250 AUTH PLAIN")
			}
		case "AUTH":
			fields := strings.Fields(line)
			if r.loginOnly && (len(fields) < 2 || !strings.EqualFold(fields[1], "LOGIN")) {
				_ = tp.PrintfLine("504 5.5.4 mechanism not supported")
				continue
			}
			if r.loginOnly {
				user, err := r.challenge(tp, "Username:")
				if err != nil {
					return
				}
				pass, err := r.challenge(tp, "Password:")
				if err != nil {
					return
				}
				line = "AUTH LOGIN " + user + " " + pass
			}
			r.mu.Lock()
			r.auth = append(r.auth, line)
			r.mu.Unlock()
			if r.rejectAuth {
				_ = tp.PrintfLine("535 5.7.8 authentication failed")
				continue
			}
			_ = tp.PrintfLine("235 2.7.0 authenticated")
		case "MAIL", "RCPT", "RSET", "NOOP":
			_ = tp.PrintfLine("250 OK")
		case "DATA":
			_ = tp.PrintfLine("354 end data with <CR><LF>.<CR><LF>")
			data, err := tp.ReadDotBytes()
			if err != nil {
				return
			}
			r.mu.Lock()
			r.messages = append(r.messages, string(data))
			r.mu.Unlock()
			_ = tp.PrintfLine("250 OK queued")
		case "QUIT":
			_ = tp.PrintfLine("221 bye")
			return
		default:
			_ = tp.PrintfLine("502 command not implemented")
		}
	}
}

// challenge sends one base64 LOGIN prompt and returns the decoded answer.
func (r *fakeRelay) challenge(tp *textproto.Conn, prompt string) (string, error) {
	_ = tp.PrintfLine("334 %s", base64.StdEncoding.EncodeToString([]byte(prompt)))
	answer, err := tp.ReadLine()
	if err != nil {
		return "", err
	}
	decoded, err := base64.StdEncoding.DecodeString(answer)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
