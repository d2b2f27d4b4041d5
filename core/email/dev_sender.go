package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync/atomic"
	"time"
)

// DevSender writes messages to a directory instead of delivering them.
// Each message produces a .txt file with the body and a .json file with the
// envelope, named by timestamp and subject.
type DevSender struct {
	dir string
	now func() time.Time
	seq atomic.Uint64
}

// NewDevSender creates a sender that stores messages under dir.
// The directory is created on first use.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir, now: time.Now}
}

type devMetadata struct {
	Timestamp string `json:"timestamp"`
	From      string `json:"from"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
}

// Send stores msg on disk.
func (d *DevSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToSendEmail, err)
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create outbox: %v", ErrFailedToSendEmail, err)
	}

	now := d.now()
	base := fmt.Sprintf("%s_%06d_%s", now.Format("2006_01_02_150405"), d.seq.Add(1), sanitizeFilename(msg.Subject))

	if err := os.WriteFile(filepath.Join(d.dir, base+".txt"), []byte(msg.Body), 0o644); err != nil {
		return fmt.Errorf("%w: write body: %v", ErrFailedToSendEmail, err)
	}

	meta, err := json.MarshalIndent(devMetadata{
		Timestamp: now.Format(time.RFC3339),
		From:      msg.From.String(),
		To:        msg.To.String(),
		Subject:   msg.Subject,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode metadata: %v", ErrFailedToSendEmail, err)
	}
	if err := os.WriteFile(filepath.Join(d.dir, base+".json"), meta, 0o644); err != nil {
		return fmt.Errorf("%w: write metadata: %v", ErrFailedToSendEmail, err)
	}

	return nil
}

// Dir returns the outbox directory.
func (d *DevSender) Dir() string {
	return d.dir
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = unsafeFilenameChars.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
