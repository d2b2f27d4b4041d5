package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailbridge/app/bridge"
	"github.com/dmitrymomot/mailbridge/core/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	config.Reset()
	t.Cleanup(config.Reset)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func setEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_USERNAME", "user")
	t.Setenv("SMTP_PASSWORD", "secret")
	t.Setenv("SMTP_FROM", "Bridge <noreply@example.com>")
	t.Setenv("LOG_LEVEL", "error")
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}

func TestSendCmd_Outbox(t *testing.T) {
	setEnv(t)
	dir := t.TempDir()

	out, err := run(t, "send", "--outbox", dir, "--to", "user@example.com", "--title", "Hi", "--body", "hello")
	require.NoError(t, err)
	assert.Contains(t, out, "sent")

	files, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	body, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))
}

func TestSendCmd_Rejected(t *testing.T) {
	setEnv(t)
	dir := t.TempDir()

	_, err := run(t, "send", "--outbox", dir, "--to", "not-an-email", "--title", "Hi", "--body", "hello")
	require.ErrorIs(t, err, bridge.ErrInvalidRecipient)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSendCmd_MissingFlag(t *testing.T) {
	setEnv(t)

	_, err := run(t, "send", "--to", "user@example.com", "--title", "Hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "body")
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing variables", func(t *testing.T) {
		t.Setenv("SMTP_HOST", "")
		_, err := run(t, "send", "--to", "a@b.co", "--title", "t", "--body", "b")
		require.ErrorIs(t, err, config.ErrMissingVariable)
	})

	t.Run("bad log level", func(t *testing.T) {
		setEnv(t)
		t.Setenv("LOG_LEVEL", "loud")
		_, err := run(t, "send", "--to", "a@b.co", "--title", "t", "--body", "b")
		require.ErrorIs(t, err, config.ErrInvalidValue)
	})
}
