package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestNew(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New(&buf, "info", FormatJSON)
		assert.NoError(t, err)

		l.WithName("mconstraint").WithName("txn").Info("hello", "driven", "C")
		l.V(1).Info("hidden")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Equal(t, 1, len(lines))

		var entry map[string]any
		assert.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
		assert.Equal(t, "hello", entry["message"])
		assert.Equal(t, "C", entry["driven"])
		assert.Equal(t, "mconstraint/txn", entry["logger"])
	})

	t.Run("debug enables V(1)", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New(&buf, "debug", FormatJSON)
		assert.NoError(t, err)
		l.V(1).Info("shown")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("tint", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New(&buf, "warn", FormatTint)
		assert.NoError(t, err)
		l.Info("quiet")
		l.Error(nil, "loud")
		assert.NotContains(t, buf.String(), "quiet")
		assert.Contains(t, buf.String(), "loud")
	})

	t.Run("console", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New(&buf, "", FormatConsole)
		assert.NoError(t, err)
		l.Info("plain")
		assert.Contains(t, buf.String(), "plain")
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := New(&bytes.Buffer{}, "loud", FormatJSON)
		assert.Error(t, err)
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := New(&bytes.Buffer{}, "info", "xml")
		assert.Error(t, err)
	})
}
