package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/limbo/twentyfourseven/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		l, sync, err := logger.NewWithWriter(&buf, "info", "json")
		require.NoError(t, err)
		l.Info("timer started", slog.String("uid", "abc"))
		l.Debug("hidden")
		_ = sync()
		out := buf.String()
		assert.Contains(t, out, `"msg":"timer started"`)
		assert.Contains(t, out, `"uid":"abc"`)
		assert.NotContains(t, out, "hidden")
	})
	t.Run("console", func(t *testing.T) {
		var buf bytes.Buffer
		l, _, err := logger.NewWithWriter(&buf, "debug", "console")
		require.NoError(t, err)
		l.Debug("visible")
		assert.Contains(t, buf.String(), "visible")
	})
	t.Run("invalid level", func(t *testing.T) {
		_, _, err := logger.NewWithWriter(&bytes.Buffer{}, "loud", "json")
		assert.Error(t, err)
	})
	t.Run("invalid format", func(t *testing.T) {
		_, _, err := logger.NewWithWriter(&bytes.Buffer{}, "info", "xml")
		assert.Error(t, err)
	})
}
