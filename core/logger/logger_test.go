package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/l10n/core/logger"
)

func TestNewJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithProduction("catalog"),
		logger.WithOutput(&buf),
	)

	log.Info("resolved", logger.Language("pt"), logger.Field("Name"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "resolved", rec["msg"])
	assert.Equal(t, "catalog", rec["service"])
	assert.Equal(t, "production", rec["env"])
	assert.Equal(t, "pt", rec["language"])
	assert.Equal(t, "Name", rec["field"])
}

func TestNewLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithLevel(slog.LevelWarn),
		logger.WithOutput(&buf),
	)

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewDevelopment(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithDevelopment("catalog"), logger.WithOutput(&buf))

	log.Debug("visible at debug")
	assert.Contains(t, buf.String(), "visible at debug")
	assert.Contains(t, buf.String(), "env=development")
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	t.Run("error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, slog.Attr{}, logger.Error(nil))
		attr := logger.Error(errors.New("boom"))
		assert.Equal(t, "error", attr.Key)
	})

	t.Run("errors skips nil", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, slog.Attr{}, logger.Errors(nil, nil))

		attr := logger.Errors(errors.New("a"), nil, errors.New("b"))
		require.Equal(t, slog.KindGroup, attr.Value.Kind())
		g := attr.Value.Group()
		require.Len(t, g, 2)
		assert.Equal(t, "0", g[0].Key)
		assert.Equal(t, "2", g[1].Key)
	})

	t.Run("blank values are empty", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, slog.Attr{}, logger.Field(""))
		assert.Equal(t, slog.Attr{}, logger.Language(""))
		assert.Equal(t, slog.Attr{}, logger.Key("k", nil))
	})

	t.Run("group", func(t *testing.T) {
		t.Parallel()
		attr := logger.Group("member", logger.Type("Product"), logger.Count("n", 2))
		g := attr.Value.Group()
		require.Len(t, g, 2)
		assert.Equal(t, "type", g[0].Key)
		assert.Equal(t, int64(2), g[1].Value.Int64())
	})
}

func TestDiscard(t *testing.T) {
	t.Parallel()
	assert.False(t, logger.Discard().Enabled(t.Context(), slog.LevelError))
}

func TestNewColor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithColorFormatter(), logger.WithOutput(&buf))

	log.Info("colored", logger.Language("pt"))
	assert.Contains(t, buf.String(), "colored")
	assert.Contains(t, buf.String(), "pt")
	assert.Contains(t, buf.String(), "\x1b[")
}
