package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"Debug console", Config{Level: "debug", Format: "console"}},
		{"Info json", Config{Level: "info", Format: "json"}},
		{"Warn json", Config{Level: "warn", Format: "json"}},
		{"Unknown level falls back", Config{Level: "loud", Format: "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(&tt.cfg)
			assert.NoError(t, err)
			assert.NotNil(t, l)
		})
	}

	t.Run("Warn level disables info", func(t *testing.T) {
		l, err := New(&Config{Level: "warn", Format: "json"})
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
	})
}

func TestForRun(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	ForRun(base, "commodities").Info("first")
	ForRun(base, "commodities").Info("second")

	entries := logs.All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	second := entries[1].ContextMap()
	assert.Equal(t, "commodities", first["domain"])
	assert.NotEmpty(t, first["run_id"])
	assert.NotEqual(t, first["run_id"], second["run_id"])
}

func TestWithRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals("requestid", "abc-123")
		WithRequestID(base, c).Info("with id")
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/plain", func(c *fiber.Ctx) error {
		WithRequestID(base, c).Info("without id")
		return c.SendStatus(fiber.StatusNoContent)
	})

	_, err := app.Test(newRequest("/"))
	require.NoError(t, err)
	_, err = app.Test(newRequest("/plain"))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "abc-123", entries[0].ContextMap()["request_id"])
	_, ok := entries[1].ContextMap()["request_id"]
	assert.False(t, ok)
}

func newRequest(path string) *http.Request {
	return httptest.NewRequest(http.MethodGet, path, nil)
}
