package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"wowsync/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(cfg auth.Config) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(cfg))
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/guilds", func(c *fiber.Ctx) error { return c.SendString("[]") })
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name   string
		cfg    auth.Config
		path   string
		header string
		want   int
	}{
		{"Disabled", auth.Config{}, "/guilds", "", http.StatusOK},
		{"Missing key", auth.Config{ApiKey: "secret"}, "/guilds", "", http.StatusUnauthorized},
		{"Wrong key", auth.Config{ApiKey: "secret"}, "/guilds", "nope", http.StatusUnauthorized},
		{"Valid key", auth.Config{ApiKey: "secret"}, "/guilds", "secret", http.StatusOK},
		{"Skipped path", auth.Config{ApiKey: "secret", Skip: []string{"/health"}}, "/health", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(tt.cfg)
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set(auth.HeaderName, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
