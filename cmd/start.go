package cmd

import (
	"wowsync/core/loader"
	"wowsync/core/logger"
	"wowsync/core/middleware/auth"
	"wowsync/feature/auctionhouse"
	"wowsync/feature/gamedata"
	"wowsync/feature/guild"
	"wowsync/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the read API server",
	Long:  `Starts the HTTP read API over the local store and exposes /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, logg, db, err := loadBase()
		if err != nil {
			return err
		}
		defer logg.Sync()

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(gamedata.NewFeature(db, logg))
		mgr.Register(guild.NewFeature(db, logg))
		mgr.Register(auctionhouse.NewFeature(db, logg))

		svc, err := newIntegrity(cfg, db, logg)
		if err != nil {
			return err
		}
		mgr.Register(integrity.NewFeatureWithService(svc))

		// Request id first so every later log line carries it
		app.Use(requestid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRequestID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

		app.Use(auth.New(auth.Config{
			ApiKey: cfg.Server.ApiKey,
			Skip:   []string{"/health", "/metrics"},
		}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		<-ctx.Done()
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
