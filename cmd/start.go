package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backoffice/core/config"
	"backoffice/core/database"
	"backoffice/core/loader"
	"backoffice/core/logger"
	"backoffice/core/middleware/auth"
	"backoffice/core/middleware/rayid"
	"backoffice/core/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "backoffice/docs/swagger"
)

// @title Back Office API
// @version 1.0
// @description Pair orders and security reference data, replaced through staging tables.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the back office server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !cfg.Server.IsValidMode() {
			logg.Fatal("Invalid server mode", zap.String("mode", cfg.Server.Mode))
		}

		// 3. Connect to Database (Optional; dataset features stay disabled without it)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to database",
				zap.String("driver", cfg.Database.Driver),
				zap.Bool("promote_procedures", cfg.Database.PromoteProcedures),
			)
		}

		// 4. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		a := newApp(cfg, logg, db, store)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := a.ensureBucket(ctx); err != nil {
			logg.Warn("Feed bucket unavailable", zap.String("bucket", cfg.Storage.Bucket), zap.Error(err))
		}
		cancel()

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(a.pairOrders)
		mgr.Register(a.securities)
		mgr.Register(a.feeds)
		mgr.Register(a.integrity)

		// RayID first so every log line and rejection is traceable
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
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

		// Public routes
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok", "database": db != nil, "mode": cfg.Server.Mode})
		})

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))
		if cfg.Server.ApiKey == "" {
			logg.Warn("No API key configured, all routes are public")
		}

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port), zap.String("mode", cfg.Server.Mode))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
