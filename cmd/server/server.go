package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	"github.com/spiritwiki/loadout-api/internal/clients/gamedata"
	v1 "github.com/spiritwiki/loadout-api/internal/handlers/api/v1"
	loadoutorch "github.com/spiritwiki/loadout-api/internal/orchestrators/loadout"
	"github.com/spiritwiki/loadout-api/internal/redis"
	"github.com/spiritwiki/loadout-api/internal/registry"
	buildsrepo "github.com/spiritwiki/loadout-api/internal/repositories/builds"
	collectionrepo "github.com/spiritwiki/loadout-api/internal/repositories/collection"
	loadoutsrepo "github.com/spiritwiki/loadout-api/internal/repositories/loadouts"
)

var (
	serverPort   int
	redisAddr    string
	dataBaseURL  string
	shareBaseURL string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Start the loadout API HTTP server with all configured services.`,
	RunE:  runServe,
}

func init() {
	// Flags override environment, environment overrides defaults.
	_ = godotenv.Load()

	serveCmd.Flags().IntVar(&serverPort, "port", envIntOr("PORT", 8080), "HTTP server port")
	serveCmd.Flags().StringVar(&redisAddr, "redis-addr", envOr("REDIS_ADDR", "localhost:6379"), "redis endpoint")
	serveCmd.Flags().StringVar(&dataBaseURL, "data-base-url", envOr("DATA_BASE_URL", ""), "base URL for static game data files")
	serveCmd.Flags().StringVar(&shareBaseURL, "share-base-url", envOr("SHARE_BASE_URL", ""), "base URL prefixed to share links")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if dataBaseURL == "" {
		return fmt.Errorf("data base URL is required (--data-base-url or DATA_BASE_URL)")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	redisClient, err := redis.NewClient(redisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}()

	loadoutRepo, err := loadoutsrepo.NewRedis(&loadoutsrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create loadout repository: %w", err)
	}

	buildRepo, err := buildsrepo.NewRedis(&buildsrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create build repository: %w", err)
	}

	collectionRepo, err := collectionrepo.NewRedis(&collectionrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create collection repository: %w", err)
	}

	gameData, err := gamedata.New(&gamedata.Config{BaseURL: dataBaseURL})
	if err != nil {
		return fmt.Errorf("failed to create game data client: %w", err)
	}

	reg, err := newRegistry(dataBaseURL)
	if err != nil {
		return fmt.Errorf("failed to create data registry: %w", err)
	}

	service, err := loadoutorch.New(&loadoutorch.Config{
		LoadoutRepo:    loadoutRepo,
		BuildRepo:      buildRepo,
		CollectionRepo: collectionRepo,
		GameData:       gameData,
		ShareBaseURL:   shareBaseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create loadout service: %w", err)
	}

	handler, err := v1.New(&v1.Config{
		LoadoutService: service,
		Registry:       reg,
	})
	if err != nil {
		return fmt.Errorf("failed to create API handler: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
				slog.ErrorContext(c.Request().Context(), "request", attrs...)
				return nil
			}
			slog.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})
	handler.Register(e)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", serverPort)
		if err := e.Start(fmt.Sprintf(":%d", serverPort)); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed, closing", "error", err)
			return e.Close()
		}
		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

// newRegistry wires the wiki's static catalog files into the data registry.
func newRegistry(baseURL string) (*registry.Registry, error) {
	reg, err := registry.New(&registry.Config{BaseURL: baseURL})
	if err != nil {
		return nil, err
	}

	if err := reg.Register("spirits", &registry.SourceConfig{
		File:    "spirit-characters.json",
		Label:   "Spirits",
		Kind:    registry.KindArray,
		Path:    "spirits",
		IDField: "id",
		Display: registry.DisplayConfig{
			Primary:   "name",
			Secondary: "type",
			Badges:    []string{"rarity"},
		},
		SearchFields: []string{"name", "type"},
	}); err != nil {
		return nil, err
	}

	if err := reg.Register("skills", &registry.SourceConfig{
		File:    "skills.json",
		Label:   "Skills",
		Kind:    registry.KindArray,
		IDField: "id",
		Display: registry.DisplayConfig{
			Primary:   "name",
			Secondary: "type",
		},
		SearchFields: []string{"name", "type", "description"},
	}); err != nil {
		return nil, err
	}

	if err := reg.Register("shapes", &registry.SourceConfig{
		File:    "engraving-shapes.json",
		Label:   "Engraving Shapes",
		Kind:    registry.KindArray,
		IDField: "id",
		Display: registry.DisplayConfig{
			Primary: "name",
		},
		SearchFields: []string{"name"},
	}); err != nil {
		return nil, err
	}

	return reg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var n int
	if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
		return fallback
	}
	return n
}
