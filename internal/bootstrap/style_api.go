package bootstrap

import (
	"context"
	"strings"
	"time"

	"style_server/adapter/in/http"
	"style_server/config"
	"style_server/infra/middleware"
	"style_server/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const chatRateWindow = time.Minute

func NewAPI(cfg *config.Config) (*fiber.App, func(), error) {
	deps, cleanup, err := NewDependencies(cfg)
	if err != nil {
		logger.WithError(err).Error("Failed to initialize dependencies")
		return nil, nil, err
	}

	ctx, cancelLoad := context.WithCancel(context.Background())
	deps.LoadCatalog(ctx)

	app := NewApp(cfg, deps)

	return app, func() {
		cancelLoad()
		cleanup()
	}, nil
}

// NewApp wires middleware and routes onto a fresh Fiber app.
func NewApp(cfg *config.Config, deps *Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          middleware.ErrorHandler(),
		DisableStartupMessage: cfg.IsProduction(),
		StrictRouting:         false,
		CaseSensitive:         false,

		// go-json for request and response bodies
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,

		// uploads plus multipart overhead
		BodyLimit: int(cfg.UploadMaxBytes) + 1024*1024,

		ServerHeader:       "",
		DisableDefaultDate: true,
	})

	// Global middleware stack (order matters)
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())
	app.Use(middleware.Recover())
	app.Use(middleware.SecurityHeaders())
	app.Use(middleware.Timeout(cfg.RequestTimeout))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	allowOrigins := strings.Join(cfg.AllowedOrigins, ",")
	app.Use(cors.New(cors.Config{
		AllowOrigins:  allowOrigins,
		AllowMethods:  "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept,X-Request-ID",
		ExposeHeaders: "X-Request-ID",
		MaxAge:        86400,
	}))

	app.Static("/Photos", cfg.UploadDir, fiber.Static{
		ByteRange: true,
		MaxAge:    3600,
	})

	http.NewHealthHandler(deps.SQLDB, deps.Redis, deps.RecommendationService, deps.Generator).Register(app)

	api := app.Group("/api")
	http.NewRecommendationHandler(deps.RecommendationService).Register(api)
	http.NewProfileHandler(deps.ProfileService).Register(api)
	http.NewFavoriteHandler(deps.FavoriteService).Register(api)
	http.NewProductHandler(deps.ProductService).Register(api)
	http.NewChatHandler(deps.ChatService, cfg.ChatDefaultUserID).
		Register(api, middleware.RateLimit(cfg.ChatRateLimit, chatRateWindow))
	http.NewUploadHandler(deps.Uploads, cfg.UploadMaxBytes).Register(api)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})

	logger.Info("API routes registered")
	return app
}
