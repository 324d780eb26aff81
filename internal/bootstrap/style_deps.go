package bootstrap

import (
	"context"
	"time"

	"style_server/adapter/out/catalogfile"
	"style_server/adapter/out/llm"
	"style_server/adapter/out/mongodb"
	"style_server/adapter/out/persistence"
	"style_server/adapter/out/storage"
	"style_server/config"
	"style_server/core/domain"
	"style_server/core/port/out"
	"style_server/core/service/chat"
	"style_server/core/service/favorite"
	"style_server/core/service/product"
	"style_server/core/service/profile"
	"style_server/core/service/recommendation"
	"style_server/infra/database"
	"style_server/pkg/cache"
	"style_server/pkg/logger"
	"style_server/pkg/snowflake"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

type Dependencies struct {
	Config  *config.Config
	SQLDB   *sqlx.DB
	Redis   *redis.Client
	MongoDB *mongo.Client

	// Repositories
	StyleRepo     out.StyleProfileRepository
	PaletteRepo   out.ColorPaletteRepository
	ChatRepo      out.ChatHistoryRepository
	FavoriteRepo  out.FavoriteRepository
	ProductRepo   out.ProductRepository
	CatalogSource out.CatalogSource

	// Outbound
	Cache     out.Cache
	Generator *llm.OpenAIGenerator
	Uploads   out.UploadStore

	// Services
	RecommendationService *recommendation.Service
	ProfileService        *profile.Service
	ChatService           *chat.Service
	FavoriteService       *favorite.Service
	ProductService        *product.Service
}

func NewDependencies(cfg *config.Config) (*Dependencies, func(), error) {
	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	deps := &Dependencies{Config: cfg}

	// =========================================================================
	// Relational store
	// =========================================================================

	db, closeDB, err := database.NewSQL(context.Background(), sqlConfig(cfg))
	if err != nil {
		return nil, nil, err
	}
	cleanups = append(cleanups, func() { closeDB() })
	deps.SQLDB = db
	logger.Info("Connected to %s", cfg.DBDriver)

	// =========================================================================
	// Optional stores
	// =========================================================================

	if cfg.RedisURL != "" {
		client, err := database.NewRedis(cfg.RedisURL)
		if err != nil {
			logger.Warn("Redis unavailable, profile cache disabled: %v", err)
		} else {
			deps.Redis = client
			deps.Cache = cache.NewRedisCache(client, "style")
			cleanups = append(cleanups, func() { client.Close() })
			logger.Info("Connected to Redis")
		}
	}

	deps.ChatRepo = persistence.NewChatHistoryAdapter(db)
	if cfg.MongoDBURL != "" {
		client, err := mongodb.NewClient(cfg.MongoDBURL)
		if err != nil {
			logger.Warn("MongoDB unavailable, chat history stays in %s: %v", cfg.DBDriver, err)
		} else {
			deps.MongoDB = client
			cleanups = append(cleanups, func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				client.Disconnect(ctx)
			})

			history := mongodb.NewChatHistoryAdapter(client.Database(cfg.MongoDBName))
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := history.EnsureIndexes(ctx); err != nil {
				logger.Warn("Failed to create chat history indexes: %v", err)
			}
			cancel()

			deps.ChatRepo = history
			logger.Info("Chat history stored in MongoDB (%s)", cfg.MongoDBName)
		}
	}

	// =========================================================================
	// Repositories
	// =========================================================================

	deps.StyleRepo = persistence.NewStyleProfileAdapter(db)
	deps.PaletteRepo = persistence.NewColorPaletteAdapter(db)
	deps.FavoriteRepo = persistence.NewFavoriteAdapter(db)
	deps.ProductRepo = persistence.NewProductAdapter(db)

	if cfg.CatalogPath != "" {
		deps.CatalogSource = catalogfile.NewSource(cfg.CatalogPath)
	} else {
		deps.CatalogSource = persistence.NewCatalogAdapter(db)
	}

	// =========================================================================
	// Outbound services
	// =========================================================================

	if cfg.OpenAIAPIKey == "" {
		logger.Warn("OPENAI_API_KEY not set, chat will answer with the fallback reply")
	}
	deps.Generator = llm.NewOpenAIGenerator(llm.Config{
		APIKey:      cfg.OpenAIAPIKey,
		BaseURL:     cfg.OpenAIBaseURL,
		Model:       cfg.LLMModel,
		MaxTokens:   cfg.LLMMaxTokens,
		Temperature: cfg.LLMTemperature,
		Timeout:     cfg.LLMTimeout,
	})

	ids, err := snowflake.NewGenerator(cfg.NodeID)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	uploads, err := storage.NewLocalStore(cfg.UploadDir, "/Photos", ids)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	deps.Uploads = uploads

	// =========================================================================
	// Services
	// =========================================================================

	deps.RecommendationService = recommendation.NewService(domain.ConfidenceTable{
		domain.VariantSameColorSameType:           cfg.ConfidenceSameColorSameType,
		domain.VariantSameColorDifferentType:      cfg.ConfidenceSameColorDifferentType,
		domain.VariantDifferentColorSameType:      cfg.ConfidenceDifferentColorSameType,
		domain.VariantDifferentColorDifferentType: cfg.ConfidenceDifferentColorDifferentType,
	})

	deps.ProfileService = profile.NewService(deps.StyleRepo, deps.PaletteRepo, deps.Cache, profile.Config{
		CacheTTL:       cfg.ProfileCacheTTL,
		RequireFullSum: cfg.ProfileRequireFullSum,
	})

	deps.ChatService = chat.NewService(deps.ProfileService, deps.Generator, deps.ChatRepo, chat.Config{
		AssistantName: cfg.ChatAssistantName,
		HistoryLimit:  cfg.ChatHistoryLimit,
	})

	deps.FavoriteService = favorite.NewService(deps.FavoriteRepo)
	deps.ProductService = product.NewService(deps.ProductRepo)

	return deps, cleanup, nil
}

// LoadCatalog builds the recommendation catalog off the request path.
// Until it finishes, lookups see an empty catalog.
func (d *Dependencies) LoadCatalog(ctx context.Context) {
	go func() {
		ctx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()

		if err := d.RecommendationService.Load(ctx, d.CatalogSource); err != nil {
			logger.WithError(err).Error("Recommendation catalog not loaded")
		}
	}()
}

func sqlConfig(cfg *config.Config) database.SQLConfig {
	return database.SQLConfig{
		Driver:       cfg.DBDriver,
		URL:          cfg.DatabaseURL,
		Host:         cfg.DBHost,
		Port:         cfg.DBPort,
		User:         cfg.DBUser,
		Password:     cfg.DBPassword,
		Name:         cfg.DBName,
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
	}
}
