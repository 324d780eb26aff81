package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	NodeID      int64

	// Database
	DBDriver        string
	DatabaseURL     string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBMaxOpenConns  int
	DBMaxIdleConns  int
	RedisURL        string
	MongoDBURL      string
	MongoDBName     string
	ProfileCacheTTL time.Duration

	// Recommendation catalog
	CatalogPath                           string
	ConfidenceSameColorSameType           int
	ConfidenceSameColorDifferentType      int
	ConfidenceDifferentColorSameType      int
	ConfidenceDifferentColorDifferentType int
	ProductsPath                          string

	// Text generation
	OpenAIAPIKey   string
	OpenAIBaseURL  string
	LLMModel       string
	LLMMaxTokens   int
	LLMTemperature float64
	LLMTimeout     time.Duration

	// Chat
	ChatAssistantName string
	ChatDefaultUserID int64
	ChatHistoryLimit  int
	ChatRateLimit     int

	// Profile
	ProfileRequireFullSum bool

	// HTTP
	RequestTimeout time.Duration
	UploadDir      string
	UploadMaxBytes int64
	AllowedOrigins []string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		NodeID:      int64(getEnvInt("NODE_ID", 1)),

		// Database
		DBDriver:        strings.ToLower(getEnv("DB_DRIVER", "mysql")),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "3306"),
		DBUser:          getEnv("DB_USER", "root"),
		DBPassword:      getEnv("DB_PASSWORD", ""),
		DBName:          getEnv("DB_NAME", "fashion_ai"),
		DBMaxOpenConns:  getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:  getEnvInt("DB_MAX_IDLE_CONNS", 10),
		RedisURL:        getEnv("REDIS_URL", ""),
		MongoDBURL:      getEnv("MONGODB_URL", ""),
		MongoDBName:     getEnv("MONGODB_DATABASE", "fashion_ai"),
		ProfileCacheTTL: time.Duration(getEnvInt("PROFILE_CACHE_TTL_SEC", 300)) * time.Second,

		// Recommendation catalog
		CatalogPath:                           getEnv("CATALOG_PATH", ""),
		ConfidenceSameColorSameType:           getEnvInt("MATCH_CONFIDENCE_SAME_COLOR_SAME_TYPE", 98),
		ConfidenceSameColorDifferentType:      getEnvInt("MATCH_CONFIDENCE_SAME_COLOR_DIFFERENT_TYPE", 95),
		ConfidenceDifferentColorSameType:      getEnvInt("MATCH_CONFIDENCE_DIFFERENT_COLOR_SAME_TYPE", 92),
		ConfidenceDifferentColorDifferentType: getEnvInt("MATCH_CONFIDENCE_DIFFERENT_COLOR_DIFFERENT_TYPE", 90),
		ProductsPath:                          getEnv("PRODUCTS_PATH", "data/products.yaml"),

		// Text generation
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", getEnv("GENAI_API_KEY", "")),
		OpenAIBaseURL:  getEnv("OPENAI_BASE_URL", ""),
		LLMModel:       getEnv("LLM_MODEL", "gpt-4o-mini"),
		LLMMaxTokens:   getEnvInt("LLM_MAX_TOKENS", 1024),
		LLMTemperature: getEnvFloat("LLM_TEMPERATURE", 0.7),
		LLMTimeout:     time.Duration(getEnvInt("LLM_TIMEOUT_SEC", 30)) * time.Second,

		// Chat
		ChatAssistantName: getEnv("CHAT_ASSISTANT_NAME", "Glambot"),
		ChatDefaultUserID: int64(getEnvInt("CHAT_DEFAULT_USER_ID", 1)),
		ChatHistoryLimit:  getEnvInt("CHAT_HISTORY_LIMIT", 50),
		ChatRateLimit:     getEnvInt("CHAT_RATE_LIMIT_PER_MIN", 30),

		// Profile
		ProfileRequireFullSum: getEnvBool("PROFILE_REQUIRE_FULL_SUM", false),

		// HTTP
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SEC", 15)) * time.Second,
		UploadDir:      getEnv("UPLOAD_DIR", "./Photos"),
		UploadMaxBytes: int64(getEnvInt("UPLOAD_MAX_BYTES", 5*1024*1024)),
		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}

	switch cfg.DBDriver {
	case "mysql", "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want mysql, postgres or sqlite)", cfg.DBDriver)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
