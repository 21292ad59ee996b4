package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	JWT         JWTConfig
	Redis       RedisConfig
	Recommender RecommenderConfig
}

type AppConfig struct {
	Name                 string
	Version              string
	Environment          string
	AppPasswordResetKey  string
	DefaultCity          string
	SupportedCityDefault string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey string
	TokenTTL  time.Duration
}

type RedisConfig struct {
	Enabled       bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

// RecommenderConfig lifts the engine's tuning literals into named,
// env-overridable fields. Defaults match the documented behavior.
type RecommenderConfig struct {
	ExploreEpsilon         float64
	CuisineWeight          float64
	VegetarianWeight       float64
	DefaultLimit           int
	CatalogLoadTimeout     time.Duration
	CatalogRefreshInterval time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB := 0
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("invalid redis database")
		}
		redisDB = parsed
	}

	cfg := &Config{
		App: AppConfig{
			Name:                getEnv("APP_NAME", "Dabba Market API"),
			Version:             getEnv("APP_VERSION", "1.0.0"),
			Environment:         getEnv("APP_ENV", "development"),
			AppPasswordResetKey: getEnv("APP_PASSWORD_RESET_KEY", ""),
			DefaultCity:         getEnv("APP_DEFAULT_CITY", "mumbai"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "dabba_market"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
			TokenTTL:  getEnvDuration("JWT_TOKEN_TTL", 24*time.Hour),
		},
		Redis: RedisConfig{
			Enabled:       getEnv("REDIS_ENABLED", "false") == "true",
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
		},
		Recommender: RecommenderConfig{
			ExploreEpsilon:         getEnvFloat("RECO_EXPLORE_EPSILON", 0.3),
			CuisineWeight:          getEnvFloat("RECO_CUISINE_WEIGHT", 0.5),
			VegetarianWeight:       getEnvFloat("RECO_VEGETARIAN_WEIGHT", 0.3),
			DefaultLimit:           getEnvInt("RECO_DEFAULT_LIMIT", 10),
			CatalogLoadTimeout:     getEnvDuration("RECO_CATALOG_LOAD_TIMEOUT", 3*time.Second),
			CatalogRefreshInterval: getEnvDuration("RECO_CATALOG_REFRESH_INTERVAL", 5*time.Minute),
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.App.AppPasswordResetKey == "" {
		return nil, errors.New("missing app password reset key")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}

	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}

	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}

	return defaultVal
}
