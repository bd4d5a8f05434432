package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Restaurant RestaurantConfig
	Catalog    CatalogConfig
	Storage    StorageConfig
	Redis      RedisConfig
	CORS       CORSConfig
	Assets     AssetsConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
}

// RestaurantConfig holds fallbacks used when the catalog document does not
// carry its own restaurant fields.
type RestaurantConfig struct {
	Name   string
	Slogan string
	Phone  string
}

type CatalogConfig struct {
	DefaultURL   string
	FetchTimeout time.Duration
	RefreshCron  string // empty disables the scheduled refresh
}

type StorageConfig struct {
	Backend string // file, redis
	DataDir string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

// AssetsConfig describes the static assets served to the PWA shell and the
// fixed manifest its service worker caches.
type AssetsConfig struct {
	Dir          string
	CacheName    string
	CacheVersion int
	Manifest     []string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Restaurant: RestaurantConfig{
			Name:   getEnv("RESTAURANT_NAME", "KAIZEN Sushi"),
			Slogan: getEnv("RESTAURANT_SLOGAN", "El arte del sushi, a tu manera"),
			Phone:  getEnv("RESTAURANT_PHONE", ""),
		},
		Catalog: CatalogConfig{
			DefaultURL:   getEnv("CATALOG_URL", "http://localhost:8080/assets/catalog.json"),
			FetchTimeout: parseDuration(getEnv("CATALOG_FETCH_TIMEOUT", "30s")),
			RefreshCron:  getEnv("CATALOG_REFRESH_CRON", ""),
		},
		Storage: StorageConfig{
			Backend: getEnv("STORAGE_BACKEND", "file"),
			DataDir: getEnv("STORAGE_DATA_DIR", "./data"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       parseInt(getEnv("REDIS_DB", "0")),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
		Assets: AssetsConfig{
			Dir:          getEnv("ASSETS_DIR", "./web"),
			CacheName:    getEnv("ASSET_CACHE_NAME", "kaizen-sushi-cache"),
			CacheVersion: parseInt(getEnv("ASSET_CACHE_VERSION", "1")),
			Manifest: parseSlice(getEnv("ASSET_MANIFEST",
				"./,./index.html,./app.js,./manifest.json,./icons/icon-192.png,./icons/icon-512.png")),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Invalid duration %s, using default 30s", s)
		return 30 * time.Second
	}
	return duration
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("Invalid integer %s, using 0", s)
		return 0
	}
	return n
}

func parseSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
