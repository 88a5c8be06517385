package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Store backends selectable through STORE_BACKEND.
const (
	StoreBackendLocal    = "local"
	StoreBackendPostgres = "postgres"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Store       StoreConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Performance PerformanceConfig
	JWT         JWTConfig
	Admin       AdminConfig
	CORS        CORSConfig
	Log         LogConfig
	Uploads     UploadsConfig
	Import      ImportConfig
	Notify      NotifyConfig
}

// StoreConfig selects and tunes the collection store backend.
type StoreConfig struct {
	Backend     string
	DataDir     string
	SeedOnEmpty bool
	Timeout     time.Duration
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// PerformanceConfig governs caching of student performance summaries.
type PerformanceConfig struct {
	CacheEnabled bool
	CacheTTL     time.Duration
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
}

// AdminConfig holds the single admin console account.
type AdminConfig struct {
	Email        string
	PasswordHash string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// UploadsConfig controls image storage for winners, activities and the gallery.
type UploadsConfig struct {
	Dir              string
	PublicBase       string
	MaxFileSizeBytes int64
	AllowedMIMEs     []string
}

// ImportConfig bounds bulk student imports.
type ImportConfig struct {
	MaxBytes int64
}

// NotifyConfig sizes the change notification worker pool.
type NotifyConfig struct {
	Workers int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Store = StoreConfig{
		Backend:     strings.ToLower(v.GetString("STORE_BACKEND")),
		DataDir:     v.GetString("LOCAL_DATA_DIR"),
		SeedOnEmpty: v.GetBool("SEED_ON_EMPTY"),
		Timeout:     parseDuration(v.GetString("STORE_TIMEOUT"), 5*time.Second),
	}
	if cfg.Store.Backend != StoreBackendPostgres {
		cfg.Store.Backend = StoreBackendLocal
	}

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Performance = PerformanceConfig{
		CacheEnabled: v.GetBool("ENABLE_PERFORMANCE_CACHE"),
		CacheTTL:     parseDuration(v.GetString("PERFORMANCE_CACHE_TTL"), 10*time.Minute),
	}

	cfg.JWT = JWTConfig{
		Secret:     v.GetString("JWT_SECRET"),
		Expiration: parseDuration(v.GetString("JWT_EXPIRATION"), 12*time.Hour),
		Issuer:     v.GetString("JWT_ISSUER"),
	}

	cfg.Admin = AdminConfig{
		Email:        strings.TrimSpace(v.GetString("ADMIN_EMAIL")),
		PasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	maxUpload := v.GetInt64("UPLOADS_MAX_FILE_SIZE")
	if maxUpload <= 0 {
		maxUpload = 5 * 1024 * 1024
	}
	cfg.Uploads = UploadsConfig{
		Dir:              v.GetString("UPLOADS_DIR"),
		PublicBase:       strings.TrimRight(v.GetString("UPLOADS_PUBLIC_BASE"), "/"),
		MaxFileSizeBytes: maxUpload,
		AllowedMIMEs:     splitAndTrim(v.GetString("UPLOADS_ALLOWED_MIME_TYPES")),
	}

	maxImport := v.GetInt64("IMPORT_MAX_BYTES")
	if maxImport <= 0 {
		maxImport = 2 * 1024 * 1024
	}
	cfg.Import = ImportConfig{MaxBytes: maxImport}

	cfg.Notify = NotifyConfig{Workers: v.GetInt("NOTIFY_WORKERS")}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("STORE_BACKEND", StoreBackendLocal)
	v.SetDefault("LOCAL_DATA_DIR", "./data")
	v.SetDefault("SEED_ON_EMPTY", true)
	v.SetDefault("STORE_TIMEOUT", "5s")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "activity_showcase")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ENABLE_PERFORMANCE_CACHE", false)
	v.SetDefault("PERFORMANCE_CACHE_TTL", "10m")

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "12h")
	v.SetDefault("JWT_ISSUER", "activity-showcase")

	v.SetDefault("ADMIN_EMAIL", "admin@example.com")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("UPLOADS_DIR", "./uploads")
	v.SetDefault("UPLOADS_PUBLIC_BASE", "/media")
	v.SetDefault("UPLOADS_MAX_FILE_SIZE", 5*1024*1024)
	v.SetDefault("UPLOADS_ALLOWED_MIME_TYPES", "image/jpeg,image/png,image/gif,image/webp")

	v.SetDefault("IMPORT_MAX_BYTES", 2*1024*1024)
	v.SetDefault("NOTIFY_WORKERS", 2)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
