package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Fixed API origins used when no explicit override is configured.
const (
	ProductionAPIURL = "https://api.unigov.app/api"
	LocalAPIURL      = "http://localhost:8081/api"
)

// Session storage drivers.
const (
	SessionDriverFile   = "file"
	SessionDriverRedis  = "redis"
	SessionDriverMemory = "memory"
)

type Config struct {
	Env string

	API     APIConfig
	Session SessionConfig
	Redis   RedisConfig
	Log     LogConfig
	Mock    MockConfig
}

// APIConfig describes how the client reaches the remote API.
type APIConfig struct {
	// Override is the raw UNIGOV_API_URL value, empty when unset.
	Override string
	BaseURL  string
	Timeout  time.Duration
}

// SessionConfig selects where the persisted `user` record lives.
type SessionConfig struct {
	Driver      string
	File        string
	RedisPrefix string
}

// RedisConfig locates the redis server behind the redis session driver. URL,
// when set, takes precedence over the individual fields.
type RedisConfig struct {
	URL         string
	Host        string
	Port        int
	Password    string
	DB          int
	PingTimeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

// MockConfig configures the local mock backend.
type MockConfig struct {
	Port           int
	APIPrefix      string
	Delay          time.Duration
	UploadDir      string
	JWTSecret      string
	JWTExpiration  time.Duration
	AllowedOrigins []string
}

// IsProduction reports whether the build runs in production mode.
func (c *Config) IsProduction() bool {
	return c != nil && c.Env == EnvProduction
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

	override := v.GetString("UNIGOV_API_URL")
	cfg.API = APIConfig{
		Override: override,
		BaseURL:  ResolveBaseURL(override, cfg.Env == EnvProduction),
		Timeout:  parseDuration(v.GetString("HTTP_TIMEOUT"), 15*time.Second),
	}

	cfg.Session = SessionConfig{
		Driver:      strings.ToLower(strings.TrimSpace(v.GetString("SESSION_DRIVER"))),
		File:        expandHome(v.GetString("SESSION_FILE")),
		RedisPrefix: v.GetString("SESSION_REDIS_PREFIX"),
	}

	cfg.Redis = RedisConfig{
		URL:         strings.TrimSpace(v.GetString("REDIS_URL")),
		Host:        v.GetString("REDIS_HOST"),
		Port:        v.GetInt("REDIS_PORT"),
		Password:    v.GetString("REDIS_PASSWORD"),
		DB:          v.GetInt("REDIS_DB"),
		PingTimeout: parseDuration(v.GetString("REDIS_PING_TIMEOUT"), 5*time.Second),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Mock = MockConfig{
		Port:           v.GetInt("MOCK_PORT"),
		APIPrefix:      v.GetString("API_PREFIX"),
		Delay:          parseDuration(v.GetString("MOCK_DELAY"), 0),
		UploadDir:      v.GetString("MOCK_UPLOAD_DIR"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTExpiration:  parseDuration(v.GetString("JWT_EXPIRATION"), 24*time.Hour),
		AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS")),
	}

	return cfg, nil
}

// ResolveBaseURL picks the API origin: an explicit override always wins, then
// the production origin when running in production mode, then the local one.
func ResolveBaseURL(override string, production bool) string {
	if trimmed := strings.TrimSpace(override); trimmed != "" {
		return trimmed
	}
	if production {
		return ProductionAPIURL
	}
	return LocalAPIURL
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("UNIGOV_API_URL", "")
	v.SetDefault("HTTP_TIMEOUT", "15s")

	v.SetDefault("SESSION_DRIVER", SessionDriverFile)
	v.SetDefault("SESSION_FILE", filepath.Join("~", ".unigov", "session.json"))
	v.SetDefault("SESSION_REDIS_PREFIX", "unigov:session:")

	v.SetDefault("REDIS_URL", "")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_PING_TIMEOUT", "5s")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("MOCK_PORT", 8081)
	v.SetDefault("API_PREFIX", "/api")
	v.SetDefault("MOCK_DELAY", "0s")
	v.SetDefault("MOCK_UPLOAD_DIR", "./uploads")
	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "24h")
	v.SetDefault("ALLOWED_ORIGINS", "")
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

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], string(filepath.Separator)))
	}
	return path
}
