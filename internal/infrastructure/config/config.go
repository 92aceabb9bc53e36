package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	S3        S3Config
	Log       LogConfig
	Geocoder  GeocoderConfig
	Sanitize  SanitizeConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"120s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// S3Config enables uploading a copy of every archive for later download.
type S3Config struct {
	Enabled         bool          `envconfig:"S3_ENABLED" default:"false"`
	Endpoint        string        `envconfig:"S3_ENDPOINT"`
	Region          string        `envconfig:"S3_REGION" default:"us-east-1"`
	Bucket          string        `envconfig:"S3_BUCKET"`
	AccessKeyID     string        `envconfig:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string        `envconfig:"S3_SECRET_ACCESS_KEY"`
	UsePathStyle    bool          `envconfig:"S3_USE_PATH_STYLE" default:"false"`
	PublicURL       string        `envconfig:"S3_PUBLIC_URL"`
	KeyPrefix       string        `envconfig:"S3_KEY_PREFIX" default:"archives"`
	URLExpiry       time.Duration `envconfig:"S3_URL_EXPIRY" default:"24h"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

// RedisConfig backs the geocoding cache.
type RedisConfig struct {
	Enabled  bool          `envconfig:"REDIS_ENABLED" default:"false"`
	Host     string        `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int           `envconfig:"REDIS_PORT" default:"6379"`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"GEOCODE_CACHE_TTL" default:"168h"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type GeocoderConfig struct {
	Enabled         bool          `envconfig:"GEOCODER_ENABLED" default:"true"`
	BaseURL         string        `envconfig:"GEOCODER_BASE_URL" default:"https://nominatim.openstreetmap.org/search"`
	UserAgent       string        `envconfig:"GEOCODER_USER_AGENT" default:"PhotoSanitizer/1.0"`
	Timeout         time.Duration `envconfig:"GEOCODER_TIMEOUT" default:"10s"`
	CountryCode     string        `envconfig:"GEOCODER_COUNTRY_CODE" default:"co"`
	CountryName     string        `envconfig:"GEOCODER_COUNTRY_NAME" default:"Colombia"`
	MaxCityDistance float64       `envconfig:"GEOCODER_MAX_CITY_DISTANCE_KM" default:"60"`
}

// RateLimitConfig throttles the processing routes. It needs Redis.
type RateLimitConfig struct {
	Enabled  bool          `envconfig:"RATE_LIMIT_ENABLED" default:"false"`
	Requests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"30"`
	Window   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
}

type SanitizeConfig struct {
	MaxUploadSize    int64   `envconfig:"SANITIZE_MAX_UPLOAD_SIZE" default:"209715200"`
	MaxFiles         int     `envconfig:"SANITIZE_MAX_FILES" default:"50"`
	Workers          int     `envconfig:"SANITIZE_WORKERS" default:"1"`
	DefaultIntensity string  `envconfig:"SANITIZE_DEFAULT_INTENSITY" default:"medium"`
	JitterRadius     float64 `envconfig:"SANITIZE_JITTER_RADIUS" default:"30"`
	MaxJitterRadius  float64 `envconfig:"SANITIZE_MAX_JITTER_RADIUS" default:"1000"`
	WindowDays       int     `envconfig:"SANITIZE_WINDOW_DAYS" default:"30"`
	FirstHour        int     `envconfig:"SANITIZE_FIRST_HOUR" default:"7"`
	LastHour         int     `envconfig:"SANITIZE_LAST_HOUR" default:"19"`
	ErrorHeaderLimit int     `envconfig:"SANITIZE_ERROR_HEADER_LIMIT" default:"3"`
	Seed             uint64  `envconfig:"SANITIZE_SEED" default:"0"`
}

func (c Config) validate() error {
	if c.S3.Enabled && (c.S3.Bucket == "" || c.S3.AccessKeyID == "" || c.S3.SecretAccessKey == "") {
		return errors.New("S3_BUCKET, S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY are required when S3_ENABLED is set")
	}
	if c.Sanitize.FirstHour < 0 || c.Sanitize.LastHour > 23 || c.Sanitize.FirstHour > c.Sanitize.LastHour {
		return fmt.Errorf("invalid capture hours %d-%d", c.Sanitize.FirstHour, c.Sanitize.LastHour)
	}
	if c.RateLimit.Enabled && !c.Redis.Enabled {
		return errors.New("RATE_LIMIT_ENABLED requires REDIS_ENABLED")
	}
	if r := c.Sanitize; !(r.MaxJitterRadius > 0) || !(r.JitterRadius >= 0) || r.JitterRadius > r.MaxJitterRadius {
		return fmt.Errorf("SANITIZE_JITTER_RADIUS must be within 0-%g, got %g", r.MaxJitterRadius, r.JitterRadius)
	}
	if c.Sanitize.Workers < 1 {
		return fmt.Errorf("SANITIZE_WORKERS must be at least 1, got %d", c.Sanitize.Workers)
	}
	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}
