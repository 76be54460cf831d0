package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Log        LogConfig
	Metrics    MetricsConfig
	Query      QueryConfig
	Cache      CacheConfig
	Session    SessionConfig
	Validation ValidationConfig
	RateLimit  RateLimitConfig
	Pprof      PprofConfig
}

type ServerConfig struct {
	Host           string `env:"SERVER_HOST" envDefault:"localhost"`
	Port           int    `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
}

type DatabaseConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"POSTGRES_DB" envDefault:"pharmaconnect"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type MetricsConfig struct {
	Enabled        bool          `env:"METRICS_ENABLED" envDefault:"true"`
	QueueSize      int           `env:"METRICS_QUEUE_SIZE" envDefault:"1024"`
	HistoryLimit   int           `env:"METRICS_HISTORY_LIMIT" envDefault:"1000"`
	FlushInterval  time.Duration `env:"METRICS_FLUSH_INTERVAL" envDefault:"30s"`
	MemoryInterval time.Duration `env:"METRICS_MEMORY_INTERVAL" envDefault:"60s"`
	WriteTimeout   time.Duration `env:"METRICS_WRITE_TIMEOUT" envDefault:"5s"`
}

type QueryConfig struct {
	StaleTime          time.Duration `env:"QUERY_STALE_TIME" envDefault:"5m"`
	GCTime             time.Duration `env:"QUERY_GC_TIME" envDefault:"10m"`
	BackgroundInterval time.Duration `env:"QUERY_BACKGROUND_INTERVAL" envDefault:"30s"`
	PreloadStaleTime   time.Duration `env:"QUERY_PRELOAD_STALE_TIME" envDefault:"10m"`
	PreloadLimit       int           `env:"QUERY_PRELOAD_LIMIT" envDefault:"5"`
}

type CacheConfig struct {
	MaxEntriesPow2 int `env:"CACHE_MAX_ENTRIES_POW2" envDefault:"16"`
}

type SessionConfig struct {
	IdleTTL       time.Duration `env:"SESSION_IDLE_TTL" envDefault:"30m"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
}

type ValidationConfig struct {
	MaxRequestBodySize string `env:"MAX_REQUEST_BODY_SIZE" envDefault:"256K"`
	MaxEntries         int    `env:"BEACON_MAX_ENTRIES" envDefault:"500"`
	MaxResources       int    `env:"BEACON_MAX_RESOURCES" envDefault:"250"`
	MaxSamples         int    `env:"BEACON_MAX_SAMPLES" envDefault:"100"`
}

type RateLimitConfig struct {
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"50"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"100"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET"`
}

type PprofConfig struct {
	Enabled bool   `env:"PPROF_ENABLED" envDefault:"false"`
	Secret  string `env:"PPROF_SECRET"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
