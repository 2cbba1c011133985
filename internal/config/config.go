package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress           string
	DatabaseURI          string
	OrderSourceAddress   string
	SessionTTL           time.Duration
	SessionSweepInterval time.Duration
	MaxSessions          int
	ShutdownTimeout      time.Duration
	LogLevel             string
	MetricsEnabled       bool
	SeedOrders           int
}

// SourceKind names the backend serving the order collection.
type SourceKind string

const (
	SourceMemory   SourceKind = "memory"
	SourcePostgres SourceKind = "postgres"
	SourceHTTP     SourceKind = "http"
)

const (
	defaultRunAddress           = ":8080"
	defaultSessionTTL           = 30 * time.Minute
	defaultSessionSweepInterval = time.Minute
	defaultMaxSessions          = 1000
	defaultShutdownTimeout      = 10 * time.Second
	defaultLogLevel             = "info"
	defaultMetricsEnabled       = true
	defaultSeedOrders           = 45
)

// OrderSource reports which backend provides orders.
func (c *Config) OrderSource() SourceKind {
	switch {
	case c.DatabaseURI != "":
		return SourcePostgres
	case c.OrderSourceAddress != "":
		return SourceHTTP
	default:
		return SourceMemory
	}
}

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:           getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:          getString(lookup, "DATABASE_URI", ""),
		OrderSourceAddress:   getString(lookup, "ORDER_SOURCE_ADDRESS", ""),
		SessionTTL:           getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		SessionSweepInterval: getDuration(lookup, "SESSION_SWEEP_INTERVAL", defaultSessionSweepInterval),
		MaxSessions:          getInt(lookup, "MAX_SESSIONS", defaultMaxSessions),
		ShutdownTimeout:      getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		LogLevel:             getString(lookup, "LOG_LEVEL", defaultLogLevel),
		MetricsEnabled:       getBool(lookup, "METRICS_ENABLED", defaultMetricsEnabled),
		SeedOrders:           getInt(lookup, "SEED_ORDERS", defaultSeedOrders),
	}

	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		sessionTTLStr      = cfg.SessionTTL.String()
		sweepIntervalStr   = cfg.SessionSweepInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN of the order store")
	fs.StringVar(&cfg.OrderSourceAddress, "s", cfg.OrderSourceAddress, "Base URL of a remote order source")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Idle time before a view session is evicted")
	fs.StringVar(&sweepIntervalStr, "sweep-interval", sweepIntervalStr, "Interval between idle session sweeps")
	fs.IntVar(&cfg.MaxSessions, "max-sessions", cfg.MaxSessions, "Maximum number of live view sessions")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.BoolVar(&cfg.MetricsEnabled, "metrics", cfg.MetricsEnabled, "Expose Prometheus metrics")
	fs.IntVar(&cfg.SeedOrders, "seed-orders", cfg.SeedOrders, "Number of generated fixture orders")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}

	if cfg.SessionSweepInterval, err = time.ParseDuration(sweepIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid sweep interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.SessionSweepInterval <= 0 {
		cfg.SessionSweepInterval = defaultSessionSweepInterval
	}

	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = defaultMaxSessions
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.SeedOrders <= 0 {
		cfg.SeedOrders = defaultSeedOrders
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	if cfg.DatabaseURI != "" && cfg.OrderSourceAddress != "" {
		return nil, fmt.Errorf("database URI and order source address are mutually exclusive")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
