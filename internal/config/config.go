package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	Server    Server
	Catalog   Catalog
	Redis     Redis
	Database  Database
	Session   Session
	Cart      Cart
	Checkout  Checkout
	RateLimit RateLimit
	Log       Log
	SMTP      SMTP
}

type Server struct {
	Addr            string
	ShutdownTimeout time.Duration
}

type Catalog struct {
	BaseURL         string
	Timeout         time.Duration
	CacheTTL        time.Duration
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

// Redis is optional: an empty Addr selects in-memory carts and disables the catalog cache.
type Redis struct {
	Addr     string
	Password string
	DB       int
}

// Database is optional: an empty URL keeps orders in memory.
type Database struct {
	URL     string
	Migrate bool
}

type Session struct {
	Secret string
	TTL    time.Duration
}

type Cart struct {
	TTL             time.Duration
	IdleEviction    time.Duration
	CleanupInterval time.Duration
}

type Checkout struct {
	ProcessingDelay time.Duration
}

type RateLimit struct {
	RPS   float64
	Burst int
	Idle  time.Duration
}

type Log struct {
	Level  string
	Format string
}

// SMTP is optional: an empty Server disables order confirmation emails.
type SMTP struct {
	Server       string
	Port         string
	User         string
	Password     string
	From         string
	AuthDisabled bool
	SummaryTo    string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("catalog.base_url", "https://fakestoreapi.com")
	v.SetDefault("catalog.timeout", 10*time.Second)
	v.SetDefault("catalog.cache_ttl", 5*time.Minute)
	v.SetDefault("catalog.breaker_failures", 5)
	v.SetDefault("catalog.breaker_timeout", 30*time.Second)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("database.url", "")
	v.SetDefault("database.migrate", true)

	v.SetDefault("session.secret", "")
	v.SetDefault("session.ttl", 7*24*time.Hour)

	v.SetDefault("cart.ttl", 7*24*time.Hour)
	v.SetDefault("cart.idle_eviction", 30*time.Minute)
	v.SetDefault("cart.cleanup_interval", time.Minute)

	v.SetDefault("checkout.processing_delay", 2*time.Second)

	v.SetDefault("ratelimit.rps", 10)
	v.SetDefault("ratelimit.burst", 20)
	v.SetDefault("ratelimit.idle", 5*time.Minute)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("smtp.server", "")
	v.SetDefault("smtp.port", "587")
	v.SetDefault("smtp.user", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from", "")
	v.SetDefault("smtp.auth_disabled", false)
	v.SetDefault("smtp.summary_to", "")
}

// Load reads configuration from defaults, the optional file at path and STOREFRONT_* environment
// variables, in increasing order of precedence. STOREFRONT_CATALOG_BASE_URL overrides catalog.base_url.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("storefront")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "could not read config file %s", path)
		}
	}

	cfg := Config{
		Server: Server{
			Addr:            v.GetString("server.addr"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
		Catalog: Catalog{
			BaseURL:         v.GetString("catalog.base_url"),
			Timeout:         v.GetDuration("catalog.timeout"),
			CacheTTL:        v.GetDuration("catalog.cache_ttl"),
			BreakerFailures: v.GetUint32("catalog.breaker_failures"),
			BreakerTimeout:  v.GetDuration("catalog.breaker_timeout"),
		},
		Redis: Redis{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Database: Database{
			URL:     v.GetString("database.url"),
			Migrate: v.GetBool("database.migrate"),
		},
		Session: Session{
			Secret: v.GetString("session.secret"),
			TTL:    v.GetDuration("session.ttl"),
		},
		Cart: Cart{
			TTL:             v.GetDuration("cart.ttl"),
			IdleEviction:    v.GetDuration("cart.idle_eviction"),
			CleanupInterval: v.GetDuration("cart.cleanup_interval"),
		},
		Checkout: Checkout{
			ProcessingDelay: v.GetDuration("checkout.processing_delay"),
		},
		RateLimit: RateLimit{
			RPS:   v.GetFloat64("ratelimit.rps"),
			Burst: v.GetInt("ratelimit.burst"),
			Idle:  v.GetDuration("ratelimit.idle"),
		},
		Log: Log{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		SMTP: SMTP{
			Server:       v.GetString("smtp.server"),
			Port:         v.GetString("smtp.port"),
			User:         v.GetString("smtp.user"),
			Password:     v.GetString("smtp.password"),
			From:         v.GetString("smtp.from"),
			AuthDisabled: v.GetBool("smtp.auth_disabled"),
			SummaryTo:    v.GetString("smtp.summary_to"),
		},
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Catalog.BaseURL == "" {
		return errors.New("catalog.base_url is required")
	}
	if c.Catalog.Timeout <= 0 {
		return errors.New("catalog.timeout must be positive")
	}
	if c.Checkout.ProcessingDelay < 0 {
		return errors.New("checkout.processing_delay cannot be negative")
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		return errors.New("ratelimit.rps and ratelimit.burst must be positive")
	}
	return nil
}
