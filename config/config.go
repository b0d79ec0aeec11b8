package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"slices"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const (
	CacheDriverRedis  = "redis"
	CacheDriverMemory = "memory"
)

const (
	QuotaModeOff           = "off"
	QuotaModeCalendarMonth = "calendar_month"
	QuotaModeRolling30d    = "rolling_30d"
)

// PostgresNode is one side of the read/write connection pair.
type PostgresNode struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"     default:"5432"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	Timezone string `envconfig:"TIMEZONE"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

// DSN renders the node as a lib/pq URL. prefix is prepended to the database name.
func (n PostgresNode) DSN(prefix string) string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(n.Username, n.Password),
		Host:   net.JoinHostPort(n.Host, n.Port),
		Path:   "/" + prefix + n.Name,
	}

	query := url.Values{}
	query.Set("sslmode", n.SSLMode)

	if n.Timezone != "" {
		query.Set("timezone", n.Timezone)
	}

	dsn.RawQuery = query.Encode()

	return dsn.String()
}

type RedisNode struct {
	Host     string `envconfig:"HOST"     default:"localhost"`
	Port     string `envconfig:"PORT"     default:"6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB"`
}

func (n RedisNode) Addr() string {
	return net.JoinHostPort(n.Host, n.Port)
}

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT"      default:"8080"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"10"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"libraryhub"`
		Timezone string `envconfig:"TIMEZONE" default:"UTC"`
		APIKey   string `envconfig:"API_KEY"`
		CORS     struct {
			Enable           bool     `envconfig:"ENABLE"`
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"   default:"300"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"   default:"60"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
		} `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	Cache struct {
		Driver string `envconfig:"DRIVER" default:"redis"`
		TTL    int    `envconfig:"TTL"    default:"300"`
		Redis  struct {
			Primary RedisNode `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret     string `envconfig:"ACCESS_SECRET"`
		RefreshSecret    string `envconfig:"REFRESH_SECRET"`
		AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN"  default:"15"`
		RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN" default:"10080"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry       int          `envconfig:"MAX_RETRY"       default:"3"`
			RetryWaitTime  int          `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MigrationTable string       `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			AutoMigrate    bool         `envconfig:"AUTO_MIGRATE"`
			Prefix         string       `envconfig:"PREFIX"`
			Read           PostgresNode `envconfig:"READ"`
			Write          PostgresNode `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Kafka struct {
		Brokers []string `envconfig:"BROKERS"`
		SASL    struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		Topics struct {
			Booking string `envconfig:"BOOKING" default:"libraryhub.booking"`
		} `envconfig:"TOPICS"`
	} `envconfig:"KAFKA"`

	Booking struct {
		MembershipQuotaMode string `envconfig:"MEMBERSHIP_QUOTA_MODE" default:"off"`
		ExportDirectory     string `envconfig:"EXPORT_DIRECTORY"      default:"exports/bookings"`
	} `envconfig:"BOOKING"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`
}

// Validate rejects combinations the service cannot start with.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains([]string{CacheDriverRedis, CacheDriverMemory}, c.Cache.Driver) {
		errs = append(errs, fmt.Errorf("unknown cache driver %q", c.Cache.Driver))
	}

	if !slices.Contains([]string{QuotaModeOff, QuotaModeCalendarMonth, QuotaModeRolling30d}, c.Booking.MembershipQuotaMode) {
		errs = append(errs, fmt.Errorf("unknown membership quota mode %q", c.Booking.MembershipQuotaMode))
	}

	return errors.Join(errs...)
}

var (
	conf    Config
	once    sync.Once
	loadErr error
)

// Load reads .env when present, then the process environment. Only the first call
// does any work.
func Load() error {
	once.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Warn().Err(err).Msg("No .env file loaded, using process environment")
		}

		if err := envconfig.Process("", &conf); err != nil {
			loadErr = fmt.Errorf("processing environment: %w", err)

			return
		}

		if err := conf.Validate(); err != nil {
			loadErr = fmt.Errorf("invalid configuration: %w", err)

			return
		}

		log.Info().Str("env", conf.Server.Env).Msg("Configuration loaded")
	})

	return loadErr
}

// Get returns the process configuration and exits when it cannot be loaded.
func Get() *Config {
	if err := Load(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	return &conf
}
