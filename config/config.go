package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"

	DefaultAPIURL = "https://api-devpaktbuild.chain.site"

	CacheDriverRedis  = "redis"
	CacheDriverMemory = "memory"

	PreferenceStoreCache    = "cache"
	PreferenceStorePostgres = "postgres"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT" default:"8080"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"NAME" default:"pakt"`
		Timezone string `envconfig:"TIMEZONE"`
		BaseURL  string `envconfig:"BASE_URL"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		// TrustProxy lets X-Forwarded-For and X-Real-IP name the client. Leave it off
		// unless a proxy in front of the service overwrites those headers.
		TrustProxy  bool `envconfig:"TRUST_PROXY"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		// Signature guards the preference routes. Signing stays open to clients, so
		// verified routes are never signed while Required is set, and DisableIssue
		// removes POST /v1/signatures altogether.
		Signature struct {
			Required         bool  `envconfig:"REQUIRED"`
			DisableIssue     bool  `envconfig:"DISABLE_ISSUE"`
			ToleranceSeconds int64 `envconfig:"TOLERANCE_SECONDS" default:"300"`
		} `envconfig:"SIGNATURE"`
	} `envconfig:"APP"`

	// API describes the backend service the front end talks to. Key and ID are
	// the shared signing secret and the client identifier.
	API struct {
		URL            string `envconfig:"URL"`
		Key            string `envconfig:"KEY"`
		ID             string `envconfig:"ID"`
		Verbose        bool   `envconfig:"VERBOSE" default:"true"`
		TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"30"`
	} `envconfig:"API"`

	Cache struct {
		Driver string `envconfig:"DRIVER" default:"redis"`
		Redis  struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	// Preference selects where timezone preferences live: the cache or postgres.
	Preference struct {
		Store string `envconfig:"STORE" default:"cache"`
	} `envconfig:"PREFERENCE"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY" default:"3"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MigrationTable string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
			Prefix         string `envconfig:"PREFIX"`
			Read           struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
			} `envconfig:"READ"`
			Write struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	// Kafka is optional. Without brokers preference changes are not published.
	Kafka struct {
		Brokers []string `envconfig:"BROKERS"`
		SASL    struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		Topics struct {
			TimezoneUpdated string `envconfig:"TIMEZONE_UPDATED" default:"pakt.preference.timezone-updated"`
		} `envconfig:"TOPICS"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		if loadErr := godotenv.Load(".env"); loadErr != nil {
			log.Warn().Err(loadErr).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			return
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("processing environment variables: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}

// IsProduction reports whether the service runs with SERVER_ENV=production.
func (c *Config) IsProduction() bool {
	return c.Server.Env == EnvProduction
}

// APIURL returns the backend base URL, falling back to the development host.
func (c *Config) APIURL() string {
	if c.API.URL == "" {
		return DefaultAPIURL
	}

	return c.API.URL
}

// DatabaseName applies DB_POSTGRES_PREFIX to name.
func (c *Config) DatabaseName(name string) string {
	return c.DB.Postgres.Prefix + name
}
