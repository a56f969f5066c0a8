package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"net/url"
	"pakt/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName = "postgres"

	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// Endpoint is one side of the read/write pair.
type Endpoint struct {
	Name     string
	Host     string
	Port     string
	Username string
	Password string
	Database string
	SSLMode  string
}

// DSN renders the endpoint as a postgres:// URL.
func (e Endpoint) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(e.Username, e.Password),
		Host:     net.JoinHostPort(e.Host, e.Port),
		Path:     "/" + e.Database,
		RawQuery: url.Values{"sslmode": {e.SSLMode}}.Encode(),
	}

	return u.String()
}

// WriteEndpoint reads DB_POSTGRES_WRITE_*.
func WriteEndpoint(cfg *config.Config) Endpoint {
	w := cfg.DB.Postgres.Write

	return Endpoint{
		Name:     "write",
		Host:     w.Host,
		Port:     w.Port,
		Username: w.Username,
		Password: w.Password,
		Database: cfg.DatabaseName(w.Name),
		SSLMode:  w.SSLMode,
	}
}

// ReadEndpoint reads DB_POSTGRES_READ_*, falling back to the write side when no read host is set.
func ReadEndpoint(cfg *config.Config) Endpoint {
	r := cfg.DB.Postgres.Read
	if r.Host == "" {
		e := WriteEndpoint(cfg)
		e.Name = "read"

		return e
	}

	return Endpoint{
		Name:     "read",
		Host:     r.Host,
		Port:     r.Port,
		Username: r.Username,
		Password: r.Password,
		Database: cfg.DatabaseName(r.Name),
		SSLMode:  r.SSLMode,
	}
}

func New(cfg *config.Config) (*Connection, error) {
	write, err := Connect(WriteEndpoint(cfg), cfg.DB.Postgres.MaxRetry, cfg.DB.Postgres.RetryWaitTime)
	if err != nil {
		return nil, err
	}

	read, err := Connect(ReadEndpoint(cfg), cfg.DB.Postgres.MaxRetry, cfg.DB.Postgres.RetryWaitTime)
	if err != nil {
		_ = write.Close()

		return nil, err
	}

	return &Connection{Read: read, Write: write}, nil
}

// Connect dials the endpoint, retrying maxRetry times waitTime seconds apart.
func Connect(endpoint Endpoint, maxRetry, waitTime int) (*sqlx.DB, error) {
	var err error

	for retry := range max(maxRetry, 1) {
		var db *sqlx.DB

		db, err = sqlx.Connect(driverName, endpoint.DSN())
		if err == nil {
			log.
				Info().
				Str("name", endpoint.Name).
				Str("host", endpoint.Host).
				Str("port", endpoint.Port).
				Str("dbName", endpoint.Database).
				Msg("Connected to database")
			db.SetMaxIdleConns(postgresMaxIdleConnection)
			db.SetMaxOpenConns(postgresMaxOpenConnection)

			return db, nil
		}

		log.
			Error().
			Err(err).
			Str("name", endpoint.Name).
			Str("host", endpoint.Host).
			Str("port", endpoint.Port).
			Str("dbName", endpoint.Database).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil, fmt.Errorf("connecting to %s database: %w", endpoint.Name, err)
}

// Close closes both pools, once when they are the same.
func (c *Connection) Close() error {
	if c.Read != nil && c.Read != c.Write {
		_ = c.Read.Close()
	}

	if c.Write != nil {
		return c.Write.Close() //nolint:wrapcheck
	}

	return nil
}
