package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"pakt/config"
	"pakt/infras/postgres"
	"pakt/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"

	migrationsDir = "postgres"
)

var ErrUnknownAction = errors.New("unknown migration action")

// connectionString is the write endpoint DSN with the migrations table appended.
func connectionString(config *config.Config) string {
	dsn := postgres.WriteEndpoint(config).DSN()
	if config.DB.Postgres.MigrationTable == "" {
		return dsn
	}

	return dsn + "&x-migrations-table=" + url.QueryEscape(config.DB.Postgres.MigrationTable)
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.Postgres, migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("error opening embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, connectionString(config))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(config *config.Config, action string) error {
	run, ok := map[string]func(*migrate.Migrate) error{
		ActionUp:     (*migrate.Migrate).Up,
		ActionDown:   func(m *migrate.Migrate) error { return m.Steps(-1) },
		ActionStepUp: func(m *migrate.Migrate) error { return m.Steps(1) },
		ActionDrop:   (*migrate.Migrate).Down,
	}[action]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err := run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	log.Info().Str("action", action).Msg("Database migrations completed successfully")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}

func StepUp(config *config.Config) error {
	return Runner(config, ActionStepUp)
}

func Down(config *config.Config) error {
	return Runner(config, ActionDown)
}

func Drop(config *config.Config) error {
	return Runner(config, ActionDrop)
}
