package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"pakt/infras/otel"
	"pakt/infras/postgres"
	"pakt/internal/domains/preference/model"
	"pakt/shared/cache"
	"pakt/shared/clock"
	"pakt/shared/constant"
	"time"
)

const (
	queryGet = `SELECT ` + model.FieldValue + ` FROM ` + model.TableName + `
		WHERE ` + model.FieldKey + ` = $1
		AND (` + model.FieldExpiresAt + ` IS NULL OR ` + model.FieldExpiresAt + ` > $2)`

	queryUpsert = `INSERT INTO ` + model.TableName + ` (key, value, expires_at, updated_at)
		VALUES (:key, :value, :expires_at, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at, updated_at = NOW()`
)

// Preference persists preference values in postgres. Missing or expired keys
// report cache.Nil so callers treat both stores alike.
type Preference interface {
	Get(ctx context.Context, key string, value any) error
	Save(ctx context.Context, key string, value any, duration int) error
}

type repositoryImpl struct {
	db    *postgres.Connection
	otel  otel.Otel
	clock clock.Clock
}

func New(db *postgres.Connection, otel otel.Otel, c clock.Clock) Preference {
	return &repositoryImpl{
		db:    db,
		otel:  otel,
		clock: c,
	}
}

func (repo *repositoryImpl) Get(ctx context.Context, key string, value any) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".get")
	defer scope.End()

	var raw string

	err = repo.db.Read.GetContext(ctx, &raw, queryGet, key, repo.clock.Now())
	if errors.Is(err, sql.ErrNoRows) {
		return cache.Nil
	}

	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to get %s %q: %w", model.EntityName, key, err)
	}

	if err = json.Unmarshal([]byte(raw), value); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to decode %s %q: %w", model.EntityName, key, err)
	}

	return nil
}

// Save upserts value under key. A positive duration in seconds sets an expiry, zero keeps it forever.
func (repo *repositoryImpl) Save(ctx context.Context, key string, value any, duration int) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".save")
	defer scope.End()

	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s %q: %w", model.EntityName, key, err)
	}

	row := model.Preference{
		Key:   key,
		Value: string(encoded),
	}

	if duration > 0 {
		expiresAt := repo.clock.Now().Add(time.Duration(duration) * time.Second)
		row.ExpiresAt = &expiresAt
	}

	if _, err = repo.db.Write.NamedExecContext(ctx, queryUpsert, row); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to save %s %q: %w", model.EntityName, key, err)
	}

	return nil
}
