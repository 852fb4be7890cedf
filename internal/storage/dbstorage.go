package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/azaliaz/ruboni/internal/domain/consts"
	"github.com/azaliaz/ruboni/internal/logger"
	storerrors "github.com/azaliaz/ruboni/internal/storage/errors"
)

// DBStorage keeps the client's persisted state in the client_kv table.
type DBStorage struct {
	pool *pgxpool.Pool
}

func NewDB(ctx context.Context, addr string) (*DBStorage, error) {
	config, err := pgxpool.ParseConfig(addr)
	if err != nil {
		return nil, err
	}
	config.MaxConns = 4
	config.MinConns = 1
	config.MaxConnLifetime = 30 * time.Minute
	config.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &DBStorage{pool: pool}, nil
}

func (dbs *DBStorage) Get(ctx context.Context, key string) (string, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(ctx, consts.DBCtxTimeout)
	defer cancel()

	var value string
	err := dbs.pool.QueryRow(ctx, `SELECT value FROM client_kv WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", storerrors.ErrKeyNotFound
		}
		log.Error().Err(err).Str("key", key).Msg("failed scan db data")
		return "", err
	}
	return value, nil
}

func (dbs *DBStorage) Set(ctx context.Context, key, value string) error {
	log := logger.Get()
	if key == "" {
		return storerrors.ErrEmptyKey
	}
	ctx, cancel := context.WithTimeout(ctx, consts.DBCtxTimeout)
	defer cancel()

	_, err := dbs.pool.Exec(ctx,
		`INSERT INTO client_kv (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upsert key")
		return err
	}
	return nil
}

func (dbs *DBStorage) Remove(ctx context.Context, key string) error {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(ctx, consts.DBCtxTimeout)
	defer cancel()

	tag, err := dbs.pool.Exec(ctx, `DELETE FROM client_kv WHERE key = $1`, key)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete key")
		return err
	}
	log.Debug().Str("key", key).Int64("rows", tag.RowsAffected()).Msg("key removed")
	return nil
}

func (dbs *DBStorage) Close() error {
	dbs.pool.Close()
	return nil
}

func Migrations(dbDsn string, migrationsPath string) error {
	log := logger.Get()
	migratePath := fmt.Sprintf("file://%s", migrationsPath)
	m, err := migrate.New(migratePath, dbDsn)
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Msg("no migrations to apply")
			return nil
		}
		return err
	}
	log.Info().Msg("all migrations applied")
	return nil
}
