package postgres

//nolint:revive
import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"libraryhub/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName      = "postgres"
	maxIdleConns    = 10
	maxOpenConns    = 10
	connMaxLifetime = 30 * time.Minute
)

// Connection pairs the read replica with the primary. Reads that must observe the
// caller's own writes, such as the booking conflict check, go through Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	return &Connection{
		Read:  Connect("read", pg.Read.DSN(pg.Prefix), pg.MaxRetry, pg.RetryWaitTime),
		Write: Connect("write", pg.Write.DSN(pg.Prefix), pg.MaxRetry, pg.RetryWaitTime),
	}
}

// Connect dials dsn up to attempts times, sleeping waitSeconds between tries. It
// returns nil once the attempts are exhausted.
func Connect(name, dsn string, attempts, waitSeconds int) *sqlx.DB {
	logger := log.With().Str("name", name).Logger()

	for attempt := 1; attempt <= max(attempts, 1); attempt++ {
		db, err := sqlx.Connect(driverName, dsn)
		if err == nil {
			db.SetMaxIdleConns(maxIdleConns)
			db.SetMaxOpenConns(maxOpenConns)
			db.SetConnMaxLifetime(connMaxLifetime)

			logger.Info().Msg("Connected to database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database")

		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	return nil
}

// WithTransaction runs fn in a read-committed transaction on the write connection.
// fn's error or panic rolls back; otherwise the transaction commits.
func (c *Connection) WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := c.Write.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}

		err = finish(tx, err)
	}()

	return fn(tx)
}

func finish(tx *sqlx.Tx, err error) error {
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
