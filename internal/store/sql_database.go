package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB is a database/sql handle together with the dialect-specific pieces the
// repositories need: the migration dialect, the placeholder format and the
// driver error classifier.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectDB opens the database named by cfg.DSN. DSNs starting with
// postgres:// or postgresql:// use pgx; anything else is treated as a SQLite
// file, with an optional sqlite:// prefix.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := strings.TrimSpace(cfg.DSN)

	switch {
	case dsn == "":
		return nil, ErrUnsupportedDSN
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, dsn, log)
	default:
		return NewConnectSQLite(ctx, strings.TrimPrefix(dsn, "sqlite://"), log)
	}
}

// Migrate applies the embedded schema migrations for the DB dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the goose dialect name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

func (db *DB) statementBuilder() sq.StatementBuilderType {
	if db.dialect == migrations.DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}

	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// classify returns a short label for err used in logs.
func (db *DB) classify(err error) string {
	if db.errorClassificator == nil {
		return "unknown"
	}
	if db.errorClassificator.Classify(err) == Retryable {
		return "retryable"
	}

	return "non-retryable"
}

func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsUniqueViolation(err)
}

func wrapErr(kind, err error) error {
	return fmt.Errorf("%w: %w", kind, err)
}
