package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/auctions-api/internal/logger"
	"github.com/MKhiriev/auctions-api/migrations"
	sq "github.com/Masterminds/squirrel"
)

// Supported SQL dialects. The values double as goose dialect names.
const (
	dialectPostgres = "postgres"
	dialectSQLite   = "sqlite3"
)

// DB is an open SQL connection together with the dialect it speaks.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator maps driver errors onto repository sentinels.
type ErrorClassificator interface {
	IsUniqueViolation(err error) bool
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Ping checks that the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

// builder returns a squirrel statement builder using the placeholder format
// of the connection's dialect.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == dialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func (db *DB) isUniqueViolation(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.IsUniqueViolation(err)
}
