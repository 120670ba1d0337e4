package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/auctions-api/internal/config"
	"github.com/MKhiriev/auctions-api/internal/logger"
)

// Storages bundles the repositories used by the service layer together with
// the connection they share. DB is nil when listings are kept in memory.
type Storages struct {
	ListingRepository ListingRepository

	DB *DB
}

// NewStorages opens the backend selected by cfg.DB.DSN, applies migrations
// and builds the repositories on top of it:
//   - "postgres://" or "postgresql://" → PostgreSQL through pgx;
//   - "file:" prefix or ".db" suffix → SQLite;
//   - empty DSN → in-memory repository.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating storages...")

	dsn := cfg.DB.DSN
	var (
		db  *DB
		err error
	)

	switch {
	case dsn == "":
		log.Warn().Msg("no database DSN configured, listings are kept in memory")
		return &Storages{ListingRepository: NewMemoryListingRepository(log)}, nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case strings.HasPrefix(dsn, "file:"), strings.HasSuffix(dsn, ".db"):
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, ErrUnsupportedDSN
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		ListingRepository: NewListingRepository(db, log),
		DB:                db,
	}, nil
}

// Ping checks the backing database; the in-memory backend is always reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Ping(ctx)
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
