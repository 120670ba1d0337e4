package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/auctions-api/internal/logger"
	"github.com/MKhiriev/auctions-api/models"
	"github.com/google/uuid"
)

// listingRepository is the SQL-backed implementation of [ListingRepository].
// It works against the "listings" table on either PostgreSQL or SQLite;
// placeholders follow the dialect of the embedded [*DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] so
// database failures are logged with the request's correlation id.
type listingRepository struct {
	*DB
	logger *logger.Logger
}

// NewListingRepository constructs a [ListingRepository] backed by db.
func NewListingRepository(db *DB, logger *logger.Logger) ListingRepository {
	logger.Debug().Msg("creating listing repository")
	return &listingRepository{
		DB:     db,
		logger: logger,
	}
}

// Add inserts listing. A primary key collision is reported as
// [ErrListingAlreadyExists].
func (r *listingRepository) Add(ctx context.Context, listing models.Listing) (models.Listing, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertListingQuery(r.builder(), listing)
	if err != nil {
		log.Err(err).Str("func", "*listingRepository.Add").Msg("failed to create query")
		return models.Listing{}, err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*listingRepository.Add").
			Str("listing_id", listing.ID.String()).
			Msg("failed to insert listing")

		if r.isUniqueViolation(err) {
			return models.Listing{}, ErrListingAlreadyExists
		}
		return models.Listing{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return listing, nil
}

// Get returns the listing with the given id, or [ErrListingNotFound].
func (r *listingRepository) Get(ctx context.Context, id uuid.UUID) (models.Listing, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectListingQuery(r.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*listingRepository.Get").Msg("failed to create query")
		return models.Listing{}, err
	}

	listing, err := scanListing(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Listing{}, ErrListingNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*listingRepository.Get").
			Str("listing_id", id.String()).
			Msg("failed to scan listing")
		return models.Listing{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return listing, nil
}

// List returns every listing, newest first.
func (r *listingRepository) List(ctx context.Context) ([]models.Listing, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllListingsQuery(r.builder())
	if err != nil {
		log.Err(err).Str("func", "*listingRepository.List").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*listingRepository.List").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	listings := make([]models.Listing, 0, 16)
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			log.Err(err).Str("func", "*listingRepository.List").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		listings = append(listings, listing)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*listingRepository.List").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return listings, nil
}

// Remove deletes the listing with the given id, or returns [ErrListingNotFound]
// when no row was affected.
func (r *listingRepository) Remove(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteListingQuery(r.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*listingRepository.Remove").Msg("failed to create query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*listingRepository.Remove").
			Str("listing_id", id.String()).
			Msg("failed to delete listing")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrListingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (models.Listing, error) {
	var (
		listing  models.Listing
		id       string
		sellerID string
		status   string
	)

	err := row.Scan(
		&id,
		&sellerID,
		&listing.Title,
		&listing.Description,
		&listing.AskPrice.Amount,
		&listing.AskPrice.Currency,
		&status,
		&listing.CreatedAt,
	)
	if err != nil {
		return models.Listing{}, err
	}

	if listing.ID, err = uuid.Parse(id); err != nil {
		return models.Listing{}, fmt.Errorf("invalid listing id %q: %w", id, err)
	}
	if listing.SellerID, err = uuid.Parse(sellerID); err != nil {
		return models.Listing{}, fmt.Errorf("invalid seller id %q: %w", sellerID, err)
	}
	listing.Status = models.ListingStatus(status)

	return listing, nil
}
