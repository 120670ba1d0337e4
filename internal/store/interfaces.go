package store

import (
	"context"

	"github.com/MKhiriev/auctions-api/models"
	"github.com/google/uuid"
)

// ListingRepositoryName labels the listing repository in not-found failures.
const ListingRepositoryName = "ListingRepository"

//go:generate mockgen -source=interfaces.go -destination=../mock/listing_repository_mock.go -package=mock

// ListingRepository persists catalog listings keyed by their UUID.
type ListingRepository interface {
	// Add stores a new listing and returns it as persisted.
	// Returns ErrListingAlreadyExists if the id is taken.
	Add(ctx context.Context, listing models.Listing) (models.Listing, error)

	// Get returns the listing with the given id or ErrListingNotFound.
	Get(ctx context.Context, id uuid.UUID) (models.Listing, error)

	// List returns all listings, newest first.
	List(ctx context.Context) ([]models.Listing, error)

	// Remove deletes the listing with the given id or returns ErrListingNotFound.
	Remove(ctx context.Context, id uuid.UUID) error
}
