package service

import (
	"context"

	"github.com/MKhiriev/auctions-api/models"
	"github.com/google/uuid"
)

// DummyService answers the diagnostic /test endpoint.
type DummyService interface {
	Serve(ctx context.Context) string
}

// CatalogService manages the listings sellers put up for auction.
// Failures are returned as *domain.Failure values.
type CatalogService interface {
	CreateListing(ctx context.Context, request models.CreateListingRequest) (models.Listing, error)
	GetListing(ctx context.Context, id uuid.UUID) (models.Listing, error)
	ListListings(ctx context.Context) ([]models.Listing, error)
	DeleteListing(ctx context.Context, id uuid.UUID) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// CatalogServiceWrapper defines middleware composition for CatalogService.
// Implementations wrap an existing CatalogService to add behavior such as
// logging or validating.
type CatalogServiceWrapper interface {
	Wrap(CatalogService) CatalogService // returns a decorated CatalogService applying additional behavior
}
