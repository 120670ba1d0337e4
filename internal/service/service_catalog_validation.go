package service

import (
	"context"

	"github.com/MKhiriev/auctions-api/internal/domain"
	"github.com/MKhiriev/auctions-api/internal/validators"
	"github.com/MKhiriev/auctions-api/models"
	"github.com/google/uuid"
)

// listingFailureName labels validation failures of listing payloads.
const listingFailureName = "listing"

type CatalogValidationService struct {
	inner     CatalogService
	validator validators.Validator
}

func NewCatalogValidationService() CatalogServiceWrapper {
	return &CatalogValidationService{
		validator: validators.NewListingValidator(),
	}
}

func (v *CatalogValidationService) CreateListing(ctx context.Context, request models.CreateListingRequest) (models.Listing, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Listing{}, domain.Invalid(listingFailureName, err.Error()).Wrap(err)
	}

	return v.inner.CreateListing(ctx, request)
}

func (v *CatalogValidationService) GetListing(ctx context.Context, id uuid.UUID) (models.Listing, error) {
	return v.inner.GetListing(ctx, id)
}

func (v *CatalogValidationService) ListListings(ctx context.Context) ([]models.Listing, error) {
	return v.inner.ListListings(ctx)
}

func (v *CatalogValidationService) DeleteListing(ctx context.Context, id uuid.UUID) error {
	return v.inner.DeleteListing(ctx, id)
}

func (v *CatalogValidationService) Wrap(wrapper CatalogService) CatalogService {
	v.inner = wrapper
	return v
}
