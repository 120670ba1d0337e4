// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/auctions-api/internal/domain"
	"github.com/MKhiriev/auctions-api/internal/logger"
	"github.com/MKhiriev/auctions-api/internal/requestcontext"
	"github.com/MKhiriev/auctions-api/internal/store"
	"github.com/MKhiriev/auctions-api/models"
	"github.com/google/uuid"
)

// failure names used for generic catalog failures
const (
	catalogServiceName = "CatalogService"
	requestContextName = "RequestContext"
)

type listingIDGenerator interface {
	GenerateUUID() uuid.UUID
}

type catalogService struct {
	listingRepository store.ListingRepository
	ids               listingIDGenerator
	now               func() time.Time

	logger *logger.Logger
}

func NewCatalogService(listingRepository store.ListingRepository, ids listingIDGenerator, logger *logger.Logger) CatalogService {
	return &catalogService{
		listingRepository: listingRepository,
		ids:               ids,
		now:               time.Now,
		logger:            logger,
	}
}

// CreateListing drafts a new listing owned by the user of the current
// request scope.
func (c *catalogService) CreateListing(ctx context.Context, request models.CreateListingRequest) (models.Listing, error) {
	seller, err := requestcontext.CurrentUser(ctx)
	if err != nil {
		return models.Listing{}, domain.Generic(requestContextName).Wrap(err)
	}

	listing := models.Listing{
		ID:          c.ids.GenerateUUID(),
		SellerID:    seller.ID,
		Title:       request.Title,
		Description: request.Description,
		AskPrice: models.Money{
			Amount:   request.AskPrice,
			Currency: request.Currency,
		},
		Status: models.ListingStatusDraft,
		// postgres keeps microseconds
		CreatedAt: c.now().UTC().Truncate(time.Microsecond),
	}

	created, err := c.listingRepository.Add(ctx, listing)
	if err != nil {
		return models.Listing{}, c.repositoryFailure(ctx, listing.ID, err)
	}

	logger.FromContext(ctx).Info().
		Str("listing_id", created.ID.String()).
		Str("seller_id", created.SellerID.String()).
		Msg("listing created")

	return created, nil
}

func (c *catalogService) GetListing(ctx context.Context, id uuid.UUID) (models.Listing, error) {
	listing, err := c.listingRepository.Get(ctx, id)
	if err != nil {
		return models.Listing{}, c.repositoryFailure(ctx, id, err)
	}

	return listing, nil
}

func (c *catalogService) ListListings(ctx context.Context) ([]models.Listing, error) {
	listings, err := c.listingRepository.List(ctx)
	if err != nil {
		return nil, c.repositoryFailure(ctx, uuid.Nil, err)
	}

	return listings, nil
}

func (c *catalogService) DeleteListing(ctx context.Context, id uuid.UUID) error {
	if err := c.listingRepository.Remove(ctx, id); err != nil {
		return c.repositoryFailure(ctx, id, err)
	}

	logger.FromContext(ctx).Info().Str("listing_id", id.String()).Msg("listing deleted")
	return nil
}

// repositoryFailure converts store errors into domain failures. A missing
// listing is reported as not found; everything else is a generic failure of
// the repository.
func (c *catalogService) repositoryFailure(ctx context.Context, id uuid.UUID, err error) error {
	if errors.Is(err, store.ErrListingNotFound) {
		return domain.NotFound(id.String(), store.ListingRepositoryName).Wrap(err)
	}

	logger.FromContext(ctx).Err(err).
		Str("func", "*catalogService.repositoryFailure").
		Str("listing_id", id.String()).
		Msg("listing repository failed")

	return domain.Generic(store.ListingRepositoryName).Wrap(err)
}
