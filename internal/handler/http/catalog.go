package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/auctions-api/internal/domain"
	"github.com/MKhiriev/auctions-api/internal/logger"
	"github.com/MKhiriev/auctions-api/internal/utils"
	"github.com/MKhiriev/auctions-api/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	listingIDParam = "listing_id"

	maxRequestBodySize = 1 << 20
)

func (h *Handler) listListings(w http.ResponseWriter, r *http.Request) error {
	listings, err := h.services.CatalogService.ListListings(r.Context())
	if err != nil {
		return err
	}

	utils.WriteJSON(w, models.ListingsResponse{
		Listings: listings,
		Length:   len(listings),
	}, http.StatusOK)
	return nil
}

func (h *Handler) createListing(w http.ResponseWriter, r *http.Request) error {
	var request models.CreateListingRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createListing").Msg("invalid JSON was passed")
		return domain.Invalid("request body", "malformed JSON").Wrap(err)
	}

	listing, err := h.services.CatalogService.CreateListing(r.Context(), request)
	if err != nil {
		return err
	}

	utils.WriteJSON(w, listing, http.StatusCreated)
	return nil
}

func (h *Handler) getListing(w http.ResponseWriter, r *http.Request) error {
	id, err := listingID(r)
	if err != nil {
		return err
	}

	listing, err := h.services.CatalogService.GetListing(r.Context(), id)
	if err != nil {
		return err
	}

	utils.WriteJSON(w, listing, http.StatusOK)
	return nil
}

func (h *Handler) deleteListing(w http.ResponseWriter, r *http.Request) error {
	id, err := listingID(r)
	if err != nil {
		return err
	}

	if err = h.services.CatalogService.DeleteListing(r.Context(), id); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func listingID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, listingIDParam))
	if err != nil {
		return uuid.Nil, domain.Invalid(listingIDParam, "must be a valid UUID").Wrap(err)
	}
	return id, nil
}
