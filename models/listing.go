// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// ListingStatus is the publication state of a catalog listing.
type ListingStatus string

const (
	// ListingStatusDraft marks a listing visible only to its seller.
	ListingStatusDraft ListingStatus = "draft"

	// ListingStatusPublished marks a listing open for bidding.
	ListingStatusPublished ListingStatus = "published"
)

// Money is an amount in minor currency units (e.g. cents) paired with an
// ISO 4217 currency code.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Listing is a catalog item put up for auction by a seller.
type Listing struct {
	// ID is the unique identifier of the listing.
	ID uuid.UUID `json:"id"`

	// SellerID references the user who created the listing.
	SellerID uuid.UUID `json:"seller_id"`

	// Title is the short human-readable name shown in the catalog.
	Title string `json:"title"`

	// Description holds free-form details about the item.
	Description string `json:"description"`

	// AskPrice is the starting price requested by the seller.
	AskPrice Money `json:"ask_price"`

	// Status is the publication state of the listing.
	Status ListingStatus `json:"status"`

	// CreatedAt is the moment the listing was stored.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Listing model.
func (l Listing) TableName() string {
	return "listings"
}
