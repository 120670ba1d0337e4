package store

import (
	"fmt"

	"github.com/MKhiriev/auctions-api/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const listingsTable = "listings"

var listingColumns = []string{
	"id",
	"seller_id",
	"title",
	"description",
	"ask_price_amount",
	"ask_price_currency",
	"status",
	"created_at",
}

func buildInsertListingQuery(b sq.StatementBuilderType, l models.Listing) (string, []any, error) {
	query, args, err := b.
		Insert(listingsTable).
		Columns(listingColumns...).
		Values(
			l.ID.String(),
			l.SellerID.String(),
			l.Title,
			l.Description,
			l.AskPrice.Amount,
			l.AskPrice.Currency,
			string(l.Status),
			l.CreatedAt,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectListingQuery(b sq.StatementBuilderType, id uuid.UUID) (string, []any, error) {
	query, args, err := b.
		Select(listingColumns...).
		From(listingsTable).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectAllListingsQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.
		Select(listingColumns...).
		From(listingsTable).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteListingQuery(b sq.StatementBuilderType, id uuid.UUID) (string, []any, error) {
	query, args, err := b.
		Delete(listingsTable).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
