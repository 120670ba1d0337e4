package models

// CreateListingRequest is the payload accepted by the catalog when a seller
// drafts a new listing. Validation rules are expressed as struct tags
// understood by go-playground/validator.
type CreateListingRequest struct {
	// Title is the short human-readable name of the item.
	Title string `json:"title" validate:"required,max=200"`

	// Description holds free-form details about the item.
	Description string `json:"description" validate:"max=5000"`

	// AskPrice is the starting price in minor currency units.
	AskPrice int64 `json:"ask_price" validate:"gte=0"`

	// Currency is an ISO 4217 currency code, e.g. "USD".
	Currency string `json:"currency" validate:"required,len=3,uppercase"`
}
