package market

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActiveListing is a listing joined with the token it offers, shaped for
// storefront and indexer consumption.
type ActiveListing struct {
	ListingID  int64           `json:"listing_id"`
	TokenID    int64           `json:"token_id"`
	TokenURI   string          `json:"token_uri"`
	SellerUUID string          `json:"seller_uuid"`
	Price      decimal.Decimal `json:"price"`
	ListedAt   time.Time       `json:"listed_at"`
}

type ActiveListingPage struct {
	Items []ActiveListing `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// Stats summarizes the ledger. TokenCount is the highest assigned token id,
// which bounds any enumeration since ids are dense from 1.
type Stats struct {
	TokenCount     int64           `json:"token_count"`
	ActiveListings int64           `json:"active_listings"`
	SettledSales   int64           `json:"settled_sales"`
	SettledVolume  decimal.Decimal `json:"settled_volume"`
}
