package listings

import (
	"time"

	"github.com/shopspring/decimal"
)

type Listing struct {
	ID         int64           `json:"id"`
	TokenID    int64           `json:"token_id"`
	SellerUUID string          `json:"seller_uuid"`
	Price      decimal.Decimal `json:"price"`
	Active     bool            `json:"active"`
	CreatedAt  time.Time       `json:"created_at"`
	ClosedAt   *time.Time      `json:"closed_at,omitempty"`
}
