package trade

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is the durable record of a settled purchase. The new owner is
// always the buyer.
type Receipt struct {
	ID         int64           `json:"id"`
	TokenID    int64           `json:"token_id"`
	ListingID  int64           `json:"listing_id"`
	SellerUUID string          `json:"seller_uuid"`
	BuyerUUID  string          `json:"buyer_uuid"`
	Price      decimal.Decimal `json:"price"`
	CreatedAt  time.Time       `json:"created_at"`
}
