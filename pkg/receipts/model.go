package receipts

import (
	"time"

	"github.com/shopspring/decimal"
)

type Receipt struct {
	ID         int64           `json:"id"`
	TokenID    int64           `json:"token_id"`
	ListingID  int64           `json:"listing_id"`
	SellerUUID string          `json:"seller_uuid"`
	BuyerUUID  string          `json:"buyer_uuid"`
	Price      decimal.Decimal `json:"price"`
	CreatedAt  time.Time       `json:"created_at"`
}

type ReceiptList struct {
	Items []Receipt `json:"items"`
	Total int64     `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
}
