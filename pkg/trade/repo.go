package trade

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrNotListed         = errors.New("token has no active listing")
	ErrSelfPurchase      = errors.New("buyer already owns the token")
	ErrWrongAmount       = errors.New("payment amount does not match the listing price")
	ErrInsufficientFunds = errors.New("buyer balance cannot cover the price")
	ErrBuyerNotFound     = errors.New("buyer account not found")
)

type TradeRepository interface {
	Purchase(ctx context.Context, tokenID int64, buyerUUID string, amount decimal.Decimal) (Receipt, error)
}

type postgresTradeRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresTradeRepository(pool *pgxpool.Pool) TradeRepository {
	return &postgresTradeRepository{pool: pool}
}

// Purchase settles a sale as one transaction: the active listing is locked,
// validated, deactivated, the token reassigned and the price moved from buyer
// to seller. Either every effect commits or none does. Two concurrent buyers
// serialize on the listing row lock; the loser sees no active listing.
func (r *postgresTradeRepository) Purchase(ctx context.Context, tokenID int64, buyerUUID string, amount decimal.Decimal) (Receipt, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return Receipt{}, err
	}
	defer tx.Rollback(ctx)

	var (
		listingID  int64
		sellerUUID string
		price      decimal.Decimal
	)
	row := tx.QueryRow(ctx, "SELECT id, seller_uuid, price FROM listings WHERE token_id = $1 AND active FOR UPDATE", tokenID)
	if err := row.Scan(&listingID, &sellerUUID, &price); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Receipt{}, ErrNotListed
		}
		return Receipt{}, err
	}

	if buyerUUID == sellerUUID {
		return Receipt{}, ErrSelfPurchase
	}

	if !amount.Equal(price) {
		return Receipt{}, ErrWrongAmount
	}

	// Both account rows lock in uuid order so two cross purchases cannot
	// take them in opposite orders and deadlock
	rows, err := tx.Query(ctx, `SELECT uuid, balance FROM accounts
	                            WHERE uuid IN ($1, $2) AND is_deleted = false
	                            ORDER BY uuid
	                            FOR UPDATE`, buyerUUID, sellerUUID)
	if err != nil {
		return Receipt{}, err
	}
	var buyerBalance decimal.Decimal
	buyerFound, sellerFound := false, false
	for rows.Next() {
		var accountUUID string
		var balance decimal.Decimal
		if err := rows.Scan(&accountUUID, &balance); err != nil {
			rows.Close()
			return Receipt{}, err
		}
		switch accountUUID {
		case buyerUUID:
			buyerBalance = balance
			buyerFound = true
		case sellerUUID:
			sellerFound = true
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return Receipt{}, err
	}
	if !buyerFound {
		return Receipt{}, ErrBuyerNotFound
	}
	if !sellerFound {
		return Receipt{}, fmt.Errorf("listing %d is stale: seller account %s is unavailable", listingID, sellerUUID)
	}
	if buyerBalance.LessThan(price) {
		return Receipt{}, ErrInsufficientFunds
	}

	if _, err := tx.Exec(ctx, "UPDATE listings SET active = false, closed_at = NOW() WHERE id = $1", listingID); err != nil {
		return Receipt{}, err
	}

	cmd, err := tx.Exec(ctx, "UPDATE tokens SET owner_uuid = $1 WHERE id = $2 AND owner_uuid = $3", buyerUUID, tokenID, sellerUUID)
	if err != nil {
		return Receipt{}, err
	}
	if cmd.RowsAffected() == 0 {
		// Listing seller no longer owns the token; the rollback restores the listing
		return Receipt{}, fmt.Errorf("listing %d is stale: seller no longer owns token %d", listingID, tokenID)
	}

	if _, err := tx.Exec(ctx, "UPDATE accounts SET balance = balance - $1 WHERE uuid = $2", price, buyerUUID); err != nil {
		return Receipt{}, err
	}
	if _, err := tx.Exec(ctx, "UPDATE accounts SET balance = balance + $1 WHERE uuid = $2", price, sellerUUID); err != nil {
		return Receipt{}, err
	}

	receipt := Receipt{
		TokenID:    tokenID,
		ListingID:  listingID,
		SellerUUID: sellerUUID,
		BuyerUUID:  buyerUUID,
		Price:      price,
	}
	row = tx.QueryRow(ctx, `INSERT INTO receipts (token_id, listing_id, seller_uuid, buyer_uuid, price, created_at)
                            VALUES ($1, $2, $3, $4, $5, NOW())
                            RETURNING id, created_at`,
		tokenID, listingID, sellerUUID, buyerUUID, price)
	if err := row.Scan(&receipt.ID, &receipt.CreatedAt); err != nil {
		return Receipt{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Receipt{}, err
	}

	return receipt, nil
}
