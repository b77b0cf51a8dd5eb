package receipts

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrTokenNotFound = errors.New("token not found")

type ReceiptRepository interface {
	ListReceipts(ctx context.Context, limit, offset int) ([]Receipt, int64, error)
	ListReceiptsByToken(ctx context.Context, tokenID int64) ([]Receipt, error)
	ListReceiptsByAccount(ctx context.Context, accountUUID string, limit, offset int) ([]Receipt, int64, error)
	TokenExists(ctx context.Context, tokenID int64) (bool, error)
}

type postgresReceiptRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresReceiptRepository(pool *pgxpool.Pool) ReceiptRepository {
	return &postgresReceiptRepository{pool: pool}
}

func (r *postgresReceiptRepository) ListReceipts(ctx context.Context, limit, offset int) ([]Receipt, int64, error) {
	query := `SELECT id, token_id, listing_id, seller_uuid, buyer_uuid, price, created_at
              FROM receipts
              ORDER BY id DESC
              LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	receiptsList := make([]Receipt, 0)
	for rows.Next() {
		var rec Receipt
		if err := rows.Scan(&rec.ID, &rec.TokenID, &rec.ListingID, &rec.SellerUUID, &rec.BuyerUUID, &rec.Price, &rec.CreatedAt); err != nil {
			return nil, 0, err
		}
		receiptsList = append(receiptsList, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countRow := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM receipts")
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, err
	}

	return receiptsList, total, nil
}

// ListReceiptsByToken returns a token's full sale history oldest first, which
// is its ownership provenance chain.
func (r *postgresReceiptRepository) ListReceiptsByToken(ctx context.Context, tokenID int64) ([]Receipt, error) {
	query := `SELECT id, token_id, listing_id, seller_uuid, buyer_uuid, price, created_at
              FROM receipts
              WHERE token_id = $1
              ORDER BY id`

	rows, err := r.pool.Query(ctx, query, tokenID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	receiptsList := make([]Receipt, 0)
	for rows.Next() {
		var rec Receipt
		if err := rows.Scan(&rec.ID, &rec.TokenID, &rec.ListingID, &rec.SellerUUID, &rec.BuyerUUID, &rec.Price, &rec.CreatedAt); err != nil {
			return nil, err
		}
		receiptsList = append(receiptsList, rec)
	}

	return receiptsList, rows.Err()
}

func (r *postgresReceiptRepository) ListReceiptsByAccount(ctx context.Context, accountUUID string, limit, offset int) ([]Receipt, int64, error) {
	query := `SELECT id, token_id, listing_id, seller_uuid, buyer_uuid, price, created_at
              FROM receipts
              WHERE buyer_uuid = $1 OR seller_uuid = $1
              ORDER BY id DESC
              LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, accountUUID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	receiptsList := make([]Receipt, 0)
	for rows.Next() {
		var rec Receipt
		if err := rows.Scan(&rec.ID, &rec.TokenID, &rec.ListingID, &rec.SellerUUID, &rec.BuyerUUID, &rec.Price, &rec.CreatedAt); err != nil {
			return nil, 0, err
		}
		receiptsList = append(receiptsList, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countRow := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM receipts WHERE buyer_uuid = $1 OR seller_uuid = $1", accountUUID)
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, err
	}

	return receiptsList, total, nil
}

func (r *postgresReceiptRepository) TokenExists(ctx context.Context, tokenID int64) (bool, error) {
	var exists bool
	row := r.pool.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM tokens WHERE id = $1)", tokenID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
