package market

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type MarketRepository interface {
	ActiveListings(ctx context.Context, limit, offset int) ([]ActiveListing, int64, error)
	Stats(ctx context.Context) (Stats, error)
}

type postgresMarketRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresMarketRepository(pool *pgxpool.Pool) MarketRepository {
	return &postgresMarketRepository{pool: pool}
}

func (r *postgresMarketRepository) ActiveListings(ctx context.Context, limit, offset int) ([]ActiveListing, int64, error) {
	query := `SELECT l.id, l.token_id, t.token_uri, l.seller_uuid, l.price, l.created_at
              FROM listings l
              JOIN tokens t ON t.id = l.token_id
              WHERE l.active
              ORDER BY l.token_id
              LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	listingsList := make([]ActiveListing, 0)
	for rows.Next() {
		var l ActiveListing
		if err := rows.Scan(&l.ListingID, &l.TokenID, &l.TokenURI, &l.SellerUUID, &l.Price, &l.ListedAt); err != nil {
			return nil, 0, err
		}
		listingsList = append(listingsList, l)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countRow := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM listings WHERE active")
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, err
	}

	return listingsList, total, nil
}

func (r *postgresMarketRepository) Stats(ctx context.Context) (Stats, error) {
	query := `SELECT
                  (SELECT COALESCE(MAX(id), 0) FROM tokens),
                  (SELECT COUNT(*) FROM listings WHERE active),
                  (SELECT COUNT(*) FROM receipts),
                  (SELECT COALESCE(SUM(price), 0) FROM receipts)`

	var s Stats
	row := r.pool.QueryRow(ctx, query)
	if err := row.Scan(&s.TokenCount, &s.ActiveListings, &s.SettledSales, &s.SettledVolume); err != nil {
		return Stats{}, err
	}
	return s, nil
}
