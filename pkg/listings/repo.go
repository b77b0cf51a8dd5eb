package listings

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrTokenNotFound   = errors.New("token not found")
	ErrAlreadyListed   = errors.New("token already has an active listing")
	ErrNotActive       = errors.New("listing is not active")
)

type ListingRepository interface {
	CreateListing(ctx context.Context, tokenID int64, sellerUUID string, price decimal.Decimal) (Listing, error)
	GetListingByID(ctx context.Context, id int64) (Listing, error)
	ActiveListingForToken(ctx context.Context, tokenID int64) (Listing, error)
	CancelListing(ctx context.Context, id int64) error
	GetTokenOwner(ctx context.Context, tokenID int64) (string, error)
}

type postgresListingRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresListingRepository(pool *pgxpool.Pool) ListingRepository {
	return &postgresListingRepository{pool: pool}
}

func (r *postgresListingRepository) CreateListing(ctx context.Context, tokenID int64, sellerUUID string, price decimal.Decimal) (Listing, error) {
	query := `INSERT INTO listings (token_id, seller_uuid, price, active, created_at)
              VALUES ($1, $2, $3, true, NOW())
              RETURNING id, token_id, seller_uuid, price, active, created_at, closed_at`
	row := r.pool.QueryRow(ctx, query, tokenID, sellerUUID, price)

	var l Listing
	if err := row.Scan(&l.ID, &l.TokenID, &l.SellerUUID, &l.Price, &l.Active, &l.CreatedAt, &l.ClosedAt); err != nil {
		return Listing{}, err
	}
	return l, nil
}

func (r *postgresListingRepository) GetListingByID(ctx context.Context, id int64) (Listing, error) {
	query := `SELECT id, token_id, seller_uuid, price, active, created_at, closed_at
              FROM listings
              WHERE id = $1`
	row := r.pool.QueryRow(ctx, query, id)

	var l Listing
	if err := row.Scan(&l.ID, &l.TokenID, &l.SellerUUID, &l.Price, &l.Active, &l.CreatedAt, &l.ClosedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Listing{}, ErrListingNotFound
		}
		return Listing{}, err
	}
	return l, nil
}

func (r *postgresListingRepository) ActiveListingForToken(ctx context.Context, tokenID int64) (Listing, error) {
	query := `SELECT id, token_id, seller_uuid, price, active, created_at, closed_at
              FROM listings
              WHERE token_id = $1 AND active`
	row := r.pool.QueryRow(ctx, query, tokenID)

	var l Listing
	if err := row.Scan(&l.ID, &l.TokenID, &l.SellerUUID, &l.Price, &l.Active, &l.CreatedAt, &l.ClosedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Listing{}, ErrListingNotFound
		}
		return Listing{}, err
	}
	return l, nil
}

func (r *postgresListingRepository) CancelListing(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, "UPDATE listings SET active = false, closed_at = NOW() WHERE id = $1 AND active", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotActive
	}
	return nil
}

func (r *postgresListingRepository) GetTokenOwner(ctx context.Context, tokenID int64) (string, error) {
	row := r.pool.QueryRow(ctx, "SELECT owner_uuid FROM tokens WHERE id = $1", tokenID)

	var owner string
	if err := row.Scan(&owner); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrTokenNotFound
		}
		return "", err
	}
	return owner, nil
}
