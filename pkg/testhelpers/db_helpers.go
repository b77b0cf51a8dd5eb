package testhelpers

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var uniqueCounter int64

func nextSuffix() int64 {
	return atomic.AddInt64(&uniqueCounter, 1)
}

// CreateTestAccount inserts a minimal valid account row and returns its UUID.
func CreateTestAccount(t *testing.T, db *pgxpool.Pool) string {
	t.Helper()

	ctx := context.Background()
	suffix := nextSuffix()
	name := fmt.Sprintf("test-account-%d", suffix)
	email := fmt.Sprintf("%s@example.com", name)
	accountUUID := uuid.NewString()

	_, err := db.Exec(ctx, "INSERT INTO accounts (uuid, name, email, password_hash) VALUES ($1, $2, $3, $4)", accountUUID, name, email, "hash")
	require.NoError(t, err)
	return accountUUID
}

// FundAccount credits the account's balance directly.
func FundAccount(t *testing.T, db *pgxpool.Pool, accountUUID string, amount decimal.Decimal) {
	t.Helper()

	ctx := context.Background()
	cmd, err := db.Exec(ctx, "UPDATE accounts SET balance = balance + $1 WHERE uuid = $2", amount, accountUUID)
	require.NoError(t, err)
	require.EqualValues(t, 1, cmd.RowsAffected())
}

// CreateTestToken mints a token for the given owner and returns its ID.
func CreateTestToken(t *testing.T, db *pgxpool.Pool, ownerUUID string) int64 {
	t.Helper()

	ctx := context.Background()
	suffix := nextSuffix()
	tokenURI := fmt.Sprintf("ipfs://test-token-%d", suffix)

	var id int64
	err := db.QueryRow(ctx, "INSERT INTO tokens (owner_uuid, creator_uuid, token_uri) VALUES ($1, $1, $2) RETURNING id", ownerUUID, tokenURI).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestListing puts the token up for sale and returns the listing ID.
func CreateTestListing(t *testing.T, db *pgxpool.Pool, tokenID int64, sellerUUID string, price decimal.Decimal) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := db.QueryRow(ctx, "INSERT INTO listings (token_id, seller_uuid, price) VALUES ($1, $2, $3) RETURNING id", tokenID, sellerUUID, price).Scan(&id)
	require.NoError(t, err)
	return id
}
