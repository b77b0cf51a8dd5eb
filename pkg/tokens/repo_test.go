package tokens

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"tokenbay/pkg/testhelpers"
)

func setupTokenTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL_FOR_TEST")
	if dsn == "" {
		t.Skip("DATABASE_URL_FOR_TEST not set; skipping token repository tests")
	}

	ctx := context.Background()
	cfg, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, pool.Ping(ctx))

	t.Cleanup(pool.Close)
	return pool
}

func TestPostgresTokenRepository_MintToken_IDsStrictlyIncreasing(t *testing.T) {
	pool := setupTokenTestPool(t)

	repo := NewPostgresTokenRepository(pool)
	ctx := context.Background()
	owner := testhelpers.CreateTestAccount(t, pool)

	first, err := repo.MintToken(ctx, owner, "ipfs://one")
	require.NoError(t, err)
	second, err := repo.MintToken(ctx, owner, "ipfs://two")
	require.NoError(t, err)
	third, err := repo.MintToken(ctx, owner, "ipfs://three")
	require.NoError(t, err)

	require.Equal(t, first.ID+1, second.ID)
	require.Equal(t, second.ID+1, third.ID)
}

func TestPostgresTokenRepository_MintToken_FailedMintLeavesNoGap(t *testing.T) {
	pool := setupTokenTestPool(t)

	repo := NewPostgresTokenRepository(pool)
	ctx := context.Background()
	owner := testhelpers.CreateTestAccount(t, pool)

	before, err := repo.MintToken(ctx, owner, "ipfs://before")
	require.NoError(t, err)

	// A mint for an unknown creator must not consume an id
	_, err = repo.MintToken(ctx, uuid.NewString(), "ipfs://rejected")
	require.ErrorIs(t, err, ErrCreatorNotFound)

	after, err := repo.MintToken(ctx, owner, "ipfs://after")
	require.NoError(t, err)
	require.Equal(t, before.ID+1, after.ID)
}

func TestPostgresTokenRepository_MintToken_OwnerIsCreator(t *testing.T) {
	pool := setupTokenTestPool(t)

	repo := NewPostgresTokenRepository(pool)
	ctx := context.Background()
	creator := testhelpers.CreateTestAccount(t, pool)

	minted, err := repo.MintToken(ctx, creator, "ipfs://abc")
	require.NoError(t, err)
	require.Equal(t, creator, minted.OwnerUUID)
	require.Equal(t, creator, minted.CreatorUUID)

	got, err := repo.GetTokenByID(ctx, minted.ID)
	require.NoError(t, err)
	require.Equal(t, creator, got.OwnerUUID)
	require.Equal(t, "ipfs://abc", got.TokenURI)
}

func TestPostgresTokenRepository_GetTokenByID_NotFound(t *testing.T) {
	pool := setupTokenTestPool(t)

	repo := NewPostgresTokenRepository(pool)

	_, err := repo.GetTokenByID(context.Background(), 1<<40)
	require.ErrorIs(t, err, ErrTokenNotFound)
}

func TestPostgresTokenRepository_Count(t *testing.T) {
	pool := setupTokenTestPool(t)

	repo := NewPostgresTokenRepository(pool)
	ctx := context.Background()
	owner := testhelpers.CreateTestAccount(t, pool)

	before, err := repo.Count(ctx)
	require.NoError(t, err)

	minted, err := repo.MintToken(ctx, owner, "ipfs://counted")
	require.NoError(t, err)

	after, err := repo.Count(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, after, before+1)
	require.GreaterOrEqual(t, after, minted.ID)
}

func TestPostgresTokenRepository_ListTokensByOwner(t *testing.T) {
	pool := setupTokenTestPool(t)

	repo := NewPostgresTokenRepository(pool)
	ctx := context.Background()
	owner := testhelpers.CreateTestAccount(t, pool)

	testhelpers.CreateTestToken(t, pool, owner)
	testhelpers.CreateTestToken(t, pool, owner)

	items, total, err := repo.ListTokensByOwner(ctx, owner, 10, 0)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, items, 2)
	for _, token := range items {
		require.Equal(t, owner, token.OwnerUUID)
	}
}
