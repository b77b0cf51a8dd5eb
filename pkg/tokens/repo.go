package tokens

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrTokenNotFound   = errors.New("token not found")
	ErrCreatorNotFound = errors.New("creator account not found")
)

type TokenRepository interface {
	MintToken(ctx context.Context, creatorUUID, tokenURI string) (Token, error)
	GetTokenByID(ctx context.Context, id int64) (Token, error)
	ListTokens(ctx context.Context, limit, offset int) ([]Token, int64, error)
	ListTokensByOwner(ctx context.Context, ownerUUID string, limit, offset int) ([]Token, int64, error)
	Count(ctx context.Context) (int64, error)
}

type postgresTokenRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresTokenRepository(pool *pgxpool.Pool) TokenRepository {
	return &postgresTokenRepository{pool: pool}
}

// MintToken assigns the next id to a token owned by its creator. The insert
// is conditional on the creator row so a mint for an unknown creator never
// reaches the id sequence; ids stay dense with no gaps from failed mints.
func (r *postgresTokenRepository) MintToken(ctx context.Context, creatorUUID, tokenURI string) (Token, error) {
	query := `INSERT INTO tokens (owner_uuid, creator_uuid, token_uri, created_at)
              SELECT uuid, uuid, $2, NOW()
              FROM accounts
              WHERE uuid = $1 AND is_deleted = false
              RETURNING id, owner_uuid, creator_uuid, token_uri, created_at`
	row := r.pool.QueryRow(ctx, query, creatorUUID, tokenURI)

	var t Token
	if err := row.Scan(&t.ID, &t.OwnerUUID, &t.CreatorUUID, &t.TokenURI, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Token{}, ErrCreatorNotFound
		}
		return Token{}, err
	}
	return t, nil
}

func (r *postgresTokenRepository) GetTokenByID(ctx context.Context, id int64) (Token, error) {
	query := `SELECT id, owner_uuid, creator_uuid, token_uri, created_at
              FROM tokens
              WHERE id = $1`
	row := r.pool.QueryRow(ctx, query, id)

	var t Token
	if err := row.Scan(&t.ID, &t.OwnerUUID, &t.CreatorUUID, &t.TokenURI, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Token{}, ErrTokenNotFound
		}
		return Token{}, err
	}
	return t, nil
}

func (r *postgresTokenRepository) ListTokens(ctx context.Context, limit, offset int) ([]Token, int64, error) {
	query := `SELECT id, owner_uuid, creator_uuid, token_uri, created_at
              FROM tokens
              ORDER BY id
              LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	tokensList := make([]Token, 0)
	for rows.Next() {
		var t Token
		if err := rows.Scan(&t.ID, &t.OwnerUUID, &t.CreatorUUID, &t.TokenURI, &t.CreatedAt); err != nil {
			return nil, 0, err
		}
		tokensList = append(tokensList, t)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countRow := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM tokens")
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, err
	}

	return tokensList, total, nil
}

func (r *postgresTokenRepository) ListTokensByOwner(ctx context.Context, ownerUUID string, limit, offset int) ([]Token, int64, error) {
	query := `SELECT id, owner_uuid, creator_uuid, token_uri, created_at
              FROM tokens
              WHERE owner_uuid = $1
              ORDER BY id
              LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, ownerUUID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	tokensList := make([]Token, 0)
	for rows.Next() {
		var t Token
		if err := rows.Scan(&t.ID, &t.OwnerUUID, &t.CreatorUUID, &t.TokenURI, &t.CreatedAt); err != nil {
			return nil, 0, err
		}
		tokensList = append(tokensList, t)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countRow := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM tokens WHERE owner_uuid = $1", ownerUUID)
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, err
	}

	return tokensList, total, nil
}

// Count returns the highest assigned token id. Ids are dense and start at 1,
// so this doubles as the total number of tokens ever minted.
func (r *postgresTokenRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	row := r.pool.QueryRow(ctx, "SELECT COALESCE(MAX(id), 0) FROM tokens")
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
