package tokens

import (
	"context"
	"errors"
	"strings"
)

var ErrInvalidTokenURI = errors.New("token URI must not be empty")

type TokenService interface {
	Mint(ctx context.Context, creatorUUID, tokenURI string) (Token, error)
	GetTokenByID(ctx context.Context, id int64) (Token, error)
	ListTokens(ctx context.Context, page, limit int) ([]Token, int64, error)
	ListTokensByOwner(ctx context.Context, ownerUUID string, page, limit int) ([]Token, int64, error)
	Count(ctx context.Context) (int64, error)
}

type tokenService struct {
	repo TokenRepository
}

func NewTokenService(repo TokenRepository) TokenService {
	return &tokenService{repo: repo}
}

// Mint registers a new token owned by its creator. The URI is stored as an
// opaque reference and never fetched or validated beyond being non-empty.
func (s *tokenService) Mint(ctx context.Context, creatorUUID, tokenURI string) (Token, error) {
	if strings.TrimSpace(tokenURI) == "" {
		return Token{}, ErrInvalidTokenURI
	}
	return s.repo.MintToken(ctx, creatorUUID, tokenURI)
}

func (s *tokenService) GetTokenByID(ctx context.Context, id int64) (Token, error) {
	return s.repo.GetTokenByID(ctx, id)
}

func (s *tokenService) ListTokens(ctx context.Context, page, limit int) ([]Token, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	offset := (page - 1) * limit
	return s.repo.ListTokens(ctx, limit, offset)
}

func (s *tokenService) ListTokensByOwner(ctx context.Context, ownerUUID string, page, limit int) ([]Token, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	offset := (page - 1) * limit
	return s.repo.ListTokensByOwner(ctx, ownerUUID, limit, offset)
}

func (s *tokenService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
