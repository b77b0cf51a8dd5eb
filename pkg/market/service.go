package market

import "context"

type MarketService interface {
	ActiveListings(ctx context.Context, page, limit int) ([]ActiveListing, int64, error)
	Stats(ctx context.Context) (Stats, error)
}

type marketService struct {
	repo MarketRepository
}

func NewMarketService(repo MarketRepository) MarketService {
	return &marketService{repo: repo}
}

func (s *marketService) ActiveListings(ctx context.Context, page, limit int) ([]ActiveListing, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	offset := (page - 1) * limit
	return s.repo.ActiveListings(ctx, limit, offset)
}

func (s *marketService) Stats(ctx context.Context) (Stats, error) {
	return s.repo.Stats(ctx)
}
