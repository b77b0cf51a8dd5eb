package receipts

import "context"

type ReceiptService interface {
	ListReceipts(ctx context.Context, page, limit int) ([]Receipt, int64, error)
	ListReceiptsByToken(ctx context.Context, tokenID int64) ([]Receipt, error)
	ListReceiptsByAccount(ctx context.Context, accountUUID string, page, limit int) ([]Receipt, int64, error)
}

type receiptService struct {
	repo ReceiptRepository
}

func NewReceiptService(repo ReceiptRepository) ReceiptService {
	return &receiptService{repo: repo}
}

func (s *receiptService) ListReceipts(ctx context.Context, page, limit int) ([]Receipt, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	offset := (page - 1) * limit
	return s.repo.ListReceipts(ctx, limit, offset)
}

func (s *receiptService) ListReceiptsByToken(ctx context.Context, tokenID int64) ([]Receipt, error) {
	exists, err := s.repo.TokenExists(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrTokenNotFound
	}
	return s.repo.ListReceiptsByToken(ctx, tokenID)
}

func (s *receiptService) ListReceiptsByAccount(ctx context.Context, accountUUID string, page, limit int) ([]Receipt, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	offset := (page - 1) * limit
	return s.repo.ListReceiptsByAccount(ctx, accountUUID, limit, offset)
}
