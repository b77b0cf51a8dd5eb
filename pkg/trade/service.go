package trade

import (
	"context"

	"github.com/shopspring/decimal"
)

// Notifier delivers post-settlement confirmations. Failures are its own
// business; a settled purchase is never undone because an email bounced.
type Notifier interface {
	PurchaseCompleted(ctx context.Context, receipt Receipt)
}

type TradeService interface {
	Purchase(ctx context.Context, tokenID int64, buyerUUID string, amount decimal.Decimal) (Receipt, error)
}

type tradeService struct {
	repo     TradeRepository
	notifier Notifier
}

func NewTradeService(repo TradeRepository, notifier Notifier) TradeService {
	return &tradeService{repo: repo, notifier: notifier}
}

func (s *tradeService) Purchase(ctx context.Context, tokenID int64, buyerUUID string, amount decimal.Decimal) (Receipt, error) {
	receipt, err := s.repo.Purchase(ctx, tokenID, buyerUUID, amount)
	if err != nil {
		return Receipt{}, err
	}

	if s.notifier != nil {
		s.notifier.PurchaseCompleted(ctx, receipt)
	}

	return receipt, nil
}
