package listings

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

var (
	ErrNotOwner     = errors.New("seller is not the token owner")
	ErrNotSeller    = errors.New("caller is not the listing seller")
	ErrInvalidPrice = errors.New("price must be positive")
)

type ListingService interface {
	CreateListing(ctx context.Context, tokenID int64, sellerUUID string, price decimal.Decimal) (Listing, error)
	CancelListing(ctx context.Context, listingID int64, callerUUID string) error
	GetListingByID(ctx context.Context, listingID int64) (Listing, error)
	ActiveListingForToken(ctx context.Context, tokenID int64) (Listing, error)
}

type listingService struct {
	repo ListingRepository
}

func NewListingService(repo ListingRepository) ListingService {
	return &listingService{repo: repo}
}

// CreateListing puts a token up for sale at a fixed price. The seller must be
// the current owner and a token can carry at most one active listing; a second
// listing attempt is rejected, never silently replaced.
func (s *listingService) CreateListing(ctx context.Context, tokenID int64, sellerUUID string, price decimal.Decimal) (Listing, error) {
	owner, err := s.repo.GetTokenOwner(ctx, tokenID)
	if err != nil {
		return Listing{}, err
	}
	if owner != sellerUUID {
		return Listing{}, ErrNotOwner
	}

	if !price.IsPositive() {
		return Listing{}, ErrInvalidPrice
	}

	if _, err := s.repo.ActiveListingForToken(ctx, tokenID); err == nil {
		return Listing{}, ErrAlreadyListed
	} else if !errors.Is(err, ErrListingNotFound) {
		return Listing{}, err
	}

	l, err := s.repo.CreateListing(ctx, tokenID, sellerUUID, price)
	if err != nil {
		// The partial unique index catches the race two concurrent creates lose
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Listing{}, ErrAlreadyListed
		}
		return Listing{}, err
	}
	return l, nil
}

// CancelListing deactivates an active listing. Only the seller may cancel and
// no funds move.
func (s *listingService) CancelListing(ctx context.Context, listingID int64, callerUUID string) error {
	l, err := s.repo.GetListingByID(ctx, listingID)
	if err != nil {
		return err
	}
	if l.SellerUUID != callerUUID {
		return ErrNotSeller
	}
	if !l.Active {
		return ErrNotActive
	}
	return s.repo.CancelListing(ctx, listingID)
}

func (s *listingService) GetListingByID(ctx context.Context, listingID int64) (Listing, error) {
	return s.repo.GetListingByID(ctx, listingID)
}

func (s *listingService) ActiveListingForToken(ctx context.Context, tokenID int64) (Listing, error) {
	return s.repo.ActiveListingForToken(ctx, tokenID)
}
