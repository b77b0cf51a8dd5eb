package accounts

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidAmount = errors.New("deposit amount must be positive")

type AccountService interface {
	Register(ctx context.Context, name, email, password string) (Account, error)
	Login(ctx context.Context, email, password string) (Account, error)
	GetAccountByUUID(ctx context.Context, uuid string) (Account, error)
	ListAccounts(ctx context.Context, page, limit int) ([]Account, int64, error)
	Deposit(ctx context.Context, uuid string, amount decimal.Decimal) (Account, error)
	GetBalance(ctx context.Context, uuid string) (decimal.Decimal, error)
}

type accountService struct {
	repo AccountRepository
}

func NewAccountService(repo AccountRepository) AccountService {
	return &accountService{repo: repo}
}

func (s *accountService) Register(ctx context.Context, name, email, password string) (Account, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, err
	}

	a, err := s.repo.CreateAccount(ctx, name, email, string(hashBytes), uuid.NewString())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Account{}, errors.New("account exists with that email")
		}
		return Account{}, err
	}
	return a, nil
}

func (s *accountService) Login(ctx context.Context, email, password string) (Account, error) {
	accountUUID, hash, err := s.repo.GetAccountAuthByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return Account{}, errors.New("invalid credentials")
		}
		return Account{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return Account{}, errors.New("invalid credentials")
	}

	return s.repo.GetAccountByUUID(ctx, accountUUID)
}

func (s *accountService) GetAccountByUUID(ctx context.Context, uuid string) (Account, error) {
	return s.repo.GetAccountByUUID(ctx, uuid)
}

func (s *accountService) ListAccounts(ctx context.Context, page, limit int) ([]Account, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	offset := (page - 1) * limit
	return s.repo.ListAccounts(ctx, limit, offset)
}

func (s *accountService) Deposit(ctx context.Context, uuid string, amount decimal.Decimal) (Account, error) {
	if !amount.IsPositive() {
		return Account{}, ErrInvalidAmount
	}
	return s.repo.Deposit(ctx, uuid, amount)
}

func (s *accountService) GetBalance(ctx context.Context, uuid string) (decimal.Decimal, error) {
	return s.repo.GetBalance(ctx, uuid)
}
