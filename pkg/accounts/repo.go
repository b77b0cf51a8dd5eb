package accounts

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var ErrAccountNotFound = errors.New("account not found")

type AccountRepository interface {
	CreateAccount(ctx context.Context, name, email, passwordHash, uuid string) (Account, error)
	GetAccountByUUID(ctx context.Context, uuid string) (Account, error)
	GetAccountByEmail(ctx context.Context, email string) (Account, error)
	ListAccounts(ctx context.Context, limit, offset int) ([]Account, int64, error)
	Deposit(ctx context.Context, uuid string, amount decimal.Decimal) (Account, error)
	GetBalance(ctx context.Context, uuid string) (decimal.Decimal, error)
	// Auth helper
	GetAccountAuthByEmail(ctx context.Context, email string) (string, string, error)
}

type postgresAccountRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresAccountRepository(pool *pgxpool.Pool) AccountRepository {
	return &postgresAccountRepository{pool: pool}
}

func (r *postgresAccountRepository) CreateAccount(ctx context.Context, name, email, passwordHash, uuid string) (Account, error) {
	query := `INSERT INTO accounts (uuid, name, email, password_hash, created_at)
              VALUES ($1, $2, $3, $4, NOW())
              RETURNING id, uuid, name, email, balance, created_at`
	row := r.pool.QueryRow(ctx, query, uuid, name, email, passwordHash)

	var a Account
	if err := row.Scan(&a.ID, &a.UUID, &a.Name, &a.Email, &a.Balance, &a.CreatedAt); err != nil {
		return Account{}, err
	}
	return a, nil
}

func (r *postgresAccountRepository) GetAccountByUUID(ctx context.Context, uuid string) (Account, error) {
	query := `SELECT id, uuid, name, email, balance, created_at
              FROM accounts
              WHERE uuid = $1 AND is_deleted = false`
	row := r.pool.QueryRow(ctx, query, uuid)

	var a Account
	if err := row.Scan(&a.ID, &a.UUID, &a.Name, &a.Email, &a.Balance, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, err
	}
	return a, nil
}

func (r *postgresAccountRepository) GetAccountByEmail(ctx context.Context, email string) (Account, error) {
	query := `SELECT id, uuid, name, email, balance, created_at
              FROM accounts
              WHERE email = $1 AND is_deleted = false`
	row := r.pool.QueryRow(ctx, query, email)

	var a Account
	if err := row.Scan(&a.ID, &a.UUID, &a.Name, &a.Email, &a.Balance, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, err
	}
	return a, nil
}

func (r *postgresAccountRepository) ListAccounts(ctx context.Context, limit, offset int) ([]Account, int64, error) {
	query := `SELECT id, uuid, name, email, balance, created_at
              FROM accounts
              WHERE is_deleted = false
              ORDER BY id
              LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	accountsList := make([]Account, 0)
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.ID, &a.UUID, &a.Name, &a.Email, &a.Balance, &a.CreatedAt); err != nil {
			return nil, 0, err
		}
		accountsList = append(accountsList, a)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countRow := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM accounts WHERE is_deleted = false")
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, err
	}

	return accountsList, total, nil
}

func (r *postgresAccountRepository) Deposit(ctx context.Context, uuid string, amount decimal.Decimal) (Account, error) {
	query := `UPDATE accounts
              SET balance = balance + $1
              WHERE uuid = $2 AND is_deleted = false
              RETURNING id, uuid, name, email, balance, created_at`
	row := r.pool.QueryRow(ctx, query, amount, uuid)

	var a Account
	if err := row.Scan(&a.ID, &a.UUID, &a.Name, &a.Email, &a.Balance, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, err
	}
	return a, nil
}

func (r *postgresAccountRepository) GetBalance(ctx context.Context, uuid string) (decimal.Decimal, error) {
	row := r.pool.QueryRow(ctx, "SELECT balance FROM accounts WHERE uuid = $1 AND is_deleted = false", uuid)

	var balance decimal.Decimal
	if err := row.Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Decimal{}, ErrAccountNotFound
		}
		return decimal.Decimal{}, err
	}
	return balance, nil
}

func (r *postgresAccountRepository) GetAccountAuthByEmail(ctx context.Context, email string) (string, string, error) {
	row := r.pool.QueryRow(ctx, "SELECT uuid, password_hash FROM accounts WHERE email = $1 AND is_deleted = false", email)

	var uuid, hash string
	if err := row.Scan(&uuid, &hash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", ErrAccountNotFound
		}
		return "", "", err
	}
	return uuid, hash, nil
}
