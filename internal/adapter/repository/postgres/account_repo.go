package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avd/splitbook/internal/domain"
	"github.com/avd/splitbook/internal/usecase"
)

// AccountRepository implements usecase.AccountRepository. Account
// names are unique; splits reference accounts by name.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

const insertAccountQuery = `
	INSERT INTO accounts (id, name, currency, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5)
`

// Create inserts a new account.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	_, err := r.pool.Exec(ctx, insertAccountQuery,
		account.ID,
		account.Name,
		account.Currency,
		account.CreatedAt,
		account.UpdatedAt,
	)

	return err
}

// EnsureByName inserts the account unless the name is already taken.
func (r *AccountRepository) EnsureByName(ctx context.Context, tx usecase.Transaction, account *domain.Account) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := insertAccountQuery + ` ON CONFLICT (name) DO NOTHING`

	_, err := pgxTx.Exec(ctx, query,
		account.ID,
		account.Name,
		account.Currency,
		account.CreatedAt,
		account.UpdatedAt,
	)

	return err
}

// GetByName retrieves an account by its unique name.
func (r *AccountRepository) GetByName(ctx context.Context, name string) (*domain.Account, error) {
	query := `
		SELECT id, name, currency, created_at, updated_at
		FROM accounts
		WHERE name = $1
	`

	var account domain.Account
	err := r.pool.QueryRow(ctx, query, name).Scan(
		&account.ID,
		&account.Name,
		&account.Currency,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	return &account, nil
}

// List retrieves accounts ordered by name.
func (r *AccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	query := `
		SELECT id, name, currency, created_at, updated_at
		FROM accounts
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		var account domain.Account
		err := rows.Scan(
			&account.ID,
			&account.Name,
			&account.Currency,
			&account.CreatedAt,
			&account.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, &account)
	}

	return accounts, rows.Err()
}
