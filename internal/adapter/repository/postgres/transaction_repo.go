package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/avd/splitbook/internal/domain"
	"github.com/avd/splitbook/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository.
// Splits are stored in a child table keyed by (transaction_id,
// position); position preserves the order the engine maintains.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const insertTransactionQuery = `
	INSERT INTO transactions (id, date, description, payee, check_no, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
`

const insertSplitQuery = `
	INSERT INTO splits (transaction_id, position, account_name, amount, currency, memo, role, reconciled, adjustment)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

// Create inserts a transaction and all of its splits.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, insertTransactionQuery,
		txn.ID,
		txn.Date,
		txn.Description,
		txn.Payee,
		txn.CheckNo,
		txn.CreatedAt,
		txn.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return insertSplits(ctx, pgxTx, txn)
}

// GetByID retrieves a transaction with its splits.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `
		SELECT id, date, description, payee, check_no, created_at, updated_at
		FROM transactions
		WHERE id = $1
	`

	var txn domain.Transaction
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&txn.ID,
		&txn.Date,
		&txn.Description,
		&txn.Payee,
		&txn.CheckNo,
		&txn.CreatedAt,
		&txn.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	splits, err := r.loadSplits(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	txn.Splits = splits[id]

	return &txn, nil
}

// List retrieves transactions ordered by date, newest first.
func (r *TransactionRepository) List(ctx context.Context, limit, offset int) ([]*domain.Transaction, error) {
	query := `
		SELECT id, date, description, payee, check_no, created_at, updated_at
		FROM transactions
		ORDER BY date DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []*domain.Transaction
	var ids []string
	for rows.Next() {
		var txn domain.Transaction
		err := rows.Scan(
			&txn.ID,
			&txn.Date,
			&txn.Description,
			&txn.Payee,
			&txn.CheckNo,
			&txn.CreatedAt,
			&txn.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		txns = append(txns, &txn)
		ids = append(ids, txn.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return txns, nil
	}

	splits, err := r.loadSplits(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, txn := range txns {
		txn.Splits = splits[txn.ID]
	}

	return txns, nil
}

// Update replaces the transaction row and rewrites all splits.
func (r *TransactionRepository) Update(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		UPDATE transactions
		SET date = $2, description = $3, payee = $4, check_no = $5, updated_at = $6
		WHERE id = $1
	`

	tag, err := pgxTx.Exec(ctx, query,
		txn.ID,
		txn.Date,
		txn.Description,
		txn.Payee,
		txn.CheckNo,
		txn.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}

	if _, err := pgxTx.Exec(ctx, `DELETE FROM splits WHERE transaction_id = $1`, txn.ID); err != nil {
		return err
	}

	return insertSplits(ctx, pgxTx, txn)
}

// Delete removes a transaction; splits go with it via cascade.
func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

func insertSplits(ctx context.Context, pgxTx pgx.Tx, txn *domain.Transaction) error {
	batch := &pgx.Batch{}
	for i, s := range txn.Splits {
		batch.Queue(insertSplitQuery,
			txn.ID,
			i,
			s.Account,
			decimalToNumeric(s.Amount.Value),
			s.Amount.Currency,
			s.Memo,
			string(s.Role),
			s.Reconciled,
			s.Adjustment,
		)
	}

	results := pgxTx.SendBatch(ctx, batch)
	defer results.Close()

	for range txn.Splits {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}

	return results.Close()
}

func (r *TransactionRepository) loadSplits(ctx context.Context, ids []string) (map[string][]domain.Split, error) {
	query := `
		SELECT transaction_id, account_name, amount, currency, memo, role, reconciled, adjustment
		FROM splits
		WHERE transaction_id = ANY($1)
		ORDER BY transaction_id, position
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	splits := make(map[string][]domain.Split, len(ids))
	for rows.Next() {
		var (
			txnID    string
			value    pgtype.Numeric
			currency string
			role     string
			s        domain.Split
		)

		err := rows.Scan(
			&txnID,
			&s.Account,
			&value,
			&currency,
			&s.Memo,
			&role,
			&s.Reconciled,
			&s.Adjustment,
		)
		if err != nil {
			return nil, err
		}

		s.Amount = domain.NewAmount(numericToDecimal(value), currency)
		s.Role = domain.SplitRole(role)
		splits[txnID] = append(splits[txnID], s)
	}

	return splits, rows.Err()
}

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}
