package transactionrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bountylab/bountyhub/internal/domain"
	"github.com/bountylab/bountyhub/internal/pg"
	"go.uber.org/zap"
)

// ErrDuplicate maps the unique constraints on (user_id, operation_id) and
// external_ref: the operation was already applied once.
var ErrDuplicate = errors.New("transaction already recorded")

const uniqueViolation = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, txn *domain.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, type, amount, fee_amount, net_amount, status, payment_method, operation_id, external_ref, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''), $11)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		txn.ID, txn.UserID, txn.Type, txn.Amount, txn.FeeAmount, txn.NetAmount,
		txn.Status, txn.PaymentMethod, txn.OperationID, txn.ExternalRef, txn.Metadata,
	).Scan(&txn.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicate
		}
		zap.L().Error("can't save transaction", zap.Error(err))
		return err
	}
	return nil
}

// Resolve moves a processing transaction to its terminal status. The status
// predicate makes concurrent resolutions race-safe: only one caller sees a
// row affected, the rest get false.
func (r *Repository) Resolve(ctx context.Context, id uuid.UUID, status domain.TransactionStatus) (bool, error) {
	query := `
		UPDATE transactions
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`
	tag, err := r.db.Exec(ctx, query, status, id, domain.TransactionProcessing)
	if err != nil {
		zap.L().Error("can't resolve transaction status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) FindByExternalRef(ctx context.Context, externalRef string) (*domain.Transaction, error) {
	query := `
        SELECT id, user_id, type, amount, fee_amount, net_amount, status, COALESCE(payment_method, ''), COALESCE(operation_id, ''), COALESCE(external_ref, ''), created_at
        FROM transactions
        WHERE external_ref = $1
    `
	row := r.db.QueryRow(ctx, query, externalRef)
	var txn domain.Transaction
	err := row.Scan(&txn.ID, &txn.UserID, &txn.Type, &txn.Amount, &txn.FeeAmount, &txn.NetAmount,
		&txn.Status, &txn.PaymentMethod, &txn.OperationID, &txn.ExternalRef, &txn.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find transaction by external ref", zap.Error(err))
		return nil, err
	}
	return &txn, nil
}

func (r *Repository) FindByOperationID(ctx context.Context, userID int, operationID string) (*domain.Transaction, error) {
	query := `
        SELECT id, user_id, type, amount, fee_amount, net_amount, status, COALESCE(payment_method, ''), COALESCE(operation_id, ''), COALESCE(external_ref, ''), created_at
        FROM transactions
        WHERE user_id = $1 AND operation_id = $2
    `
	row := r.db.QueryRow(ctx, query, userID, operationID)
	var txn domain.Transaction
	err := row.Scan(&txn.ID, &txn.UserID, &txn.Type, &txn.Amount, &txn.FeeAmount, &txn.NetAmount,
		&txn.Status, &txn.PaymentMethod, &txn.OperationID, &txn.ExternalRef, &txn.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find transaction by operation id", zap.Error(err))
		return nil, err
	}
	return &txn, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int, limit uint32) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, type, amount, fee_amount, net_amount, status, COALESCE(payment_method, ''), COALESCE(operation_id, ''), COALESCE(external_ref, ''), created_at
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		err := rows.Scan(&txn.ID, &txn.UserID, &txn.Type, &txn.Amount, &txn.FeeAmount, &txn.NetAmount,
			&txn.Status, &txn.PaymentMethod, &txn.OperationID, &txn.ExternalRef, &txn.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, txn)
	}

	return txns, nil
}
