package payoutrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bountylab/bountyhub/internal/domain"
	"github.com/bountylab/bountyhub/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreatePayout(ctx context.Context, payout *domain.PayoutRequest) error {
	query := `
		INSERT INTO payout_requests (id, user_id, amount, fee_amount, net_amount, status, operation_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		payout.ID, payout.UserID, payout.Amount, payout.FeeAmount, payout.NetAmount,
		payout.Status, payout.OperationID,
	).Scan(&payout.CreatedAt)
	if err != nil {
		zap.L().Error("can't save payout request", zap.Error(err))
		return err
	}
	return nil
}

// UpdatePayout records the status transition and, once known, the external
// transfer id. Terminal states are never overwritten.
func (r *Repository) UpdatePayout(ctx context.Context, id uuid.UUID, status domain.PayoutStatus, transferID string) error {
	query := `
		UPDATE payout_requests
		SET status = $1, transfer_id = COALESCE(NULLIF($2, ''), transfer_id), updated_at = NOW()
		WHERE id = $3 AND status NOT IN ('completed', 'failed')
	`
	if _, err := r.db.Exec(ctx, query, status, transferID, id); err != nil {
		zap.L().Error("can't update payout request", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindPayoutByID(ctx context.Context, id uuid.UUID) (*domain.PayoutRequest, error) {
	query := `
        SELECT id, user_id, amount, fee_amount, net_amount, status, COALESCE(transfer_id, ''), operation_id, created_at
        FROM payout_requests
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var payout domain.PayoutRequest
	err := row.Scan(&payout.ID, &payout.UserID, &payout.Amount, &payout.FeeAmount, &payout.NetAmount,
		&payout.Status, &payout.TransferID, &payout.OperationID, &payout.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find payout request", zap.Error(err))
		return nil, err
	}
	return &payout, nil
}

// FindStuckProcessing returns payouts that entered processing before the
// cutoff and never reached a terminal state, for the reconciliation sweep.
func (r *Repository) FindStuckProcessing(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.PayoutRequest, error) {
	query := `
        SELECT id, user_id, amount, fee_amount, net_amount, status, COALESCE(transfer_id, ''), operation_id, created_at
        FROM payout_requests
        WHERE status = 'processing' AND updated_at < $1
        ORDER BY updated_at
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, cutoff, limit)
	if err != nil {
		zap.L().Error("failed to fetch stuck payouts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payouts []domain.PayoutRequest
	for rows.Next() {
		var payout domain.PayoutRequest
		err := rows.Scan(&payout.ID, &payout.UserID, &payout.Amount, &payout.FeeAmount, &payout.NetAmount,
			&payout.Status, &payout.TransferID, &payout.OperationID, &payout.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan payout row", zap.Error(err))
			return nil, err
		}
		payouts = append(payouts, payout)
	}

	return payouts, nil
}

func (r *Repository) GetConnectedAccount(ctx context.Context, userID int) (*domain.ConnectedAccount, error) {
	query := `
        SELECT id, user_id, account_id, payouts_enabled, created_at
        FROM connected_accounts
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var account domain.ConnectedAccount
	err := row.Scan(&account.ID, &account.UserID, &account.AccountID, &account.PayoutsEnabled, &account.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find connected account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *Repository) SaveConnectedAccount(ctx context.Context, account *domain.ConnectedAccount) error {
	query := `
		INSERT INTO connected_accounts (user_id, account_id, payouts_enabled)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET account_id = EXCLUDED.account_id, payouts_enabled = EXCLUDED.payouts_enabled, updated_at = NOW()
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, account.UserID, account.AccountID, account.PayoutsEnabled).Scan(&account.ID)
	if err != nil {
		zap.L().Error("can't save connected account", zap.Error(err))
		return err
	}
	return nil
}
