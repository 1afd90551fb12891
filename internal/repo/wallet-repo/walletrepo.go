package walletrepo

import (
	"context"

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

func (r *Repository) GetBalance(ctx context.Context, userID int, currency string) (*domain.WalletBalance, error) {
	query := `
        SELECT id, user_id, currency, available_balance, pending_balance, total_deposited, total_withdrawn, version
        FROM wallet_balances
        WHERE user_id = $1 AND currency = $2 AND archived_at IS NULL
    `
	row := r.db.QueryRow(ctx, query, userID, currency)
	var balance domain.WalletBalance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.Currency,
		&balance.AvailableBalance, &balance.PendingBalance,
		&balance.TotalDeposited, &balance.TotalWithdrawn, &balance.Version)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get wallet balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// CreateBalance inserts a zeroed wallet row. Returns nil without error when a
// concurrent caller created the row first; the caller re-reads in that case.
func (r *Repository) CreateBalance(ctx context.Context, userID int, currency string) (*domain.WalletBalance, error) {
	query := `
        INSERT INTO wallet_balances (user_id, currency)
        VALUES ($1, $2)
        ON CONFLICT (user_id, currency) DO NOTHING
        RETURNING id, user_id, currency, available_balance, pending_balance, total_deposited, total_withdrawn, version
    `
	row := r.db.QueryRow(ctx, query, userID, currency)
	var balance domain.WalletBalance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.Currency,
		&balance.AvailableBalance, &balance.PendingBalance,
		&balance.TotalDeposited, &balance.TotalWithdrawn, &balance.Version)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to create wallet balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// UpdateBalance writes the mutated balance conditioned on the version the
// caller read. Returns false when the row moved underneath us and the caller
// must re-read and retry.
func (r *Repository) UpdateBalance(ctx context.Context, balance *domain.WalletBalance) (bool, error) {
	query := `
		UPDATE wallet_balances
		SET available_balance = $1, pending_balance = $2, total_deposited = $3, total_withdrawn = $4,
		    version = version + 1, updated_at = NOW()
		WHERE id = $5 AND version = $6
	`
	tag, err := r.db.Exec(ctx, query,
		balance.AvailableBalance, balance.PendingBalance,
		balance.TotalDeposited, balance.TotalWithdrawn,
		balance.ID, balance.Version)
	if err != nil {
		zap.L().Error("failed to update wallet balance", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
