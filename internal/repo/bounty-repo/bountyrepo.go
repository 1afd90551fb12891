package bountyrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

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

func (r *Repository) Create(ctx context.Context, bounty *domain.Bounty) error {
	query := `
		INSERT INTO bounties (id, user_id, title, description, category, bounty, deadline, allow_contributions, minimum_contribution, is_anonymous, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		bounty.ID, bounty.UserID, bounty.Title, bounty.Description, bounty.Category,
		bounty.Bounty, bounty.Deadline, bounty.AllowContributions,
		bounty.MinimumContribution, bounty.IsAnonymous, bounty.Status,
	).Scan(&bounty.CreatedAt)
	if err != nil {
		zap.L().Error("can't save bounty", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Bounty, error) {
	query := `
        SELECT id, user_id, title, description, category, bounty, deadline, allow_contributions, minimum_contribution, is_anonymous, status, created_at
        FROM bounties
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var bounty domain.Bounty
	err := row.Scan(&bounty.ID, &bounty.UserID, &bounty.Title, &bounty.Description, &bounty.Category,
		&bounty.Bounty, &bounty.Deadline, &bounty.AllowContributions,
		&bounty.MinimumContribution, &bounty.IsAnonymous, &bounty.Status, &bounty.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find bounty", zap.Error(err))
		return nil, err
	}
	return &bounty, nil
}

func (r *Repository) FindByStatus(ctx context.Context, status domain.BountyStatus, limit uint32) ([]domain.Bounty, error) {
	query := `
        SELECT id, user_id, title, description, category, bounty, deadline, allow_contributions, minimum_contribution, is_anonymous, status, created_at
        FROM bounties
        WHERE status = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, status, limit)
	if err != nil {
		zap.L().Error("failed to fetch bounties", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bounties []domain.Bounty
	for rows.Next() {
		var bounty domain.Bounty
		err := rows.Scan(&bounty.ID, &bounty.UserID, &bounty.Title, &bounty.Description, &bounty.Category,
			&bounty.Bounty, &bounty.Deadline, &bounty.AllowContributions,
			&bounty.MinimumContribution, &bounty.IsAnonymous, &bounty.Status, &bounty.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan bounty row", zap.Error(err))
			return nil, err
		}
		bounties = append(bounties, bounty)
	}

	return bounties, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BountyStatus) error {
	query := `
		UPDATE bounties
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`
	if _, err := r.db.Exec(ctx, query, status, id); err != nil {
		zap.L().Error("can't update bounty status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CreateContribution(ctx context.Context, contribution *domain.BountyContribution) error {
	query := `
		INSERT INTO bounty_contributions (id, bounty_id, contributor_id, amount, message, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		contribution.ID, contribution.BountyID, contribution.ContributorID,
		contribution.Amount, contribution.Message, contribution.Status,
	).Scan(&contribution.CreatedAt)
	if err != nil {
		zap.L().Error("can't save contribution", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindContributionByID(ctx context.Context, id uuid.UUID) (*domain.BountyContribution, error) {
	query := `
        SELECT id, bounty_id, contributor_id, amount, COALESCE(message, ''), status, created_at
        FROM bounty_contributions
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var contribution domain.BountyContribution
	err := row.Scan(&contribution.ID, &contribution.BountyID, &contribution.ContributorID,
		&contribution.Amount, &contribution.Message, &contribution.Status, &contribution.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find contribution", zap.Error(err))
		return nil, err
	}
	return &contribution, nil
}

func (r *Repository) FindContributionsByBountyID(ctx context.Context, bountyID uuid.UUID) ([]domain.BountyContribution, error) {
	query := `
        SELECT id, bounty_id, contributor_id, amount, COALESCE(message, ''), status, created_at
        FROM bounty_contributions
        WHERE bounty_id = $1
        ORDER BY created_at
    `
	rows, err := r.db.Query(ctx, query, bountyID)
	if err != nil {
		zap.L().Error("failed to fetch contributions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var contributions []domain.BountyContribution
	for rows.Next() {
		var contribution domain.BountyContribution
		err := rows.Scan(&contribution.ID, &contribution.BountyID, &contribution.ContributorID,
			&contribution.Amount, &contribution.Message, &contribution.Status, &contribution.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan contribution row", zap.Error(err))
			return nil, err
		}
		contributions = append(contributions, contribution)
	}

	return contributions, nil
}

func (r *Repository) UpdateContributionStatus(ctx context.Context, id uuid.UUID, status domain.ContributionStatus) error {
	query := `
		UPDATE bounty_contributions
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`
	if _, err := r.db.Exec(ctx, query, status, id); err != nil {
		zap.L().Error("can't update contribution status", zap.Error(err))
		return err
	}
	return nil
}

// SumAcceptedContributions returns the amount added on top of the base bounty.
func (r *Repository) SumAcceptedContributions(ctx context.Context, bountyID uuid.UUID) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM bounty_contributions
        WHERE bounty_id = $1 AND status = 'accepted'
    `
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, bountyID).Scan(&sum); err != nil {
		zap.L().Error("failed to sum contributions", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}
