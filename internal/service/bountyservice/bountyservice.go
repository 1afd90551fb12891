package bountyservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/bountylab/bountyhub/internal/domain"
	"github.com/bountylab/bountyhub/internal/service/walletservice"
)

var (
	ErrBountyNotFound        = errors.New("bounty not found")
	ErrBountyClosed          = errors.New("bounty is not open")
	ErrContributionsDisabled = errors.New("bounty does not accept contributions")
	ErrBelowMinimum          = errors.New("contribution below minimum")
	ErrContributionNotFound  = errors.New("contribution not found")
	ErrNotOwner              = errors.New("only the bounty owner may do this")
	ErrValidation            = errors.New("validation failed")

	// ErrInternalInconsistency means a compensating credit failed after a
	// successful debit: the ledger may need manual reconciliation.
	ErrInternalInconsistency = errors.New("ledger compensation failed")
)

type BountyRepo interface {
	Create(ctx context.Context, bounty *domain.Bounty) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Bounty, error)
	FindByStatus(ctx context.Context, status domain.BountyStatus, limit uint32) ([]domain.Bounty, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BountyStatus) error
	CreateContribution(ctx context.Context, contribution *domain.BountyContribution) error
	FindContributionByID(ctx context.Context, id uuid.UUID) (*domain.BountyContribution, error)
	FindContributionsByBountyID(ctx context.Context, bountyID uuid.UUID) ([]domain.BountyContribution, error)
	UpdateContributionStatus(ctx context.Context, id uuid.UUID, status domain.ContributionStatus) error
	SumAcceptedContributions(ctx context.Context, bountyID uuid.UUID) (decimal.Decimal, error)
}

// WalletEngine is the slice of the wallet service the escrow workflows use.
type WalletEngine interface {
	Debit(ctx context.Context, op walletservice.Operation) (*domain.Transaction, error)
	Credit(ctx context.Context, op walletservice.Operation) (*domain.Transaction, error)
}

type Service struct {
	bountyRepo BountyRepo
	wallet     WalletEngine
	currency   string
}

func New(bountyRepo BountyRepo, wallet WalletEngine, currency string) *Service {
	return &Service{
		bountyRepo: bountyRepo,
		wallet:     wallet,
		currency:   currency,
	}
}

type BountyInput struct {
	Title               string
	Description         string
	Category            string
	Bounty              decimal.Decimal
	Deadline            time.Time
	AllowContributions  bool
	MinimumContribution decimal.Decimal
	IsAnonymous         bool
}

func (in *BountyInput) validate() error {
	switch {
	case in.Title == "":
		return fmt.Errorf("%w: title is required", ErrValidation)
	case in.Description == "":
		return fmt.Errorf("%w: description is required", ErrValidation)
	case in.Category == "":
		return fmt.Errorf("%w: category is required", ErrValidation)
	case !in.Bounty.IsPositive():
		return fmt.Errorf("%w: bounty amount must be positive", ErrValidation)
	case in.Deadline.IsZero():
		return fmt.Errorf("%w: deadline is required", ErrValidation)
	case in.MinimumContribution.IsNegative():
		return fmt.Errorf("%w: minimum contribution must not be negative", ErrValidation)
	}
	return nil
}

// CreateBounty debits the requester and creates the bounty record. The debit
// goes first so a crash can only leave funds debited without a bounty, never a
// bounty without funds; a failed insert runs the compensating credit.
func (s *Service) CreateBounty(ctx context.Context, userID int, in BountyInput) (*domain.Bounty, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	bountyID := uuid.New()
	opID := "bounty:" + bountyID.String()

	debitOp := walletservice.Operation{
		UserID:      userID,
		Currency:    s.currency,
		Amount:      in.Bounty,
		Type:        domain.TransactionBountyPayment,
		OperationID: opID,
		Metadata:    map[string]string{"bounty_id": bountyID.String()},
	}
	if _, err := s.wallet.Debit(ctx, debitOp); err != nil {
		return nil, err
	}

	bounty := &domain.Bounty{
		ID:                  bountyID,
		UserID:              userID,
		Title:               in.Title,
		Description:         in.Description,
		Category:            in.Category,
		Bounty:              in.Bounty,
		Deadline:            in.Deadline,
		AllowContributions:  in.AllowContributions,
		MinimumContribution: in.MinimumContribution,
		IsAnonymous:         in.IsAnonymous,
		Status:              domain.BountyOpen,
	}
	if err := s.bountyRepo.Create(ctx, bounty); err != nil {
		zap.L().Error("bounty insert failed after debit, compensating", zap.Error(err))
		if compErr := s.compensate(ctx, debitOp); compErr != nil {
			return nil, compErr
		}
		return nil, err
	}

	return bounty, nil
}

// ContributeToBounty debits the contributor and records the contribution as
// accepted: money moves at creation time, a later rejection refunds it.
func (s *Service) ContributeToBounty(ctx context.Context, contributorID int, bountyID uuid.UUID, amount decimal.Decimal, message string) (*domain.BountyContribution, decimal.Decimal, error) {
	if !amount.IsPositive() {
		return nil, decimal.Zero, fmt.Errorf("%w: contribution amount must be positive", ErrValidation)
	}

	bounty, err := s.bountyRepo.FindByID(ctx, bountyID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	switch {
	case bounty == nil:
		return nil, decimal.Zero, ErrBountyNotFound
	case bounty.Status != domain.BountyOpen:
		return nil, decimal.Zero, ErrBountyClosed
	case !bounty.AllowContributions:
		return nil, decimal.Zero, ErrContributionsDisabled
	case amount.LessThan(bounty.MinimumContribution):
		return nil, decimal.Zero, ErrBelowMinimum
	}

	contributionID := uuid.New()
	debitOp := walletservice.Operation{
		UserID:      contributorID,
		Currency:    s.currency,
		Amount:      amount,
		Type:        domain.TransactionBountyContribution,
		OperationID: "contribution:" + contributionID.String(),
		Metadata:    map[string]string{"bounty_id": bountyID.String()},
	}
	if _, err := s.wallet.Debit(ctx, debitOp); err != nil {
		return nil, decimal.Zero, err
	}

	contribution := &domain.BountyContribution{
		ID:            contributionID,
		BountyID:      bountyID,
		ContributorID: contributorID,
		Amount:        amount,
		Message:       message,
		Status:        domain.ContributionAccepted,
	}
	if err := s.bountyRepo.CreateContribution(ctx, contribution); err != nil {
		zap.L().Error("contribution insert failed after debit, compensating", zap.Error(err))
		if compErr := s.compensate(ctx, debitOp); compErr != nil {
			return nil, decimal.Zero, compErr
		}
		return nil, decimal.Zero, err
	}

	total, err := s.totalBounty(ctx, bounty)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return contribution, total, nil
}

// compensate credits back a completed debit under a derived operation id. A
// failure here is the worst case for the ledger and is logged accordingly.
func (s *Service) compensate(ctx context.Context, debitOp walletservice.Operation) error {
	creditOp := debitOp
	creditOp.Type = domain.TransactionBountyRefund
	creditOp.OperationID = debitOp.OperationID + ":comp"

	if _, err := s.wallet.Credit(ctx, creditOp); err != nil && !errors.Is(err, walletservice.ErrDuplicateOperation) {
		zap.L().Error("COMPENSATION FAILED: wallet requires manual reconciliation",
			zap.Int("user_id", debitOp.UserID),
			zap.String("operation_id", debitOp.OperationID),
			zap.String("amount", debitOp.Amount.String()),
			zap.Error(err))
		return ErrInternalInconsistency
	}
	return nil
}

// UpdateContributionStatus is the owner's moderation path. Accepting never
// re-debits (funds moved at creation); rejecting an accepted contribution
// refunds the contributor under an idempotent operation id.
func (s *Service) UpdateContributionStatus(ctx context.Context, ownerID int, bountyID, contributionID uuid.UUID, status domain.ContributionStatus) (*domain.BountyContribution, error) {
	if status != domain.ContributionAccepted && status != domain.ContributionRejected {
		return nil, fmt.Errorf("%w: status must be accepted or rejected", ErrValidation)
	}

	bounty, err := s.bountyRepo.FindByID(ctx, bountyID)
	if err != nil {
		return nil, err
	}
	if bounty == nil {
		return nil, ErrBountyNotFound
	}
	if bounty.UserID != ownerID {
		return nil, ErrNotOwner
	}

	contribution, err := s.bountyRepo.FindContributionByID(ctx, contributionID)
	if err != nil {
		return nil, err
	}
	if contribution == nil || contribution.BountyID != bountyID {
		return nil, ErrContributionNotFound
	}
	if contribution.Status == status {
		return contribution, nil
	}
	if contribution.Status == domain.ContributionRejected {
		return nil, fmt.Errorf("%w: contribution is already rejected", ErrValidation)
	}

	if status == domain.ContributionRejected && contribution.Status == domain.ContributionAccepted {
		refundOp := walletservice.Operation{
			UserID:      contribution.ContributorID,
			Currency:    s.currency,
			Amount:      contribution.Amount,
			Type:        domain.TransactionBountyRefund,
			OperationID: "contribution:" + contribution.ID.String() + ":refund",
			Metadata:    map[string]string{"bounty_id": bountyID.String()},
		}
		if _, err := s.wallet.Credit(ctx, refundOp); err != nil && !errors.Is(err, walletservice.ErrDuplicateOperation) {
			zap.L().Error("refund on rejection failed", zap.Error(err))
			return nil, err
		}
	}

	if err := s.bountyRepo.UpdateContributionStatus(ctx, contribution.ID, status); err != nil {
		return nil, err
	}
	contribution.Status = status
	return contribution, nil
}

func (s *Service) GetBounty(ctx context.Context, id uuid.UUID) (*domain.Bounty, decimal.Decimal, []domain.BountyContribution, error) {
	bounty, err := s.bountyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, decimal.Zero, nil, err
	}
	if bounty == nil {
		return nil, decimal.Zero, nil, ErrBountyNotFound
	}

	contributions, err := s.bountyRepo.FindContributionsByBountyID(ctx, id)
	if err != nil {
		return nil, decimal.Zero, nil, err
	}

	total, err := s.totalBounty(ctx, bounty)
	if err != nil {
		return nil, decimal.Zero, nil, err
	}
	return bounty, total, contributions, nil
}

func (s *Service) ListOpenBounties(ctx context.Context, limit uint32) ([]domain.Bounty, map[uuid.UUID]decimal.Decimal, error) {
	bounties, err := s.bountyRepo.FindByStatus(ctx, domain.BountyOpen, limit)
	if err != nil {
		return nil, nil, err
	}

	totals := make(map[uuid.UUID]decimal.Decimal, len(bounties))
	for _, bounty := range bounties {
		total, err := s.totalBounty(ctx, &bounty)
		if err != nil {
			return nil, nil, err
		}
		totals[bounty.ID] = total
	}
	return bounties, totals, nil
}

func (s *Service) CloseBounty(ctx context.Context, userID int, id uuid.UUID) error {
	bounty, err := s.bountyRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if bounty == nil {
		return ErrBountyNotFound
	}
	if bounty.UserID != userID {
		return ErrNotOwner
	}
	if bounty.Status != domain.BountyOpen {
		return ErrBountyClosed
	}
	return s.bountyRepo.UpdateStatus(ctx, id, domain.BountyClosed)
}

// totalBounty is the displayed reward: base + sum of accepted contributions.
func (s *Service) totalBounty(ctx context.Context, bounty *domain.Bounty) (decimal.Decimal, error) {
	sum, err := s.bountyRepo.SumAcceptedContributions(ctx, bounty.ID)
	if err != nil {
		return decimal.Zero, err
	}
	return bounty.Bounty.Add(sum), nil
}
