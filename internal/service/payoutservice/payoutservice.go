package payoutservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/bountylab/bountyhub/internal/domain"
	"github.com/bountylab/bountyhub/internal/gateway"
	"github.com/bountylab/bountyhub/internal/service/walletservice"
)

var (
	ErrPayeeNotConfigured = errors.New("payee account not configured")
	ErrPayeeNotReady      = errors.New("payee account not enabled for payouts")
	ErrValidation         = errors.New("validation failed")

	// ErrInternalInconsistency means the reservation could not be released
	// after the gateway confirmed the transfer. Requires reconciliation.
	ErrInternalInconsistency = errors.New("ledger release failed after transfer")
)

type PayoutRepo interface {
	CreatePayout(ctx context.Context, payout *domain.PayoutRequest) error
	UpdatePayout(ctx context.Context, id uuid.UUID, status domain.PayoutStatus, transferID string) error
	FindPayoutByID(ctx context.Context, id uuid.UUID) (*domain.PayoutRequest, error)
	GetConnectedAccount(ctx context.Context, userID int) (*domain.ConnectedAccount, error)
	SaveConnectedAccount(ctx context.Context, account *domain.ConnectedAccount) error
}

type WalletEngine interface {
	GetBalance(ctx context.Context, userID int, currency string) (*domain.WalletBalance, error)
	Reserve(ctx context.Context, op walletservice.Operation) (*domain.Transaction, error)
	ReleaseReservation(ctx context.Context, op walletservice.Operation, outcome walletservice.ReleaseOutcome) (*domain.Transaction, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Gateway interface {
	CreateConnectedAccount(ctx context.Context, email string) (string, error)
	CreateOnboardingLink(ctx context.Context, accountID string) (string, error)
	RetrieveAccount(ctx context.Context, accountID string) (*gateway.Account, error)
	Transfer(ctx context.Context, destinationAccountID string, amount decimal.Decimal, idempotencyKey, description string) (string, error)
	RetrieveTransfer(ctx context.Context, transferID string) (*gateway.Transfer, error)
	LookupTransferByKey(ctx context.Context, idempotencyKey string) (*gateway.Transfer, error)
}

type Service struct {
	payoutRepo PayoutRepo
	userRepo   UserRepo
	wallet     WalletEngine
	gw         Gateway
	currency   string
	feeRate    decimal.Decimal
}

func New(payoutRepo PayoutRepo, userRepo UserRepo, wallet WalletEngine, gw Gateway, currency string, feeRate decimal.Decimal) *Service {
	return &Service{
		payoutRepo: payoutRepo,
		userRepo:   userRepo,
		wallet:     wallet,
		gw:         gw,
		currency:   currency,
		feeRate:    feeRate,
	}
}

// RequestPayout reserves the amount, initiates the external transfer and
// resolves the reservation by the gateway's answer. A timed-out transfer is
// an unknown outcome: the payout stays processing and the reservation stays
// pending until the reconciler settles it against the gateway.
func (s *Service) RequestPayout(ctx context.Context, userID int, amount decimal.Decimal) (*domain.PayoutRequest, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: payout amount must be positive", ErrValidation)
	}

	balance, err := s.wallet.GetBalance(ctx, userID, s.currency)
	if err != nil {
		if errors.Is(err, walletservice.ErrWalletNotFound) {
			return nil, walletservice.ErrInsufficientFunds
		}
		return nil, err
	}
	if balance.AvailableBalance.LessThan(amount) {
		return nil, walletservice.ErrInsufficientFunds
	}

	account, err := s.payoutRepo.GetConnectedAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrPayeeNotConfigured
	}

	// Readiness can change on the gateway side at any time, so it is checked
	// live rather than trusted from the stored flag.
	remote, err := s.gw.RetrieveAccount(ctx, account.AccountID)
	if err != nil {
		zap.L().Error("payee readiness check failed", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	if !remote.PayoutsEnabled {
		return nil, ErrPayeeNotReady
	}

	feeAmount := amount.Mul(s.feeRate).Round(2)
	payout := &domain.PayoutRequest{
		ID:        uuid.New(),
		UserID:    userID,
		Amount:    amount,
		FeeAmount: feeAmount,
		NetAmount: amount.Sub(feeAmount),
		Status:    domain.PayoutProcessing,
	}
	payout.OperationID = "payout:" + payout.ID.String()

	if err := s.payoutRepo.CreatePayout(ctx, payout); err != nil {
		return nil, err
	}

	reserveOp := walletservice.Operation{
		UserID:        userID,
		Currency:      s.currency,
		Amount:        amount,
		FeeAmount:     feeAmount,
		Type:          domain.TransactionWithdrawal,
		OperationID:   payout.OperationID,
		PaymentMethod: "connected_account",
		Metadata:      map[string]string{"payout_id": payout.ID.String()},
	}
	if _, err := s.wallet.Reserve(ctx, reserveOp); err != nil {
		if updErr := s.payoutRepo.UpdatePayout(ctx, payout.ID, domain.PayoutFailed, ""); updErr != nil {
			zap.L().Error("can't mark payout failed", zap.Error(updErr))
		}
		return nil, err
	}

	transferID, err := s.gw.Transfer(ctx, account.AccountID, payout.NetAmount, payout.OperationID, "payout "+payout.ID.String())
	if err != nil {
		if errors.Is(err, gateway.ErrTimeout) {
			// Unknown outcome: do not release the reservation, the transfer
			// may have landed. The reconciler resolves it later.
			zap.L().Warn("transfer timed out, payout left processing",
				zap.String("payout_id", payout.ID.String()))
			return payout, nil
		}
		return nil, s.failPayout(ctx, payout, reserveOp)
	}

	if err := s.payoutRepo.UpdatePayout(ctx, payout.ID, domain.PayoutCompleted, transferID); err != nil {
		zap.L().Error("can't mark payout completed", zap.Error(err))
	}
	if _, err := s.wallet.ReleaseReservation(ctx, reserveOp, walletservice.ReleaseSuccess); err != nil {
		zap.L().Error("RELEASE FAILED after confirmed transfer: wallet requires manual reconciliation",
			zap.Int("user_id", userID),
			zap.String("payout_id", payout.ID.String()),
			zap.Error(err))
		return nil, ErrInternalInconsistency
	}

	payout.Status = domain.PayoutCompleted
	payout.TransferID = transferID
	return payout, nil
}

func (s *Service) failPayout(ctx context.Context, payout *domain.PayoutRequest, reserveOp walletservice.Operation) error {
	if err := s.payoutRepo.UpdatePayout(ctx, payout.ID, domain.PayoutFailed, ""); err != nil {
		zap.L().Error("can't mark payout failed", zap.Error(err))
	}
	if _, err := s.wallet.ReleaseReservation(ctx, reserveOp, walletservice.ReleaseFailure); err != nil {
		zap.L().Error("RELEASE FAILED after transfer failure: wallet requires manual reconciliation",
			zap.Int("user_id", payout.UserID),
			zap.String("payout_id", payout.ID.String()),
			zap.Error(err))
		return ErrInternalInconsistency
	}
	return gateway.ErrUnavailable
}

// ResolvePayout settles a payout stuck in processing against the gateway's
// authoritative record. Called by the reconciliation sweep.
func (s *Service) ResolvePayout(ctx context.Context, payout domain.PayoutRequest) error {
	var transfer *gateway.Transfer
	var err error

	if payout.TransferID != "" {
		transfer, err = s.gw.RetrieveTransfer(ctx, payout.TransferID)
	} else {
		transfer, err = s.gw.LookupTransferByKey(ctx, payout.OperationID)
	}
	if err != nil {
		return err
	}

	reserveOp := walletservice.Operation{
		UserID:      payout.UserID,
		Currency:    s.currency,
		Amount:      payout.Amount,
		FeeAmount:   payout.FeeAmount,
		Type:        domain.TransactionWithdrawal,
		OperationID: payout.OperationID,
	}

	switch {
	case transfer == nil || transfer.Status == gateway.TransferStatusFailed:
		// Never reached the gateway, or failed there: funds return to available.
		if err := s.payoutRepo.UpdatePayout(ctx, payout.ID, domain.PayoutFailed, ""); err != nil {
			return err
		}
		_, err = s.wallet.ReleaseReservation(ctx, reserveOp, walletservice.ReleaseFailure)
		return err
	case transfer.Status == gateway.TransferStatusPaid:
		if err := s.payoutRepo.UpdatePayout(ctx, payout.ID, domain.PayoutCompleted, transfer.ID); err != nil {
			return err
		}
		_, err = s.wallet.ReleaseReservation(ctx, reserveOp, walletservice.ReleaseSuccess)
		return err
	default:
		// Still pending at the gateway; leave for the next sweep.
		return nil
	}
}

// CreateConnectAccount provisions the external payee account and returns the
// onboarding link. Idempotent: an existing account only gets a fresh link.
func (s *Service) CreateConnectAccount(ctx context.Context, userID int) (string, error) {
	account, err := s.payoutRepo.GetConnectedAccount(ctx, userID)
	if err != nil {
		return "", err
	}

	if account == nil {
		user, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			return "", err
		}
		if user == nil {
			return "", fmt.Errorf("%w: unknown user", ErrValidation)
		}
		accountID, err := s.gw.CreateConnectedAccount(ctx, user.Login)
		if err != nil {
			return "", err
		}
		account = &domain.ConnectedAccount{
			UserID:    userID,
			AccountID: accountID,
		}
		if err := s.payoutRepo.SaveConnectedAccount(ctx, account); err != nil {
			return "", err
		}
	}

	link, err := s.gw.CreateOnboardingLink(ctx, account.AccountID)
	if err != nil {
		return "", err
	}
	return link, nil
}
