package walletservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/bountylab/bountyhub/internal/domain"
	"github.com/bountylab/bountyhub/internal/pg"
	transactionrepo "github.com/bountylab/bountyhub/internal/repo/transaction-repo"
)

// maxRetries bounds the optimistic-concurrency retry loop. A debit that loses
// the version race this many times in a row surfaces ErrConflict instead of
// spinning.
const maxRetries = 3

var (
	ErrWalletNotFound     = errors.New("wallet not found")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrConflict           = errors.New("balance update conflict")
	ErrDuplicateOperation = errors.New("operation already applied")
)

type WalletRepo interface {
	GetBalance(ctx context.Context, userID int, currency string) (*domain.WalletBalance, error)
	CreateBalance(ctx context.Context, userID int, currency string) (*domain.WalletBalance, error)
	UpdateBalance(ctx context.Context, balance *domain.WalletBalance) (bool, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, txn *domain.Transaction) error
	Resolve(ctx context.Context, id uuid.UUID, status domain.TransactionStatus) (bool, error)
	FindByExternalRef(ctx context.Context, externalRef string) (*domain.Transaction, error)
	FindByOperationID(ctx context.Context, userID int, operationID string) (*domain.Transaction, error)
	FindByUserID(ctx context.Context, userID int, limit uint32) ([]domain.Transaction, error)
}

type EventPublisher interface {
	PublishTransaction(ctx context.Context, txn *domain.Transaction)
}

// Operation describes a single balance-affecting request. OperationID makes
// retries idempotent: the transaction log's unique constraint rejects a second
// application once the first committed.
type Operation struct {
	UserID        int
	Currency      string
	Amount        decimal.Decimal
	FeeAmount     decimal.Decimal
	Type          domain.TransactionType
	OperationID   string
	ExternalRef   string
	PaymentMethod string
	Metadata      map[string]string
}

type ReleaseOutcome string

const (
	ReleaseSuccess ReleaseOutcome = "success"
	ReleaseFailure ReleaseOutcome = "failure"
)

// Service is the only component allowed to mutate wallet_balances rows.
type Service struct {
	walletRepo      WalletRepo
	transactionRepo TransactionRepo
	txManager       pg.TXManager
	events          EventPublisher
}

func New(walletRepo WalletRepo, transactionRepo TransactionRepo, txManager pg.TXManager, events EventPublisher) *Service {
	return &Service{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
		events:          events,
	}
}

func (s *Service) GetBalance(ctx context.Context, userID int, currency string) (*domain.WalletBalance, error) {
	balance, err := s.walletRepo.GetBalance(ctx, userID, currency)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	if balance == nil {
		return nil, ErrWalletNotFound
	}
	return balance, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID int, limit uint32) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.FindByUserID(ctx, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return txns, nil
}

func newTransaction(op Operation, status domain.TransactionStatus) *domain.Transaction {
	return &domain.Transaction{
		ID:            uuid.New(),
		UserID:        op.UserID,
		Type:          op.Type,
		Amount:        op.Amount,
		FeeAmount:     op.FeeAmount,
		NetAmount:     op.Amount.Sub(op.FeeAmount),
		Status:        status,
		PaymentMethod: op.PaymentMethod,
		OperationID:   op.OperationID,
		ExternalRef:   op.ExternalRef,
		Metadata:      op.Metadata,
	}
}

// Debit decreases available_balance by op.Amount. The transaction row is
// appended first so the operation id is claimed before any balance write.
func (s *Service) Debit(ctx context.Context, op Operation) (*domain.Transaction, error) {
	txn := newTransaction(op, domain.TransactionCompleted)

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.appendTransaction(ctx, txn); err != nil {
			return err
		}
		return s.mutateBalance(ctx, op.UserID, op.Currency, false, func(balance *domain.WalletBalance) error {
			if balance.AvailableBalance.LessThan(op.Amount) {
				return ErrInsufficientFunds
			}
			balance.AvailableBalance = balance.AvailableBalance.Sub(op.Amount)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.events.PublishTransaction(ctx, txn)
	return txn, nil
}

// Credit increases available_balance. The wallet row is created lazily, so a
// first deposit both creates the wallet and funds it.
func (s *Service) Credit(ctx context.Context, op Operation) (*domain.Transaction, error) {
	txn := newTransaction(op, domain.TransactionCompleted)

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.appendTransaction(ctx, txn); err != nil {
			return err
		}
		return s.mutateBalance(ctx, op.UserID, op.Currency, true, func(balance *domain.WalletBalance) error {
			balance.AvailableBalance = balance.AvailableBalance.Add(op.Amount)
			if op.Type == domain.TransactionDeposit || op.Type == domain.TransactionCryptoDeposit {
				balance.TotalDeposited = balance.TotalDeposited.Add(op.Amount)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.events.PublishTransaction(ctx, txn)
	return txn, nil
}

// Reserve moves op.Amount from available to pending and records the
// withdrawal transaction as processing. available + pending is unchanged, so
// the ledger still reconciles while the external transfer is in flight.
func (s *Service) Reserve(ctx context.Context, op Operation) (*domain.Transaction, error) {
	txn := newTransaction(op, domain.TransactionProcessing)

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.appendTransaction(ctx, txn); err != nil {
			return err
		}
		return s.mutateBalance(ctx, op.UserID, op.Currency, false, func(balance *domain.WalletBalance) error {
			if balance.AvailableBalance.LessThan(op.Amount) {
				return ErrInsufficientFunds
			}
			balance.AvailableBalance = balance.AvailableBalance.Sub(op.Amount)
			balance.PendingBalance = balance.PendingBalance.Add(op.Amount)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return txn, nil
}

// ErrReservationNotFound means ReleaseReservation was asked to resolve an
// operation id with no reservation transaction behind it.
var ErrReservationNotFound = errors.New("reservation not found")

// errAlreadyResolved aborts the release transaction when a concurrent caller
// resolved the reservation after our status read.
var errAlreadyResolved = errors.New("reservation already resolved")

// ReleaseReservation resolves the reservation claimed under op.OperationID.
// On success the reserved amount leaves pending permanently (already
// transferred externally) and total_withdrawn grows; on failure it returns to
// available. Resolving an already-terminal reservation is a no-op, so the
// reconciler may retry safely.
func (s *Service) ReleaseReservation(ctx context.Context, op Operation, outcome ReleaseOutcome) (*domain.Transaction, error) {
	status := domain.TransactionCompleted
	if outcome == ReleaseFailure {
		status = domain.TransactionFailed
	}

	reserved, err := s.transactionRepo.FindByOperationID(ctx, op.UserID, op.OperationID)
	if err != nil {
		return nil, err
	}
	if reserved == nil {
		return nil, ErrReservationNotFound
	}
	if reserved.Status != domain.TransactionProcessing {
		return reserved, nil
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		resolved, err := s.transactionRepo.Resolve(ctx, reserved.ID, status)
		if err != nil {
			return err
		}
		if !resolved {
			return errAlreadyResolved
		}
		return s.mutateBalance(ctx, op.UserID, op.Currency, false, func(balance *domain.WalletBalance) error {
			balance.PendingBalance = balance.PendingBalance.Sub(op.Amount)
			if balance.PendingBalance.IsNegative() {
				return ErrConflict
			}
			if outcome == ReleaseSuccess {
				balance.TotalWithdrawn = balance.TotalWithdrawn.Add(op.Amount)
			} else {
				balance.AvailableBalance = balance.AvailableBalance.Add(op.Amount)
			}
			return nil
		})
	})
	if errors.Is(err, errAlreadyResolved) {
		return reserved, nil
	}
	if err != nil {
		return nil, err
	}

	reserved.Status = status
	s.events.PublishTransaction(ctx, reserved)
	return reserved, nil
}

func (s *Service) appendTransaction(ctx context.Context, txn *domain.Transaction) error {
	err := s.transactionRepo.Create(ctx, txn)
	if err != nil {
		if errors.Is(err, transactionrepo.ErrDuplicate) {
			zap.L().Info("duplicate ledger operation rejected",
				zap.Int("user_id", txn.UserID), zap.String("operation_id", txn.OperationID))
			return ErrDuplicateOperation
		}
		return err
	}
	return nil
}

// mutateBalance runs the read-modify-write loop: load the row, apply mutate,
// write back conditioned on the version read. A lost race re-reads and
// retries up to maxRetries before surfacing ErrConflict.
func (s *Service) mutateBalance(ctx context.Context, userID int, currency string, createMissing bool, mutate func(*domain.WalletBalance) error) error {
	for attempt := 1; attempt <= maxRetries; attempt++ {
		balance, err := s.walletRepo.GetBalance(ctx, userID, currency)
		if err != nil {
			return err
		}
		if balance == nil {
			if !createMissing {
				return ErrWalletNotFound
			}
			balance, err = s.walletRepo.CreateBalance(ctx, userID, currency)
			if err != nil {
				return err
			}
			if balance == nil {
				// Lost the creation race; the next read sees the winner's row.
				continue
			}
		}

		if err := mutate(balance); err != nil {
			return err
		}

		updated, err := s.walletRepo.UpdateBalance(ctx, balance)
		if err != nil {
			return err
		}
		if updated {
			return nil
		}

		zap.L().Info("balance version conflict, retrying",
			zap.Int("user_id", userID), zap.Int("attempt", attempt))
	}

	return ErrConflict
}
