package depositservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/bountylab/bountyhub/internal/domain"
	"github.com/bountylab/bountyhub/internal/gateway"
	"github.com/bountylab/bountyhub/internal/service/walletservice"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrNotCompleted = errors.New("payment not completed")
)

type WalletEngine interface {
	Credit(ctx context.Context, op walletservice.Operation) (*domain.Transaction, error)
}

type TransactionReader interface {
	FindByExternalRef(ctx context.Context, externalRef string) (*domain.Transaction, error)
}

type Gateway interface {
	CreateCheckoutSession(ctx context.Context, amount decimal.Decimal, currency string, metadata map[string]string) (*gateway.CheckoutSession, error)
	RetrieveSession(ctx context.Context, sessionID string) (*gateway.Session, error)
}

type Service struct {
	wallet       WalletEngine
	transactions TransactionReader
	gw           Gateway
	currency     string
}

func New(wallet WalletEngine, transactions TransactionReader, gw Gateway, currency string) *Service {
	return &Service{
		wallet:       wallet,
		transactions: transactions,
		gw:           gw,
		currency:     currency,
	}
}

// InitiateDeposit opens a gateway checkout session for the amount.
func (s *Service) InitiateDeposit(ctx context.Context, userID int, amount decimal.Decimal) (*gateway.CheckoutSession, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: deposit amount must be positive", ErrValidation)
	}

	session, err := s.gw.CreateCheckoutSession(ctx, amount, s.currency, map[string]string{
		"user_id": strconv.Itoa(userID),
	})
	if err != nil {
		zap.L().Error("can't create checkout session", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return session, nil
}

// VerifyDeposit confirms the session with the gateway and credits the wallet
// exactly once per session. The unique constraint on the transaction log's
// external_ref carries the exactly-once guarantee, so webhook and client
// verification may both fire for the same session.
func (s *Service) VerifyDeposit(ctx context.Context, userID int, sessionID string) (decimal.Decimal, bool, error) {
	if sessionID == "" {
		return decimal.Zero, false, fmt.Errorf("%w: session id is required", ErrValidation)
	}

	session, err := s.gw.RetrieveSession(ctx, sessionID)
	if err != nil {
		zap.L().Error("can't retrieve checkout session", zap.String("session_id", sessionID), zap.Error(err))
		return decimal.Zero, false, err
	}
	if session.PaymentStatus != gateway.PaymentStatusPaid {
		// Not terminal yet; safe to call again, nothing recorded.
		return decimal.Zero, false, ErrNotCompleted
	}
	// Sessions are stamped with the initiating user; a session id alone must
	// not let another caller claim the deposit.
	if session.Metadata["user_id"] != strconv.Itoa(userID) {
		zap.L().Warn("deposit session owner mismatch",
			zap.Int("user_id", userID),
			zap.String("session_id", sessionID))
		return decimal.Zero, false, fmt.Errorf("%w: session does not belong to the caller", ErrValidation)
	}

	amount := decimal.NewFromInt(session.AmountTotal).Div(decimal.NewFromInt(100))

	creditOp := walletservice.Operation{
		UserID:        userID,
		Currency:      s.currency,
		Amount:        amount,
		Type:          domain.TransactionDeposit,
		OperationID:   "deposit:" + sessionID,
		ExternalRef:   sessionID,
		PaymentMethod: "checkout_session",
	}
	_, err = s.wallet.Credit(ctx, creditOp)
	if err != nil {
		if errors.Is(err, walletservice.ErrDuplicateOperation) {
			// Session already credited by an earlier call; report the
			// recorded amount without touching the ledger.
			existing, findErr := s.transactions.FindByExternalRef(ctx, sessionID)
			if findErr != nil {
				return decimal.Zero, false, findErr
			}
			if existing != nil {
				return existing.Amount, true, nil
			}
			return amount, true, nil
		}
		zap.L().Error("can't credit deposit", zap.Int("user_id", userID), zap.Error(err))
		return decimal.Zero, false, err
	}

	zap.L().Info("deposit credited",
		zap.Int("user_id", userID),
		zap.String("session_id", sessionID),
		zap.String("amount", amount.String()))
	return amount, false, nil
}
