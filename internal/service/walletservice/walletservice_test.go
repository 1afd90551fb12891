package walletservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/bountylab/bountyhub/internal/domain"
	"github.com/bountylab/bountyhub/internal/pg"
	transactionrepo "github.com/bountylab/bountyhub/internal/repo/transaction-repo"
)

func NewMock(t *testing.T) (*Service, *MockWalletRepo, *MockTransactionRepo, *MockEventPublisher) {
	ctrl := gomock.NewController(t)
	walletRepo := NewMockWalletRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	events := NewMockEventPublisher(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	events.EXPECT().PublishTransaction(gomock.Any(), gomock.Any()).AnyTimes()

	service := New(walletRepo, transactionRepo, txManager, events)
	defer ctrl.Finish()
	return service, walletRepo, transactionRepo, events
}

func balanceWith(available, pending string) *domain.WalletBalance {
	return &domain.WalletBalance{
		ID:               1,
		UserID:           1,
		Currency:         "USD",
		AvailableBalance: decimal.RequireFromString(available),
		PendingBalance:   decimal.RequireFromString(pending),
		Version:          1,
	}
}

func TestGetBalance(t *testing.T) {
	service, walletRepo, _, _ := NewMock(t)
	tests := []struct {
		name            string
		prepareMock     func()
		expectedBalance *domain.WalletBalance
		expectedError   error
	}{
		{
			name: "Retrieve balance successfully",
			prepareMock: func() {
				walletRepo.EXPECT().GetBalance(gomock.Any(), 1, "USD").Return(balanceWith("100", "0"), nil)
			},
			expectedBalance: balanceWith("100", "0"),
		},
		{
			name: "Wallet does not exist",
			prepareMock: func() {
				walletRepo.EXPECT().GetBalance(gomock.Any(), 1, "USD").Return(nil, nil)
			},
			expectedError: ErrWalletNotFound,
		},
		{
			name: "Error retrieving balance",
			prepareMock: func() {
				walletRepo.EXPECT().GetBalance(gomock.Any(), 1, "USD").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			balance, err := service.GetBalance(context.Background(), 1, "USD")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, balance)
			}
		})
	}
}

func TestCredit(t *testing.T) {
	service, walletRepo, transactionRepo, _ := NewMock(t)

	op := Operation{
		UserID:      1,
		Currency:    "USD",
		Amount:      decimal.RequireFromString("100"),
		Type:        domain.TransactionDeposit,
		OperationID: "deposit:cs_123",
		ExternalRef: "cs_123",
	}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Credit existing wallet tracks deposits",
			prepareMock: func() {
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				walletRepo.EXPECT().GetBalance(gomock.Any(), 1, "USD").Return(balanceWith("50", "0"), nil)
				walletRepo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, balance *domain.WalletBalance) (bool, error) {
						assert.True(t, balance.AvailableBalance.Equal(decimal.RequireFromString("150")))
						assert.True(t, balance.TotalDeposited.Equal(decimal.RequireFromString("100")))
						return true, nil
					},
				)
			},
		},
		{
			name: "First deposit creates the wallet",
			prepareMock: func() {
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				walletRepo.EXPECT().GetBalance(gomock.Any(), 1, "USD").Return(nil, nil)
				walletRepo.EXPECT().CreateBalance(gomock.Any(), 1, "USD").Return(balanceWith("0", "0"), nil)
				walletRepo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, balance *domain.WalletBalance) (bool, error) {
						assert.True(t, balance.AvailableBalance.Equal(decimal.RequireFromString("100")))
						return true, nil
					},
				)
			},
		},
		{
			name: "Lost creation race re-reads the winner's row",
			prepareMock: func() {
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				walletRepo.EXPECT().GetBalance(gomock.Any(), 1, "USD").Return(nil, nil)
				walletRepo.EXPECT().CreateBalance(gomock.Any(), 1, "USD").Return(nil, nil)
				walletRepo.EXPECT().GetBalance(gomock.Any(), 1, "USD").Return(balanceWith("0", "0"), nil)
				walletRepo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any()).Return(true, nil)
			},
		},
		{
			name: "Duplicate operation id is rejected",
			prepareMock: func() {
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(transactionrepo.ErrDuplicate)
			},
			expectedError: ErrDuplicateOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			txn, err := service.Credit(context.Background(), op)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, txn)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.TransactionCompleted, txn.Status)
				assert.True(t, txn.NetAmount.Equal(op.Amount))
			}
		})
	}
}

func TestDebit(t *testing.T) {
	service, walletRepo, transactionRepo, _ := NewMock(t)

	op := Operation{
		UserID:      1,
		Currency:    "USD",
		Amount:      decimal.RequireFromString("60"),
		Type:        domain.TransactionBountyPayment,
		OperationID: "bounty:abc",
	}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful debit",
			prepareMock: func() {
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				walletRepo.EXPECT().GetBalance(gomock.Any(), 1, "USD").Return(balanceWith("100", "0"), nil)
				walletRepo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, balance *domain.WalletBalance) (bool, error) {
						assert.True(t, balance.AvailableBalance.Equal(decimal.RequireFromString("40")))
						return true, nil
					},
				)
			},
		},
		{
			name: "Insufficient funds leaves the balance untouched",
			prepareMock: func() {
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				walletRepo.EXPECT().GetBalance(gomock.Any(), 1, "USD").Return(balanceWith("10", "0"), nil)
			},
			expectedError: ErrInsufficientFunds,
		},
		{
			name: "Missing wallet",
			prepareMock: func() {
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				walletRepo.EXPECT().GetBalance(gomock.Any(), 1, "USD").Return(nil, nil)
			},
			expectedError: ErrWalletNotFound,
		},
		{
			name: "Lost race re-reads a drained balance",
			prepareMock: func() {
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				walletRepo.EXPECT().GetBalance(gomock.Any(), 1, "USD").Return(balanceWith("100", "0"), nil)
				walletRepo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any()).Return(false, nil)
				walletRepo.EXPECT().GetBalance(gomock.Any(), 1, "USD").Return(balanceWith("40", "0"), nil)
			},
			expectedError: ErrInsufficientFunds,
		},
		{
			name: "Version race exhausts retries",
			prepareMock: func() {
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				walletRepo.EXPECT().GetBalance(gomock.Any(), 1, "USD").DoAndReturn(
					func(ctx context.Context, userID int, currency string) (*domain.WalletBalance, error) {
						return balanceWith("100", "0"), nil
					},
				).Times(3)
				walletRepo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any()).Return(false, nil).Times(3)
			},
			expectedError: ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			txn, err := service.Debit(context.Background(), op)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, txn)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.TransactionCompleted, txn.Status)
			}
		})
	}
}

func TestReserve(t *testing.T) {
	service, walletRepo, transactionRepo, _ := NewMock(t)

	op := Operation{
		UserID:      1,
		Currency:    "USD",
		Amount:      decimal.RequireFromString("100"),
		FeeAmount:   decimal.RequireFromString("20"),
		Type:        domain.TransactionWithdrawal,
		OperationID: "payout:xyz",
	}

	t.Run("Reserve moves funds from available to pending", func(t *testing.T) {
		transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		walletRepo.EXPECT().GetBalance(gomock.Any(), 1, "USD").Return(balanceWith("150", "0"), nil)
		walletRepo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, balance *domain.WalletBalance) (bool, error) {
				assert.True(t, balance.AvailableBalance.Equal(decimal.RequireFromString("50")))
				assert.True(t, balance.PendingBalance.Equal(decimal.RequireFromString("100")))
				return true, nil
			},
		)

		txn, err := service.Reserve(context.Background(), op)
		assert.NoError(t, err)
		assert.Equal(t, domain.TransactionProcessing, txn.Status)
		assert.True(t, txn.NetAmount.Equal(decimal.RequireFromString("80")))
	})

	t.Run("Reserve rejects when available is short", func(t *testing.T) {
		transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		walletRepo.EXPECT().GetBalance(gomock.Any(), 1, "USD").Return(balanceWith("50", "0"), nil)

		txn, err := service.Reserve(context.Background(), op)
		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.Nil(t, txn)
	})
}

func TestReleaseReservation(t *testing.T) {
	service, walletRepo, transactionRepo, _ := NewMock(t)

	op := Operation{
		UserID:      1,
		Currency:    "USD",
		Amount:      decimal.RequireFromString("100"),
		Type:        domain.TransactionWithdrawal,
		OperationID: "payout:xyz",
	}
	reservedID := newTransaction(op, domain.TransactionProcessing).ID

	reserved := func(status domain.TransactionStatus) *domain.Transaction {
		return &domain.Transaction{
			ID:          reservedID,
			UserID:      1,
			Type:        domain.TransactionWithdrawal,
			Amount:      op.Amount,
			NetAmount:   op.Amount,
			Status:      status,
			OperationID: op.OperationID,
		}
	}

	t.Run("Successful release settles the withdrawal", func(t *testing.T) {
		transactionRepo.EXPECT().FindByOperationID(gomock.Any(), 1, "payout:xyz").Return(reserved(domain.TransactionProcessing), nil)
		transactionRepo.EXPECT().Resolve(gomock.Any(), reservedID, domain.TransactionCompleted).Return(true, nil)
		walletRepo.EXPECT().GetBalance(gomock.Any(), 1, "USD").Return(balanceWith("50", "100"), nil)
		walletRepo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, balance *domain.WalletBalance) (bool, error) {
				assert.True(t, balance.AvailableBalance.Equal(decimal.RequireFromString("50")))
				assert.True(t, balance.PendingBalance.IsZero())
				assert.True(t, balance.TotalWithdrawn.Equal(decimal.RequireFromString("100")))
				return true, nil
			},
		)

		txn, err := service.ReleaseReservation(context.Background(), op, ReleaseSuccess)
		assert.NoError(t, err)
		assert.Equal(t, domain.TransactionCompleted, txn.Status)
	})

	t.Run("Failed release returns funds to available", func(t *testing.T) {
		transactionRepo.EXPECT().FindByOperationID(gomock.Any(), 1, "payout:xyz").Return(reserved(domain.TransactionProcessing), nil)
		transactionRepo.EXPECT().Resolve(gomock.Any(), reservedID, domain.TransactionFailed).Return(true, nil)
		walletRepo.EXPECT().GetBalance(gomock.Any(), 1, "USD").Return(balanceWith("50", "100"), nil)
		walletRepo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, balance *domain.WalletBalance) (bool, error) {
				assert.True(t, balance.AvailableBalance.Equal(decimal.RequireFromString("150")))
				assert.True(t, balance.PendingBalance.IsZero())
				assert.True(t, balance.TotalWithdrawn.IsZero())
				return true, nil
			},
		)

		txn, err := service.ReleaseReservation(context.Background(), op, ReleaseFailure)
		assert.NoError(t, err)
		assert.Equal(t, domain.TransactionFailed, txn.Status)
	})

	t.Run("Already resolved reservation is a no-op", func(t *testing.T) {
		transactionRepo.EXPECT().FindByOperationID(gomock.Any(), 1, "payout:xyz").Return(reserved(domain.TransactionCompleted), nil)

		txn, err := service.ReleaseReservation(context.Background(), op, ReleaseSuccess)
		assert.NoError(t, err)
		assert.Equal(t, domain.TransactionCompleted, txn.Status)
	})

	t.Run("Concurrent release loses the status race", func(t *testing.T) {
		transactionRepo.EXPECT().FindByOperationID(gomock.Any(), 1, "payout:xyz").Return(reserved(domain.TransactionProcessing), nil)
		transactionRepo.EXPECT().Resolve(gomock.Any(), reservedID, domain.TransactionFailed).Return(false, nil)

		txn, err := service.ReleaseReservation(context.Background(), op, ReleaseFailure)
		assert.NoError(t, err)
		assert.NotNil(t, txn)
	})

	t.Run("Unknown reservation", func(t *testing.T) {
		transactionRepo.EXPECT().FindByOperationID(gomock.Any(), 1, "payout:xyz").Return(nil, nil)

		txn, err := service.ReleaseReservation(context.Background(), op, ReleaseSuccess)
		assert.ErrorIs(t, err, ErrReservationNotFound)
		assert.Nil(t, txn)
	})
}

func TestGetTransactions(t *testing.T) {
	service, _, transactionRepo, _ := NewMock(t)

	t.Run("Returns transaction history", func(t *testing.T) {
		transactionRepo.EXPECT().FindByUserID(gomock.Any(), 1, uint32(100)).Return([]domain.Transaction{
			{UserID: 1, Type: domain.TransactionDeposit, Status: domain.TransactionCompleted},
		}, nil)

		txns, err := service.GetTransactions(context.Background(), 1, 100)
		assert.NoError(t, err)
		assert.Len(t, txns, 1)
	})

	t.Run("Propagates repo errors", func(t *testing.T) {
		transactionRepo.EXPECT().FindByUserID(gomock.Any(), 1, uint32(100)).Return(nil, errors.New("db error"))

		txns, err := service.GetTransactions(context.Background(), 1, 100)
		assert.Error(t, err)
		assert.Nil(t, txns)
	})
}
