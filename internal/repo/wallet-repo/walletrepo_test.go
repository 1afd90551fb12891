package walletrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bountylab/bountyhub/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var balanceColumns = []string{"id", "user_id", "currency", "available_balance", "pending_balance", "total_deposited", "total_withdrawn", "version"}

func TestRepository_GetBalance(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.WalletBalance
	}{
		{
			name: "Balance found",
			mockSetup: func() {
				rows := pgxmock.NewRows(balanceColumns).
					AddRow(10, 1, "USD", decimal.RequireFromString("100.50"), decimal.RequireFromString("20"),
						decimal.RequireFromString("200"), decimal.RequireFromString("79.50"), int64(3))
				mock.ExpectQuery("SELECT id, user_id, currency, available_balance").
					WithArgs(1, "USD").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.WalletBalance{
				ID:               10,
				UserID:           1,
				Currency:         "USD",
				AvailableBalance: decimal.RequireFromString("100.50"),
				PendingBalance:   decimal.RequireFromString("20"),
				TotalDeposited:   decimal.RequireFromString("200"),
				TotalWithdrawn:   decimal.RequireFromString("79.50"),
				Version:          3,
			},
		},
		{
			name: "Balance not found",
			mockSetup: func() {
				mock.ExpectQuery("SELECT id, user_id, currency, available_balance").
					WithArgs(1, "USD").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("SELECT id, user_id, currency, available_balance").
					WithArgs(1, "USD").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetBalance(context.Background(), 1, "USD")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_CreateBalance(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Create balance successfully", func(t *testing.T) {
		rows := pgxmock.NewRows(balanceColumns).
			AddRow(10, 1, "USD", decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, int64(1))
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO wallet_balances (user_id, currency)")).
			WithArgs(1, "USD").
			WillReturnRows(rows)

		balance, err := repo.CreateBalance(context.Background(), 1, "USD")
		assert.NoError(t, err)
		assert.Equal(t, 10, balance.ID)
		assert.True(t, balance.AvailableBalance.IsZero())
	})

	t.Run("Concurrent creation loses the insert", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO wallet_balances (user_id, currency)")).
			WithArgs(1, "USD").
			WillReturnError(pgx.ErrNoRows)

		balance, err := repo.CreateBalance(context.Background(), 1, "USD")
		assert.NoError(t, err)
		assert.Nil(t, balance)
	})
}

func TestRepository_UpdateBalance(t *testing.T) {
	repo, mock := NewMock(t)

	balance := &domain.WalletBalance{
		ID:               10,
		AvailableBalance: decimal.RequireFromString("100"),
		PendingBalance:   decimal.Zero,
		TotalDeposited:   decimal.RequireFromString("100"),
		TotalWithdrawn:   decimal.Zero,
		Version:          3,
	}

	t.Run("Update succeeds at the expected version", func(t *testing.T) {
		mock.ExpectExec("UPDATE wallet_balances").
			WithArgs(balance.AvailableBalance, balance.PendingBalance, balance.TotalDeposited, balance.TotalWithdrawn, 10, int64(3)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.UpdateBalance(context.Background(), balance)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Version moved underneath the caller", func(t *testing.T) {
		mock.ExpectExec("UPDATE wallet_balances").
			WithArgs(balance.AvailableBalance, balance.PendingBalance, balance.TotalDeposited, balance.TotalWithdrawn, 10, int64(3)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.UpdateBalance(context.Background(), balance)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec("UPDATE wallet_balances").
			WithArgs(balance.AvailableBalance, balance.PendingBalance, balance.TotalDeposited, balance.TotalWithdrawn, 10, int64(3)).
			WillReturnError(errors.New("database error"))

		ok, err := repo.UpdateBalance(context.Background(), balance)
		assert.Error(t, err)
		assert.False(t, ok)
	})
}
