package transactionrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

var txnColumns = []string{"id", "user_id", "type", "amount", "fee_amount", "net_amount", "status", "payment_method", "operation_id", "external_ref", "created_at"}

func sampleTxn() *domain.Transaction {
	return &domain.Transaction{
		ID:          uuid.New(),
		UserID:      1,
		Type:        domain.TransactionDeposit,
		Amount:      decimal.RequireFromString("25.50"),
		FeeAmount:   decimal.Zero,
		NetAmount:   decimal.RequireFromString("25.50"),
		Status:      domain.TransactionCompleted,
		OperationID: "deposit:cs_1",
		ExternalRef: "cs_1",
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Create transaction successfully", func(t *testing.T) {
		txn := sampleTxn()
		mock.ExpectQuery("INSERT INTO transactions").
			WithArgs(txn.ID, txn.UserID, txn.Type, txn.Amount, txn.FeeAmount, txn.NetAmount,
				txn.Status, txn.PaymentMethod, txn.OperationID, txn.ExternalRef, txn.Metadata).
			WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

		err := repo.Create(context.Background(), txn)
		assert.NoError(t, err)
		assert.False(t, txn.CreatedAt.IsZero())
	})

	t.Run("Duplicate operation id", func(t *testing.T) {
		txn := sampleTxn()
		mock.ExpectQuery("INSERT INTO transactions").
			WithArgs(txn.ID, txn.UserID, txn.Type, txn.Amount, txn.FeeAmount, txn.NetAmount,
				txn.Status, txn.PaymentMethod, txn.OperationID, txn.ExternalRef, txn.Metadata).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		err := repo.Create(context.Background(), txn)
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("Database error", func(t *testing.T) {
		txn := sampleTxn()
		mock.ExpectQuery("INSERT INTO transactions").
			WithArgs(txn.ID, txn.UserID, txn.Type, txn.Amount, txn.FeeAmount, txn.NetAmount,
				txn.Status, txn.PaymentMethod, txn.OperationID, txn.ExternalRef, txn.Metadata).
			WillReturnError(errors.New("database error"))

		err := repo.Create(context.Background(), txn)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrDuplicate)
	})
}

func TestRepository_Resolve(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()

	t.Run("Resolves a processing transaction", func(t *testing.T) {
		mock.ExpectExec("UPDATE transactions").
			WithArgs(domain.TransactionCompleted, id, domain.TransactionProcessing).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		resolved, err := repo.Resolve(context.Background(), id, domain.TransactionCompleted)
		assert.NoError(t, err)
		assert.True(t, resolved)
	})

	t.Run("Already terminal resolves nothing", func(t *testing.T) {
		mock.ExpectExec("UPDATE transactions").
			WithArgs(domain.TransactionFailed, id, domain.TransactionProcessing).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		resolved, err := repo.Resolve(context.Background(), id, domain.TransactionFailed)
		assert.NoError(t, err)
		assert.False(t, resolved)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec("UPDATE transactions").
			WithArgs(domain.TransactionCompleted, id, domain.TransactionProcessing).
			WillReturnError(errors.New("database error"))

		_, err := repo.Resolve(context.Background(), id, domain.TransactionCompleted)
		assert.Error(t, err)
	})
}

func TestRepository_FindByExternalRef(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Transaction found", func(t *testing.T) {
		txn := sampleTxn()
		created := time.Now()
		rows := pgxmock.NewRows(txnColumns).
			AddRow(txn.ID, txn.UserID, txn.Type, txn.Amount, txn.FeeAmount, txn.NetAmount,
				txn.Status, "", txn.OperationID, txn.ExternalRef, created)
		mock.ExpectQuery("SELECT id, user_id, type, amount").
			WithArgs("cs_1").
			WillReturnRows(rows)

		result, err := repo.FindByExternalRef(context.Background(), "cs_1")
		assert.NoError(t, err)
		assert.Equal(t, txn.ID, result.ID)
		assert.True(t, result.Amount.Equal(txn.Amount))
	})

	t.Run("Transaction not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, type, amount").
			WithArgs("cs_missing").
			WillReturnError(pgx.ErrNoRows)

		result, err := repo.FindByExternalRef(context.Background(), "cs_missing")
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_FindByOperationID(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Transaction found", func(t *testing.T) {
		txn := sampleTxn()
		rows := pgxmock.NewRows(txnColumns).
			AddRow(txn.ID, txn.UserID, txn.Type, txn.Amount, txn.FeeAmount, txn.NetAmount,
				txn.Status, "", txn.OperationID, txn.ExternalRef, time.Now())
		mock.ExpectQuery("SELECT id, user_id, type, amount").
			WithArgs(1, "deposit:cs_1").
			WillReturnRows(rows)

		result, err := repo.FindByOperationID(context.Background(), 1, "deposit:cs_1")
		assert.NoError(t, err)
		assert.Equal(t, "deposit:cs_1", result.OperationID)
	})

	t.Run("Transaction not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, type, amount").
			WithArgs(1, "deposit:unknown").
			WillReturnError(pgx.ErrNoRows)

		result, err := repo.FindByOperationID(context.Background(), 1, "deposit:unknown")
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Transactions listed newest first", func(t *testing.T) {
		first := sampleTxn()
		second := sampleTxn()
		rows := pgxmock.NewRows(txnColumns).
			AddRow(first.ID, first.UserID, first.Type, first.Amount, first.FeeAmount, first.NetAmount,
				first.Status, "", first.OperationID, first.ExternalRef, time.Now()).
			AddRow(second.ID, second.UserID, second.Type, second.Amount, second.FeeAmount, second.NetAmount,
				second.Status, "", second.OperationID, second.ExternalRef, time.Now().Add(-time.Hour))
		mock.ExpectQuery("SELECT id, user_id, type, amount").
			WithArgs(1, uint32(50)).
			WillReturnRows(rows)

		txns, err := repo.FindByUserID(context.Background(), 1, 50)
		assert.NoError(t, err)
		assert.Len(t, txns, 2)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, type, amount").
			WithArgs(1, uint32(50)).
			WillReturnError(errors.New("database error"))

		_, err := repo.FindByUserID(context.Background(), 1, 50)
		assert.Error(t, err)
	})
}
