package repo

import (
	"testing"

	bountyrepo "github.com/bountylab/bountyhub/internal/repo/bounty-repo"
	payoutrepo "github.com/bountylab/bountyhub/internal/repo/payout-repo"
	transactionrepo "github.com/bountylab/bountyhub/internal/repo/transaction-repo"
	userrepo "github.com/bountylab/bountyhub/internal/repo/user-repo"
	walletrepo "github.com/bountylab/bountyhub/internal/repo/wallet-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.WalletRepo)
	assert.NotNil(t, repo.TransactionRepo)
	assert.NotNil(t, repo.BountyRepo)
	assert.NotNil(t, repo.PayoutRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &walletrepo.Repository{}, repo.WalletRepo)
	assert.IsType(t, &transactionrepo.Repository{}, repo.TransactionRepo)
	assert.IsType(t, &bountyrepo.Repository{}, repo.BountyRepo)
	assert.IsType(t, &payoutrepo.Repository{}, repo.PayoutRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
