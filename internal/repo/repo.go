package repo

import (
	"github.com/bountylab/bountyhub/internal/pg"
	"github.com/bountylab/bountyhub/internal/reconcile"
	bountyrepo "github.com/bountylab/bountyhub/internal/repo/bounty-repo"
	payoutrepo "github.com/bountylab/bountyhub/internal/repo/payout-repo"
	transactionrepo "github.com/bountylab/bountyhub/internal/repo/transaction-repo"
	userrepo "github.com/bountylab/bountyhub/internal/repo/user-repo"
	walletrepo "github.com/bountylab/bountyhub/internal/repo/wallet-repo"
	"github.com/bountylab/bountyhub/internal/service/authservice"
	"github.com/bountylab/bountyhub/internal/service/bountyservice"
	"github.com/bountylab/bountyhub/internal/service/payoutservice"
	"github.com/bountylab/bountyhub/internal/service/walletservice"
)

// UserRepo combines the consumers' views of the users table.
type UserRepo interface {
	authservice.Repo
	payoutservice.UserRepo
}

// PayoutRepo adds the reconciler's sweep query to the payout workflow's view.
type PayoutRepo interface {
	payoutservice.PayoutRepo
	reconcile.PayoutRepo
}

type Repositories struct {
	UserRepo        UserRepo
	WalletRepo      walletservice.WalletRepo
	TransactionRepo walletservice.TransactionRepo
	BountyRepo      bountyservice.BountyRepo
	PayoutRepo      PayoutRepo
}

func New(conn pg.Database) *Repositories {
	userRepo := userrepo.New(conn)
	walletRepo := walletrepo.New(conn)
	transactionRepo := transactionrepo.New(conn)
	bountyRepo := bountyrepo.New(conn)
	payoutRepo := payoutrepo.New(conn)

	return &Repositories{
		UserRepo:        userRepo,
		WalletRepo:      walletRepo,
		TransactionRepo: transactionRepo,
		BountyRepo:      bountyRepo,
		PayoutRepo:      payoutRepo,
	}
}
