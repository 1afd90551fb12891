package service

import (
	"github.com/shopspring/decimal"

	"github.com/bountylab/bountyhub/internal/config"
	"github.com/bountylab/bountyhub/internal/events"
	"github.com/bountylab/bountyhub/internal/gateway"
	"github.com/bountylab/bountyhub/internal/handlers/auth"
	"github.com/bountylab/bountyhub/internal/handlers/bounty"
	"github.com/bountylab/bountyhub/internal/handlers/wallet"
	"github.com/bountylab/bountyhub/internal/pg"
	"github.com/bountylab/bountyhub/internal/reconcile"

	pkgauth "github.com/bountylab/bountyhub/pkg/auth"

	"github.com/bountylab/bountyhub/internal/repo"
	authservice "github.com/bountylab/bountyhub/internal/service/authservice"
	bountyservice "github.com/bountylab/bountyhub/internal/service/bountyservice"
	depositservice "github.com/bountylab/bountyhub/internal/service/depositservice"
	payoutservice "github.com/bountylab/bountyhub/internal/service/payoutservice"
	walletservice "github.com/bountylab/bountyhub/internal/service/walletservice"
)

// PayoutService joins the HTTP surface of the payout workflow with the
// reconciler's resolve entry point.
type PayoutService interface {
	wallet.PayoutService
	reconcile.Resolver
}

type Services struct {
	AuthService    auth.Service
	WalletService  wallet.WalletService
	DepositService wallet.DepositService
	PayoutService  PayoutService
	BountyService  bounty.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, gw *gateway.Client, publisher *events.Publisher, cfg *config.Config) *Services {
	feeRate := decimal.RequireFromString(cfg.PayoutFeeRate)

	walletService := walletservice.New(repo.WalletRepo, repo.TransactionRepo, txManager, publisher)
	bountyService := bountyservice.New(repo.BountyRepo, walletService, cfg.Currency)
	payoutService := payoutservice.New(repo.PayoutRepo, repo.UserRepo, walletService, gw, cfg.Currency, feeRate)
	depositService := depositservice.New(walletService, repo.TransactionRepo, gw, cfg.Currency)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:    authService,
		WalletService:  walletService,
		DepositService: depositService,
		PayoutService:  payoutService,
		BountyService:  bountyService,
	}
}
