package handlers

import (
	"net/http"

	_ "github.com/bountylab/bountyhub/docs"
	authhandlers "github.com/bountylab/bountyhub/internal/handlers/auth"
	bountyhandlers "github.com/bountylab/bountyhub/internal/handlers/bounty"
	wallethandlers "github.com/bountylab/bountyhub/internal/handlers/wallet"
	"github.com/bountylab/bountyhub/internal/service"
	"github.com/bountylab/bountyhub/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	VerifyDeposit(w http.ResponseWriter, r *http.Request)
	RequestPayout(w http.ResponseWriter, r *http.Request)
	CreateConnectAccount(w http.ResponseWriter, r *http.Request)
}

type BountyHandler interface {
	CreateBounty(w http.ResponseWriter, r *http.Request)
	ListBounties(w http.ResponseWriter, r *http.Request)
	GetBounty(w http.ResponseWriter, r *http.Request)
	CloseBounty(w http.ResponseWriter, r *http.Request)
	Contribute(w http.ResponseWriter, r *http.Request)
	UpdateContribution(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	WalletHandler WalletHandler
	BountyHandler BountyHandler
}

func New(s *service.Services, currency string) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		WalletHandler: wallethandlers.New(s.WalletService, s.DepositService, s.PayoutService, currency),
		BountyHandler: bountyhandlers.New(s.BountyService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetBalance)
				r.Get("/transactions", h.WalletHandler.GetTransactions)
				r.Post("/deposit", h.WalletHandler.Deposit)
				r.Post("/deposit/verify", h.WalletHandler.VerifyDeposit)
				r.Post("/payout", h.WalletHandler.RequestPayout)
				r.Post("/connect", h.WalletHandler.CreateConnectAccount)
			})
			r.Route("/bounties", func(r chi.Router) {
				r.Post("/", h.BountyHandler.CreateBounty)
				r.Get("/", h.BountyHandler.ListBounties)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.BountyHandler.GetBounty)
					r.Post("/close", h.BountyHandler.CloseBounty)
					r.Post("/contributions", h.BountyHandler.Contribute)
					r.Patch("/contributions/{cid}", h.BountyHandler.UpdateContribution)
				})
			})
		})
	})

	return r
}
