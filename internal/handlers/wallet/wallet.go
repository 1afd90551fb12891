package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/bountylab/bountyhub/internal/domain"
	"github.com/bountylab/bountyhub/internal/dto"
	"github.com/bountylab/bountyhub/internal/gateway"
	"github.com/bountylab/bountyhub/internal/service/depositservice"
	"github.com/bountylab/bountyhub/internal/service/payoutservice"
	"github.com/bountylab/bountyhub/internal/service/walletservice"
	"github.com/bountylab/bountyhub/pkg/auth"
	"github.com/bountylab/bountyhub/pkg/utils"
)

const transactionsLimit = 100

type WalletService interface {
	GetBalance(ctx context.Context, userID int, currency string) (*domain.WalletBalance, error)
	GetTransactions(ctx context.Context, userID int, limit uint32) ([]domain.Transaction, error)
}

type DepositService interface {
	InitiateDeposit(ctx context.Context, userID int, amount decimal.Decimal) (*gateway.CheckoutSession, error)
	VerifyDeposit(ctx context.Context, userID int, sessionID string) (decimal.Decimal, bool, error)
}

type PayoutService interface {
	RequestPayout(ctx context.Context, userID int, amount decimal.Decimal) (*domain.PayoutRequest, error)
	CreateConnectAccount(ctx context.Context, userID int) (string, error)
}

type WalletHandler struct {
	walletService  WalletService
	depositService DepositService
	payoutService  PayoutService
	currency       string
}

func New(walletService WalletService, depositService DepositService, payoutService PayoutService, currency string) *WalletHandler {
	return &WalletHandler{
		walletService:  walletService,
		depositService: depositService,
		payoutService:  payoutService,
		currency:       currency,
	}
}

// GetBalance godoc
//
//	@Summary		Get current wallet balance
//	@Description	Retrieve available and pending balances plus lifetime counters for the authenticated user.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO	"Wallet snapshot"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.walletService.GetBalance(r.Context(), userID, h.currency)
	if err != nil {
		if errors.Is(err, walletservice.ErrWalletNotFound) {
			// Wallets are created on first deposit; show an empty one until then.
			utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{Currency: h.currency})
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		Currency:         balance.Currency,
		AvailableBalance: balance.AvailableBalance,
		PendingBalance:   balance.PendingBalance,
		TotalDeposited:   balance.TotalDeposited,
		TotalWithdrawn:   balance.TotalWithdrawn,
	})
}

// GetTransactions godoc
//
//	@Summary		Get transaction history
//	@Description	Ledger transactions for the authenticated user, newest first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO	"Transaction history"
//	@Success		204	{object}	utils.Response				"No transactions"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	txns, err := h.walletService.GetTransactions(r.Context(), userID, transactionsLimit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if len(txns) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(txns))
	for i, txn := range txns {
		response[i] = dto.TransactionResponseDTO{
			ID:            txn.ID.String(),
			Type:          string(txn.Type),
			Amount:        txn.Amount,
			FeeAmount:     txn.FeeAmount,
			NetAmount:     txn.NetAmount,
			Status:        string(txn.Status),
			PaymentMethod: txn.PaymentMethod,
			CreatedAt:     txn.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Deposit godoc
//
//	@Summary		Start a deposit
//	@Description	Create a payment gateway checkout session for the requested amount.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit request payload"
//	@Success		200		{object}	dto.DepositResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		502		{object}	utils.Response	"Payment gateway unavailable"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/deposit [post]
func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.depositService.InitiateDeposit(r.Context(), userID, req.Amount)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DepositResponseDTO{
		SessionID: session.SessionID,
		URL:       session.URL,
	})
}

// VerifyDeposit godoc
//
//	@Summary		Verify a deposit
//	@Description	Confirm a checkout session with the gateway and credit the wallet exactly once.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyDepositRequestDTO	true	"Verification payload"
//	@Success		200		{object}	dto.VerifyDepositResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		502		{object}	utils.Response	"Payment gateway unavailable"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/deposit/verify [post]
func (h *WalletHandler) VerifyDeposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.VerifyDepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amount, alreadyCredited, err := h.depositService.VerifyDeposit(r.Context(), userID, req.SessionID)
	if err != nil {
		if errors.Is(err, depositservice.ErrNotCompleted) {
			utils.RespondWithJSON(w, http.StatusOK, dto.VerifyDepositResponseDTO{
				Success: false,
				Message: "payment not completed",
			})
			return
		}
		respondServiceError(w, err)
		return
	}

	message := "deposit credited"
	if alreadyCredited {
		message = "deposit already credited"
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.VerifyDepositResponseDTO{
		Success: true,
		Amount:  amount,
		Message: message,
	})
}

// RequestPayout godoc
//
//	@Summary		Request a payout
//	@Description	Withdraw funds to the user's connected account, minus the platform fee.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PayoutRequestDTO	true	"Payout request payload"
//	@Success		200		{object}	dto.PayoutResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		422		{object}	utils.Response	"Payee not configured or not ready"
//	@Failure		502		{object}	utils.Response	"Payment gateway unavailable"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/payout [post]
func (h *WalletHandler) RequestPayout(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PayoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	payout, err := h.payoutService.RequestPayout(r.Context(), userID, req.Amount)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PayoutResponseDTO{
		PayoutID:  payout.ID.String(),
		Status:    string(payout.Status),
		FeeAmount: payout.FeeAmount,
		NetAmount: payout.NetAmount,
	})
}

// CreateConnectAccount godoc
//
//	@Summary		Create a connected payee account
//	@Description	Provision the external payee account and return the onboarding link.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ConnectAccountResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		502	{object}	utils.Response	"Payment gateway unavailable"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/connect [post]
func (h *WalletHandler) CreateConnectAccount(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	url, err := h.payoutService.CreateConnectAccount(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ConnectAccountResponseDTO{URL: url})
}

// respondServiceError maps workflow errors onto status codes. Business errors
// keep their message; infrastructure errors get a generic one.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, depositservice.ErrValidation), errors.Is(err, payoutservice.ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, walletservice.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, payoutservice.ErrPayeeNotConfigured), errors.Is(err, payoutservice.ErrPayeeNotReady):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, walletservice.ErrConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, gateway.ErrTimeout), errors.Is(err, gateway.ErrUnavailable):
		utils.RespondWithError(w, http.StatusBadGateway, "Payment gateway unavailable")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
