package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/bountylab/bountyhub/internal/domain"
	"github.com/bountylab/bountyhub/internal/dto"
	"github.com/bountylab/bountyhub/internal/gateway"
	"github.com/bountylab/bountyhub/internal/service/depositservice"
	"github.com/bountylab/bountyhub/internal/service/payoutservice"
	"github.com/bountylab/bountyhub/internal/service/walletservice"
	"github.com/bountylab/bountyhub/pkg/auth"
)

func NewMock(t *testing.T) (*WalletHandler, *MockWalletService, *MockDepositService, *MockPayoutService) {
	ctrl := gomock.NewController(t)
	walletService := NewMockWalletService(ctrl)
	depositService := NewMockDepositService(ctrl)
	payoutService := NewMockPayoutService(ctrl)
	handler := New(walletService, depositService, payoutService, "USD")
	defer ctrl.Finish()
	return handler, walletService, depositService, payoutService
}

func authRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	} else {
		req = httptest.NewRequest(method, target, http.NoBody)
	}
	ctx := context.WithValue(req.Context(), auth.UserIDKey, 1)
	return req.WithContext(ctx)
}

func TestGetBalanceHandler(t *testing.T) {
	handler, walletService, _, _ := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		checkBody    func(t *testing.T, body *bytes.Buffer)
	}{
		{
			name: "Wallet snapshot returned",
			prepareMock: func() {
				walletService.EXPECT().GetBalance(gomock.Any(), 1, "USD").Return(&domain.WalletBalance{
					UserID:           1,
					Currency:         "USD",
					AvailableBalance: decimal.RequireFromString("100.50"),
					PendingBalance:   decimal.RequireFromString("20"),
				}, nil)
			},
			expectedCode: http.StatusOK,
			checkBody: func(t *testing.T, body *bytes.Buffer) {
				var resp dto.WalletResponseDTO
				assert.NoError(t, json.NewDecoder(body).Decode(&resp))
				assert.True(t, resp.AvailableBalance.Equal(decimal.RequireFromString("100.50")))
				assert.True(t, resp.PendingBalance.Equal(decimal.RequireFromString("20")))
			},
		},
		{
			name: "Missing wallet reads as empty",
			prepareMock: func() {
				walletService.EXPECT().GetBalance(gomock.Any(), 1, "USD").Return(nil, walletservice.ErrWalletNotFound)
			},
			expectedCode: http.StatusOK,
			checkBody: func(t *testing.T, body *bytes.Buffer) {
				var resp dto.WalletResponseDTO
				assert.NoError(t, json.NewDecoder(body).Decode(&resp))
				assert.Equal(t, "USD", resp.Currency)
				assert.True(t, resp.AvailableBalance.IsZero())
			},
		},
		{
			name: "Internal error",
			prepareMock: func() {
				walletService.EXPECT().GetBalance(gomock.Any(), 1, "USD").Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authRequest("GET", "/api/wallet", "")
			rr := httptest.NewRecorder()

			handler.GetBalance(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.checkBody != nil {
				tt.checkBody(t, rr.Body)
			}
		})
	}
}

func TestGetTransactionsHandler(t *testing.T) {
	handler, walletService, _, _ := NewMock(t)

	t.Run("Transactions listed", func(t *testing.T) {
		walletService.EXPECT().GetTransactions(gomock.Any(), 1, uint32(transactionsLimit)).Return([]domain.Transaction{
			{ID: uuid.New(), Type: domain.TransactionDeposit, Amount: decimal.RequireFromString("25.50"), Status: domain.TransactionCompleted},
		}, nil)

		req := authRequest("GET", "/api/wallet/transactions", "")
		rr := httptest.NewRecorder()

		handler.GetTransactions(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.TransactionResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 1)
		assert.Equal(t, "deposit", resp[0].Type)
	})

	t.Run("No transactions", func(t *testing.T) {
		walletService.EXPECT().GetTransactions(gomock.Any(), 1, uint32(transactionsLimit)).Return(nil, nil)

		req := authRequest("GET", "/api/wallet/transactions", "")
		rr := httptest.NewRecorder()

		handler.GetTransactions(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}

func TestDepositHandler(t *testing.T) {
	handler, _, depositService, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Checkout session created",
			body: `{"amount":"25.50"}`,
			prepareMock: func() {
				depositService.EXPECT().InitiateDeposit(gomock.Any(), 1, gomock.Any()).
					Return(&gateway.CheckoutSession{SessionID: "cs_1", URL: "https://pay/cs_1"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Validation error",
			body: `{"amount":"0"}`,
			prepareMock: func() {
				depositService.EXPECT().InitiateDeposit(gomock.Any(), 1, gomock.Any()).
					Return(nil, depositservice.ErrValidation)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Gateway unavailable",
			body: `{"amount":"25.50"}`,
			prepareMock: func() {
				depositService.EXPECT().InitiateDeposit(gomock.Any(), 1, gomock.Any()).
					Return(nil, gateway.ErrUnavailable)
			},
			expectedCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authRequest("POST", "/api/wallet/deposit", tt.body)
			rr := httptest.NewRecorder()

			handler.Deposit(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestVerifyDepositHandler(t *testing.T) {
	handler, _, depositService, _ := NewMock(t)

	t.Run("Deposit credited", func(t *testing.T) {
		depositService.EXPECT().VerifyDeposit(gomock.Any(), 1, "cs_1").
			Return(decimal.RequireFromString("25.50"), false, nil)

		req := authRequest("POST", "/api/wallet/deposit/verify", `{"session_id":"cs_1"}`)
		rr := httptest.NewRecorder()

		handler.VerifyDeposit(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.VerifyDepositResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "deposit credited", resp.Message)
	})

	t.Run("Already credited", func(t *testing.T) {
		depositService.EXPECT().VerifyDeposit(gomock.Any(), 1, "cs_1").
			Return(decimal.RequireFromString("25.50"), true, nil)

		req := authRequest("POST", "/api/wallet/deposit/verify", `{"session_id":"cs_1"}`)
		rr := httptest.NewRecorder()

		handler.VerifyDeposit(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.VerifyDepositResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "deposit already credited", resp.Message)
	})

	t.Run("Payment not completed", func(t *testing.T) {
		depositService.EXPECT().VerifyDeposit(gomock.Any(), 1, "cs_1").
			Return(decimal.Zero, false, depositservice.ErrNotCompleted)

		req := authRequest("POST", "/api/wallet/deposit/verify", `{"session_id":"cs_1"}`)
		rr := httptest.NewRecorder()

		handler.VerifyDeposit(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.VerifyDepositResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.False(t, resp.Success)
	})
}

func TestRequestPayoutHandler(t *testing.T) {
	handler, _, _, payoutService := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Payout completed",
			body: `{"amount":"100"}`,
			prepareMock: func() {
				payoutService.EXPECT().RequestPayout(gomock.Any(), 1, gomock.Any()).Return(&domain.PayoutRequest{
					ID:        uuid.New(),
					Status:    domain.PayoutCompleted,
					FeeAmount: decimal.RequireFromString("20"),
					NetAmount: decimal.RequireFromString("80"),
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Insufficient funds",
			body: `{"amount":"100"}`,
			prepareMock: func() {
				payoutService.EXPECT().RequestPayout(gomock.Any(), 1, gomock.Any()).
					Return(nil, walletservice.ErrInsufficientFunds)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Payee not configured",
			body: `{"amount":"100"}`,
			prepareMock: func() {
				payoutService.EXPECT().RequestPayout(gomock.Any(), 1, gomock.Any()).
					Return(nil, payoutservice.ErrPayeeNotConfigured)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Concurrent balance change",
			body: `{"amount":"100"}`,
			prepareMock: func() {
				payoutService.EXPECT().RequestPayout(gomock.Any(), 1, gomock.Any()).
					Return(nil, walletservice.ErrConflict)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Gateway failure",
			body: `{"amount":"100"}`,
			prepareMock: func() {
				payoutService.EXPECT().RequestPayout(gomock.Any(), 1, gomock.Any()).
					Return(nil, gateway.ErrUnavailable)
			},
			expectedCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authRequest("POST", "/api/wallet/payout", tt.body)
			rr := httptest.NewRecorder()

			handler.RequestPayout(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestCreateConnectAccountHandler(t *testing.T) {
	handler, _, _, payoutService := NewMock(t)

	t.Run("Onboarding link returned", func(t *testing.T) {
		payoutService.EXPECT().CreateConnectAccount(gomock.Any(), 1).
			Return("https://onboard/acct_1", nil)

		req := authRequest("POST", "/api/wallet/connect", "")
		rr := httptest.NewRecorder()

		handler.CreateConnectAccount(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.ConnectAccountResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "https://onboard/acct_1", resp.URL)
	})

	t.Run("Gateway failure", func(t *testing.T) {
		payoutService.EXPECT().CreateConnectAccount(gomock.Any(), 1).
			Return("", gateway.ErrUnavailable)

		req := authRequest("POST", "/api/wallet/connect", "")
		rr := httptest.NewRecorder()

		handler.CreateConnectAccount(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}
