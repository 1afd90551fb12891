package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type WalletResponseDTO struct {
	Currency         string          `json:"currency" example:"USD"`
	AvailableBalance decimal.Decimal `json:"available_balance" example:"500.5"`
	PendingBalance   decimal.Decimal `json:"pending_balance" example:"0"`
	TotalDeposited   decimal.Decimal `json:"total_deposited" example:"1000"`
	TotalWithdrawn   decimal.Decimal `json:"total_withdrawn" example:"499.5"`
}

type TransactionResponseDTO struct {
	ID            string          `json:"id" example:"7f9c24e5-40dd-4fcb-9d2b-68a7a22ac4e6"`
	Type          string          `json:"type" example:"deposit"`
	Amount        decimal.Decimal `json:"amount" example:"100"`
	FeeAmount     decimal.Decimal `json:"fee_amount" example:"0"`
	NetAmount     decimal.Decimal `json:"net_amount" example:"100"`
	Status        string          `json:"status" example:"completed"`
	PaymentMethod string          `json:"payment_method,omitempty" example:"checkout_session"`
	CreatedAt     time.Time       `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}

type DepositRequestDTO struct {
	Amount decimal.Decimal `json:"amount" example:"100"`
}

type DepositResponseDTO struct {
	SessionID string `json:"session_id" example:"cs_a1b2c3"`
	URL       string `json:"url" example:"https://gateway.example/pay/cs_a1b2c3"`
}

type VerifyDepositRequestDTO struct {
	SessionID string `json:"session_id" example:"cs_a1b2c3"`
}

type VerifyDepositResponseDTO struct {
	Success bool            `json:"success" example:"true"`
	Amount  decimal.Decimal `json:"amount,omitempty" example:"100"`
	Message string          `json:"message,omitempty" example:"deposit credited"`
}

type PayoutRequestDTO struct {
	Amount decimal.Decimal `json:"amount" example:"100"`
}

type PayoutResponseDTO struct {
	PayoutID  string          `json:"payout_id" example:"4b26161c-4b14-4a36-a179-1f9e9a6cbb01"`
	Status    string          `json:"status" example:"completed"`
	FeeAmount decimal.Decimal `json:"fee_amount" example:"20"`
	NetAmount decimal.Decimal `json:"net_amount" example:"80"`
}

type ConnectAccountResponseDTO struct {
	URL string `json:"url" example:"https://gateway.example/onboarding/acct_123"`
}
