package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// WalletBalance is one row per (user, currency). Available and pending are
// mutated only through the wallet service; the lifetime counters are
// reporting-only and never feed balance checks.
type WalletBalance struct {
	ID               int             `db:"id"`
	UserID           int             `db:"user_id"`
	Currency         string          `db:"currency"`
	AvailableBalance decimal.Decimal `db:"available_balance"`
	PendingBalance   decimal.Decimal `db:"pending_balance"`
	TotalDeposited   decimal.Decimal `db:"total_deposited"`
	TotalWithdrawn   decimal.Decimal `db:"total_withdrawn"`
	Version          int64           `db:"version"`
}

type TransactionType string

const (
	TransactionDeposit            TransactionType = "deposit"
	TransactionWithdrawal         TransactionType = "withdrawal"
	TransactionBountyPayment      TransactionType = "bounty_payment"
	TransactionBountyRefund       TransactionType = "bounty_refund"
	TransactionBountyEarnings     TransactionType = "bounty_earnings"
	TransactionBountyContribution TransactionType = "bounty_contribution"
	TransactionServiceFee         TransactionType = "service_fee"
	TransactionCryptoDeposit      TransactionType = "crypto_deposit"
	TransactionCryptoWithdrawal   TransactionType = "crypto_withdrawal"
)

type TransactionStatus string

const (
	TransactionPending    TransactionStatus = "pending"
	TransactionProcessing TransactionStatus = "processing"
	TransactionCompleted  TransactionStatus = "completed"
	TransactionFailed     TransactionStatus = "failed"
	TransactionCancelled  TransactionStatus = "cancelled"
)

// Transaction is an immutable ledger record. Only Status moves, and only
// forward: pending -> processing -> completed | failed | cancelled.
type Transaction struct {
	ID            uuid.UUID         `db:"id"`
	UserID        int               `db:"user_id"`
	Type          TransactionType   `db:"type"`
	Amount        decimal.Decimal   `db:"amount"`
	FeeAmount     decimal.Decimal   `db:"fee_amount"`
	NetAmount     decimal.Decimal   `db:"net_amount"`
	Status        TransactionStatus `db:"status"`
	PaymentMethod string            `db:"payment_method"`
	OperationID   string            `db:"operation_id"`
	ExternalRef   string            `db:"external_ref"`
	Metadata      map[string]string `db:"metadata"`
	CreatedAt     time.Time         `db:"created_at"`
}

type BountyStatus string

const (
	BountyOpen    BountyStatus = "open"
	BountyClosed  BountyStatus = "closed"
	BountyExpired BountyStatus = "expired"
)

type Bounty struct {
	ID                  uuid.UUID       `db:"id"`
	UserID              int             `db:"user_id"`
	Title               string          `db:"title"`
	Description         string          `db:"description"`
	Category            string          `db:"category"`
	Bounty              decimal.Decimal `db:"bounty"`
	Deadline            time.Time       `db:"deadline"`
	AllowContributions  bool            `db:"allow_contributions"`
	MinimumContribution decimal.Decimal `db:"minimum_contribution"`
	IsAnonymous         bool            `db:"is_anonymous"`
	Status              BountyStatus    `db:"status"`
	CreatedAt           time.Time       `db:"created_at"`
}

type ContributionStatus string

const (
	ContributionPending  ContributionStatus = "pending"
	ContributionAccepted ContributionStatus = "accepted"
	ContributionRejected ContributionStatus = "rejected"
)

type BountyContribution struct {
	ID            uuid.UUID          `db:"id"`
	BountyID      uuid.UUID          `db:"bounty_id"`
	ContributorID int                `db:"contributor_id"`
	Amount        decimal.Decimal    `db:"amount"`
	Message       string             `db:"message"`
	Status        ContributionStatus `db:"status"`
	CreatedAt     time.Time          `db:"created_at"`
}

type PayoutStatus string

const (
	PayoutPending    PayoutStatus = "pending"
	PayoutProcessing PayoutStatus = "processing"
	PayoutCompleted  PayoutStatus = "completed"
	PayoutFailed     PayoutStatus = "failed"
)

// PayoutRequest is one-to-one with a single withdrawal attempt.
type PayoutRequest struct {
	ID          uuid.UUID       `db:"id"`
	UserID      int             `db:"user_id"`
	Amount      decimal.Decimal `db:"amount"`
	FeeAmount   decimal.Decimal `db:"fee_amount"`
	NetAmount   decimal.Decimal `db:"net_amount"`
	Status      PayoutStatus    `db:"status"`
	TransferID  string          `db:"transfer_id"`
	OperationID string          `db:"operation_id"`
	CreatedAt   time.Time       `db:"created_at"`
}

type ConnectedAccount struct {
	ID             int       `db:"id"`
	UserID         int       `db:"user_id"`
	AccountID      string    `db:"account_id"`
	PayoutsEnabled bool      `db:"payouts_enabled"`
	CreatedAt      time.Time `db:"created_at"`
}
