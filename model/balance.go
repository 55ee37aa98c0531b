package model

import "time"

type BalanceType string

const (
	BalanceDeposit    BalanceType = "DEPOSIT"
	BalanceWithdrawal BalanceType = "WITHDRAWAL"
	BalanceRental     BalanceType = "BOOK_RENTAL"
	BalancePenalty    BalanceType = "PENALTY_FEE"
	BalanceRefund     BalanceType = "REFUND"
)

type BalanceStatus string

const (
	BalancePending   BalanceStatus = "PENDING"
	BalanceCompleted BalanceStatus = "COMPLETED"
	BalanceFailed    BalanceStatus = "FAILED"
)

// BalanceTransaction is one append-only ledger entry. Amount is signed
// and in the smallest currency unit; BalanceAfter is the server's
// post-transaction balance and is the only number ever displayed —
// the client never keeps a running sum.
type BalanceTransaction struct {
	ID           string        `json:"id"`
	UserID       string        `json:"userId"`
	Type         BalanceType   `json:"type"`
	Amount       int64         `json:"amount"`
	BalanceAfter int64         `json:"balanceAfter"`
	Status       BalanceStatus `json:"status"`
	Description  string        `json:"description,omitempty"`
	Timestamp    time.Time     `json:"timestamp"`
}

type AmountReq struct {
	UserID      string `json:"userId" validate:"required"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Description string `json:"description,omitempty"`
}
