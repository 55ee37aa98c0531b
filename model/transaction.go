package model

import "time"

type TransactionStatus string

const (
	TransactionBorrowed TransactionStatus = "BORROWED"
	TransactionOverdue  TransactionStatus = "OVERDUE"
	TransactionDone     TransactionStatus = "COMPLETED"
)

// Transaction is one borrow episode binding exactly one copy to one
// user. At most one open (ReturnedDate nil) transaction exists per
// copy; OVERDUE is derived from the due date, never written directly.
type Transaction struct {
	ID           string              `json:"id"`
	UserID       string              `json:"userId"`
	BookCopyID   string              `json:"bookCopyId"`
	UserName     string              `json:"userName,omitempty"`
	BookTitle    string              `json:"bookTitle,omitempty"`
	BorrowDate   time.Time           `json:"borrowDate"`
	DueDate      time.Time           `json:"dueDate"`
	ReturnedDate *time.Time          `json:"returnedDate,omitempty"`
	Status       TransactionStatus   `json:"status"`
	TotalFee     int64               `json:"totalFee"`
	PenaltyFee   int64               `json:"penaltyFee"`
	Note         string              `json:"note,omitempty"`
	Details      []TransactionDetail `json:"details,omitempty"`
}

// Open reports whether the loan is still out.
func (t *Transaction) Open() bool { return t.ReturnedDate == nil }

// TransactionDetail records the damage/penalty assessment made at
// return time. One per (transaction, copy) return event.
type TransactionDetail struct {
	TransactionID string    `json:"transactionId"`
	BookCopyID    string    `json:"bookCopyId"`
	PenaltyFee    int64     `json:"penaltyFee"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type BorrowReq struct {
	UserID     string `json:"userId" validate:"required"`
	BookCopyID string `json:"bookCopyId" validate:"required"`
	Note       string `json:"note,omitempty"`
}

type FromReservationReq struct {
	ReservationID string `json:"reservationId" validate:"required"`
	BookCopyID    string `json:"bookCopyId" validate:"required"`
}

// ApproveReturnReq closes a loan. PenaltyFee is a pointer so "no
// assessment" and "zero-fee assessment" stay distinguishable;
// Disposition picks where the copy goes when it is not shelf-ready.
type ApproveReturnReq struct {
	BookCopyID  string      `json:"bookCopyId" validate:"required"`
	PenaltyFee  *int64      `json:"penaltyFee,omitempty" validate:"omitempty,gte=0"`
	Description string      `json:"description,omitempty"`
	Disposition *CopyStatus `json:"disposition,omitempty" validate:"omitempty,oneof=AVAILABLE UNAVAILABLE LOST"`
	Confirm     bool        `json:"confirm"`
}
