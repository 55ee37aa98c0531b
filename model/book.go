package model

import "time"

type BookTitle struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	Price           int64  `json:"price"`
	PhotoURL        string `json:"imageUrl,omitempty"`
	TotalCopies     int    `json:"totalCopies"`
	AvailableCopies int    `json:"availableCopies"`
}

type CopyStatus string

const (
	CopyAvailable   CopyStatus = "AVAILABLE"
	CopyBorrowed    CopyStatus = "BORROWED"
	CopyReserved    CopyStatus = "RESERVED"
	CopyUnavailable CopyStatus = "UNAVAILABLE"
	CopyLost        CopyStatus = "LOST"

	// CopyOverdue is derived from BORROWED + past-due date at render
	// time. It is never persisted and never a manual edit target.
	CopyOverdue CopyStatus = "OVERDUE"
)

type CopyCondition string

const (
	ConditionNew     CopyCondition = "NEW"
	ConditionGood    CopyCondition = "GOOD"
	ConditionWorn    CopyCondition = "WORN"
	ConditionDamaged CopyCondition = "DAMAGED"
)

// BookCopy is one physical, trackable unit of a BookTitle.
// BookTitle/Price/PhotoURL are denormalized display fields; BorrowerID
// and DueDate are set only while an open transaction holds the copy.
type BookCopy struct {
	ID           string        `json:"id"`
	BookTitleID  string        `json:"bookTitleId"`
	Status       CopyStatus    `json:"status"`
	Condition    CopyCondition `json:"condition"`
	BookTitle    string        `json:"bookTitle,omitempty"`
	Price        int64         `json:"price,omitempty"`
	PhotoURL     string        `json:"imageUrl,omitempty"`
	BorrowerID   *string       `json:"borrowerId,omitempty"`
	BorrowerName string        `json:"borrowerName,omitempty"`
	DueDate      *time.Time    `json:"dueDate,omitempty"`
}

// CreateCopiesReq creates Quantity independent copies of one title.
type CreateCopiesReq struct {
	BookTitleID string        `json:"bookTitleId" validate:"required"`
	Quantity    int           `json:"quantity" validate:"required,gt=0"`
	Condition   CopyCondition `json:"condition" validate:"required,oneof=NEW GOOD WORN DAMAGED"`
}

type UpdateCopyReq struct {
	Status    *CopyStatus    `json:"status,omitempty" validate:"omitempty,oneof=AVAILABLE RESERVED UNAVAILABLE LOST"`
	Condition *CopyCondition `json:"condition,omitempty" validate:"omitempty,oneof=NEW GOOD WORN DAMAGED"`
}
