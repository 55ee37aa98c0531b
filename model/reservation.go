package model

import "time"

type ReservationStatus string

const (
	ReservationPending  ReservationStatus = "PENDING"
	ReservationReady    ReservationStatus = "READY_FOR_PICKUP"
	ReservationDone     ReservationStatus = "COMPLETED"
	ReservationCanceled ReservationStatus = "CANCELLED"
	ReservationExpired  ReservationStatus = "EXPIRED"
)

// Reservation is a hold on a title. BookCopyID stays nil until staff
// assign a physical copy; terminal states are reached server-side only.
type Reservation struct {
	ID              string            `json:"id"`
	UserID          string            `json:"userId"`
	BookTitleID     string            `json:"bookTitleId"`
	BookCopyID      *string           `json:"bookCopyId,omitempty"`
	ReservationDate time.Time         `json:"reservationDate"`
	ExpirationDate  time.Time         `json:"expirationDate"`
	Deposit         int64             `json:"deposit"`
	Status          ReservationStatus `json:"status"`
}

// Assigned reports whether a physical copy is bound to the hold.
func (r *Reservation) Assigned() bool {
	return r.BookCopyID != nil && *r.BookCopyID != ""
}

type CreateReservationReq struct {
	BookTitleID string `json:"bookTitleId" validate:"required"`
}

type AssignCopyReq struct {
	BookCopyID string `json:"bookCopyId" validate:"required"`
}

type UpdateReservationReq struct {
	Status         *ReservationStatus `json:"status,omitempty"`
	BookCopyID     *string            `json:"bookCopyId,omitempty"`
	ExpirationDate *time.Time         `json:"expirationDate,omitempty"`
}
