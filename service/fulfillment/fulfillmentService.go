// Package fulfillment turns a title-level hold into a copy-level loan:
// pick an available copy, bind it to the reservation, then convert the
// reservation into a borrow transaction. Assignment and conversion are
// deliberately separate steps — a failed conversion leaves the
// reservation READY_FOR_PICKUP with its copy bound, and conversion can
// be retried without re-assigning.
package fulfillment

import (
	"context"
	"time"

	"librarydesk/model"
	copyrepo "librarydesk/repository/copy"
	"librarydesk/repository/remote"
	reservationrepo "librarydesk/repository/reservation"
	transactionrepo "librarydesk/repository/transaction"
	"librarydesk/util/apperr"
)

type Service interface {
	// ListAvailableCopiesForTitle fetches fresh on every call;
	// availability is far too mutable to cache across steps.
	ListAvailableCopiesForTitle(ctx context.Context, s remote.Session, titleID string) ([]model.BookCopy, error)
	AssignCopy(ctx context.Context, s remote.Session, reservationID, copyID string) (*model.Reservation, error)
	ConvertToTransaction(ctx context.Context, s remote.Session, reservationID, copyID string) (*model.Transaction, error)
	// Borrow is the staff-initiated direct loan, skipping reservation.
	Borrow(ctx context.Context, s remote.Session, req model.BorrowReq) (*model.Transaction, error)
}

type service struct {
	copies       copyrepo.Repo
	reservations reservationrepo.Repo
	transactions transactionrepo.Repo
	borrowDays   int
	now          func() time.Time
}

func New(c copyrepo.Repo, r reservationrepo.Repo, t transactionrepo.Repo, borrowDays int) Service {
	if borrowDays <= 0 {
		borrowDays = 14
	}
	return &service{copies: c, reservations: r, transactions: t, borrowDays: borrowDays, now: time.Now}
}

func (s *service) ListAvailableCopiesForTitle(ctx context.Context, sess remote.Session, titleID string) ([]model.BookCopy, error) {
	all, err := s.copies.ListByTitle(ctx, sess, titleID)
	if err != nil {
		return nil, err
	}
	out := make([]model.BookCopy, 0, len(all))
	for _, c := range all {
		if c.Status == model.CopyAvailable && c.BookTitleID == titleID {
			out = append(out, c)
		}
	}
	return out, nil
}

// AssignCopy guards on the copy being AVAILABLE right now, but the
// backend stays authoritative: its rejection is surfaced verbatim, a
// concurrent take is an ordinary conflict, not a bug.
func (s *service) AssignCopy(ctx context.Context, sess remote.Session, reservationID, copyID string) (*model.Reservation, error) {
	if !sess.Role.IsStaff() {
		return nil, apperr.New(apperr.ErrAuthorization, "staff role required to assign a copy")
	}

	c, err := s.copies.Get(ctx, sess, copyID)
	if err != nil {
		return nil, err
	}
	if c.Status != model.CopyAvailable {
		return nil, apperr.New(apperr.ErrConflict, "copy "+copyID+" is not available (this copy was just taken)")
	}

	return s.reservations.AssignCopy(ctx, sess, reservationID, copyID)
}

func (s *service) ConvertToTransaction(ctx context.Context, sess remote.Session, reservationID, copyID string) (*model.Transaction, error) {
	if !sess.Authenticated() || !sess.Role.IsStaff() {
		return nil, apperr.New(apperr.ErrAuthorization, "staff identity required to convert a reservation")
	}

	res, err := s.reservations.Get(ctx, sess, reservationID)
	if err != nil {
		return nil, err
	}
	if !res.Assigned() {
		return nil, apperr.New(apperr.ErrPrecondition, "assign a copy first")
	}
	if copyID != "" && *res.BookCopyID != copyID {
		return nil, apperr.New(apperr.ErrValidation, "reservation is bound to a different copy")
	}

	tx, err := s.transactions.CreateFromReservation(ctx, sess, model.FromReservationReq{
		ReservationID: reservationID,
		BookCopyID:    *res.BookCopyID,
	})
	if err != nil {
		return nil, err
	}
	s.fillDueDate(tx)
	return tx, nil
}

func (s *service) Borrow(ctx context.Context, sess remote.Session, req model.BorrowReq) (*model.Transaction, error) {
	if !sess.Role.IsStaff() {
		return nil, apperr.New(apperr.ErrAuthorization, "staff role required to create a loan")
	}

	c, err := s.copies.Get(ctx, sess, req.BookCopyID)
	if err != nil {
		return nil, err
	}
	if c.Status != model.CopyAvailable {
		return nil, apperr.New(apperr.ErrConflict, "copy "+req.BookCopyID+" is not available")
	}

	tx, err := s.transactions.Create(ctx, sess, req)
	if err != nil {
		return nil, err
	}
	s.fillDueDate(tx)
	return tx, nil
}

// fillDueDate applies the library-wide default only when the server
// left the due date unset; a server-supplied value always wins.
func (s *service) fillDueDate(t *model.Transaction) {
	if t.DueDate.IsZero() {
		base := t.BorrowDate
		if base.IsZero() {
			base = s.now()
		}
		t.DueDate = base.AddDate(0, 0, s.borrowDays)
	}
}
