// Package returns closes out loans: intake by copy id, the staff
// pending queue, and return approval with an optional damage/penalty
// assessment.
package returns

import (
	"context"
	"sort"
	"time"

	"librarydesk/model"
	copyrepo "librarydesk/repository/copy"
	"librarydesk/repository/remote"
	transactionrepo "librarydesk/repository/transaction"
	"librarydesk/service/status"
	"librarydesk/util/apperr"
)

// PendingReturn is a queue row annotated with the clock-derived status
// so overdue loans sort and highlight correctly.
type PendingReturn struct {
	model.Transaction
	DisplayStatus model.TransactionStatus `json:"displayStatus"`
	DaysOverdue   int                     `json:"daysOverdue"`
}

// Approved is what a completed return hands back: the closed
// transaction and the copy as the backend left it, both re-fetched.
type Approved struct {
	Transaction *model.Transaction `json:"transaction"`
	Copy        *model.BookCopy    `json:"bookCopy,omitempty"`
}

type Service interface {
	// FindActiveTransactionsForCopy returns open loans for the copy.
	// An empty result means "no active transaction" and is a normal
	// answer, not an error.
	FindActiveTransactionsForCopy(ctx context.Context, s remote.Session, copyID string) ([]model.Transaction, error)
	ListPendingReturns(ctx context.Context, s remote.Session) ([]PendingReturn, error)
	ApproveReturn(ctx context.Context, s remote.Session, transactionID string, req model.ApproveReturnReq) (*Approved, error)
	Details(ctx context.Context, s remote.Session, transactionID string) ([]model.TransactionDetail, error)
}

type service struct {
	transactions transactionrepo.Repo
	copies       copyrepo.Repo
	// defaultTarget is where a returned copy goes when the assessment
	// does not say otherwise. Configurable; AVAILABLE in a stock
	// deployment.
	defaultTarget model.CopyStatus
	now           func() time.Time
}

func New(t transactionrepo.Repo, c copyrepo.Repo, defaultTarget model.CopyStatus) Service {
	switch defaultTarget {
	case model.CopyAvailable, model.CopyUnavailable, model.CopyLost:
	default:
		defaultTarget = model.CopyAvailable
	}
	return &service{transactions: t, copies: c, defaultTarget: defaultTarget, now: time.Now}
}

func (s *service) FindActiveTransactionsForCopy(ctx context.Context, sess remote.Session, copyID string) ([]model.Transaction, error) {
	all, err := s.transactions.ByCopy(ctx, sess, copyID)
	if err != nil {
		return nil, err
	}
	open := make([]model.Transaction, 0, len(all))
	for _, t := range all {
		if t.Open() {
			open = append(open, t)
		}
	}
	return open, nil
}

func (s *service) ListPendingReturns(ctx context.Context, sess remote.Session) ([]PendingReturn, error) {
	open, err := s.transactions.PendingReturns(ctx, sess)
	if err != nil {
		return nil, err
	}
	now := s.now()

	rows := make([]PendingReturn, 0, len(open))
	for _, t := range open {
		if !t.Open() {
			continue
		}
		row := PendingReturn{Transaction: t, DisplayStatus: status.TransactionDisplayStatus(&t, now)}
		if row.DisplayStatus == model.TransactionOverdue {
			row.DaysOverdue = int(now.Sub(t.DueDate).Hours() / 24)
		}
		rows = append(rows, row)
	}

	// overdue first, then nearest due date
	sort.SliceStable(rows, func(i, j int) bool {
		oi := rows[i].DisplayStatus == model.TransactionOverdue
		oj := rows[j].DisplayStatus == model.TransactionOverdue
		if oi != oj {
			return oi
		}
		return rows[i].DueDate.Before(rows[j].DueDate)
	})
	return rows, nil
}

// ApproveReturn validates locally (no network call on bad input),
// refuses a second approval of an already-returned loan, and routes
// the copy per the explicit disposition rather than assuming every
// return goes back on the shelf.
func (s *service) ApproveReturn(ctx context.Context, sess remote.Session, transactionID string, req model.ApproveReturnReq) (*Approved, error) {
	if req.PenaltyFee != nil && *req.PenaltyFee < 0 {
		return nil, apperr.New(apperr.ErrValidation, "penalty fee cannot be negative")
	}
	if req.PenaltyFee != nil && *req.PenaltyFee > 0 && !req.Confirm {
		return nil, apperr.New(apperr.ErrValidation, "penalty approval requires confirmation")
	}
	if !sess.Role.IsStaff() {
		return nil, apperr.New(apperr.ErrAuthorization, "staff role required to approve a return")
	}

	cur, err := s.transactions.Get(ctx, sess, transactionID)
	if err != nil {
		return nil, err
	}
	if !cur.Open() {
		return nil, apperr.New(apperr.ErrAlreadyReturned, "transaction "+transactionID+" is already returned")
	}
	if cur.BookCopyID != req.BookCopyID {
		return nil, apperr.New(apperr.ErrValidation, "transaction does not reference copy "+req.BookCopyID)
	}

	if req.Disposition == nil {
		d := s.defaultTarget
		req.Disposition = &d
	}

	done, err := s.transactions.ApproveReturn(ctx, sess, transactionID, req)
	if err != nil {
		return nil, err
	}

	// re-fetch, never patch locally: the backend may have computed
	// fees or routed the copy differently than requested
	out := &Approved{Transaction: done}
	if fresh, err := s.transactions.Get(ctx, sess, transactionID); err == nil {
		out.Transaction = fresh
	}
	if c, err := s.copies.Get(ctx, sess, req.BookCopyID); err == nil {
		out.Copy = c
	}
	return out, nil
}

func (s *service) Details(ctx context.Context, sess remote.Session, transactionID string) ([]model.TransactionDetail, error) {
	return s.transactions.Details(ctx, sess, transactionID)
}
