// Package status derives what a copy looks like right now from what
// the backend persisted. OVERDUE only ever exists here: it is computed
// from BORROWED plus a past due date at call time and is never stored
// or written back.
package status

import (
	"librarydesk/model"
	"librarydesk/util/apperr"
	"time"
)

// DisplayStatus reconciles persisted status with the clock.
// A copy flagged LOST while a borrower is still attached is a
// data-integrity conflict; the caller gets a STATUS_CONFLICT coded
// error to surface as a warning, not a guess at either answer.
func DisplayStatus(c *model.BookCopy, now time.Time) (model.CopyStatus, error) {
	if c.Status == model.CopyLost && c.BorrowerID != nil && *c.BorrowerID != "" {
		return "", apperr.New(apperr.ErrStatusConflict,
			"cannot determine status: copy "+c.ID+" is LOST but still has an open loan")
	}
	if c.Status == model.CopyBorrowed && c.DueDate != nil && c.DueDate.Before(now) {
		return model.CopyOverdue, nil
	}
	return c.Status, nil
}

// IsOverdue is the boolean view of DisplayStatus for sorting and
// highlighting; conflicted copies count as not overdue.
func IsOverdue(c *model.BookCopy, now time.Time) bool {
	st, err := DisplayStatus(c, now)
	return err == nil && st == model.CopyOverdue
}

// CanEditStatus: ADMIN always; LIBRARIAN unless the copy is out on an
// active loan (overdue included, since overdue is still BORROWED
// underneath); everyone else never.
func CanEditStatus(role model.Role, c *model.BookCopy) bool {
	switch role {
	case model.RoleAdmin:
		return true
	case model.RoleLibrarian:
		return c.Status != model.CopyBorrowed
	default:
		return false
	}
}

// ValidTargetStatuses lists the manual edit targets. BORROWED is only
// reachable through the borrow workflow and OVERDUE is synthetic, so
// neither is ever offered.
func ValidTargetStatuses(c *model.BookCopy) []model.CopyStatus {
	return []model.CopyStatus{
		model.CopyAvailable,
		model.CopyReserved,
		model.CopyUnavailable,
		model.CopyLost,
	}
}

// IsValidTarget reports membership in ValidTargetStatuses.
func IsValidTarget(c *model.BookCopy, target model.CopyStatus) bool {
	for _, s := range ValidTargetStatuses(c) {
		if s == target {
			return true
		}
	}
	return false
}

// CanEditCondition: condition is independent of loan state; anyone
// with copy-edit rights may grade it.
func CanEditCondition(role model.Role) bool {
	return role == model.RoleAdmin || role == model.RoleLibrarian
}

// TransactionDisplayStatus mirrors DisplayStatus for a loan row.
func TransactionDisplayStatus(t *model.Transaction, now time.Time) model.TransactionStatus {
	if t.ReturnedDate != nil {
		return model.TransactionDone
	}
	if t.DueDate.Before(now) {
		return model.TransactionOverdue
	}
	return model.TransactionBorrowed
}
