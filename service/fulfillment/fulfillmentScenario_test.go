package fulfillment

import (
	"context"
	"testing"
	"time"

	"librarydesk/model"

	"github.com/stretchr/testify/require"
)

// Drives the full happy path against stateful mocks standing in for
// the backend: PENDING reservation + AVAILABLE copy, assign, convert.
func TestFulfillment_EndToEnd(t *testing.T) {
	copyState := &model.BookCopy{ID: "BCP001", BookTitleID: "BT1", Status: model.CopyAvailable, Condition: model.ConditionGood}
	resState := &model.Reservation{ID: "R1", UserID: "U1", BookTitleID: "BT1", Status: model.ReservationPending}

	cm := &copyMock{
		getFn: func(id string) (*model.BookCopy, error) {
			cp := *copyState
			return &cp, nil
		},
		byTitle: func(titleID string) ([]model.BookCopy, error) {
			if copyState.Status == model.CopyAvailable {
				return []model.BookCopy{*copyState}, nil
			}
			return nil, nil
		},
	}
	rm := &reservationMock{
		getFn: func(id string) (*model.Reservation, error) {
			r := *resState
			return &r, nil
		},
		assignFn: func(id, copyID string) (*model.Reservation, error) {
			copyState.Status = model.CopyReserved
			resState.BookCopyID = &copyID
			resState.Status = model.ReservationReady
			r := *resState
			return &r, nil
		},
	}
	tm := &transactionMock{
		fromReservationFn: func(req model.FromReservationReq) (*model.Transaction, error) {
			copyState.Status = model.CopyBorrowed
			copyState.BorrowerID = &resState.UserID
			resState.Status = model.ReservationDone
			now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
			return &model.Transaction{
				ID: "T1", UserID: resState.UserID, BookCopyID: req.BookCopyID,
				BorrowDate: now, DueDate: now.AddDate(0, 0, 14),
				Status: model.TransactionBorrowed,
			}, nil
		},
	}
	svc := New(cm, rm, tm, 14)
	ctx := context.Background()

	// step 0: the copy shows up as assignable
	avail, err := svc.ListAvailableCopiesForTitle(ctx, staff, "BT1")
	require.NoError(t, err)
	require.Len(t, avail, 1)

	// step 1: assign
	res, err := svc.AssignCopy(ctx, staff, "R1", "BCP001")
	require.NoError(t, err)
	require.Equal(t, model.ReservationReady, res.Status)
	require.Equal(t, model.CopyReserved, copyState.Status)

	// availability is recomputed, the copy is gone from the pool
	avail, err = svc.ListAvailableCopiesForTitle(ctx, staff, "BT1")
	require.NoError(t, err)
	require.Empty(t, avail)

	// a second assignment of the same copy now conflicts
	_, err = svc.AssignCopy(ctx, staff, "R2", "BCP001")
	require.Error(t, err)

	// step 2: convert
	tx, err := svc.ConvertToTransaction(ctx, staff, "R1", "BCP001")
	require.NoError(t, err)
	require.Equal(t, model.TransactionBorrowed, tx.Status)
	require.Equal(t, model.CopyBorrowed, copyState.Status)
	require.Equal(t, model.ReservationDone, resState.Status)
}
