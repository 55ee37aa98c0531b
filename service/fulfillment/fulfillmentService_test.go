package fulfillment

import (
	"context"
	"testing"
	"time"

	"librarydesk/model"
	copyrepo "librarydesk/repository/copy"
	"librarydesk/repository/remote"
	reservationrepo "librarydesk/repository/reservation"
	transactionrepo "librarydesk/repository/transaction"
	"librarydesk/util/apperr"

	"github.com/stretchr/testify/require"
)

type copyMock struct {
	getFn    func(id string) (*model.BookCopy, error)
	byTitle  func(titleID string) ([]model.BookCopy, error)
	getCalls int
}

var _ copyrepo.Repo = (*copyMock)(nil)

func (m *copyMock) List(ctx context.Context, s remote.Session) ([]model.BookCopy, error) {
	return nil, nil
}
func (m *copyMock) Get(ctx context.Context, s remote.Session, id string) (*model.BookCopy, error) {
	m.getCalls++
	return m.getFn(id)
}
func (m *copyMock) ListByTitle(ctx context.Context, s remote.Session, titleID string) ([]model.BookCopy, error) {
	return m.byTitle(titleID)
}
func (m *copyMock) CreateBatch(ctx context.Context, s remote.Session, req model.CreateCopiesReq) ([]model.BookCopy, error) {
	return nil, nil
}
func (m *copyMock) Update(ctx context.Context, s remote.Session, id string, req model.UpdateCopyReq) (*model.BookCopy, error) {
	return nil, nil
}
func (m *copyMock) Delete(ctx context.Context, s remote.Session, id string) error { return nil }

type reservationMock struct {
	getFn       func(id string) (*model.Reservation, error)
	assignFn    func(id, copyID string) (*model.Reservation, error)
	assignCalls int
}

var _ reservationrepo.Repo = (*reservationMock)(nil)

func (m *reservationMock) List(ctx context.Context, s remote.Session) ([]model.Reservation, error) {
	return nil, nil
}
func (m *reservationMock) ListMine(ctx context.Context, s remote.Session) ([]model.Reservation, error) {
	return nil, nil
}
func (m *reservationMock) Get(ctx context.Context, s remote.Session, id string) (*model.Reservation, error) {
	return m.getFn(id)
}
func (m *reservationMock) ListByUser(ctx context.Context, s remote.Session, userID string) ([]model.Reservation, error) {
	return nil, nil
}
func (m *reservationMock) ListByCopy(ctx context.Context, s remote.Session, copyID string) ([]model.Reservation, error) {
	return nil, nil
}
func (m *reservationMock) Create(ctx context.Context, s remote.Session, req model.CreateReservationReq) (*model.Reservation, error) {
	return nil, nil
}
func (m *reservationMock) AssignCopy(ctx context.Context, s remote.Session, id, copyID string) (*model.Reservation, error) {
	m.assignCalls++
	return m.assignFn(id, copyID)
}
func (m *reservationMock) Update(ctx context.Context, s remote.Session, id string, req model.UpdateReservationReq) (*model.Reservation, error) {
	return nil, nil
}
func (m *reservationMock) Delete(ctx context.Context, s remote.Session, id string) error {
	return nil
}

type transactionMock struct {
	fromReservationFn    func(req model.FromReservationReq) (*model.Transaction, error)
	createFn             func(req model.BorrowReq) (*model.Transaction, error)
	fromReservationCalls int
}

var _ transactionrepo.Repo = (*transactionMock)(nil)

func (m *transactionMock) Create(ctx context.Context, s remote.Session, req model.BorrowReq) (*model.Transaction, error) {
	return m.createFn(req)
}
func (m *transactionMock) CreateFromReservation(ctx context.Context, s remote.Session, req model.FromReservationReq) (*model.Transaction, error) {
	m.fromReservationCalls++
	return m.fromReservationFn(req)
}
func (m *transactionMock) Get(ctx context.Context, s remote.Session, id string) (*model.Transaction, error) {
	return nil, nil
}
func (m *transactionMock) PendingReturns(ctx context.Context, s remote.Session) ([]model.Transaction, error) {
	return nil, nil
}
func (m *transactionMock) ByCopy(ctx context.Context, s remote.Session, copyID string) ([]model.Transaction, error) {
	return nil, nil
}
func (m *transactionMock) ApproveReturn(ctx context.Context, s remote.Session, id string, req model.ApproveReturnReq) (*model.Transaction, error) {
	return nil, nil
}
func (m *transactionMock) Details(ctx context.Context, s remote.Session, id string) ([]model.TransactionDetail, error) {
	return nil, nil
}

var staff = remote.Session{Token: "tok", UserID: "L1", Role: model.RoleLibrarian}

func ptr[T any](v T) *T { return &v }

// --- tests ---

func TestListAvailableCopiesForTitle_FiltersFresh(t *testing.T) {
	cm := &copyMock{byTitle: func(titleID string) ([]model.BookCopy, error) {
		return []model.BookCopy{
			{ID: "BCP001", BookTitleID: "BT1", Status: model.CopyAvailable},
			{ID: "BCP002", BookTitleID: "BT1", Status: model.CopyBorrowed},
			{ID: "BCP003", BookTitleID: "BT1", Status: model.CopyReserved},
			{ID: "BCP004", BookTitleID: "BT2", Status: model.CopyAvailable},
		}, nil
	}}
	svc := New(cm, &reservationMock{}, &transactionMock{}, 14)

	got, err := svc.ListAvailableCopiesForTitle(context.Background(), staff, "BT1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "BCP001", got[0].ID)
}

func TestAssignCopy_Success(t *testing.T) {
	cm := &copyMock{getFn: func(id string) (*model.BookCopy, error) {
		return &model.BookCopy{ID: id, BookTitleID: "BT1", Status: model.CopyAvailable}, nil
	}}
	rm := &reservationMock{assignFn: func(id, copyID string) (*model.Reservation, error) {
		return &model.Reservation{ID: id, BookCopyID: &copyID, Status: model.ReservationReady}, nil
	}}
	svc := New(cm, rm, &transactionMock{}, 14)

	res, err := svc.AssignCopy(context.Background(), staff, "R1", "BCP001")
	require.NoError(t, err)
	require.Equal(t, model.ReservationReady, res.Status)
	require.Equal(t, "BCP001", *res.BookCopyID)
	require.Equal(t, 1, rm.assignCalls)
}

func TestAssignCopy_NotAvailableIsConflict(t *testing.T) {
	cm := &copyMock{getFn: func(id string) (*model.BookCopy, error) {
		return &model.BookCopy{ID: id, Status: model.CopyBorrowed}, nil
	}}
	rm := &reservationMock{}
	svc := New(cm, rm, &transactionMock{}, 14)

	_, err := svc.AssignCopy(context.Background(), staff, "R2", "BCP002")
	require.Error(t, err)
	require.Equal(t, apperr.ErrConflict, apperr.Code(err))
	// guard fires before any assignment reaches the backend
	require.Zero(t, rm.assignCalls)
}

func TestAssignCopy_NonStaffRejectedWithoutNetwork(t *testing.T) {
	cm := &copyMock{getFn: func(id string) (*model.BookCopy, error) {
		t.Fatal("should not fetch")
		return nil, nil
	}}
	svc := New(cm, &reservationMock{}, &transactionMock{}, 14)

	_, err := svc.AssignCopy(context.Background(), remote.Session{Token: "t", Role: model.RoleUser}, "R1", "BCP001")
	require.Equal(t, apperr.ErrAuthorization, apperr.Code(err))
	require.Zero(t, cm.getCalls)
}

func TestConvertToTransaction_NoAssignedCopyIsPrecondition(t *testing.T) {
	rm := &reservationMock{getFn: func(id string) (*model.Reservation, error) {
		return &model.Reservation{ID: id, Status: model.ReservationPending}, nil
	}}
	tm := &transactionMock{}
	svc := New(&copyMock{}, rm, tm, 14)

	_, err := svc.ConvertToTransaction(context.Background(), staff, "R1", "")
	require.Error(t, err)
	require.Equal(t, apperr.ErrPrecondition, apperr.Code(err))
	require.EqualError(t, err, "assign a copy first")
	require.Zero(t, tm.fromReservationCalls)
}

func TestConvertToTransaction_MissingActorIsAuthorization(t *testing.T) {
	svc := New(&copyMock{}, &reservationMock{}, &transactionMock{}, 14)
	_, err := svc.ConvertToTransaction(context.Background(), remote.Anonymous(), "R1", "BCP001")
	require.Equal(t, apperr.ErrAuthorization, apperr.Code(err))
}

func TestConvertToTransaction_Success(t *testing.T) {
	borrow := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	rm := &reservationMock{getFn: func(id string) (*model.Reservation, error) {
		return &model.Reservation{ID: id, BookCopyID: ptr("BCP001"), Status: model.ReservationReady}, nil
	}}
	tm := &transactionMock{fromReservationFn: func(req model.FromReservationReq) (*model.Transaction, error) {
		require.Equal(t, "R1", req.ReservationID)
		require.Equal(t, "BCP001", req.BookCopyID)
		return &model.Transaction{ID: "T1", BookCopyID: "BCP001", BorrowDate: borrow, Status: model.TransactionBorrowed}, nil
	}}
	svc := New(&copyMock{}, rm, tm, 14)

	tx, err := svc.ConvertToTransaction(context.Background(), staff, "R1", "BCP001")
	require.NoError(t, err)
	require.Equal(t, model.TransactionBorrowed, tx.Status)
	// server sent no due date, so the 14-day default fills it
	require.Equal(t, borrow.AddDate(0, 0, 14), tx.DueDate)
}

func TestConvertToTransaction_ServerDueDateWins(t *testing.T) {
	serverDue := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	rm := &reservationMock{getFn: func(id string) (*model.Reservation, error) {
		return &model.Reservation{ID: id, BookCopyID: ptr("BCP001"), Status: model.ReservationReady}, nil
	}}
	tm := &transactionMock{fromReservationFn: func(req model.FromReservationReq) (*model.Transaction, error) {
		return &model.Transaction{ID: "T1", DueDate: serverDue}, nil
	}}
	svc := New(&copyMock{}, rm, tm, 14)

	tx, err := svc.ConvertToTransaction(context.Background(), staff, "R1", "")
	require.NoError(t, err)
	require.Equal(t, serverDue, tx.DueDate)
}

func TestConvertToTransaction_RetryAfterFailureWithoutReassign(t *testing.T) {
	rm := &reservationMock{getFn: func(id string) (*model.Reservation, error) {
		// assignment already stuck: READY_FOR_PICKUP with bound copy
		return &model.Reservation{ID: id, BookCopyID: ptr("BCP001"), Status: model.ReservationReady}, nil
	}}
	fail := true
	tm := &transactionMock{fromReservationFn: func(req model.FromReservationReq) (*model.Transaction, error) {
		if fail {
			return nil, apperr.New(apperr.ErrTransport, "backend unreachable")
		}
		return &model.Transaction{ID: "T1", DueDate: time.Now().Add(time.Hour)}, nil
	}}
	svc := New(&copyMock{}, rm, tm, 14)

	_, err := svc.ConvertToTransaction(context.Background(), staff, "R1", "")
	require.Equal(t, apperr.ErrTransport, apperr.Code(err))

	fail = false
	tx, err := svc.ConvertToTransaction(context.Background(), staff, "R1", "")
	require.NoError(t, err)
	require.Equal(t, "T1", tx.ID)
	require.Zero(t, rm.assignCalls)
	require.Equal(t, 2, tm.fromReservationCalls)
}

func TestBorrow_GuardsAvailability(t *testing.T) {
	cm := &copyMock{getFn: func(id string) (*model.BookCopy, error) {
		return &model.BookCopy{ID: id, Status: model.CopyReserved}, nil
	}}
	svc := New(cm, &reservationMock{}, &transactionMock{}, 14)

	_, err := svc.Borrow(context.Background(), staff, model.BorrowReq{UserID: "U1", BookCopyID: "BCP001"})
	require.Equal(t, apperr.ErrConflict, apperr.Code(err))
}
