package transactionrepo

import (
	"context"
	"net/url"

	"librarydesk/model"
	"librarydesk/repository/remote"
)

type Repo interface {
	Create(ctx context.Context, s remote.Session, req model.BorrowReq) (*model.Transaction, error)
	CreateFromReservation(ctx context.Context, s remote.Session, req model.FromReservationReq) (*model.Transaction, error)
	Get(ctx context.Context, s remote.Session, id string) (*model.Transaction, error)
	PendingReturns(ctx context.Context, s remote.Session) ([]model.Transaction, error)
	ByCopy(ctx context.Context, s remote.Session, copyID string) ([]model.Transaction, error)
	ApproveReturn(ctx context.Context, s remote.Session, id string, req model.ApproveReturnReq) (*model.Transaction, error)
	Details(ctx context.Context, s remote.Session, id string) ([]model.TransactionDetail, error)
}

type httpRepo struct{ c *remote.Client }

func NewHTTP(c *remote.Client) Repo { return &httpRepo{c: c} }

func (r *httpRepo) Create(ctx context.Context, s remote.Session, req model.BorrowReq) (*model.Transaction, error) {
	var out model.Transaction
	if err := r.c.Post(ctx, s, "/api/transactions", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *httpRepo) CreateFromReservation(ctx context.Context, s remote.Session, req model.FromReservationReq) (*model.Transaction, error) {
	var out model.Transaction
	if err := r.c.Post(ctx, s, "/api/transactions/fromReservation", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *httpRepo) Get(ctx context.Context, s remote.Session, id string) (*model.Transaction, error) {
	var out model.Transaction
	if err := r.c.Get(ctx, s, "/api/transactions/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *httpRepo) PendingReturns(ctx context.Context, s remote.Session) ([]model.Transaction, error) {
	var out []model.Transaction
	if err := r.c.Get(ctx, s, "/api/transactions/pendingReturns", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *httpRepo) ByCopy(ctx context.Context, s remote.Session, copyID string) ([]model.Transaction, error) {
	var out []model.Transaction
	if err := r.c.Get(ctx, s, "/api/transactions/bookCopy/"+url.PathEscape(copyID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *httpRepo) ApproveReturn(ctx context.Context, s remote.Session, id string, req model.ApproveReturnReq) (*model.Transaction, error) {
	var out model.Transaction
	if err := r.c.Post(ctx, s, "/api/transactions/"+url.PathEscape(id)+"/approveReturn", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *httpRepo) Details(ctx context.Context, s remote.Session, id string) ([]model.TransactionDetail, error) {
	var out []model.TransactionDetail
	if err := r.c.Get(ctx, s, "/api/transactions/"+url.PathEscape(id)+"/details", &out); err != nil {
		return nil, err
	}
	return out, nil
}
