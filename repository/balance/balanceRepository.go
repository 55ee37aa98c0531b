package balancerepo

import (
	"context"
	"net/url"

	"librarydesk/model"
	"librarydesk/repository/remote"
)

type Repo interface {
	ListMine(ctx context.Context, s remote.Session) ([]model.BalanceTransaction, error)
	ListByUser(ctx context.Context, s remote.Session, userID string) ([]model.BalanceTransaction, error)
	ListAll(ctx context.Context, s remote.Session) ([]model.BalanceTransaction, error)
	CreateDeposit(ctx context.Context, s remote.Session, req model.AmountReq) (*model.BalanceTransaction, error)
	CreateWithdrawal(ctx context.Context, s remote.Session, req model.AmountReq) (*model.BalanceTransaction, error)
}

type httpRepo struct{ c *remote.Client }

func NewHTTP(c *remote.Client) Repo { return &httpRepo{c: c} }

func (r *httpRepo) ListMine(ctx context.Context, s remote.Session) ([]model.BalanceTransaction, error) {
	var out []model.BalanceTransaction
	if err := r.c.Get(ctx, s, "/api/balances/my", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *httpRepo) ListByUser(ctx context.Context, s remote.Session, userID string) ([]model.BalanceTransaction, error) {
	var out []model.BalanceTransaction
	if err := r.c.Get(ctx, s, "/api/balances/user/"+url.PathEscape(userID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *httpRepo) ListAll(ctx context.Context, s remote.Session) ([]model.BalanceTransaction, error) {
	var out []model.BalanceTransaction
	if err := r.c.Get(ctx, s, "/api/balances", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *httpRepo) CreateDeposit(ctx context.Context, s remote.Session, req model.AmountReq) (*model.BalanceTransaction, error) {
	var out model.BalanceTransaction
	if err := r.c.Post(ctx, s, "/api/balances/deposit", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *httpRepo) CreateWithdrawal(ctx context.Context, s remote.Session, req model.AmountReq) (*model.BalanceTransaction, error) {
	var out model.BalanceTransaction
	if err := r.c.Post(ctx, s, "/api/balances/withdrawal", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
