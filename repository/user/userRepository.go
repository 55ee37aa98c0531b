package userrepo

import (
	"context"
	"net/url"

	"librarydesk/model"
	"librarydesk/repository/remote"
)

type Repo interface {
	Me(ctx context.Context, s remote.Session) (*model.User, error)
	Get(ctx context.Context, s remote.Session, id string) (*model.User, error)
	// SearchByCCCD looks users up by citizen id, the primary
	// human-searchable identifier at the desk.
	SearchByCCCD(ctx context.Context, s remote.Session, cccd string) ([]model.User, error)
}

type httpRepo struct{ c *remote.Client }

func NewHTTP(c *remote.Client) Repo { return &httpRepo{c: c} }

func (r *httpRepo) Me(ctx context.Context, s remote.Session) (*model.User, error) {
	var out model.User
	if err := r.c.Get(ctx, s, "/api/users/me", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *httpRepo) Get(ctx context.Context, s remote.Session, id string) (*model.User, error) {
	var out model.User
	if err := r.c.Get(ctx, s, "/api/users/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *httpRepo) SearchByCCCD(ctx context.Context, s remote.Session, cccd string) ([]model.User, error) {
	var out []model.User
	if err := r.c.Get(ctx, s, "/api/users?cccd="+url.QueryEscape(cccd), &out); err != nil {
		return nil, err
	}
	return out, nil
}
