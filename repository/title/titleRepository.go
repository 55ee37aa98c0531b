package titlerepo

import (
	"context"
	"net/url"

	"librarydesk/model"
	"librarydesk/repository/remote"
)

type Repo interface {
	List(ctx context.Context, s remote.Session) ([]model.BookTitle, error)
	Get(ctx context.Context, s remote.Session, id string) (*model.BookTitle, error)
	Search(ctx context.Context, s remote.Session, q string) ([]model.BookTitle, error)
}

type httpRepo struct{ c *remote.Client }

func NewHTTP(c *remote.Client) Repo { return &httpRepo{c: c} }

func (r *httpRepo) List(ctx context.Context, s remote.Session) ([]model.BookTitle, error) {
	var out []model.BookTitle
	if err := r.c.Get(ctx, s, "/api/bookTitles", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *httpRepo) Get(ctx context.Context, s remote.Session, id string) (*model.BookTitle, error) {
	var out model.BookTitle
	if err := r.c.Get(ctx, s, "/api/bookTitles/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *httpRepo) Search(ctx context.Context, s remote.Session, q string) ([]model.BookTitle, error) {
	var out []model.BookTitle
	if err := r.c.Get(ctx, s, "/api/bookTitles?q="+url.QueryEscape(q), &out); err != nil {
		return nil, err
	}
	return out, nil
}
