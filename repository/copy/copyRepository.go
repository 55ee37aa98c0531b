package copyrepo

import (
	"context"
	"fmt"
	"net/url"

	"librarydesk/model"
	"librarydesk/repository/remote"
)

type Repo interface {
	// List returns copies enriched with borrower/due info.
	List(ctx context.Context, s remote.Session) ([]model.BookCopy, error)
	Get(ctx context.Context, s remote.Session, id string) (*model.BookCopy, error)
	ListByTitle(ctx context.Context, s remote.Session, titleID string) ([]model.BookCopy, error)
	CreateBatch(ctx context.Context, s remote.Session, req model.CreateCopiesReq) ([]model.BookCopy, error)
	Update(ctx context.Context, s remote.Session, id string, req model.UpdateCopyReq) (*model.BookCopy, error)
	Delete(ctx context.Context, s remote.Session, id string) error
}

type httpRepo struct{ c *remote.Client }

func NewHTTP(c *remote.Client) Repo { return &httpRepo{c: c} }

func (r *httpRepo) List(ctx context.Context, s remote.Session) ([]model.BookCopy, error) {
	var out []model.BookCopy
	if err := r.c.Get(ctx, s, "/api/bookCopies", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *httpRepo) Get(ctx context.Context, s remote.Session, id string) (*model.BookCopy, error) {
	var out model.BookCopy
	if err := r.c.Get(ctx, s, "/api/bookCopies/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *httpRepo) ListByTitle(ctx context.Context, s remote.Session, titleID string) ([]model.BookCopy, error) {
	var out []model.BookCopy
	path := fmt.Sprintf("/api/bookCopies?bookTitleId=%s", url.QueryEscape(titleID))
	if err := r.c.Get(ctx, s, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *httpRepo) CreateBatch(ctx context.Context, s remote.Session, req model.CreateCopiesReq) ([]model.BookCopy, error) {
	var out []model.BookCopy
	if err := r.c.Post(ctx, s, "/api/bookCopies", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *httpRepo) Update(ctx context.Context, s remote.Session, id string, req model.UpdateCopyReq) (*model.BookCopy, error) {
	var out model.BookCopy
	if err := r.c.Put(ctx, s, "/api/bookCopies/"+url.PathEscape(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *httpRepo) Delete(ctx context.Context, s remote.Session, id string) error {
	return r.c.Delete(ctx, s, "/api/bookCopies/"+url.PathEscape(id))
}
