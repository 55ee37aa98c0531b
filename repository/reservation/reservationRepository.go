package reservationrepo

import (
	"context"
	"net/url"

	"librarydesk/model"
	"librarydesk/repository/remote"
)

type Repo interface {
	List(ctx context.Context, s remote.Session) ([]model.Reservation, error)
	ListMine(ctx context.Context, s remote.Session) ([]model.Reservation, error)
	Get(ctx context.Context, s remote.Session, id string) (*model.Reservation, error)
	ListByUser(ctx context.Context, s remote.Session, userID string) ([]model.Reservation, error)
	ListByCopy(ctx context.Context, s remote.Session, copyID string) ([]model.Reservation, error)
	// Create takes the title only; the server derives deposit,
	// expiration and capacity.
	Create(ctx context.Context, s remote.Session, req model.CreateReservationReq) (*model.Reservation, error)
	AssignCopy(ctx context.Context, s remote.Session, id, copyID string) (*model.Reservation, error)
	Update(ctx context.Context, s remote.Session, id string, req model.UpdateReservationReq) (*model.Reservation, error)
	Delete(ctx context.Context, s remote.Session, id string) error
}

type httpRepo struct{ c *remote.Client }

func NewHTTP(c *remote.Client) Repo { return &httpRepo{c: c} }

func (r *httpRepo) List(ctx context.Context, s remote.Session) ([]model.Reservation, error) {
	var out []model.Reservation
	if err := r.c.Get(ctx, s, "/api/reservations", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *httpRepo) ListMine(ctx context.Context, s remote.Session) ([]model.Reservation, error) {
	var out []model.Reservation
	if err := r.c.Get(ctx, s, "/api/reservations/my", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *httpRepo) Get(ctx context.Context, s remote.Session, id string) (*model.Reservation, error) {
	var out model.Reservation
	if err := r.c.Get(ctx, s, "/api/reservations/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *httpRepo) ListByUser(ctx context.Context, s remote.Session, userID string) ([]model.Reservation, error) {
	var out []model.Reservation
	if err := r.c.Get(ctx, s, "/api/reservations/user/"+url.PathEscape(userID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *httpRepo) ListByCopy(ctx context.Context, s remote.Session, copyID string) ([]model.Reservation, error) {
	var out []model.Reservation
	if err := r.c.Get(ctx, s, "/api/reservations/bookCopy/"+url.PathEscape(copyID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *httpRepo) Create(ctx context.Context, s remote.Session, req model.CreateReservationReq) (*model.Reservation, error) {
	var out model.Reservation
	if err := r.c.Post(ctx, s, "/api/reservations", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *httpRepo) AssignCopy(ctx context.Context, s remote.Session, id, copyID string) (*model.Reservation, error) {
	var out model.Reservation
	body := model.AssignCopyReq{BookCopyID: copyID}
	if err := r.c.Post(ctx, s, "/api/reservations/"+url.PathEscape(id)+"/assign", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *httpRepo) Update(ctx context.Context, s remote.Session, id string, req model.UpdateReservationReq) (*model.Reservation, error) {
	var out model.Reservation
	if err := r.c.Put(ctx, s, "/api/reservations/"+url.PathEscape(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *httpRepo) Delete(ctx context.Context, s remote.Session, id string) error {
	return r.c.Delete(ctx, s, "/api/reservations/"+url.PathEscape(id))
}
