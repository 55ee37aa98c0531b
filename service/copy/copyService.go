package copysvc

import (
	"context"

	"librarydesk/model"
	copyrepo "librarydesk/repository/copy"
	"librarydesk/repository/remote"
	"librarydesk/service/status"
	"librarydesk/util/apperr"
)

type Service interface {
	List(ctx context.Context, s remote.Session) ([]model.BookCopy, error)
	Get(ctx context.Context, s remote.Session, id string) (*model.BookCopy, error)
	// CreateBatch creates N independent copies of one title, all with
	// the caller's condition.
	CreateBatch(ctx context.Context, s remote.Session, req model.CreateCopiesReq) ([]model.BookCopy, error)
	Update(ctx context.Context, s remote.Session, id string, req model.UpdateCopyReq) (*model.BookCopy, error)
	Delete(ctx context.Context, s remote.Session, id string, confirm bool) error
}

type service struct {
	r copyrepo.Repo
}

func New(r copyrepo.Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context, sess remote.Session) ([]model.BookCopy, error) {
	return s.r.List(ctx, sess)
}

func (s *service) Get(ctx context.Context, sess remote.Session, id string) (*model.BookCopy, error) {
	return s.r.Get(ctx, sess, id)
}

func (s *service) CreateBatch(ctx context.Context, sess remote.Session, req model.CreateCopiesReq) ([]model.BookCopy, error) {
	if req.Quantity <= 0 {
		return nil, apperr.New(apperr.ErrValidation, "quantity must be positive")
	}
	if !sess.Role.IsStaff() {
		return nil, apperr.New(apperr.ErrAuthorization, "staff role required")
	}
	return s.r.CreateBatch(ctx, sess, req)
}

// Update applies a manual status and/or condition edit, gated by the
// status engine. The returned copy is re-fetched after the write so
// callers only ever see backend truth.
func (s *service) Update(ctx context.Context, sess remote.Session, id string, req model.UpdateCopyReq) (*model.BookCopy, error) {
	if req.Status == nil && req.Condition == nil {
		return nil, apperr.New(apperr.ErrValidation, "nothing to update")
	}

	cur, err := s.r.Get(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if !status.CanEditStatus(sess.Role, cur) {
			return nil, apperr.New(apperr.ErrAuthorization, "cannot edit status of this copy")
		}
		if !status.IsValidTarget(cur, *req.Status) {
			return nil, apperr.New(apperr.ErrValidation, "status "+string(*req.Status)+" is not a manual edit target")
		}
	}
	if req.Condition != nil && !status.CanEditCondition(sess.Role) {
		return nil, apperr.New(apperr.ErrAuthorization, "cannot edit condition")
	}

	if _, err := s.r.Update(ctx, sess, id, req); err != nil {
		return nil, err
	}
	return s.r.Get(ctx, sess, id)
}

// Delete refuses while an open loan references the copy; the backend
// enforces the same rule authoritatively.
func (s *service) Delete(ctx context.Context, sess remote.Session, id string, confirm bool) error {
	if !confirm {
		return apperr.New(apperr.ErrValidation, "deletion requires confirmation")
	}
	if !sess.Role.IsStaff() {
		return apperr.New(apperr.ErrAuthorization, "staff role required")
	}

	cur, err := s.r.Get(ctx, sess, id)
	if err != nil {
		return err
	}
	if cur.Status == model.CopyBorrowed || (cur.BorrowerID != nil && *cur.BorrowerID != "") {
		return apperr.New(apperr.ErrConflict, "copy has an open loan and cannot be deleted")
	}
	return s.r.Delete(ctx, sess, id)
}
