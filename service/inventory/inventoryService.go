// Package inventory is the listing view over copies: substring search,
// display-status and condition filters. Presentation only; every call
// works on a fresh copy list and the status engine does the deriving.
package inventory

import (
	"context"
	"strings"
	"time"

	"librarydesk/model"
	copyrepo "librarydesk/repository/copy"
	"librarydesk/repository/remote"
	"librarydesk/service/status"
)

// Row is a copy plus its derived display status. Conflicted copies
// (LOST with an open loan) carry the warning instead of a status.
type Row struct {
	model.BookCopy
	DisplayStatus model.CopyStatus `json:"displayStatus,omitempty"`
	Warning       string           `json:"warning,omitempty"`
}

type Filter struct {
	Query     string
	Status    model.CopyStatus
	Condition model.CopyCondition
}

type Service interface {
	Search(ctx context.Context, s remote.Session, f Filter) ([]Row, error)
}

type service struct {
	copies copyrepo.Repo
	now    func() time.Time
}

func New(c copyrepo.Repo) Service { return &service{copies: c, now: time.Now} }

func (s *service) Search(ctx context.Context, sess remote.Session, f Filter) ([]Row, error) {
	all, err := s.copies.List(ctx, sess)
	if err != nil {
		return nil, err
	}
	now := s.now()
	q := strings.ToLower(strings.TrimSpace(f.Query))

	var out []Row
	for _, c := range all {
		if q != "" &&
			!strings.Contains(strings.ToLower(c.ID), q) &&
			!strings.Contains(strings.ToLower(c.BookTitle), q) {
			continue
		}
		if f.Condition != "" && c.Condition != f.Condition {
			continue
		}

		row := Row{BookCopy: c}
		st, derr := status.DisplayStatus(&c, now)
		if derr != nil {
			row.Warning = derr.Error()
		} else {
			row.DisplayStatus = st
		}

		// status filter matches the derived status, so OVERDUE is a
		// usable filter value even though it is never persisted
		if f.Status != "" && row.DisplayStatus != f.Status {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}
