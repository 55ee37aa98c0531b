package balancesvc

import (
	"context"
	"sort"

	"librarydesk/model"
	balancerepo "librarydesk/repository/balance"
	"librarydesk/repository/remote"
	"librarydesk/util/apperr"
)

type Service interface {
	ListMine(ctx context.Context, s remote.Session) ([]model.BalanceTransaction, error)
	ListForUser(ctx context.Context, s remote.Session, userID string) ([]model.BalanceTransaction, error)
	ListAll(ctx context.Context, s remote.Session) ([]model.BalanceTransaction, error)
	Deposit(ctx context.Context, s remote.Session, req model.AmountReq) (*model.BalanceTransaction, error)
	Withdraw(ctx context.Context, s remote.Session, req model.AmountReq) (*model.BalanceTransaction, error)
	// CurrentBalance is the BalanceAfter of the newest ledger entry.
	// Never a client-side running sum; drift is not an option.
	CurrentBalance(ctx context.Context, s remote.Session, userID string) (int64, error)
}

type service struct{ r balancerepo.Repo }

func New(r balancerepo.Repo) Service { return &service{r: r} }

func (s *service) ListMine(ctx context.Context, sess remote.Session) ([]model.BalanceTransaction, error) {
	return s.r.ListMine(ctx, sess)
}

func (s *service) ListForUser(ctx context.Context, sess remote.Session, userID string) ([]model.BalanceTransaction, error) {
	return s.r.ListByUser(ctx, sess, userID)
}

func (s *service) ListAll(ctx context.Context, sess remote.Session) ([]model.BalanceTransaction, error) {
	if sess.Role != model.RoleAdmin {
		return nil, apperr.New(apperr.ErrAuthorization, "admin role required")
	}
	return s.r.ListAll(ctx, sess)
}

func (s *service) Deposit(ctx context.Context, sess remote.Session, req model.AmountReq) (*model.BalanceTransaction, error) {
	if err := checkAmount(req.Amount); err != nil {
		return nil, err
	}
	return s.r.CreateDeposit(ctx, sess, req)
}

func (s *service) Withdraw(ctx context.Context, sess remote.Session, req model.AmountReq) (*model.BalanceTransaction, error) {
	if err := checkAmount(req.Amount); err != nil {
		return nil, err
	}
	return s.r.CreateWithdrawal(ctx, sess, req)
}

func (s *service) CurrentBalance(ctx context.Context, sess remote.Session, userID string) (int64, error) {
	rows, err := s.r.ListByUser(ctx, sess, userID)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Timestamp.Before(rows[j].Timestamp)
	})
	return rows[len(rows)-1].BalanceAfter, nil
}

// amounts are positive integers of the smallest currency unit
func checkAmount(amount int64) error {
	if amount <= 0 {
		return apperr.New(apperr.ErrValidation, "amount must be a positive integer")
	}
	return nil
}
