package balancectrl

import (
	"context"
	"log/slog"
	"net/http"

	"librarydesk/app/echoServer/controller/respond"
	"librarydesk/app/echoServer/jwtx"
	"librarydesk/model"
	"librarydesk/repository/remote"
	balancesvc "librarydesk/service/balance"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc balancesvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /v1/balances/my
func (h *Controller) ListMine(c echo.Context) error {
	sess := jwtx.SessionFromContext(c)
	rows, err := h.Svc.ListMine(c.Request().Context(), sess)
	if err != nil {
		return respond.Err(c, h.Log, "balance mine", err)
	}
	return respond.Data(c, http.StatusOK, rows)
}

// GET /v1/balances/user/:userId
func (h *Controller) ListByUser(c echo.Context) error {
	sess := jwtx.SessionFromContext(c)
	rows, err := h.Svc.ListForUser(c.Request().Context(), sess, c.Param("userId"))
	if err != nil {
		return respond.Err(c, h.Log, "balance by user", err)
	}
	return respond.Data(c, http.StatusOK, rows)
}

// GET /v1/balances
func (h *Controller) ListAll(c echo.Context) error {
	sess := jwtx.SessionFromContext(c)
	rows, err := h.Svc.ListAll(c.Request().Context(), sess)
	if err != nil {
		return respond.Err(c, h.Log, "balance all", err)
	}
	return respond.Data(c, http.StatusOK, rows)
}

// GET /v1/balances/user/:userId/current
func (h *Controller) Current(c echo.Context) error {
	sess := jwtx.SessionFromContext(c)
	bal, err := h.Svc.CurrentBalance(c.Request().Context(), sess, c.Param("userId"))
	if err != nil {
		return respond.Err(c, h.Log, "current balance", err)
	}
	return respond.Data(c, http.StatusOK, echo.Map{"balance": bal})
}

// POST /v1/balances/deposit
func (h *Controller) Deposit(c echo.Context) error {
	return h.amountOp(c, "deposit", h.Svc.Deposit)
}

// POST /v1/balances/withdrawal
func (h *Controller) Withdraw(c echo.Context) error {
	return h.amountOp(c, "withdraw", h.Svc.Withdraw)
}

func (h *Controller) amountOp(c echo.Context, op string, fn func(ctx context.Context, s remote.Session, req model.AmountReq) (*model.BalanceTransaction, error)) error {
	var req model.AmountReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	sess := jwtx.SessionFromContext(c)

	out, err := fn(c.Request().Context(), sess, req)
	if err != nil {
		return respond.Err(c, h.Log, op, err)
	}
	return respond.Data(c, http.StatusCreated, out)
}
