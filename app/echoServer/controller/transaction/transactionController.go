package transactionctrl

import (
	"log/slog"
	"net/http"

	"librarydesk/app/echoServer/controller/respond"
	"librarydesk/app/echoServer/jwtx"
	"librarydesk/model"
	"librarydesk/service/fulfillment"
	"librarydesk/service/returns"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Flow    fulfillment.Service
	Returns returns.Service
	V       *validator.Validate
	Log     *slog.Logger
}

// POST /v1/transactions
func (h *Controller) Create(c echo.Context) error {
	var req model.BorrowReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	sess := jwtx.SessionFromContext(c)

	out, err := h.Flow.Borrow(c.Request().Context(), sess, req)
	if err != nil {
		return respond.Err(c, h.Log, "borrow", err)
	}
	return respond.Data(c, http.StatusCreated, out)
}

// GET /v1/transactions/pendingReturns
func (h *Controller) PendingReturns(c echo.Context) error {
	sess := jwtx.SessionFromContext(c)
	rows, err := h.Returns.ListPendingReturns(c.Request().Context(), sess)
	if err != nil {
		return respond.Err(c, h.Log, "pending returns", err)
	}
	return respond.Data(c, http.StatusOK, rows)
}

// GET /v1/transactions/bookCopy/:copyId — return intake by copy id.
// An empty list is the "no active transaction" answer, still a 200.
func (h *Controller) ByCopy(c echo.Context) error {
	sess := jwtx.SessionFromContext(c)
	rows, err := h.Returns.FindActiveTransactionsForCopy(c.Request().Context(), sess, c.Param("copyId"))
	if err != nil {
		return respond.Err(c, h.Log, "transactions by copy", err)
	}
	return respond.Data(c, http.StatusOK, rows)
}

// POST /v1/transactions/:id/approveReturn
func (h *Controller) ApproveReturn(c echo.Context) error {
	var req model.ApproveReturnReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	sess := jwtx.SessionFromContext(c)

	out, err := h.Returns.ApproveReturn(c.Request().Context(), sess, c.Param("id"), req)
	if err != nil {
		return respond.Err(c, h.Log, "approve return", err)
	}
	return respond.Data(c, http.StatusOK, out)
}

// GET /v1/transactions/:id/details
func (h *Controller) Details(c echo.Context) error {
	sess := jwtx.SessionFromContext(c)
	rows, err := h.Returns.Details(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return respond.Err(c, h.Log, "transaction details", err)
	}
	return respond.Data(c, http.StatusOK, rows)
}
