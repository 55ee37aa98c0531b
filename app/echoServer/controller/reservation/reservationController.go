package reservationctrl

import (
	"log/slog"
	"net/http"

	"librarydesk/app/echoServer/controller/respond"
	"librarydesk/app/echoServer/jwtx"
	"librarydesk/model"
	reservationrepo "librarydesk/repository/reservation"
	"librarydesk/service/fulfillment"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Repo reservationrepo.Repo
	Flow fulfillment.Service
	V    *validator.Validate
	Log  *slog.Logger
}

// GET /v1/reservations
func (h *Controller) List(c echo.Context) error {
	sess := jwtx.SessionFromContext(c)
	rows, err := h.Repo.List(c.Request().Context(), sess)
	if err != nil {
		return respond.Err(c, h.Log, "reservation list", err)
	}
	return respond.Data(c, http.StatusOK, rows)
}

// GET /v1/reservations/my
func (h *Controller) ListMine(c echo.Context) error {
	sess := jwtx.SessionFromContext(c)
	rows, err := h.Repo.ListMine(c.Request().Context(), sess)
	if err != nil {
		return respond.Err(c, h.Log, "reservation mine", err)
	}
	return respond.Data(c, http.StatusOK, rows)
}

// GET /v1/reservations/:id
func (h *Controller) Detail(c echo.Context) error {
	sess := jwtx.SessionFromContext(c)
	out, err := h.Repo.Get(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return respond.Err(c, h.Log, "reservation detail", err)
	}
	return respond.Data(c, http.StatusOK, out)
}

// GET /v1/reservations/user/:userId
func (h *Controller) ListByUser(c echo.Context) error {
	sess := jwtx.SessionFromContext(c)
	rows, err := h.Repo.ListByUser(c.Request().Context(), sess, c.Param("userId"))
	if err != nil {
		return respond.Err(c, h.Log, "reservation by user", err)
	}
	return respond.Data(c, http.StatusOK, rows)
}

// GET /v1/reservations/bookCopy/:copyId
func (h *Controller) ListByCopy(c echo.Context) error {
	sess := jwtx.SessionFromContext(c)
	rows, err := h.Repo.ListByCopy(c.Request().Context(), sess, c.Param("copyId"))
	if err != nil {
		return respond.Err(c, h.Log, "reservation by copy", err)
	}
	return respond.Data(c, http.StatusOK, rows)
}

// POST /v1/reservations
func (h *Controller) Create(c echo.Context) error {
	var req model.CreateReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	sess := jwtx.SessionFromContext(c)

	out, err := h.Repo.Create(c.Request().Context(), sess, req)
	if err != nil {
		return respond.Err(c, h.Log, "reservation create", err)
	}
	return respond.Data(c, http.StatusCreated, out)
}

// GET /v1/reservations/:id/availableCopies
func (h *Controller) AvailableCopies(c echo.Context) error {
	sess := jwtx.SessionFromContext(c)
	res, err := h.Repo.Get(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return respond.Err(c, h.Log, "reservation detail", err)
	}
	rows, err := h.Flow.ListAvailableCopiesForTitle(c.Request().Context(), sess, res.BookTitleID)
	if err != nil {
		return respond.Err(c, h.Log, "available copies", err)
	}
	return respond.Data(c, http.StatusOK, rows)
}

// POST /v1/reservations/:id/assign
func (h *Controller) Assign(c echo.Context) error {
	var req model.AssignCopyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	sess := jwtx.SessionFromContext(c)

	out, err := h.Flow.AssignCopy(c.Request().Context(), sess, c.Param("id"), req.BookCopyID)
	if err != nil {
		return respond.Err(c, h.Log, "reservation assign", err)
	}
	return respond.Data(c, http.StatusOK, out)
}

// POST /v1/reservations/:id/convert
func (h *Controller) Convert(c echo.Context) error {
	var req model.AssignCopyReq
	// body optional: the bound copy is taken from the reservation
	_ = c.Bind(&req)
	sess := jwtx.SessionFromContext(c)

	out, err := h.Flow.ConvertToTransaction(c.Request().Context(), sess, c.Param("id"), req.BookCopyID)
	if err != nil {
		return respond.Err(c, h.Log, "reservation convert", err)
	}
	return respond.Data(c, http.StatusCreated, out)
}

// DELETE /v1/reservations/:id
func (h *Controller) Delete(c echo.Context) error {
	sess := jwtx.SessionFromContext(c)
	if err := h.Repo.Delete(c.Request().Context(), sess, c.Param("id")); err != nil {
		return respond.Err(c, h.Log, "reservation delete", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}
