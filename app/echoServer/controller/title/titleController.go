package titlectrl

import (
	"log/slog"
	"net/http"

	"librarydesk/app/echoServer/controller/respond"
	"librarydesk/app/echoServer/jwtx"
	"librarydesk/model"
	titlerepo "librarydesk/repository/title"
	"librarydesk/service/fulfillment"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Repo titlerepo.Repo
	Flow fulfillment.Service
	Log  *slog.Logger
}

// GET /v1/bookTitles?q=
func (h *Controller) List(c echo.Context) error {
	sess := jwtx.SessionFromContext(c)
	q := c.QueryParam("q")

	var err error
	var rows []model.BookTitle
	if q != "" {
		rows, err = h.Repo.Search(c.Request().Context(), sess, q)
	} else {
		rows, err = h.Repo.List(c.Request().Context(), sess)
	}
	if err != nil {
		return respond.Err(c, h.Log, "title list", err)
	}
	return respond.Data(c, http.StatusOK, rows)
}

// GET /v1/bookTitles/:id
func (h *Controller) Detail(c echo.Context) error {
	sess := jwtx.SessionFromContext(c)
	out, err := h.Repo.Get(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return respond.Err(c, h.Log, "title detail", err)
	}
	return respond.Data(c, http.StatusOK, out)
}

// GET /v1/bookTitles/:id/availableCopies — recomputed on every call,
// availability is too mutable to cache
func (h *Controller) AvailableCopies(c echo.Context) error {
	sess := jwtx.SessionFromContext(c)
	rows, err := h.Flow.ListAvailableCopiesForTitle(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return respond.Err(c, h.Log, "available copies", err)
	}
	return respond.Data(c, http.StatusOK, rows)
}
