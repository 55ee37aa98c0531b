package userctrl

import (
	"log/slog"
	"net/http"

	"librarydesk/app/echoServer/controller/respond"
	"librarydesk/app/echoServer/jwtx"
	userrepo "librarydesk/repository/user"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Repo userrepo.Repo
	Log  *slog.Logger
}

// GET /v1/users/me
func (h *Controller) Me(c echo.Context) error {
	sess := jwtx.SessionFromContext(c)
	out, err := h.Repo.Me(c.Request().Context(), sess)
	if err != nil {
		return respond.Err(c, h.Log, "me", err)
	}
	return respond.Data(c, http.StatusOK, out)
}

// GET /v1/users/:id
func (h *Controller) Detail(c echo.Context) error {
	sess := jwtx.SessionFromContext(c)
	out, err := h.Repo.Get(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return respond.Err(c, h.Log, "user detail", err)
	}
	return respond.Data(c, http.StatusOK, out)
}

// GET /v1/users?cccd= — desk lookup by citizen id
func (h *Controller) Search(c echo.Context) error {
	cccd := c.QueryParam("cccd")
	if cccd == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "cccd query required"})
	}
	sess := jwtx.SessionFromContext(c)

	rows, err := h.Repo.SearchByCCCD(c.Request().Context(), sess, cccd)
	if err != nil {
		return respond.Err(c, h.Log, "user search", err)
	}
	return respond.Data(c, http.StatusOK, rows)
}
