package copyctrl

import (
	"log/slog"
	"net/http"

	"librarydesk/app/echoServer/controller/respond"
	"librarydesk/app/echoServer/jwtx"
	"librarydesk/model"
	copysvc "librarydesk/service/copy"
	"librarydesk/service/inventory"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc copysvc.Service
	Inv inventory.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /v1/bookCopies?q=&status=&condition=
func (h *Controller) List(c echo.Context) error {
	sess := jwtx.SessionFromContext(c)
	f := inventory.Filter{
		Query:     c.QueryParam("q"),
		Status:    model.CopyStatus(c.QueryParam("status")),
		Condition: model.CopyCondition(c.QueryParam("condition")),
	}
	rows, err := h.Inv.Search(c.Request().Context(), sess, f)
	if err != nil {
		return respond.Err(c, h.Log, "copy list", err)
	}
	return respond.Data(c, http.StatusOK, rows)
}

// GET /v1/bookCopies/:id
func (h *Controller) Detail(c echo.Context) error {
	sess := jwtx.SessionFromContext(c)
	out, err := h.Svc.Get(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return respond.Err(c, h.Log, "copy detail", err)
	}
	return respond.Data(c, http.StatusOK, out)
}

// POST /v1/bookCopies
func (h *Controller) Create(c echo.Context) error {
	var req model.CreateCopiesReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	sess := jwtx.SessionFromContext(c)

	out, err := h.Svc.CreateBatch(c.Request().Context(), sess, req)
	if err != nil {
		return respond.Err(c, h.Log, "copy create", err)
	}
	return respond.Data(c, http.StatusCreated, out)
}

// PUT /v1/bookCopies/:id
func (h *Controller) Update(c echo.Context) error {
	var req model.UpdateCopyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	sess := jwtx.SessionFromContext(c)

	out, err := h.Svc.Update(c.Request().Context(), sess, c.Param("id"), req)
	if err != nil {
		return respond.Err(c, h.Log, "copy update", err)
	}
	return respond.Data(c, http.StatusOK, out)
}

// DELETE /v1/bookCopies/:id?confirm=true
func (h *Controller) Delete(c echo.Context) error {
	sess := jwtx.SessionFromContext(c)
	confirm := c.QueryParam("confirm") == "true"

	if err := h.Svc.Delete(c.Request().Context(), sess, c.Param("id"), confirm); err != nil {
		return respond.Err(c, h.Log, "copy delete", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}
