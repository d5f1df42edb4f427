package adminapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/opsline/stockpile/internal/app"
	"github.com/opsline/stockpile/internal/domain"
)

var appctx app.AppContext

// Init binds the application context and registers all API routes. The web
// server must be initialized first.
func Init(ctx app.AppContext) {
	appctx = ctx
	registerProductRoutes()
	registerSupplierRoutes()
	registerOrderRoutes()
	registerExportRoutes()
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"code": "OK",
		"data": data,
	})
}

func fail(c echo.Context, status int, code, msg string, detail interface{}) error {
	body := map[string]interface{}{
		"code": code,
		"msg":  msg,
	}
	if detail != nil {
		body["detail"] = detail
	}
	return c.JSON(status, body)
}

func paged(c echo.Context, rows interface{}, total int64, page, pageSize int) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"code":     "OK",
		"data":     rows,
		"total":    total,
		"page":     page,
		"pageSize": pageSize,
	})
}

func parsePagination(c echo.Context) (page, pageSize int) {
	page, pageSize = 1, 20
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}
	if ps, err := strconv.Atoi(c.QueryParam("pageSize")); err == nil && ps > 0 && ps <= 500 {
		pageSize = ps
	}
	return page, pageSize
}

// pageBounds clips a [page, pageSize] window to a collection of n records.
func pageBounds(n, page, pageSize int) (lo, hi int) {
	lo = (page - 1) * pageSize
	if lo > n {
		lo = n
	}
	hi = lo + pageSize
	if hi > n {
		hi = n
	}
	return lo, hi
}

// failDomain maps core errors onto the response envelope.
func failDomain(c echo.Context, err error, kind string) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", ve.Reason, nil)
	}
	var nfe *domain.NotFoundError
	if errors.As(err, &nfe) {
		return fail(c, http.StatusNotFound, "NOT_FOUND", nfe.Error(), map[string]string{
			"kind": nfe.Kind,
			"id":   nfe.ID,
		})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return fail(c, http.StatusNotFound, "NOT_FOUND", kind+" not found", nil)
	}
	return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
}
