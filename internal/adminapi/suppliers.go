package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/opsline/stockpile/internal/domain"
	"github.com/opsline/stockpile/internal/webserver"
)

// registerSupplierRoutes registers supplier directory CRUD endpoints
func registerSupplierRoutes() {
	webserver.ApiGET("/suppliers", listSuppliers)
	webserver.ApiGET("/suppliers/:id", getSupplier)
	webserver.ApiPOST("/suppliers", createSupplier)
	webserver.ApiPUT("/suppliers/:id", updateSupplier)
	webserver.ApiDELETE("/suppliers/:id", deleteSupplier)
}

func listSuppliers(c echo.Context) error {
	page, pageSize := parsePagination(c)
	q := strings.TrimSpace(c.QueryParam("q"))

	rows := appctx.Suppliers().List()
	if q != "" {
		filtered := rows[:0]
		for _, s := range rows {
			if strings.Contains(strings.ToLower(s.Name), strings.ToLower(q)) {
				filtered = append(filtered, s)
			}
		}
		rows = filtered
	}

	total := int64(len(rows))
	lo, hi := pageBounds(len(rows), page, pageSize)
	return paged(c, rows[lo:hi], total, page, pageSize)
}

func getSupplier(c echo.Context) error {
	s, err := appctx.Suppliers().GetByID(c.Param("id"))
	if err != nil {
		return failDomain(c, err, "supplier")
	}
	return ok(c, s)
}

func createSupplier(c echo.Context) error {
	var input domain.SupplierInput
	if err := c.Bind(&input); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse supplier", err.Error())
	}
	s, err := appctx.Suppliers().Create(input)
	if err != nil {
		return failDomain(c, err, "supplier")
	}
	return ok(c, s)
}

func updateSupplier(c echo.Context) error {
	var patch domain.SupplierPatch
	if err := c.Bind(&patch); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse supplier", err.Error())
	}
	s, err := appctx.Suppliers().Update(c.Param("id"), patch)
	if err != nil {
		return failDomain(c, err, "supplier")
	}
	return ok(c, s)
}

func deleteSupplier(c echo.Context) error {
	id := c.Param("id")
	removed := appctx.Suppliers().Delete(id)
	return ok(c, map[string]interface{}{"id": id, "removed": removed})
}
