package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/opsline/stockpile/internal/domain"
	"github.com/opsline/stockpile/internal/webserver"
)

// registerProductRoutes registers product catalog CRUD endpoints
func registerProductRoutes() {
	webserver.ApiGET("/products", listProducts)
	webserver.ApiGET("/products/:id", getProduct)
	webserver.ApiPOST("/products", createProduct)
	webserver.ApiPUT("/products/:id", updateProduct)
	webserver.ApiDELETE("/products/:id", deleteProduct)
}

func listProducts(c echo.Context) error {
	page, pageSize := parsePagination(c)
	q := strings.TrimSpace(c.QueryParam("q"))

	rows := appctx.Products().List()
	if q != "" {
		filtered := rows[:0]
		for _, p := range rows {
			if strings.Contains(strings.ToLower(p.Name), strings.ToLower(q)) {
				filtered = append(filtered, p)
			}
		}
		rows = filtered
	}

	total := int64(len(rows))
	lo, hi := pageBounds(len(rows), page, pageSize)
	return paged(c, rows[lo:hi], total, page, pageSize)
}

func getProduct(c echo.Context) error {
	p, err := appctx.Products().GetByID(c.Param("id"))
	if err != nil {
		return failDomain(c, err, "product")
	}
	return ok(c, p)
}

func createProduct(c echo.Context) error {
	var input domain.ProductInput
	if err := c.Bind(&input); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	p, err := appctx.Products().Create(input)
	if err != nil {
		return failDomain(c, err, "product")
	}
	return ok(c, p)
}

func updateProduct(c echo.Context) error {
	var patch domain.ProductPatch
	if err := c.Bind(&patch); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	p, err := appctx.Products().Update(c.Param("id"), patch)
	if err != nil {
		return failDomain(c, err, "product")
	}
	return ok(c, p)
}

func deleteProduct(c echo.Context) error {
	id := c.Param("id")
	removed := appctx.Products().Delete(id)
	return ok(c, map[string]interface{}{"id": id, "removed": removed})
}
