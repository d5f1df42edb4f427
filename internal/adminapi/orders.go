package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opsline/stockpile/internal/domain"
	"github.com/opsline/stockpile/internal/webserver"
)

// registerOrderRoutes registers purchase-order endpoints. Orders cannot be
// deleted; the lifecycle only moves through status updates.
func registerOrderRoutes() {
	webserver.ApiGET("/orders", listOrders)
	webserver.ApiGET("/orders/:id", getOrder)
	webserver.ApiPOST("/orders", createOrder)
	webserver.ApiPATCH("/orders/:id/status", updateOrderStatus)
}

func listOrders(c echo.Context) error {
	page, pageSize := parsePagination(c)
	status := c.QueryParam("status")

	rows := appctx.Orders().List()
	if status != "" {
		filtered := rows[:0]
		for _, o := range rows {
			if o.Status == domain.OrderStatus(status) {
				filtered = append(filtered, o)
			}
		}
		rows = filtered
	}

	total := int64(len(rows))
	lo, hi := pageBounds(len(rows), page, pageSize)
	return paged(c, rows[lo:hi], total, page, pageSize)
}

func getOrder(c echo.Context) error {
	o, err := appctx.Orders().GetByID(c.Param("id"))
	if err != nil {
		return failDomain(c, err, "order")
	}
	return ok(c, o)
}

func createOrder(c echo.Context) error {
	var input domain.OrderInput
	if err := c.Bind(&input); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse order", err.Error())
	}
	o, err := appctx.Orders().Create(input)
	if err != nil {
		return failDomain(c, err, "order")
	}
	return ok(c, o)
}

type orderStatusPayload struct {
	Status domain.OrderStatus `json:"status"`
}

func updateOrderStatus(c echo.Context) error {
	var payload orderStatusPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse status", err.Error())
	}
	o, err := appctx.Orders().UpdateStatus(c.Param("id"), payload.Status)
	if err != nil {
		return failDomain(c, err, "order")
	}
	return ok(c, o)
}
