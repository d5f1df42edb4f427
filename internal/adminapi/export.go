package adminapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"

	"github.com/opsline/stockpile/internal/webserver"
)

// registerExportRoutes registers CSV download endpoints
func registerExportRoutes() {
	webserver.ApiGET("/products/export", exportProducts)
	webserver.ApiGET("/orders/export", exportOrders)
}

type productCsvRow struct {
	ID          string `csv:"id"`
	Name        string `csv:"name"`
	SKU         string `csv:"sku"`
	Price       string `csv:"price"`
	Stock       string `csv:"stock"`
	Description string `csv:"description"`
	CreatedAt   string `csv:"created_at"`
}

type orderCsvRow struct {
	OrderID      string `csv:"order_id"`
	SupplierID   string `csv:"supplier_id"`
	SupplierName string `csv:"supplier_name"`
	Status       string `csv:"status"`
	CreatedAt    string `csv:"created_at"`
	ProductID    string `csv:"product_id"`
	ProductName  string `csv:"product_name"`
	Quantity     int    `csv:"quantity"`
	UnitPrice    string `csv:"unit_price"`
}

func exportProducts(c echo.Context) error {
	products := appctx.Products().List()
	rows := make([]productCsvRow, 0, len(products))
	for _, p := range products {
		row := productCsvRow{
			ID:          p.ID,
			Name:        p.Name,
			SKU:         p.SKU,
			Description: p.Description,
			CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		}
		if p.Price != nil {
			row.Price = fmt.Sprintf("%.2f", *p.Price)
		}
		if p.Stock != nil {
			row.Stock = fmt.Sprintf("%d", *p.Stock)
		}
		rows = append(rows, row)
	}

	data, err := gocsv.MarshalString(&rows)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to export products", err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="products.csv"`)
	return c.Blob(http.StatusOK, "text/csv", []byte(data))
}

// exportOrders flattens orders to one row per line item.
func exportOrders(c echo.Context) error {
	orders := appctx.Orders().List()
	var rows []orderCsvRow
	for _, o := range orders {
		for _, item := range o.Items {
			row := orderCsvRow{
				OrderID:      o.ID,
				SupplierID:   o.SupplierID,
				SupplierName: o.SupplierName,
				Status:       string(o.Status),
				CreatedAt:    o.CreatedAt.Format(time.RFC3339),
				ProductID:    item.ProductID,
				ProductName:  item.ProductName,
				Quantity:     item.Quantity,
			}
			if item.UnitPrice != nil {
				row.UnitPrice = fmt.Sprintf("%.2f", *item.UnitPrice)
			}
			rows = append(rows, row)
		}
	}

	data, err := gocsv.MarshalString(&rows)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to export orders", err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="orders.csv"`)
	return c.Blob(http.StatusOK, "text/csv", []byte(data))
}
