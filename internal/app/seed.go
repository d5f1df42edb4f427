package app

import (
	"go.uber.org/zap"

	"github.com/opsline/stockpile/internal/domain"
)

func float64Ptr(v float64) *float64 { return &v }
func intPtr(v int) *int             { return &v }

// checkDemoData seeds the registries with a small demo catalog when they
// are empty. The demo order goes through the workflow engine so it carries
// real snapshots.
func (a *Application) checkDemoData() {
	if len(a.products.List()) > 0 || len(a.suppliers.List()) > 0 {
		return
	}

	acme, err := a.suppliers.Create(domain.SupplierInput{
		Name:        "Acme Supplies",
		ContactName: "Lara Kim",
		Email:       "hello@acme.example",
		Phone:       "555-0100",
		Address:     "123 Market St, Springfield",
	})
	if err != nil {
		zap.S().Errorf("seed supplier error: %v", err)
		return
	}
	_, err = a.suppliers.Create(domain.SupplierInput{
		Name:        "Northwind Traders",
		ContactName: "Miguel Ortiz",
		Email:       "orders@northwind.example",
		Phone:       "555-0200",
		Address:     "8 Harbor Way, Lakeside",
	})
	if err != nil {
		zap.S().Errorf("seed supplier error: %v", err)
	}

	vitc, err := a.products.Create(domain.ProductInput{
		Name:        "Vitamin C 500mg",
		SKU:         "VC-500",
		Price:       float64Ptr(12.50),
		Stock:       intPtr(120),
		Description: "Immune support supplement",
	})
	if err != nil {
		zap.S().Errorf("seed product error: %v", err)
		return
	}
	tea, err := a.products.Create(domain.ProductInput{
		Name:        "Herbal Tea Pack",
		SKU:         "HT-10",
		Price:       float64Ptr(8.75),
		Stock:       intPtr(60),
		Description: "Assorted herbal tea box",
	})
	if err != nil {
		zap.S().Errorf("seed product error: %v", err)
		return
	}

	_, err = a.orderSvc.Create(domain.OrderInput{
		SupplierID: acme.ID,
		Items: []domain.OrderItemInput{
			{ProductID: vitc.ID, Quantity: 20},
			{ProductID: tea.ID, Quantity: 10},
		},
	})
	if err != nil {
		zap.S().Errorf("seed order error: %v", err)
	}

	zap.L().Info("demo data seeded",
		zap.Int("suppliers", len(a.suppliers.List())),
		zap.Int("products", len(a.products.List())),
		zap.Int("orders", len(a.orderSvc.List())),
	)
}
