package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ordersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "stockpile",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Total number of purchase orders created.",
	})
	orderStatusChanges = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stockpile",
		Subsystem: "orders",
		Name:      "status_changes_total",
		Help:      "Total number of order status updates, by target status.",
	}, []string{"status"})
	lowStockProducts = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "stockpile",
		Subsystem: "inventory",
		Name:      "low_stock_products",
		Help:      "Number of products currently at or below the low-stock threshold.",
	})
)

func init() {
	prometheus.MustRegister(ordersCreated, orderStatusChanges, lowStockProducts)
}

func IncOrderCreated() {
	ordersCreated.Inc()
}

func IncOrderStatusChange(status string) {
	orderStatusChanges.WithLabelValues(status).Inc()
}

func SetLowStockProducts(n int) {
	lowStockProducts.Set(float64(n))
}
