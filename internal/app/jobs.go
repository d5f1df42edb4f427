package app

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/opsline/stockpile/internal/domain"
	"github.com/opsline/stockpile/pkg/metrics"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	var err error
	_, err = a.sched.AddFunc("@every 1h", func() {
		go a.SchedLowStockScanTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	_, err = a.sched.AddFunc("@daily", func() {
		a.SchedPendingOrderAgeTask()
		a.SchedOrderSummaryTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedLowStockScanTask counts catalog items at or below the low-stock
// threshold and exports the figure as a gauge.
func (a *Application) SchedLowStockScanTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	threshold := int(a.settings.GetInt64(SettingsInventory, KeyLowStockThreshold))
	count := 0
	for _, p := range a.products.List() {
		if p.Stock != nil && *p.Stock <= threshold {
			count++
			zap.L().Warn("product stock low",
				zap.String("product_id", p.ID),
				zap.String("name", p.Name),
				zap.Int("stock", *p.Stock),
				zap.Int("threshold", threshold),
			)
		}
	}
	metrics.SetLowStockProducts(count)
}

// SchedPendingOrderAgeTask flags orders stuck in Pending beyond the
// configured age.
func (a *Application) SchedPendingOrderAgeTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	maxAge := time.Duration(a.settings.GetInt64(SettingsInventory, KeyPendingAgeHours)) * time.Hour
	cutoff := time.Now().Add(-maxAge)
	for _, o := range a.orderSvc.List() {
		if o.Status == domain.OrderStatusPending && o.CreatedAt.Before(cutoff) {
			zap.L().Warn("order pending too long",
				zap.String("order_id", o.ID),
				zap.String("supplier", o.SupplierName),
				zap.Time("created_at", o.CreatedAt),
			)
		}
	}
}

// SchedOrderSummaryTask logs the per-status order counts.
func (a *Application) SchedOrderSummaryTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	counts := make(map[domain.OrderStatus]int, len(domain.OrderStatuses))
	for _, o := range a.orderSvc.List() {
		counts[o.Status]++
	}
	zap.L().Info("order status summary",
		zap.Int("pending", counts[domain.OrderStatusPending]),
		zap.Int("processing", counts[domain.OrderStatusProcessing]),
		zap.Int("received", counts[domain.OrderStatusReceived]),
		zap.Int("cancelled", counts[domain.OrderStatusCancelled]),
	)
}
