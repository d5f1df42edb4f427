package app

import (
	"os"
	"time"
	_ "time/tzdata"

	evbus "github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/opsline/stockpile/config"
	"github.com/opsline/stockpile/internal/domain"
	"github.com/opsline/stockpile/internal/orders"
	"github.com/opsline/stockpile/internal/store"
	"github.com/opsline/stockpile/pkg/common"
)

// Application wires the registries, the order workflow engine, the settings
// manager and the background scheduler.
type Application struct {
	appConfig  *config.AppConfig
	products   store.ProductRepository
	suppliers  store.SupplierRepository
	orderStore store.OrderRepository
	orderSvc   *orders.Service
	settings   *ConfigManager
	sched      *cron.Cron
	bus        evbus.Bus
}

// Ensure Application implements all provider interfaces
var (
	_ ConfigProvider    = (*Application)(nil)
	_ RegistryProvider  = (*Application)(nil)
	_ WorkflowProvider  = (*Application)(nil)
	_ SettingsProvider  = (*Application)(nil)
	_ SchedulerProvider = (*Application)(nil)
	_ AppContext        = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Products() store.ProductRepository {
	return a.products
}

func (a *Application) Suppliers() store.SupplierRepository {
	return a.suppliers
}

func (a *Application) Orders() *orders.Service {
	return a.orderSvc
}

func (a *Application) Bus() evbus.Bus {
	return a.bus
}

func (a *Application) Init(cfg *config.AppConfig) {
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	// Initialize zap logger
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	zapConfig.OutputPaths = []string{"stdout"}
	if cfg.Logger.FileEnable {
		zapConfig.OutputPaths = append(zapConfig.OutputPaths, cfg.Logger.Filename)
	}

	// Build logger with file rotation if enabled
	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)

	// Registries share one id generator node
	idgen, err := common.NewSnowflakeGenerator(cfg.System.NodeID)
	if err != nil {
		zap.S().Fatalf("id generator init failed: %v", err)
	}

	a.bus = evbus.New()
	a.products = store.NewMemoryProductStore(idgen)
	a.suppliers = store.NewMemorySupplierStore(idgen)
	a.orderStore = store.NewMemoryOrderStore()
	a.orderSvc = orders.NewService(a.products, a.suppliers, a.orderStore, idgen, a.bus)
	a.settings = NewConfigManager(cfg)

	a.subscribeAuditEvents()

	if cfg.System.SeedDemo {
		a.checkDemoData()
	}

	a.initJob()
}

// subscribeAuditEvents mirrors workflow events into the audit log channel.
func (a *Application) subscribeAuditEvents() {
	audit := zap.L().Named("audit")
	err := a.bus.Subscribe(orders.TopicOrderCreated, func(o domain.Order) {
		audit.Info("order.created",
			zap.String("order_id", o.ID),
			zap.String("supplier", o.SupplierName),
			zap.Int("items", len(o.Items)),
		)
	})
	if err != nil {
		zap.S().Errorf("subscribe %s error: %v", orders.TopicOrderCreated, err)
	}
	err = a.bus.Subscribe(orders.TopicOrderStatus, func(o domain.Order) {
		audit.Info("order.status",
			zap.String("order_id", o.ID),
			zap.String("status", string(o.Status)),
		)
	})
	if err != nil {
		zap.S().Errorf("subscribe %s error: %v", orders.TopicOrderStatus, err)
	}
}

// ConfigMgr returns the settings manager
func (a *Application) ConfigMgr() *ConfigManager {
	return a.settings
}

// Scheduler returns the cron scheduler
func (a *Application) Scheduler() *cron.Cron {
	return a.sched
}

// GetSettingsStringValue retrieves a string setting value
func (a *Application) GetSettingsStringValue(category, key string) string {
	return a.settings.GetString(category, key)
}

// GetSettingsInt64Value retrieves an int64 setting value
func (a *Application) GetSettingsInt64Value(category, key string) int64 {
	return a.settings.GetInt64(category, key)
}

// GetSettingsBoolValue retrieves a boolean setting value
func (a *Application) GetSettingsBoolValue(category, key string) bool {
	return a.settings.GetBool(category, key)
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	_ = zap.L().Sync()
}
