package app

import (
	evbus "github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"

	"github.com/opsline/stockpile/config"
	"github.com/opsline/stockpile/internal/orders"
	"github.com/opsline/stockpile/internal/store"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// RegistryProvider provides access to the entity registries
type RegistryProvider interface {
	Products() store.ProductRepository
	Suppliers() store.SupplierRepository
}

// WorkflowProvider provides the order workflow engine
type WorkflowProvider interface {
	Orders() *orders.Service
}

// SettingsProvider provides system settings access
type SettingsProvider interface {
	GetSettingsStringValue(category, key string) string
	GetSettingsInt64Value(category, key string) int64
	GetSettingsBoolValue(category, key string) bool
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// EventBusProvider provides the in-process event bus
type EventBusProvider interface {
	Bus() evbus.Bus
}

// AppContext combines all provider interfaces for full application context.
// Handlers should depend on specific providers or this combined interface.
type AppContext interface {
	ConfigProvider
	RegistryProvider
	WorkflowProvider
	SettingsProvider
	SchedulerProvider
	EventBusProvider
}
