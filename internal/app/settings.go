package app

import (
	"sync"

	"github.com/spf13/cast"

	"github.com/opsline/stockpile/config"
)

// Settings categories and keys
const (
	SettingsInventory = "inventory"

	KeyLowStockThreshold = "low_stock_threshold"
	KeyPendingAgeHours   = "pending_age_hours"
)

// ConfigManager holds runtime-tunable settings as category/key string pairs,
// seeded from the static config. Typed access goes through cast so values
// set from the API or environment stay plain strings internally.
type ConfigManager struct {
	mu     sync.RWMutex
	values map[string]map[string]string
}

func NewConfigManager(cfg *config.AppConfig) *ConfigManager {
	m := &ConfigManager{values: make(map[string]map[string]string)}
	m.Set(SettingsInventory, KeyLowStockThreshold, cfg.Inventory.LowStockThreshold)
	m.Set(SettingsInventory, KeyPendingAgeHours, cfg.Inventory.PendingAgeHours)
	return m
}

func (m *ConfigManager) Set(category, key string, value interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cat, ok := m.values[category]
	if !ok {
		cat = make(map[string]string)
		m.values[category] = cat
	}
	cat[key] = cast.ToString(value)
}

func (m *ConfigManager) GetString(category, key string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[category][key]
}

func (m *ConfigManager) GetInt64(category, key string) int64 {
	return cast.ToInt64(m.GetString(category, key))
}

func (m *ConfigManager) GetBool(category, key string) bool {
	return cast.ToBool(m.GetString(category, key))
}
