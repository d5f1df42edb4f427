package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

type SystemConfig struct {
	Appid    string `yaml:"appid"`
	Location string `yaml:"location"`
	Workdir  string `yaml:"workdir"`
	NodeID   int64  `yaml:"node_id"`
	SeedDemo bool   `yaml:"seed_demo"`
	Debug    bool   `yaml:"debug"`
}

type WebConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode"`
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

type InventoryConfig struct {
	LowStockThreshold int `yaml:"low_stock_threshold"`
	PendingAgeHours   int `yaml:"pending_age_hours"`
}

type AppConfig struct {
	System    SystemConfig    `yaml:"system"`
	Web       WebConfig       `yaml:"web"`
	Logger    LoggerConfig    `yaml:"logger"`
	Inventory InventoryConfig `yaml:"inventory"`
}

func DefaultConfig() *AppConfig {
	return &AppConfig{
		System: SystemConfig{
			Appid:    "stockpile",
			Location: "Local",
			Workdir:  "/var/stockpile",
			NodeID:   1,
			SeedDemo: true,
		},
		Web: WebConfig{
			Host: "0.0.0.0",
			Port: 1880,
		},
		Logger: LoggerConfig{
			Mode:       "development",
			FileEnable: false,
			Filename:   "/var/stockpile/stockpile.log",
		},
		Inventory: InventoryConfig{
			LowStockThreshold: 10,
			PendingAgeHours:   72,
		},
	}
}

// LoadConfig reads the YAML file when present and then applies environment
// overrides. A missing file is not an error; defaults apply.
func LoadConfig(path string) (*AppConfig, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrapf(err, "parse config %s", path)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *AppConfig) applyEnv() {
	if v := os.Getenv("STOCKPILE_WEB_HOST"); v != "" {
		c.Web.Host = v
	}
	if v := os.Getenv("STOCKPILE_WEB_PORT"); v != "" {
		c.Web.Port = cast.ToInt(v)
	}
	if v := os.Getenv("STOCKPILE_WORKDIR"); v != "" {
		c.System.Workdir = v
	}
	if v := os.Getenv("STOCKPILE_NODE_ID"); v != "" {
		c.System.NodeID = cast.ToInt64(v)
	}
	if v := os.Getenv("STOCKPILE_SEED_DEMO"); v != "" {
		c.System.SeedDemo = cast.ToBool(v)
	}
	if v := os.Getenv("STOCKPILE_LOGGER_MODE"); v != "" {
		c.Logger.Mode = v
	}
	if v := os.Getenv("STOCKPILE_DEBUG"); v != "" {
		c.System.Debug = cast.ToBool(v)
	}
}
