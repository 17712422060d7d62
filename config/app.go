package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/mitchellh/mapstructure"

	catalogService "storefront/service/catalog"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName string `mapstructure:"APP_NAME"`
	Env     string `mapstructure:"APP_ENV"`
	Port    string `mapstructure:"PORT"`
	Debug   bool   `mapstructure:"DEBUG"`

	ProductsURL  string `mapstructure:"PRODUCTS_URL"`
	FetchTimeout int    `mapstructure:"FETCH_TIMEOUT"` // seconds
	PageSize     int    `mapstructure:"PAGE_SIZE"`
	Locale       string `mapstructure:"LOCALE"`

	CartStore          string `mapstructure:"CART_STORE"`
	StorageDir         string `mapstructure:"STORAGE_DIR"`
	CartBackupFile     string `mapstructure:"CART_BACKUP_FILE"`
	CartBackupSchedule string `mapstructure:"CART_BACKUP_SCHEDULE"`

	DBDriver   string `mapstructure:"DB_DRIVER"`
	SQLitePath string `mapstructure:"SQLITE_PATH"`
	MySQLDSN   string `mapstructure:"MYSQL_DSN"`
	MySQLUser  string `mapstructure:"MYSQL_USER"`
	MySQLPass  string `mapstructure:"MYSQL_PASS"`
	MySQLHost  string `mapstructure:"MYSQL_HOST"`
	MySQLPort  string `mapstructure:"MYSQL_PORT"`
	MySQLDB    string `mapstructure:"MYSQL_DB"`
	GormLog    string `mapstructure:"GORM_LOG"`

	RedisAddr string `mapstructure:"REDIS_ADDR"`
	RedisPass string `mapstructure:"REDIS_PASS"`
	RedisURL  string `mapstructure:"REDIS_URL"`
}

// Cart storage backends accepted by CART_STORE.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreSQLite = "sqlite"
	StoreMySQL  = "mysql"
	StoreRedis  = "redis"
)

var defaults = map[string]interface{}{
	"APP_NAME":             "storefront",
	"APP_ENV":              "development",
	"PORT":                 "8080",
	"DEBUG":                "false",
	"PRODUCTS_URL":         catalogService.DefaultURL,
	"FETCH_TIMEOUT":        "10",
	"PAGE_SIZE":            "12",
	"LOCALE":               "tr",
	"CART_STORE":           StoreFile,
	"STORAGE_DIR":          "var",
	"CART_BACKUP_FILE":     "var/backup/cart.json",
	"CART_BACKUP_SCHEDULE": "@every 1h",
	"DB_DRIVER":            StoreSQLite,
	"SQLITE_PATH":          "var/storefront.db",
	"MYSQL_PORT":           "3306",
}

// Load reads the process environment over the defaults.
func Load() (*Config, error) {
	raw := make(map[string]interface{}, len(defaults))
	for k, v := range defaults {
		raw[k] = v
	}
	for _, k := range envKeys() {
		if v, ok := os.LookupEnv(k); ok && v != "" {
			raw[k] = v
		}
	}

	cfg := &Config{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           cfg,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.CartStore {
	case StoreMemory, StoreFile, StoreSQLite, StoreMySQL, StoreRedis:
	default:
		return fmt.Errorf("CART_STORE: unknown backend %q", c.CartStore)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be positive, got %d", c.FetchTimeout)
	}
	return nil
}

// FetchTimeoutDuration is FetchTimeout as a time.Duration.
func (c *Config) FetchTimeoutDuration() time.Duration {
	return time.Duration(c.FetchTimeout) * time.Second
}

// envKeys lists the variables named by Config's mapstructure tags.
func envKeys() []string {
	var keys []string
	fields := map[string]interface{}{}
	_ = mapstructure.Decode(Config{}, &fields)
	for k := range fields {
		keys = append(keys, k)
	}
	return keys
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		cfg, err := Load()
		if err != nil {
			panic("config: " + err.Error())
		}
		AppConfig = cfg
	})
}
