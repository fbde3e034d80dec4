package config

import (
	"os"
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName         string
	Port            string
	Env             string
	Debug           bool
	DefaultCurrency string
	ImportWatchDir  string
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		currency := os.Getenv("DEFAULT_CURRENCY")
		if currency == "" {
			currency = "USD"
		}
		AppConfig = &Config{
			AppName:         os.Getenv("APP_NAME"),
			Port:            os.Getenv("PORT"),
			Env:             os.Getenv("APP_ENV"),
			Debug:           os.Getenv("DEBUG") == "true",
			DefaultCurrency: currency,
			ImportWatchDir:  os.Getenv("IMPORT_WATCH_DIR"),
		}
	})
}

// DefaultCurrency returns the configured currency code, USD when config has
// not been loaded (tests, standalone tools).
func DefaultCurrency() string {
	if AppConfig == nil {
		return "USD"
	}
	return AppConfig.DefaultCurrency
}
