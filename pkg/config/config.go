package config

import (
	"fmt"
	"os"
)

const (
	ServiceName    = "crm-backend"
	ServiceVersion = "0.1.0"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

type Config struct {
	DBDriver string
	DBDSN    string
	HTTPAddr string
}

func Load() (*Config, error) {
	config := &Config{
		DBDriver: getenv("CRM_DB_DRIVER", DriverSQLite),
		DBDSN:    getenv("CRM_DB_DSN", "crm.db"),
		HTTPAddr: getenv("CRM_HTTP_ADDR", ":8000"),
	}

	switch config.DBDriver {
	case DriverSQLite, DriverMySQL:
	default:
		return nil, fmt.Errorf("unsupported CRM_DB_DRIVER %q (expected %q or %q)", config.DBDriver, DriverSQLite, DriverMySQL)
	}
	if config.DBDSN == "" {
		return nil, fmt.Errorf("CRM_DB_DSN must not be empty")
	}

	return config, nil
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
