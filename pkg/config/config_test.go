package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CRM_DB_DRIVER", "")
	t.Setenv("CRM_DB_DSN", "")
	t.Setenv("CRM_HTTP_ADDR", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, DriverSQLite, cfg.DBDriver)
	require.Equal(t, "crm.db", cfg.DBDSN)
	require.Equal(t, ":8000", cfg.HTTPAddr)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CRM_DB_DRIVER", "mysql")
	t.Setenv("CRM_DB_DSN", "crm:crm@tcp(localhost:3306)/crm?parseTime=true")
	t.Setenv("CRM_HTTP_ADDR", ":9000")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, DriverMySQL, cfg.DBDriver)
	require.Equal(t, ":9000", cfg.HTTPAddr)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("CRM_DB_DRIVER", "oracle")

	_, err := Load()
	require.Error(t, err)
}
