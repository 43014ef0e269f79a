package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVICE_NAME", "")
	t.Setenv("ENV", "")
	t.Setenv("METRICS_ADDR", "")

	cfg := Load()

	assert.Equal(t, "storefront", cfg.ServiceName)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "", cfg.MetricsAddr)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVICE_NAME", "shop")
	t.Setenv("ENV", "prod")
	t.Setenv("METRICS_ADDR", ":9090")

	cfg := Load()

	assert.Equal(t, "shop", cfg.ServiceName)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
}
