package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(overrides map[string]interface{}) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range overrides {
		v.Set(k, val)
	}
	return v
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig(newViper(map[string]interface{}{
		"jwt.secret": "0123456789abcdef0123",
	}))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, ":5000", cfg.GetServerAddress())
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "none", cfg.Events.Driver)
	assert.Equal(t, "local", cfg.Storage.Driver)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AdminTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.CustomerTTL)
	assert.Equal(t, int64(10<<20), cfg.Images.MaxUpload)
	assert.Zero(t, cfg.Overview.CacheTTL)
	assert.False(t, cfg.IsProduction())
}

func TestParseConfig_Rejects(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]interface{}
	}{
		{
			name:      "missing jwt secret",
			overrides: map[string]interface{}{},
		},
		{
			name:      "short jwt secret",
			overrides: map[string]interface{}{"jwt.secret": "short"},
		},
		{
			name: "unknown database driver",
			overrides: map[string]interface{}{
				"jwt.secret":      "0123456789abcdef0123",
				"database.driver": "sqlite",
			},
		},
		{
			name: "s3 without bucket",
			overrides: map[string]interface{}{
				"jwt.secret":     "0123456789abcdef0123",
				"storage.driver": "s3",
			},
		},
		{
			name: "unknown events driver",
			overrides: map[string]interface{}{
				"jwt.secret":    "0123456789abcdef0123",
				"events.driver": "nats",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig(newViper(tt.overrides))
			assert.Error(t, err)
		})
	}
}

func TestParseConfig_DurationsFromStrings(t *testing.T) {
	cfg, err := ParseConfig(newViper(map[string]interface{}{
		"jwt.secret":             "0123456789abcdef0123",
		"overview.cache_ttl":     "30s",
		"overview.warm_interval": "1m",
		"database.driver":        "mongo",
		"kafka.brokers":          []string{"a:9092", "b:9092"},
	}))
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Overview.CacheTTL)
	assert.Equal(t, time.Minute, cfg.Overview.WarmInterval)
	assert.Equal(t, "mongo", cfg.Database.Driver)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Kafka.Brokers)
}
