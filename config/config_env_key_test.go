package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_AlignsWithExistingYAMLKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"dbName":  "marketplace",
		},
		"qrcode": map[string]any{
			"storefrontBaseUrl": "https://example.com",
		},
	}

	tests := []struct {
		name   string
		rawKey string
		want   string
	}{
		{"matches camelCase segment", "POSTGRES_SSLMODE", "postgres.sslMode"},
		{"matches dbName", "POSTGRES_DBNAME", "postgres.dbName"},
		{"nested camelCase", "QRCODE_STOREFRONTBASEURL", "qrcode.storefrontBaseUrl"},
		{"unknown keys pass through lowered", "MEDIA_BUCKETURL", "media.bucketurl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.rawKey, existing))
		})
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	cfg := &PostgresConfig{
		Host:     "localhost",
		Port:     "5432",
		UserName: "marketplace",
		Password: "secret",
		DBName:   "marketplace",
	}

	dsn := cfg.DSN()

	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "dbname=marketplace")
	// SSL mode defaults to disable when unset.
	assert.Contains(t, dsn, "sslmode=disable")
}
