package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEmailList(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected []string
	}{
		{name: "empty", raw: "", expected: nil},
		{name: "single", raw: "admin@church.org", expected: []string{"admin@church.org"}},
		{name: "trims and lowercases", raw: " Admin@Church.org , pastor@church.org", expected: []string{"admin@church.org", "pastor@church.org"}},
		{name: "drops blanks and duplicates", raw: "a@x.org,,A@x.org, ", expected: []string{"a@x.org"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseEmailList(tc.raw))
		})
	}
}

func TestIsSuperAdminEmail(t *testing.T) {
	cfg := &Config{SuperAdminEmailsRaw: "admin@church.org, pastor@church.org"}

	assert.True(t, cfg.IsSuperAdminEmail("ADMIN@church.org"))
	assert.True(t, cfg.IsSuperAdminEmail(" pastor@church.org "))
	assert.False(t, cfg.IsSuperAdminEmail("member@church.org"))
	assert.False(t, cfg.IsSuperAdminEmail(""))
}

func TestValidate(t *testing.T) {
	t.Run("production requires secret", func(t *testing.T) {
		cfg := &Config{Environment: "production", JWTSecret: defaultJWTSecret, DatabaseName: "db", JWTTTLHours: 1}
		err := validate(cfg)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("database name required", func(t *testing.T) {
		cfg := &Config{Environment: "development", JWTSecret: "s", JWTTTLHours: 1}
		assert.Error(t, validate(cfg))
	})

	t.Run("ttl must be positive", func(t *testing.T) {
		cfg := &Config{Environment: "development", JWTSecret: "s", DatabaseName: "db"}
		assert.Error(t, validate(cfg))
	})

	t.Run("valid development config", func(t *testing.T) {
		cfg := &Config{Environment: "development", JWTSecret: defaultJWTSecret, DatabaseName: "db", JWTTTLHours: 168}
		assert.NoError(t, validate(cfg))
		assert.True(t, cfg.IsDevelopment())
		assert.False(t, cfg.IsProduction())
	})
}

func TestBuildDatabaseURL(t *testing.T) {
	cfg := &Config{
		DatabaseUser:     "u",
		DatabasePassword: "p",
		DatabaseHost:     "h",
		DatabasePort:     "5432",
		DatabaseName:     "d",
		DatabaseSSLMode:  "disable",
	}
	assert.Equal(t, "postgres://u:p@h:5432/d?sslmode=disable", buildDatabaseURL(cfg))
}
