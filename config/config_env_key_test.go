package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"auth": map[string]any{
			"adminEmails":        []any{},
			"memberHostedDomain": "ucsb.edu",
		},
		"googleOAuth": map[string]any{
			"clientId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_ADMINEMAILS", want: "auth.adminEmails"},
		{envKey: "AUTH_MEMBERHOSTEDDOMAIN", want: "auth.memberHostedDomain"},
		{envKey: "GOOGLEOAUTH_CLIENTID", want: "googleOAuth.clientId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a@ucsb.edu", "b@ucsb.edu"}, splitList(" a@ucsb.edu, ,b@ucsb.edu "))
	assert.Empty(t, splitList(""))
}

func TestAuthConfig_IsAdminEmail(t *testing.T) {
	cfg := AuthConfig{AdminEmails: []string{"phtcon@ucsb.edu", " Admin@UCSB.edu "}}

	assert.True(t, cfg.IsAdminEmail("phtcon@ucsb.edu"))
	assert.True(t, cfg.IsAdminEmail("admin@ucsb.edu"))
	assert.False(t, cfg.IsAdminEmail("student@ucsb.edu"))
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 8*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, "SESSION", cfg.Auth.SessionCookie)
	assert.Equal(t, "ucsb.edu", cfg.Auth.MemberHostedDomain)
	assert.Equal(t, FrontendOff, cfg.Frontend.Mode)
	assert.Equal(t, defaultWorkerPort, cfg.Worker.Port)
}

func TestLoadWithEnv_OverridesFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("AUTH_ADMINEMAILS", "x@ucsb.edu,y@ucsb.edu")
	t.Setenv("DATABASE_DRIVER", "sqlite")

	cfg, err := LoadWithEnv[Config]("config")
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, []string{"x@ucsb.edu", "y@ucsb.edu"}, cfg.Auth.AdminEmails)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 8*time.Hour, cfg.Auth.SessionTTL)
}
