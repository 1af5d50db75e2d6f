package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := parse(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, "https://covera.app", cfg.SiteURL)
	assert.Equal(t, "send-email", cfg.Supabase.FunctionName)
	assert.Equal(t, 10*time.Second, cfg.Supabase.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.BlogCacheTTL)
	assert.False(t, cfg.FixAlternate)
	assert.False(t, cfg.Supabase.Enabled())
}

func TestParseOverrides(t *testing.T) {
	cfg, err := parse(map[string]string{
		"COVERA_WEB_PORT":                "9000",
		"COVERA_WEB_SITE_URL":            "https://staging.covera.app/",
		"COVERA_WEB_FIX_ALTERNATE":       "true",
		"COVERA_WEB_SUPABASE_PROJECT_ID": "abcd",
		"COVERA_WEB_SUPABASE_ANON_KEY":   "anon",
		"COVERA_WEB_SUPABASE_TIMEOUT":    "3s",
		"PORT":                           "7000",
	})
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "https://staging.covera.app", cfg.SiteURL)
	assert.True(t, cfg.FixAlternate)
	assert.True(t, cfg.Supabase.Enabled())
	assert.Equal(t, 3*time.Second, cfg.Supabase.Timeout)
}

func TestPortFallback(t *testing.T) {
	cfg, err := parse(map[string]string{"PORT": "7000"})
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Port)
}

func TestValidate(t *testing.T) {
	_, err := parse(map[string]string{"COVERA_WEB_ENV": "production"})
	assert.ErrorContains(t, err, "SESSION_SIGNING_KEY")

	_, err = parse(map[string]string{"COVERA_WEB_SITE_URL": "covera.app"})
	assert.ErrorContains(t, err, "must be absolute")

	_, err = parse(map[string]string{"COVERA_WEB_REQUEST_TIMEOUT": "soon"})
	assert.Error(t, err)
}

func TestValidateSupabase(t *testing.T) {
	_, err := parse(map[string]string{"COVERA_WEB_SUPABASE_PROJECT_ID": "abcd"})
	assert.ErrorContains(t, err, "must be set together")

	_, err = parse(map[string]string{"COVERA_WEB_SUPABASE_ANON_KEY": "anon"})
	assert.ErrorContains(t, err, "must be set together")

	_, err = parse(map[string]string{
		"COVERA_WEB_ENV":                 "production",
		"COVERA_WEB_SESSION_SIGNING_KEY": "k",
		"COVERA_WEB_SUPABASE_PROJECT_ID": "abcd",
	})
	assert.Error(t, err)

	_, err = parse(map[string]string{
		"COVERA_WEB_ENV":                 "production",
		"COVERA_WEB_SESSION_SIGNING_KEY": "k",
	})
	assert.ErrorContains(t, err, "supabase is required in production")

	cfg, err := parse(map[string]string{
		"COVERA_WEB_ENV":                 "production",
		"COVERA_WEB_SESSION_SIGNING_KEY": "k",
		"COVERA_WEB_SUPABASE_PROJECT_ID": "abcd",
		"COVERA_WEB_SUPABASE_ANON_KEY":   "anon",
	})
	require.NoError(t, err)
	assert.True(t, cfg.Supabase.Enabled())

	_, err = parse(map[string]string{"COVERA_WEB_SUPABASE_URL": "http://localhost:54321/functions/v1/send-email"})
	assert.NoError(t, err)
}

func TestLoadReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("COVERA_WEB_GA4_ID=G-TEST123\n"), 0o600))
	t.Setenv("COVERA_WEB_GA4_ID", "")
	require.NoError(t, os.Unsetenv("COVERA_WEB_GA4_ID"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "G-TEST123", cfg.GA4ID)
}

func TestLoadMissingEnvFileIsIgnored(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
