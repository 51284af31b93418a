package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv_DoesNotOverrideExisting(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_TOKEN_ISSUER": "from-env"})
	t.Cleanup(func() { _ = os.Unsetenv("APP_LOG_LEVEL") })

	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("APP_TOKEN_ISSUER=from-file\nAPP_LOG_LEVEL=info\n"), 0o600))

	require.NoError(t, loadDotEnv(p))

	assert.Equal(t, "from-env", os.Getenv("APP_TOKEN_ISSUER"))
	assert.Equal(t, "info", os.Getenv("APP_LOG_LEVEL"))
}

func TestLoadDotEnv_MissingDefaultFileIsIgnored(t *testing.T) {
	t.Chdir(t.TempDir())

	assert.NoError(t, loadDotEnv(""))
}

func TestLoadDotEnv_MissingExplicitFile(t *testing.T) {
	err := loadDotEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
