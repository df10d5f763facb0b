package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresToken(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "test-token")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Contains(t, cfg.DatabaseURL, "postgres://")
	assert.Equal(t, 2, cfg.MaxDuplicateOptions)
	assert.Equal(t, 50, cfg.RecentLogLimit)
	assert.Equal(t, "internal/migrations", cfg.MigrationsDir)
	assert.Empty(t, cfg.OwnerIDs)
}

func TestLoad_OwnerIDs(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "test-token")
	t.Setenv("OWNER_IDS", "100, 200,300")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []int64{100, 200, 300}, cfg.OwnerIDs)
}

func TestLoad_InvalidOwnerIDs(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "test-token")
	t.Setenv("OWNER_IDS", "100,abc")

	_, err := Load()
	assert.Error(t, err)
}

func TestParseIDList_Empty(t *testing.T) {
	ids, err := parseIDList("  ")
	require.NoError(t, err)
	assert.Nil(t, ids)
}
