package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-sif/lazyframe/logging"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Nil(t, cfg.Validate())
	require.True(t, cfg.FuseLinearChains)
	require.Equal(t, 0, cfg.CacheSize)
	require.Equal(t, logging.WarnLevel, cfg.Level())
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.Nil(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := "num_workers: 3\ncache_size: 16\ncompress_cache: true\nlog_level: debug\n"
	require.Nil(t, os.WriteFile(filepath.Join(dir, "lazyframe.yaml"), []byte(content), 0o600))
	t.Setenv("LAZYFRAME_FUSE_LINEAR_CHAINS", "false")

	cfg, err := Load(dir)
	require.Nil(t, err)
	require.Equal(t, 3, cfg.NumWorkers)
	require.Equal(t, 16, cfg.CacheSize)
	require.True(t, cfg.CompressCache)
	require.False(t, cfg.FuseLinearChains)
	require.Equal(t, logging.DebugLevel, cfg.Level())
}

func TestLoadValidates(t *testing.T) {
	t.Setenv("LAZYFRAME_NUM_WORKERS", "0")
	t.Setenv("LAZYFRAME_LOG_LEVEL", "LOUD")
	_, err := Load("")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "NumWorkers")
	require.Contains(t, err.Error(), "LogLevel")
}
