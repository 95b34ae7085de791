// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "srgcat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	require.Equal(t, FormatBrouwer, cfg.Catalog.Format)
	require.Equal(t, 1, cfg.Feasible.VMin)
	require.Equal(t, 300, cfg.Feasible.VMax)
	require.Equal(t, 1, cfg.Build.Workers)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "console", cfg.Log.Format)
	require.Empty(t, cfg.Store.Path)
}

func TestLoad_FileEnvOverrides(t *testing.T) {
	path := writeFile(t, `
catalog:
  path: brouwer.tmp
  format: yaml
feasible:
  vmax: 120
build:
  workers: 4
log:
  level: debug
  format: json
`)
	t.Setenv("SRGCAT_BUILD_WORKERS", "6")
	t.Setenv("SRGCAT_STORE_PATH", "/tmp/srg.db")

	cfg, err := Load(path, map[string]interface{}{"feasible.vmax": 80})
	require.NoError(t, err)
	require.Equal(t, "brouwer.tmp", cfg.Catalog.Path)
	require.Equal(t, FormatYAML, cfg.Catalog.Format)
	require.Equal(t, 80, cfg.Feasible.VMax)
	require.Equal(t, 6, cfg.Build.Workers)
	require.Equal(t, "/tmp/srg.db", cfg.Store.Path)
	require.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"format":  "catalog:\n  format: csv\n",
		"range":   "feasible:\n  vmin: 50\n  vmax: 10\n",
		"vmin":    "feasible:\n  vmin: 0\n",
		"workers": "build:\n  workers: -1\n",
		"level":   "log:\n  level: shout\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, body), nil)
			require.Error(t, err)
		})
	}
}
