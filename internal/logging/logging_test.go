// SPDX-License-Identifier: MIT

package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
	require.Error(t, Config{Level: "loud", Format: "json"}.Validate())
	require.Error(t, Config{Level: "info", Format: "xml"}.Validate())
}

func TestNewWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWriter(Config{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("registry built", zap.Int("entries", 42))

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "registry built", rec["msg"])
	require.Equal(t, "info", rec["level"])
	require.EqualValues(t, 42, rec["entries"])
	require.Contains(t, rec, "timestamp")
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "srgcat.log")
	log, closeFn, err := New(Config{Level: "debug", Format: "console", Output: path})
	require.NoError(t, err)

	log.Debug("classified", zap.String("params", "(13,6,2,3)"))
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "DEBUG")
	require.Contains(t, string(data), "(13,6,2,3)")
}

func TestNew_Invalid(t *testing.T) {
	_, _, err := New(Config{Level: "info", Format: "yaml"})
	require.Error(t, err)
}
