package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plantinfo.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[resolver]
max_include_depth = 8

[resolver.paths]
model = ["./models", "/usr/share/robots"]
pkg   = ["vendor"]

[logging]
format = "json"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Resolver.MaxIncludeDepth)
	assert.Equal(t, []string{"./models", "/usr/share/robots"}, cfg.Resolver.Paths["model"])
	assert.Equal(t, []string{"model", "pkg"}, cfg.Schemes())
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "info", cfg.Logging.Level, "unset keys keep their default")
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "syntax", content: "[resolver\n", errMsg: "parse config"},
		{name: "unknown key", content: "[resolver]\nmax_depth = 3\n", errMsg: "unknown keys resolver.max_depth"},
		{name: "depth", content: "[resolver]\nmax_include_depth = 0\n", errMsg: "max_include_depth"},
		{name: "empty scheme dirs", content: "[resolver.paths]\nmodel = []\n", errMsg: "no directories"},
		{name: "level", content: "[logging]\nlevel = \"loud\"\n", errMsg: "logging.level"},
		{name: "format", content: "[logging]\nformat = \"xml\"\n", errMsg: "logging.format"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "read config")
}

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
	assert.Empty(t, Default().Schemes())
}
