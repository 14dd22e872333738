package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/plantgo/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{"robot.hcl"}, &out, false)
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, "robot.hcl", cfg.ModelPath)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 32, cfg.MaxIncludeDepth)
	assert.Empty(t, cfg.Paths)
	assert.False(t, cfg.World)
}

func TestParse_AllFlags(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{
		"-name", "r1",
		"-path", "model://=/opt/models",
		"-path", "pkg://=vendor",
		"-max-include-depth", "4",
		"-log-level", "DEBUG",
		"-log-format", "json",
		"robot.yaml",
	}, &out, true)
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, "r1", cfg.InstanceName)
	assert.Equal(t, []app.PathAlias{{Scheme: "model", Dir: "/opt/models"}, {Scheme: "pkg", Dir: "vendor"}}, cfg.Paths)
	assert.Equal(t, 4, cfg.MaxIncludeDepth)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.Styled)
}

func TestParse_ConfigFileAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plantinfo.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[resolver]
max_include_depth = 8

[resolver.paths]
model = ["/srv/models"]

[logging]
level  = "warn"
format = "json"
`), 0o644))

	var out bytes.Buffer
	cfg, _, err := Parse([]string{"-config", path, "-log-level", "error", "-path", "model://=local", "-world", "w.hcl"}, &out, false)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.MaxIncludeDepth)
	assert.Equal(t, "error", cfg.LogLevel, "flags win over the file")
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.World)
	assert.Equal(t, []app.PathAlias{{Scheme: "model", Dir: "local"}, {Scheme: "model", Dir: "/srv/models"}}, cfg.Paths)
}

func TestParse_HelpAndUsage(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{}, &out, false)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "plantinfo [options] PATH")

	out.Reset()
	_, exit, err = Parse([]string{"-h"}, &out, false)
	require.NoError(t, err)
	assert.True(t, exit)
}

func TestParse_UsageErrors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-nope", "m.hcl"}},
		{name: "bad log format", args: []string{"-log-format", "xml", "m.hcl"}},
		{name: "bad log level", args: []string{"-log-level", "loud", "m.hcl"}},
		{name: "bad path alias", args: []string{"-path", "model", "m.hcl"}},
		{name: "negative depth", args: []string{"-max-include-depth", "-1", "m.hcl"}},
		{name: "name with world", args: []string{"-world", "-name", "x", "w.hcl"}},
		{name: "two paths", args: []string{"a.hcl", "b.hcl"}},
		{name: "missing config file", args: []string{"-config", "/does/not/exist.toml", "m.hcl"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			_, _, err := Parse(tc.args, &out, false)
			require.Error(t, err)
			exitErr, ok := err.(*ExitError)
			require.True(t, ok, "expected *ExitError, got %T", err)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}
