package resolver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/plantgo/internal/errors"
	"github.com/specialistvlad/plantgo/internal/hcl_adapter"
	"github.com/specialistvlad/plantgo/internal/model"
	"github.com/specialistvlad/plantgo/internal/yaml_adapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newResolver() *Resolver {
	return New(hcl_adapter.NewLoader(), yaml_adapter.NewLoader())
}

func TestResolve_PackageURI(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "robots", "arm.hcl"), `model "arm" {}`)
	writeFile(t, filepath.Join(root, "robots", "gripper", "model.yaml"), "model: {name: gripper}\n")
	writeFile(t, filepath.Join(root, "robots", "cart", "v2.hcl"), `model "cart" {}`)

	r := newResolver()
	require.NoError(t, r.AddPath("model://", filepath.Join(root, "robots")))

	testCases := []struct {
		uri  string
		name string
	}{
		{uri: "model://arm", name: "arm"},
		{uri: "model://arm.hcl", name: "arm"},
		{uri: "model://gripper", name: "gripper"},
		{uri: "model://cart/v2", name: "cart"},
	}
	for _, tc := range testCases {
		t.Run(tc.uri, func(t *testing.T) {
			doc, err := r.Resolve(context.Background(), tc.uri, nil)
			require.NoError(t, err)
			m, err := doc.SingleModel()
			require.NoError(t, err)
			assert.Equal(t, tc.name, m.Name)
		})
	}
}

func TestResolve_SearchesDirectoriesInOrder(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	writeFile(t, filepath.Join(second, "arm.hcl"), `model "from_second" {}`)

	r := newResolver()
	require.NoError(t, r.AddPath("model", first))
	require.NoError(t, r.AddPath("model", second))

	path, err := r.ResolvePath("model://arm", nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(second, "arm.hcl"), path)

	writeFile(t, filepath.Join(first, "arm.yml"), "model: {name: from_first}\n")
	path, err = r.ResolvePath("model://arm", nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(first, "arm.yml"), path)
}

func TestResolve_RelativeToIncludingDocument(t *testing.T) {
	root := t.TempDir()
	worldPath := writeFile(t, filepath.Join(root, "worlds", "w.hcl"), `world "w" {}`)
	writeFile(t, filepath.Join(root, "worlds", "parts", "leg.hcl"), `model "leg" {}`)
	from := model.NewFSInfo(worldPath)

	r := newResolver()
	for _, uri := range []string{"parts/leg.hcl", "file://parts/leg.hcl", filepath.Join(root, "worlds", "parts", "leg.hcl")} {
		path, err := r.ResolvePath(uri, from)
		require.NoError(t, err, uri)
		assert.Equal(t, filepath.Join(root, "worlds", "parts", "leg.hcl"), path)
	}
}

func TestResolve_Errors(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "notes.txt"), "hello")
	writeFile(t, filepath.Join(root, "broken.hcl"), `model "x" {`)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dir.hcl"), 0o755))

	r := newResolver()
	require.NoError(t, r.AddPath("model", root))
	from := model.NewFSInfo(filepath.Join(root, "world.hcl"))

	testCases := []string{
		"",
		"package://arm",
		"model://",
		"model://missing",
		"model://../etc/passwd",
		"notes.txt",
		"dir.hcl",
		"missing.hcl",
		"broken.hcl",
	}
	for _, uri := range testCases {
		t.Run(uri, func(t *testing.T) {
			_, err := r.Resolve(context.Background(), uri, from)
			require.Error(t, err)
			assert.True(t, errors.IsKind(err, errors.KindResolution), "got %v", err)
		})
	}
}

func TestResolve_BrokenDocumentKeepsCause(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "broken.yaml"), "model: [\n")

	_, err := newResolver().Resolve(context.Background(), "broken.yaml", model.NewFSInfo(filepath.Join(root, "w.hcl")))
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindResolution))
	assert.Contains(t, err.Error(), "broken.yaml")
}

func TestResolve_CancelledContext(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "arm.hcl"), `model "arm" {}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newResolver().Resolve(ctx, filepath.Join(root, "arm.hcl"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAddPath_Validation(t *testing.T) {
	r := newResolver()
	assert.Error(t, r.AddPath("", "/tmp"))
	assert.Error(t, r.AddPath("file", "/tmp"))
	assert.Error(t, r.AddPath("model", ""))
	require.NoError(t, r.AddPath("pkg://", "/tmp"))
	require.NoError(t, r.AddPath("model", "/tmp"))
	assert.Equal(t, []string{"model", "pkg"}, r.Schemes())
	assert.Equal(t, []string{".hcl", ".yaml", ".yml"}, r.Extensions())
}
