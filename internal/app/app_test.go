package app_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/plantgo/internal/app"
	"github.com/specialistvlad/plantgo/internal/errors"
	"github.com/specialistvlad/plantgo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const simpleRobot = `
model "simple_robot" {
  link "base_link" {}
  link "moving_link" {}
  joint "slider" {
    type   = "prismatic"
    parent = "base_link"
    child  = "moving_link"
  }
}
`

const weldWorld = `
world:
  name: cell
  entries:
    - include: {uri: "model://simple_robot", name: left}
    - model:
        name: welded
        includes:
          - {uri: "model://simple_robot", name: a}
          - {uri: "model://simple_robot", name: b}
        joints:
          - {name: weld, parent: "a::moving_link", child: "b::base_link"}
`

const negativeDamping = `
model "m" {
  link "l" {}
  joint "j" {
    child   = "l"
    damping = -0.5
  }
}
`

const missingInclude = `
model "m" {
  include {
    uri = "model://nothing"
  }
}
`

func TestRun_SingleModelWithName(t *testing.T) {
	result := testutil.RunApp(t, map[string]string{
		"robot.hcl": simpleRobot,
	}, app.Config{ModelPath: "robot.hcl", InstanceName: "r1"})

	require.NoError(t, result.Err)
	p := result.App.Plant()
	assert.True(t, p.IsFinalized())
	assert.Equal(t, 3, p.NumModelInstances())
	assert.True(t, p.HasModelInstanceNamed("r1"))
	testutil.AssertInstanceAdded(t, result, "r1")

	assert.Contains(t, result.Output, "Plant: 3 model instances, 3 bodies, 1 joints")
	assert.Contains(t, result.Output, "[2] r1")
	assert.Contains(t, result.Output, "  bodies: base_link, moving_link")
	assert.NotContains(t, result.Output, "\x1b[", "no styling outside a terminal")
}

func TestRun_WorldFileDetected(t *testing.T) {
	result := testutil.RunApp(t, map[string]string{
		"models/simple_robot/model.hcl": simpleRobot,
		"worlds/cell.yaml":              weldWorld,
	}, app.Config{
		ModelPath: "worlds/cell.yaml",
		Paths:     []app.PathAlias{{Scheme: "model", Dir: "models"}},
	})

	require.NoError(t, result.Err)
	p := result.App.Plant()
	// left, welded, welded::a, welded::b
	assert.Equal(t, 6, p.NumModelInstances())
	assert.Equal(t, 7, p.NumBodies())
	assert.Equal(t, 4, p.NumJoints())

	welded, err := p.GetModelInstanceByName("welded")
	require.NoError(t, err)
	assert.True(t, p.HasJointNamedIn("a::slider", welded))
	testutil.AssertInstanceAdded(t, result, "welded::b")
	assert.Contains(t, result.Output, "joints: a::slider, b::slider, weld")
}

func TestRun_Directory(t *testing.T) {
	result := testutil.RunApp(t, map[string]string{
		"robots/a.hcl":        "model \"a\" {\n  link \"base\" {}\n}\n",
		"robots/nested/b.yml": "model: {name: b, links: [{name: base}]}\n",
		"robots/README.md":    "not a model",
	}, app.Config{ModelPath: "robots"})

	require.NoError(t, result.Err)
	p := result.App.Plant()
	assert.Equal(t, 4, p.NumModelInstances())
	_, err := p.HasBodyNamed("base")
	assert.True(t, errors.IsKind(err, errors.KindAmbiguousName))
}

func TestRun_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		files map[string]string
		cfg   app.Config
		kind  errors.Kind
	}{
		{
			name:  "negative damping",
			files: map[string]string{"m.hcl": negativeDamping},
			cfg:   app.Config{ModelPath: "m.hcl"},
			kind:  errors.KindInvalidJointDamping,
		},
		{
			name: "duplicate instance across files",
			files: map[string]string{
				"a.hcl": `model "same" {}`,
				"b.hcl": `model "same" {}`,
			},
			cfg:  app.Config{ModelPath: "."},
			kind: errors.KindDuplicateInstanceName,
		},
		{
			name:  "unresolvable include",
			files: map[string]string{"m.hcl": missingInclude},
			cfg:   app.Config{ModelPath: "m.hcl"},
			kind:  errors.KindResolution,
		},
		{
			name:  "broken document",
			files: map[string]string{"m.yaml": "model: [\n"},
			cfg:   app.Config{ModelPath: "m.yaml"},
			kind:  errors.KindInvalidDocument,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := testutil.RunApp(t, tc.files, tc.cfg)
			require.Error(t, result.Err)
			assert.True(t, errors.IsKind(result.Err, tc.kind), "got %v", result.Err)
			assert.Contains(t, result.LogOutput, `msg="Failed to load description file."`)
			assert.Contains(t, result.LogOutput, "kind="+string(tc.kind))
			assert.False(t, result.App.Plant().IsFinalized())
			assert.Empty(t, result.Output)
		})
	}
}

func TestRun_InstanceNameNeedsSingleFile(t *testing.T) {
	result := testutil.RunApp(t, map[string]string{
		"a.hcl": `model "a" {}`,
		"b.hcl": `model "b" {}`,
	}, app.Config{ModelPath: ".", InstanceName: "x"})
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "exactly one description file")
}

func TestRun_EmptyDirectory(t *testing.T) {
	result := testutil.RunApp(t, map[string]string{"notes.txt": "hi"}, app.Config{ModelPath: "."})
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "no description files found")
}

func TestNewConfig(t *testing.T) {
	_, err := app.NewConfig(app.Config{})
	assert.Error(t, err)

	_, err = app.NewConfig(app.Config{ModelPath: "w.hcl", World: true, InstanceName: "x"})
	assert.Error(t, err)

	_, err = app.NewConfig(app.Config{ModelPath: "w.hcl", MaxIncludeDepth: -1})
	assert.Error(t, err)

	cfg, err := app.NewConfig(app.Config{ModelPath: "w.hcl"})
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.MaxIncludeDepth)
}

func TestParsePathAlias(t *testing.T) {
	alias, err := app.ParsePathAlias("model://=/opt/models")
	require.NoError(t, err)
	assert.Equal(t, app.PathAlias{Scheme: "model", Dir: "/opt/models"}, alias)

	alias, err = app.ParsePathAlias("pkg=vendor")
	require.NoError(t, err)
	assert.Equal(t, app.PathAlias{Scheme: "pkg", Dir: "vendor"}, alias)

	for _, bad := range []string{"", "model://", "=dir", "model://="} {
		_, err := app.ParsePathAlias(bad)
		assert.Error(t, err, bad)
	}
}

func TestRenderReport_Styled(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{"robot.hcl": simpleRobot})
	cfg, err := app.NewConfig(app.Config{ModelPath: filepath.Join(root, "robot.hcl")})
	require.NoError(t, err)
	a, err := app.NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg)
	require.NoError(t, err)
	_, err = a.Load(context.Background())
	require.NoError(t, err)

	var plain, styled bytes.Buffer
	app.RenderReport(&plain, a.Plant(), false)
	app.RenderReport(&styled, a.Plant(), true)
	assert.Contains(t, plain.String(), "[2] simple_robot")
	assert.Contains(t, styled.String(), "simple_robot")
	assert.False(t, app.IsTerminal(&plain))
}
