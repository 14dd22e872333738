package registry

import (
	"testing"

	"github.com/specialistvlad/plantgo/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_HasReservedInstances(t *testing.T) {
	r := New()

	assert.Equal(t, 2, r.Len())
	world, err := r.GetInstanceByName(WorldModelInstanceName)
	require.NoError(t, err)
	assert.Equal(t, WorldModelInstance, world)
	def, err := r.GetInstanceByName(DefaultModelInstanceName)
	require.NoError(t, err)
	assert.Equal(t, DefaultModelInstance, def)
}

func TestAddInstance_AllocatesSequentialHandles(t *testing.T) {
	r := New()

	a, err := r.AddInstance("acrobot")
	require.NoError(t, err)
	b, err := r.AddInstance("acrobot2")
	require.NoError(t, err)

	assert.Equal(t, ModelInstanceIndex(2), a)
	assert.Equal(t, ModelInstanceIndex(3), b)
	assert.True(t, r.HasInstanceNamed("acrobot"))
	assert.Equal(t, []string{WorldModelInstanceName, DefaultModelInstanceName, "acrobot", "acrobot2"}, r.Names())
}

func TestAddInstance_RejectsDuplicates(t *testing.T) {
	for _, name := range []string{"instance1", WorldModelInstanceName, DefaultModelInstanceName} {
		t.Run(name, func(t *testing.T) {
			r := New()
			if !r.HasInstanceNamed(name) {
				_, err := r.AddInstance(name)
				require.NoError(t, err)
			}

			idx, err := r.AddInstance(name)
			require.Error(t, err)
			assert.True(t, errors.IsKind(err, errors.KindDuplicateInstanceName))
			assert.Equal(t, InvalidModelInstance, idx)
		})
	}
}

func TestAddInstance_RejectsEmptyName(t *testing.T) {
	r := New()
	_, err := r.AddInstance("")
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindInvalidDocument))
	assert.EqualError(t, err, "Model instance name cannot be empty.")
	assert.Equal(t, 2, r.Len())
}

func TestGetInstanceByName_NotFound(t *testing.T) {
	r := New()

	_, err := r.GetInstanceByName("missing")
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindNotFound))
	assert.False(t, r.HasInstanceNamed("missing"))
}

func TestInstanceName(t *testing.T) {
	r := New()
	idx, err := r.AddInstance("robot1")
	require.NoError(t, err)

	name, err := r.InstanceName(idx)
	require.NoError(t, err)
	assert.Equal(t, "robot1", name)

	_, err = r.InstanceName(ModelInstanceIndex(42))
	assert.True(t, errors.IsKind(err, errors.KindNotFound))
	assert.Equal(t, "ModelInstance(42)", r.Name(42))
}

func TestTruncate_DropsNewestAndFreesNames(t *testing.T) {
	r := New()
	_, err := r.AddInstance("keep")
	require.NoError(t, err)
	mark := r.Len()
	_, err = r.AddInstance("drop1")
	require.NoError(t, err)
	_, err = r.AddInstance("drop2")
	require.NoError(t, err)

	r.Truncate(mark)

	assert.Equal(t, 3, r.Len())
	assert.True(t, r.HasInstanceNamed("keep"))
	assert.False(t, r.HasInstanceNamed("drop1"))
	_, err = r.AddInstance("drop1")
	assert.NoError(t, err)
}

func TestTruncate_KeepsReservedInstances(t *testing.T) {
	r := New()
	r.Truncate(0)
	assert.Equal(t, 2, r.Len())
	assert.True(t, r.HasInstanceNamed(WorldModelInstanceName))
}
