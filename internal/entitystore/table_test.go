package entitystore

import (
	"testing"

	"github.com/specialistvlad/plantgo/internal/errors"
	"github.com/specialistvlad/plantgo/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testIndex int

type testPayload struct {
	Damping float64
}

func newTestTable(t *testing.T) (*Table[testIndex, testPayload], registry.ModelInstanceIndex, registry.ModelInstanceIndex) {
	t.Helper()
	reg := registry.New()
	a, err := reg.AddInstance("A")
	require.NoError(t, err)
	b, err := reg.AddInstance("B")
	require.NoError(t, err)
	return New[testIndex, testPayload]("Joint", reg), a, b
}

func TestInsert_AssignsMonotonicIndices(t *testing.T) {
	table, a, b := newTestTable(t)

	i0, err := table.Insert("X", a, testPayload{})
	require.NoError(t, err)
	i1, err := table.Insert("Y", a, testPayload{})
	require.NoError(t, err)
	i2, err := table.Insert("X", b, testPayload{Damping: 0.5})
	require.NoError(t, err)

	assert.Equal(t, []testIndex{0, 1, 2}, []testIndex{i0, i1, i2})
	assert.Equal(t, 3, table.Len())

	entry, err := table.Get(i2)
	require.NoError(t, err)
	assert.Equal(t, "X", entry.Name)
	assert.Equal(t, b, entry.Instance)
	assert.Equal(t, 0.5, entry.Value.Damping)
}

func TestInsert_RejectsDuplicateWithinInstance(t *testing.T) {
	table, a, _ := newTestTable(t)
	_, err := table.Insert("X", a, testPayload{})
	require.NoError(t, err)

	_, err = table.Insert("X", a, testPayload{})
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindDuplicateEntityName))
	assert.Contains(t, err.Error(), "'A'")
	assert.Equal(t, 1, table.Len())
}

func TestInsert_RejectsEmptyName(t *testing.T) {
	table, a, _ := newTestTable(t)
	_, err := table.Insert("", a, testPayload{})
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindInvalidDocument))
	assert.EqualError(t, err, "Joint name cannot be empty in model instance 'A'.")
	e, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, "Joint", e.Entity)
	assert.Equal(t, []string{"A"}, e.Instances)
	assert.Equal(t, 0, table.Len())
}

func TestScopedVersusUnscoped(t *testing.T) {
	table, a, b := newTestTable(t)
	xa, err := table.Insert("X", a, testPayload{})
	require.NoError(t, err)
	xb, err := table.Insert("X", b, testPayload{})
	require.NoError(t, err)

	_, err = table.Has("X")
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindAmbiguousName))
	assert.Equal(t, "Joint X appears in multiple model instances.", err.Error())
	e, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B"}, e.Instances)

	assert.True(t, table.HasIn("X", a))
	assert.True(t, table.HasIn("X", b))

	gotA, err := table.GetByNameIn("X", a)
	require.NoError(t, err)
	gotB, err := table.GetByNameIn("X", b)
	require.NoError(t, err)
	assert.Equal(t, xa, gotA)
	assert.Equal(t, xb, gotB)
	assert.NotEqual(t, gotA, gotB)

	_, err = table.GetByName("X")
	assert.True(t, errors.IsKind(err, errors.KindAmbiguousName))
}

func TestUnscopedLookup_UniqueAndMissing(t *testing.T) {
	table, a, b := newTestTable(t)
	idx, err := table.Insert("only_in_a", a, testPayload{})
	require.NoError(t, err)

	has, err := table.Has("only_in_a")
	require.NoError(t, err)
	assert.True(t, has)

	got, err := table.GetByName("only_in_a")
	require.NoError(t, err)
	assert.Equal(t, idx, got)

	has, err = table.Has("missing")
	require.NoError(t, err)
	assert.False(t, has)

	_, err = table.GetByName("missing")
	assert.True(t, errors.IsKind(err, errors.KindNotFound))

	assert.False(t, table.HasIn("only_in_a", b))
	_, err = table.GetByNameIn("only_in_a", b)
	assert.True(t, errors.IsKind(err, errors.KindNotFound))
	assert.Contains(t, err.Error(), "'B'")
}

func TestAlias(t *testing.T) {
	table, a, b := newTestTable(t)
	idx, err := table.Insert("slider", a, testPayload{})
	require.NoError(t, err)

	require.NoError(t, table.Alias("A::slider", b, idx))
	assert.Equal(t, 1, table.Len(), "aliases do not add entries")

	got, err := table.GetByNameIn("A::slider", b)
	require.NoError(t, err)
	assert.Equal(t, idx, got)

	// The qualified name only exists in B, so it is unambiguous.
	got, err = table.GetByName("A::slider")
	require.NoError(t, err)
	assert.Equal(t, idx, got)

	err = table.Alias("A::slider", b, idx)
	assert.True(t, errors.IsKind(err, errors.KindDuplicateEntityName))

	err = table.Alias("ghost", b, testIndex(7))
	assert.True(t, errors.IsKind(err, errors.KindNotFound))

	err = table.Alias("", b, idx)
	assert.True(t, errors.IsKind(err, errors.KindInvalidDocument))
	assert.EqualError(t, err, "Joint alias name cannot be empty in model instance 'B'.")

	assert.Equal(t, []string{"A::slider"}, table.NamesIn(b))
	assert.Empty(t, table.IndicesIn(b))
	assert.Equal(t, []testIndex{idx}, table.IndicesIn(a))
}

func TestGet_OutOfBounds(t *testing.T) {
	table, _, _ := newTestTable(t)
	_, err := table.Get(testIndex(-1))
	assert.True(t, errors.IsKind(err, errors.KindNotFound))
	_, err = table.Get(testIndex(0))
	assert.True(t, errors.IsKind(err, errors.KindNotFound))
}

func TestTruncate_RestoresNamesAndIndices(t *testing.T) {
	table, a, b := newTestTable(t)
	kept, err := table.Insert("X", a, testPayload{})
	require.NoError(t, err)
	mark := table.Mark()

	dropped, err := table.Insert("X", b, testPayload{})
	require.NoError(t, err)
	require.NoError(t, table.Alias("A::X", b, kept))

	table.Truncate(mark)

	assert.Equal(t, 1, table.Len())
	has, err := table.Has("X")
	require.NoError(t, err, "X is no longer ambiguous after rollback")
	assert.True(t, has)
	assert.False(t, table.HasIn("A::X", b))
	_, err = table.Get(dropped)
	assert.True(t, errors.IsKind(err, errors.KindNotFound))

	again, err := table.Insert("X", b, testPayload{})
	require.NoError(t, err)
	assert.Equal(t, testIndex(1), again)
}
