package structdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPtrDiff(t *testing.T) {
	differ := Ptr(simpleStructDiffer)
	val := SimpleStruct{X: "a", Y: 1}

	t.Run("both nil", func(t *testing.T) {
		assert.True(t, isNoChange(differ.Diff(nil, nil)))
	})

	t.Run("nil to value", func(t *testing.T) {
		delta := differ.Diff(nil, &val)
		require.Equal(t, KindReplace, delta.Kind())

		got, err := differ.Apply(nil, delta)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, val, *got)
	})

	t.Run("value to nil", func(t *testing.T) {
		delta := differ.Diff(&val, nil)
		if diff := cmp.Diff(Delta(Replace{Value: (*SimpleStruct)(nil)}), delta); diff != "" {
			t.Errorf("delta mismatch (-want +got):\n%s", diff)
		}

		got, err := differ.Apply(&val, delta)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("both present delegates to element differ", func(t *testing.T) {
		b := SimpleStruct{X: "a", Y: 2}
		delta := differ.Diff(&val, &b)
		expect := FieldsChanged{Fields: []FieldDelta{
			{Name: "y", Delta: Replace{Value: 2}},
		}}
		if diff := cmp.Diff(Delta(expect), delta); diff != "" {
			t.Errorf("delta mismatch (-want +got):\n%s", diff)
		}

		got, err := differ.Apply(&val, delta)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, b, *got)
	})

	t.Run("equal values collapse", func(t *testing.T) {
		other := val
		assert.True(t, isNoChange(differ.Diff(&val, &other)))
	})
}

func TestPtrLeafRoundTrip(t *testing.T) {
	t.Run("scalar element", func(t *testing.T) {
		differ := Ptr(Scalar[int]())
		a, b := 1, 2

		delta := differ.Diff(&a, &b)
		r, ok := delta.(Replace)
		require.True(t, ok)
		_, ok = r.Value.(*int)
		assert.True(t, ok, "replace payload should be lifted to *int, got %T", r.Value)

		got, err := differ.Apply(&a, delta)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 2, *got)
	})

	t.Run("sequence element degraded to replace", func(t *testing.T) {
		differ := Ptr(SliceOf[int](OptionMaxTableCells(1)))
		a := []int{1, 2}
		b := []int{3}

		delta := differ.Diff(&a, &b)
		require.Equal(t, KindReplace, delta.Kind())

		got, err := differ.Apply(&a, delta)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, b, *got)
	})
}

func TestPtrApplyDetaches(t *testing.T) {
	differ := Ptr(simpleStructDiffer)
	src := &SimpleStruct{X: "a", Y: 1}

	got, err := differ.Apply(src, NoChange{})
	require.NoError(t, err)
	require.NotNil(t, got)

	src.Y = 99
	assert.Equal(t, 1, got.Y)
}

func TestPtrApplyErrors(t *testing.T) {
	differ := Ptr(simpleStructDiffer)

	t.Run("inner delta against nil source", func(t *testing.T) {
		delta := FieldsChanged{Fields: []FieldDelta{
			{Name: "y", Delta: Replace{Value: 2}},
		}}
		_, err := differ.Apply(nil, delta)
		assert.ErrorIs(t, err, ErrShapeMismatch)
	})

	t.Run("foreign replace payload", func(t *testing.T) {
		_, err := differ.Apply(nil, Replace{Value: SimpleStruct{}})
		assert.ErrorIs(t, err, ErrShapeMismatch)
	})
}
