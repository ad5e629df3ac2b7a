package structdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumCollapsesToNoChange(t *testing.T) {
	assert.True(t, isNoChange(simpleEnumDiffer.Diff(Second{N: 5}, Second{N: 5})))
	assert.True(t, isNoChange(simpleEnumDiffer.Diff(Third{X: "a"}, Third{X: "a"})))
}

func TestSumApply(t *testing.T) {
	t.Run("no change returns source", func(t *testing.T) {
		got, err := simpleEnumDiffer.Apply(Second{N: 5}, NoChange{})
		require.NoError(t, err)
		assert.Equal(t, SimpleEnum(Second{N: 5}), got)
	})

	t.Run("replace ignores source", func(t *testing.T) {
		got, err := simpleEnumDiffer.Apply(First{}, Replace{Value: SimpleEnum(Third{X: "z"})})
		require.NoError(t, err)
		assert.Equal(t, SimpleEnum(Third{X: "z"}), got)
	})

	t.Run("variant change constructs from payload", func(t *testing.T) {
		got, err := simpleEnumDiffer.Apply(Third{X: "old"}, VariantChanged{Tag: "Second", Payload: Second{N: 9}})
		require.NoError(t, err)
		assert.Equal(t, SimpleEnum(Second{N: 9}), got)
	})
}

func TestSumApplyErrors(t *testing.T) {
	cases := []struct {
		description string
		source      SimpleEnum
		delta       Delta
	}{
		{
			"same-variant delta against other variant",
			Third{X: "a"},
			SameVariant{Tag: "Second", Fields: FieldsChanged{Fields: []FieldDelta{{Name: "0", Delta: Replace{Value: 7}}}}},
		},
		{
			"unknown variant tag",
			First{},
			VariantChanged{Tag: "Fourth", Payload: 1},
		},
		{
			"unknown same-variant tag",
			First{},
			SameVariant{Tag: "Fourth", Fields: FieldsChanged{}},
		},
		{
			"foreign variant payload",
			First{},
			VariantChanged{Tag: "Second", Payload: "not a Second"},
		},
		{
			"foreign inner field delta",
			Second{N: 5},
			SameVariant{Tag: "Second", Fields: FieldsChanged{Fields: []FieldDelta{{Name: "0", Delta: Replace{Value: "x"}}}}},
		},
		{
			"foreign delta shape",
			First{},
			SequenceEdits{},
		},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			_, err := simpleEnumDiffer.Apply(c.source, c.delta)
			assert.ErrorIs(t, err, ErrShapeMismatch)
		})
	}
}

func TestDuplicateVariantPanics(t *testing.T) {
	assert.Panics(t, func() {
		Sum(simpleEnumTag,
			VariantOf("First",
				func(v SimpleEnum) First { return v.(First) },
				func(p First) SimpleEnum { return p },
				Struct[First](),
			),
			VariantOf("First",
				func(v SimpleEnum) First { return v.(First) },
				func(p First) SimpleEnum { return p },
				Struct[First](),
			),
		)
	})
}

func TestUndeclaredVariantPanics(t *testing.T) {
	partial := Sum(simpleEnumTag,
		VariantOf("First",
			func(v SimpleEnum) First { return v.(First) },
			func(p First) SimpleEnum { return p },
			Struct[First](),
		),
	)
	assert.Panics(t, func() {
		partial.Diff(First{}, Second{N: 1})
	})
}
