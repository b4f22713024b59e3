//go:build unit

package item_test

import (
	"testing"

	"shareit/internal/domain/item"
	"shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewItemBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Cordless drill", actual.Name())
		assert.True(t, actual.IsAvailable())
	})

	t.Run("field validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.ItemBuilder)
			errIs  error
		}{
			{
				name:   "blank name",
				mutate: func(b *builder.ItemBuilder) { b.Name = "  " },
				errIs:  item.ErrEmptyName,
			},
			{
				name:   "blank description",
				mutate: func(b *builder.ItemBuilder) { b.Description = "" },
				errIs:  item.ErrEmptyDescription,
			},
			{
				name:   "unavailable item is still registrable",
				mutate: func(b *builder.ItemBuilder) { b.Available = false },
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				actual, err := builder.NewItemBuilder().With(c.mutate).BuildDomain()
				if c.errIs != nil {
					require.ErrorIs(t, err, c.errIs)
					assert.Nil(t, actual)
					return
				}
				require.NoError(t, err)
				require.NotNil(t, actual)
			})
		}
	})
}

func TestItemOwnership(t *testing.T) {
	b := builder.NewItemBuilder()
	actual, err := b.BuildDomain()
	require.NoError(t, err)

	assert.True(t, actual.IsOwnedBy(b.OwnerID))
	assert.False(t, actual.IsOwnedBy(uuid.New()))
}

func TestItemApplyPatch(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	boolPtr := func(v bool) *bool { return &v }

	t.Run("partial updates leave other fields alone", func(t *testing.T) {
		actual, err := builder.NewItemBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, actual.ApplyPatch(nil, nil, boolPtr(false)))
		assert.False(t, actual.IsAvailable())
		assert.Equal(t, "Cordless drill", actual.Name())

		require.NoError(t, actual.ApplyPatch(strPtr("Impact driver"), nil, nil))
		assert.Equal(t, "Impact driver", actual.Name())
		assert.False(t, actual.IsAvailable(), "availability untouched")
	})

	t.Run("blank values are rejected", func(t *testing.T) {
		actual, err := builder.NewItemBuilder().BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, actual.ApplyPatch(strPtr("   "), nil, nil), item.ErrEmptyName)
		require.ErrorIs(t, actual.ApplyPatch(nil, strPtr(""), nil), item.ErrEmptyDescription)
		assert.Equal(t, "Cordless drill", actual.Name())
	})
}
