//go:build unit

package user_test

import (
	"testing"

	"shareit/internal/domain/user"
	"shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := builder.NewUserBuilder()
			if c.mutate != nil {
				b.With(c.mutate)
			}
			actual, err := b.BuildDomain()
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestNewUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Taro Yamada", actual.Name())
		assert.Equal(t, "taro@example.com", actual.Email().String())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid address",
				mutate: func(b *builder.UserBuilder) { b.Email = "valid@example.com" },
			},
			{
				name:   "empty address",
				mutate: func(b *builder.UserBuilder) { b.Email = "" },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "no at sign",
				mutate: func(b *builder.UserBuilder) { b.Email = "invalidemail.com" },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "nothing after at sign",
				mutate: func(b *builder.UserBuilder) { b.Email = "taro@" },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "nothing before at sign",
				mutate: func(b *builder.UserBuilder) { b.Email = "@example.com" },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "blank name",
				mutate: func(b *builder.UserBuilder) { b.Name = "   " },
				errIs:  user.ErrEmptyName,
			},
		})
	})
}

func TestApplyPatch(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("updates only the supplied fields", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, u.ApplyPatch(strPtr("Jiro Sato"), nil))
		assert.Equal(t, "Jiro Sato", u.Name())
		assert.Equal(t, "taro@example.com", u.Email().String(), "email untouched")

		require.NoError(t, u.ApplyPatch(nil, strPtr("jiro@example.com")))
		assert.Equal(t, "Jiro Sato", u.Name(), "name untouched")
		assert.Equal(t, "jiro@example.com", u.Email().String())
	})

	t.Run("rejects invalid values without partial application", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, u.ApplyPatch(strPtr(""), nil), user.ErrEmptyName)
		require.ErrorIs(t, u.ApplyPatch(nil, strPtr("broken")), user.ErrInvalidEmail)

		assert.Equal(t, "Taro Yamada", u.Name())
		assert.Equal(t, "taro@example.com", u.Email().String())
	})
}
