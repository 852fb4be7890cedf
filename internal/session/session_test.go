package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azaliaz/ruboni/internal/domain/consts"
	"github.com/azaliaz/ruboni/internal/domain/models"
	"github.com/azaliaz/ruboni/internal/storage"
	storerrors "github.com/azaliaz/ruboni/internal/storage/errors"
)

var testUser = models.User{ID: 5, Email: "amina@example.com", FirstName: "Amina"}

func TestReduce(t *testing.T) {
	u := testUser
	s := reduce(state{}, action{kind: actLogin, user: &u, token: "jwt"})
	assert.Equal(t, "jwt", s.token)
	require.NotNil(t, s.user)

	renamed := testUser
	renamed.FirstName = "Neema"
	s = reduce(s, action{kind: actUpdateUser, user: &renamed})
	assert.Equal(t, "jwt", s.token)
	assert.Equal(t, "Neema", s.user.FirstName)

	s = reduce(s, action{kind: actLogout})
	assert.Nil(t, s.user)
	assert.Empty(t, s.token)

	assert.Equal(t, state{}, reduce(state{}, action{kind: actLogout}))
}

func TestLogin_Rehydrates(t *testing.T) {
	ctx := context.Background()
	stor := storage.New()

	s := New(stor)
	s.Init(ctx)
	assert.False(t, s.IsAuthenticated())

	s.Login(ctx, testUser, "jwt-1")
	assert.True(t, s.IsAuthenticated())

	fresh := New(stor)
	assert.True(t, fresh.IsLoading())
	fresh.Init(ctx)
	assert.False(t, fresh.IsLoading())
	assert.True(t, fresh.IsAuthenticated())
	u, ok := fresh.User()
	require.True(t, ok)
	assert.Equal(t, testUser, u)
	assert.Equal(t, "jwt-1", fresh.Token())
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	stor := storage.New()
	s := New(stor)
	s.Init(ctx)
	s.Login(ctx, testUser, "jwt-1")

	s.Logout(ctx)
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())

	_, err := stor.Get(ctx, consts.KeyUser)
	assert.ErrorIs(t, err, storerrors.ErrKeyNotFound)
	_, err = stor.Get(ctx, consts.KeyToken)
	assert.ErrorIs(t, err, storerrors.ErrKeyNotFound)

	assert.NotPanics(t, func() { s.Logout(ctx) })
	assert.False(t, s.IsAuthenticated())
}

func TestUpdateUser_KeepsToken(t *testing.T) {
	ctx := context.Background()
	stor := storage.New()
	s := New(stor)
	s.Init(ctx)
	s.Login(ctx, testUser, "jwt-1")

	changed := testUser
	changed.Phone = "+255700000000"
	s.UpdateUser(ctx, changed)

	fresh := New(stor)
	fresh.Init(ctx)
	u, _ := fresh.User()
	assert.Equal(t, "+255700000000", u.Phone)
	assert.Equal(t, "jwt-1", fresh.Token())
}

func TestInit(t *testing.T) {
	ctx := context.Background()

	t.Run("corrupted user is purged", func(t *testing.T) {
		stor := storage.New()
		require.NoError(t, stor.Set(ctx, consts.KeyUser, "{not json"))
		require.NoError(t, stor.Set(ctx, consts.KeyToken, "jwt"))

		s := New(stor)
		s.Init(ctx)
		assert.False(t, s.IsAuthenticated())
		assert.False(t, s.IsLoading())
		_, err := stor.Get(ctx, consts.KeyUser)
		assert.ErrorIs(t, err, storerrors.ErrKeyNotFound)
		_, err = stor.Get(ctx, consts.KeyToken)
		assert.ErrorIs(t, err, storerrors.ErrKeyNotFound)
	})

	for name, raw := range map[string]string{
		"null user":       "null",
		"user without id": `{"email":"a@b.c"}`,
	} {
		t.Run(name+" is purged", func(t *testing.T) {
			stor := storage.New()
			require.NoError(t, stor.Set(ctx, consts.KeyUser, raw))
			require.NoError(t, stor.Set(ctx, consts.KeyToken, "jwt"))

			s := New(stor)
			s.Init(ctx)
			assert.False(t, s.IsAuthenticated())
			_, ok := s.User()
			assert.False(t, ok)
			_, err := stor.Get(ctx, consts.KeyToken)
			assert.ErrorIs(t, err, storerrors.ErrKeyNotFound)
		})
	}

	t.Run("user without token stays logged out", func(t *testing.T) {
		stor := storage.New()
		require.NoError(t, stor.Set(ctx, consts.KeyUser, `{"id":1,"email":"a@b.c"}`))

		s := New(stor)
		s.Init(ctx)
		assert.False(t, s.IsAuthenticated())
	})
}

type failingStorage struct{}

func (failingStorage) Get(context.Context, string) (string, error) {
	return "", errors.New("disk gone")
}
func (failingStorage) Set(context.Context, string, string) error { return errors.New("disk gone") }
func (failingStorage) Remove(context.Context, string) error     { return errors.New("disk gone") }

func TestPersistFailuresAreNotSurfaced(t *testing.T) {
	ctx := context.Background()
	s := New(failingStorage{})
	s.Init(ctx)
	assert.False(t, s.IsLoading())

	s.Login(ctx, testUser, "jwt")
	assert.True(t, s.IsAuthenticated())
	s.Logout(ctx)
	assert.False(t, s.IsAuthenticated())
}
