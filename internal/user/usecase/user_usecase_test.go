package usecase

import (
	"context"
	"testing"
	"time"

	userdomain "cardshop-backend/internal/user/domain"
	"cardshop-backend/internal/user/repository"
	"cardshop-backend/pkg/cache"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeUserRepo counts store round-trips so cache behavior is observable
type fakeUserRepo struct {
	users     map[string]*userdomain.User // key: id or phone
	findCalls int
	findErr   error
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*userdomain.User)}
}

func (f *fakeUserRepo) addUser(phone string) *userdomain.User {
	user := &userdomain.User{
		ID:          uuid.New().String(),
		PhoneNumber: phone,
		Password:    "$2a$10$hash",
	}
	f.users[user.ID] = user
	f.users[user.PhoneNumber] = user
	return user
}

func (f *fakeUserRepo) Create(user *userdomain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.users[user.PhoneNumber]; ok {
		return gorm.ErrDuplicatedKey
	}
	user.ID = uuid.New().String()
	f.users[user.ID] = user
	f.users[user.PhoneNumber] = user
	return nil
}

func (f *fakeUserRepo) FindByIDOrPhone(key string) (*userdomain.User, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.users[key], nil
}

func (f *fakeUserRepo) Delete(id string) error {
	if user, ok := f.users[id]; ok {
		delete(f.users, user.PhoneNumber)
		delete(f.users, id)
	}
	return nil
}

func newTestDirectory(t *testing.T) (UserUsecase, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	return NewUserUsecase(repo, cache.NewMemoryCache(), 24*time.Hour), repo
}

func TestFindOne(t *testing.T) {
	ctx := context.Background()

	t.Run("serves repeated lookups from the cache", func(t *testing.T) {
		directory, repo := newTestDirectory(t)
		user := repo.addUser("+71234567890")

		first, err := directory.FindOne(ctx, user.PhoneNumber, false)
		require.NoError(t, err)
		second, err := directory.FindOne(ctx, user.PhoneNumber, false)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, repo.findCalls, "second lookup must not touch the store")
	})

	t.Run("cached and stored data are identical", func(t *testing.T) {
		directory, repo := newTestDirectory(t)
		user := repo.addUser("+71234567890")

		fromStore, err := directory.FindOne(ctx, user.ID, false)
		require.NoError(t, err)
		fromCache, err := directory.FindOne(ctx, user.ID, false)
		require.NoError(t, err)

		assert.Equal(t, user.ID, fromStore.ID)
		assert.Equal(t, user.PhoneNumber, fromCache.PhoneNumber)
		assert.Equal(t, fromStore.Password, fromCache.Password)
	})

	t.Run("negative results are never cached", func(t *testing.T) {
		directory, repo := newTestDirectory(t)

		missing, err := directory.FindOne(ctx, "+79999999999", false)
		require.NoError(t, err)
		assert.Nil(t, missing)

		// The user appears later; lookups must see it immediately.
		repo.addUser("+79999999999")
		found, err := directory.FindOne(ctx, "+79999999999", false)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, 2, repo.findCalls)
	})

	t.Run("forceRefresh drops the stale entry", func(t *testing.T) {
		directory, repo := newTestDirectory(t)
		user := repo.addUser("+71234567890")

		_, err := directory.FindOne(ctx, user.PhoneNumber, false)
		require.NoError(t, err)

		// Mutate the store behind the cache's back.
		repo.users[user.PhoneNumber].Password = "$2a$10$newhash"

		stale, err := directory.FindOne(ctx, user.PhoneNumber, false)
		require.NoError(t, err)
		assert.Equal(t, "$2a$10$hash", stale.Password)

		fresh, err := directory.FindOne(ctx, user.PhoneNumber, true)
		require.NoError(t, err)
		assert.Equal(t, "$2a$10$newhash", fresh.Password)
	})

	t.Run("store errors propagate", func(t *testing.T) {
		directory, repo := newTestDirectory(t)
		repo.findErr = assert.AnError

		_, err := directory.FindOne(ctx, "+71234567890", false)
		assert.Error(t, err)
	})
}

func TestSave(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes the password before persisting", func(t *testing.T) {
		directory, _ := newTestDirectory(t)

		user, err := directory.Save(ctx, "+71234567890", "secret1234")
		require.NoError(t, err)
		assert.NotEqual(t, "secret1234", user.Password)
		assert.True(t, repository.CheckPasswordHash("secret1234", user.Password))
	})

	t.Run("duplicate phone surfaces as ErrPhoneTaken", func(t *testing.T) {
		directory, repo := newTestDirectory(t)
		repo.addUser("+71234567890")

		_, err := directory.Save(ctx, "+71234567890", "secret1234")
		assert.ErrorIs(t, err, ErrPhoneTaken)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("invalidates both cache keys", func(t *testing.T) {
		directory, repo := newTestDirectory(t)
		user := repo.addUser("+71234567890")

		// Warm both entries.
		_, err := directory.FindOne(ctx, user.ID, false)
		require.NoError(t, err)
		_, err = directory.FindOne(ctx, user.PhoneNumber, false)
		require.NoError(t, err)

		require.NoError(t, directory.Delete(ctx, user.ID))

		byID, err := directory.FindOne(ctx, user.ID, false)
		require.NoError(t, err)
		assert.Nil(t, byID)
		byPhone, err := directory.FindOne(ctx, user.PhoneNumber, false)
		require.NoError(t, err)
		assert.Nil(t, byPhone)
	})
}
