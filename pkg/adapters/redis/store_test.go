package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/quinnjr/fish-dating-simulator/pkg/adapters/redis"
	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
	"github.com/quinnjr/fish-dating-simulator/pkg/ports"
	"github.com/quinnjr/fish-dating-simulator/pkg/ports/tests"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.PlayerStore = (*redis.Store)(nil)

func newClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newClient(t)
	tests.PlayerStoreContract(t, redis.NewFromClient(client))
}

func TestRedisStore_ContractWithLocker(t *testing.T) {
	_, client := newClient(t)
	store := redis.NewFromClient(client, redis.WithLocker(redis.NewLocker(client, "test:")))
	tests.PlayerStoreContract(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client, redis.WithTTL(time.Second))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "cloud", domain.NewPlayerState()))
	profiles, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"cloud"}, profiles)

	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, "cloud")
	assert.ErrorIs(t, err, domain.ErrSaveNotFound)

	profiles, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, profiles)
	assert.False(t, mr.Exists("fishdating:profiles"), "expired profile pruned from the index")
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client, redis.WithPrefix("custom:app:"))

	require.NoError(t, store.Save(context.Background(), "mine", domain.NewPlayerState()))

	assert.True(t, mr.Exists("custom:app:save:mine"))
	assert.True(t, mr.Exists("custom:app:profiles"))
}

func TestRedisStore_SaveBlockedByForeignLock(t *testing.T) {
	_, client := newClient(t)
	locker := redis.NewLocker(client, "test:")
	store := redis.NewFromClient(client, redis.WithLocker(locker))

	unlock, err := locker.Lock(context.Background(), "shared", 5*time.Second)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	err = store.Save(ctx, "shared", domain.NewPlayerState())
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, unlock(context.Background()))
	assert.NoError(t, store.Save(context.Background(), "shared", domain.NewPlayerState()))
}
