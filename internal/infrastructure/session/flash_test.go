package session_test

import (
	"context"
	"testing"
	"time"
	"unsafe"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/licores-deluxe/internal/application/dto"
	"github.com/jhoicas/licores-deluxe/internal/infrastructure/session"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *session.RedisFlashStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, session.NewRedisFlashStoreFromClient(client, time.Minute)
}

func TestRedisFlashStore_SeMuestraUnaSolaVez(t *testing.T) {
	_, store := setupRedis(t)
	ctx := context.Background()

	n := &dto.Notification{Kind: dto.NotifyConflict, Message: "Bloqueado", Dependents: []string{"Macallan 25"}}
	require.NoError(t, store.Put(ctx, "sid-1", n))

	got, err := store.Pop(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, n, got)

	got, err = store.Pop(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisFlashStore_Expira(t *testing.T) {
	mr, store := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "sid-1", dto.Success("Categoría creada")))
	assert.True(t, mr.Exists("licores:flash:sid-1"))
	mr.FastForward(2 * time.Minute)

	got, err := store.Pop(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestNewRedisFlashStore_URLInvalida(t *testing.T) {
	_, err := session.NewRedisFlashStore(context.Background(), "no-es-url", time.Minute)
	assert.Error(t, err)
}

func TestNewRedisFlashStore_Conecta(t *testing.T) {
	mr := miniredis.RunT(t)
	store, err := session.NewRedisFlashStore(context.Background(), "redis://"+mr.Addr(), time.Minute)
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}

func TestMemoryFlashStore_SeMuestraUnaSolaVez(t *testing.T) {
	store := session.NewMemoryFlashStore(time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "sid-1", dto.Failure("Error al guardar")))
	require.NoError(t, store.Put(ctx, "", dto.Failure("ignorado")))

	got, err := store.Pop(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Error al guardar", got.Message)

	got, err = store.Pop(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryFlashStore_Expira(t *testing.T) {
	store := session.NewMemoryFlashStore(time.Nanosecond)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "sid-1", dto.Success("ok")))
	time.Sleep(time.Millisecond)
	got, err := store.Pop(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryFlashStore_ClaveNoDependeDelBufferDelLlamador(t *testing.T) {
	store := session.NewMemoryFlashStore(time.Minute)
	ctx := context.Background()

	// Simula la cookie que Fiber entrega como vista de su buffer reutilizable.
	buf := []byte("sid-1")
	key := unsafe.String(&buf[0], len(buf))
	require.NoError(t, store.Put(ctx, key, dto.Success("Categoría creada")))
	copy(buf, "sid-2")

	got, err := store.Pop(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Categoría creada", got.Message)
}
