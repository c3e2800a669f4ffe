// Package session guarda los avisos flash del patrón Post/Redirect/Get: una
// mutación hecha desde un formulario HTML deja su aviso y el siguiente GET lo
// muestra una sola vez.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/licores-deluxe/internal/application/dto"
)

// FlashStore almacén de avisos por sesión.
type FlashStore interface {
	Put(ctx context.Context, sessionID string, n *dto.Notification) error
	// Pop devuelve y borra el aviso pendiente; nil si no hay.
	Pop(ctx context.Context, sessionID string) (*dto.Notification, error)
}

const keyPrefix = "licores:flash:"

// RedisFlashStore avisos en Redis con expiración.
type RedisFlashStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisFlashStore conecta con redisURL y comprueba la conexión.
func NewRedisFlashStore(ctx context.Context, redisURL string, ttl time.Duration) (*RedisFlashStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("REDIS_URL inválido: %w", err)
	}
	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("conectar a Redis: %w", err)
	}
	return NewRedisFlashStoreFromClient(client, ttl), nil
}

// NewRedisFlashStoreFromClient usa un cliente ya construido.
func NewRedisFlashStoreFromClient(client *redis.Client, ttl time.Duration) *RedisFlashStore {
	return &RedisFlashStore{client: client, ttl: ttl}
}

func (s *RedisFlashStore) Put(ctx context.Context, sessionID string, n *dto.Notification) error {
	if n == nil || sessionID == "" {
		return nil
	}
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("flash: serializar: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+sessionID, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("flash: guardar: %w", err)
	}
	return nil
}

func (s *RedisFlashStore) Pop(ctx context.Context, sessionID string) (*dto.Notification, error) {
	if sessionID == "" {
		return nil, nil
	}
	raw, err := s.client.GetDel(ctx, keyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("flash: leer: %w", err)
	}
	var n dto.Notification
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, fmt.Errorf("flash: deserializar: %w", err)
	}
	return &n, nil
}

// Close cierra el cliente de Redis.
func (s *RedisFlashStore) Close() error {
	return s.client.Close()
}

// MemoryFlashStore avisos en memoria del proceso (una sola instancia, desarrollo).
type MemoryFlashStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items map[string]memoryEntry
}

type memoryEntry struct {
	n       dto.Notification
	expires time.Time
}

// NewMemoryFlashStore construye el almacén en memoria.
func NewMemoryFlashStore(ttl time.Duration) *MemoryFlashStore {
	return &MemoryFlashStore{ttl: ttl, now: time.Now, items: make(map[string]memoryEntry)}
}

func (s *MemoryFlashStore) Put(_ context.Context, sessionID string, n *dto.Notification) error {
	if n == nil || sessionID == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()
	s.items[strings.Clone(sessionID)] = memoryEntry{n: *n.Clone(), expires: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryFlashStore) Pop(_ context.Context, sessionID string) (*dto.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[sessionID]
	if !ok {
		return nil, nil
	}
	delete(s.items, sessionID)
	if s.ttl > 0 && s.now().After(e.expires) {
		return nil, nil
	}
	return &e.n, nil
}

// sweep descarta avisos caducados; se llama con el mutex tomado.
func (s *MemoryFlashStore) sweep() {
	if s.ttl <= 0 {
		return
	}
	now := s.now()
	for k, e := range s.items {
		if now.After(e.expires) {
			delete(s.items, k)
		}
	}
}
