package documentstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/multiplatform-ads-api/internal/config"
)

const (
	fieldPayload  = "payload"
	fieldLastSync = "last_sync"
)

// RedisStore guarda cada documento em um hash com o payload e o instante da gravação
type RedisStore struct {
	client redis.Cmdable
	clock  Clock
}

func NewRedisStore(cfg config.Redis, clock Clock) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return NewRedisStoreWithClient(rdb, clock)
}

func NewRedisStoreWithClient(client redis.Cmdable, clock Clock) *RedisStore {
	if clock == nil {
		clock = time.Now
	}
	return &RedisStore{client: client, clock: clock}
}

func (s *RedisStore) Get(ctx context.Context, collection, key string) (*Document, error) {
	values, err := s.client.HGetAll(ctx, redisKey(collection, key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("erro ao ler documento no redis: %w", err)
	}

	return decodeRedisHash(values)
}

func (s *RedisStore) Put(ctx context.Context, collection, key string, payload []byte) error {
	err := s.client.HSet(ctx, redisKey(collection, key),
		fieldPayload, payload,
		fieldLastSync, strconv.FormatInt(s.clock().UnixNano(), 10),
	).Err()
	if err != nil {
		return fmt.Errorf("erro ao gravar documento no redis: %w", err)
	}
	return nil
}

func (s *RedisStore) Age(ctx context.Context, collection, key string) (time.Duration, error) {
	doc, err := s.Get(ctx, collection, key)
	if err != nil {
		return 0, err
	}
	return s.clock().Sub(doc.LastSync), nil
}

func redisKey(collection, key string) string {
	return fmt.Sprintf("advertising:%s:%s", collection, key)
}

// decodeRedisHash converte o resultado de HGETALL; hash vazio significa chave inexistente
func decodeRedisHash(values map[string]string) (*Document, error) {
	if len(values) == 0 {
		return nil, ErrNotFound
	}

	payload, ok := values[fieldPayload]
	if !ok {
		return nil, fmt.Errorf("documento sem payload")
	}

	nanos, err := strconv.ParseInt(values[fieldLastSync], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("last_sync inválido: %w", err)
	}

	return &Document{
		Payload:  []byte(payload),
		LastSync: time.Unix(0, nanos),
	}, nil
}
