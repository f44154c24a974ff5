package presenceflags

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Store guarda a flag diária "confirmado no salão" usada pelo geofence
// GPS. A flag é setada quando um report confirma presença, lida pelo
// sweeper de fim de dia e limpa quando o worker é forçado a offline.
type Store interface {
	MarkConfirmed(ctx context.Context, workerID uint, day time.Time) error
	IsConfirmed(ctx context.Context, workerID uint, day time.Time) (bool, error)
	ClearConfirmed(ctx context.Context, workerID uint, day time.Time) error
}

// ======================================================
// Redis
// ======================================================

// flagTTL garante que a flag expira sozinha mesmo se o sweeper nunca
// chegar a limpar (worker que saiu do status ativo por toggle manual).
const flagTTL = 24 * time.Hour

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func key(workerID uint, day time.Time) string {
	return fmt.Sprintf("presence:confirmed:%d:%s", workerID, day.Format("2006-01-02"))
}

func (s *RedisStore) MarkConfirmed(ctx context.Context, workerID uint, day time.Time) error {
	return s.client.Set(ctx, key(workerID, day), "1", flagTTL).Err()
}

func (s *RedisStore) IsConfirmed(ctx context.Context, workerID uint, day time.Time) (bool, error) {
	_, err := s.client.Get(ctx, key(workerID, day)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *RedisStore) ClearConfirmed(ctx context.Context, workerID uint, day time.Time) error {
	return s.client.Del(ctx, key(workerID, day)).Err()
}

var _ Store = (*RedisStore)(nil)
