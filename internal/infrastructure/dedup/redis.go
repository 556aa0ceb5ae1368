package dedup

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the day's marks in a Redis hash under the day key,
// expiring the whole record after recordTTL.
type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		now:    time.Now,
	}
}

func (s *RedisStore) WithClock(now func() time.Time) *RedisStore {
	s.now = now
	return s
}

func (s *RedisStore) MarkSent(ctx context.Context, id string) error {
	key := DayKey(s.now())

	if err := s.client.HSet(ctx, key, id, 1).Err(); err != nil {
		return fmt.Errorf("redis.HSet: %w", err)
	}

	if err := s.client.Expire(ctx, key, recordTTL).Err(); err != nil {
		return fmt.Errorf("redis.Expire: %w", err)
	}

	return nil
}

func (s *RedisStore) WasSent(ctx context.Context, id string) (bool, error) {
	sent, err := s.client.HExists(ctx, DayKey(s.now()), id).Result()
	if err != nil {
		return false, fmt.Errorf("redis.HExists: %w", err)
	}

	return sent, nil
}

func (s *RedisStore) CountToday(ctx context.Context) (int, error) {
	count, err := s.client.HLen(ctx, DayKey(s.now())).Result()
	if err != nil {
		return 0, fmt.Errorf("redis.HLen: %w", err)
	}

	return int(count), nil
}
