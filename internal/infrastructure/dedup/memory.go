package dedup

import (
	"context"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

const memoryCleanupInterval = 10 * time.Minute

// MemoryStore is the volatile fallback used when Redis is not
// configured. Entries expire after recordTTL, matching the Redis
// variant, so the map does not grow without bound across days.
type MemoryStore struct {
	entries *cache.Cache
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: cache.New(recordTTL, memoryCleanupInterval),
		now:     time.Now,
	}
}

func (s *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	s.now = now
	return s
}

func (s *MemoryStore) MarkSent(_ context.Context, id string) error {
	s.entries.Set(s.entryKey(id), struct{}{}, cache.DefaultExpiration)
	return nil
}

func (s *MemoryStore) WasSent(_ context.Context, id string) (bool, error) {
	_, found := s.entries.Get(s.entryKey(id))
	return found, nil
}

// CountToday returns the number of distinct IDs marked under today's
// key, not the number of MarkSent calls.
func (s *MemoryStore) CountToday(_ context.Context) (int, error) {
	prefix := DayKey(s.now()) + ":"

	var count int

	for key := range s.entries.Items() {
		if strings.HasPrefix(key, prefix) {
			count++
		}
	}

	return count, nil
}

func (s *MemoryStore) entryKey(id string) string {
	return DayKey(s.now()) + ":" + id
}
