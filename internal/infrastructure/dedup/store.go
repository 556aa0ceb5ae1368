// Package dedup tracks which listing IDs have already triggered an
// alert today. The day key is scoped to the current UTC calendar date.
package dedup

import (
	"context"
	"time"
)

// recordTTL outlives the UTC day by half a day so late scans near
// midnight still see the previous marks.
const recordTTL = 36 * time.Hour

// Store is selected at startup (Redis when configured and reachable,
// in-process otherwise). Call sites never branch on the implementation.
type Store interface {
	MarkSent(ctx context.Context, id string) error
	WasSent(ctx context.Context, id string) (bool, error)
	CountToday(ctx context.Context) (int, error)
}

// DayKey возвращает ключ дедупликации за текущие UTC-сутки.
func DayKey(now time.Time) string {
	return "sent:" + now.UTC().Format(time.DateOnly)
}
