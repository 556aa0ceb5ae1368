package alerts_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DerekDew/poe2-api-stub/internal/domain/entity"
	"github.com/DerekDew/poe2-api-stub/internal/domain/service/alerts"
	"github.com/DerekDew/poe2-api-stub/internal/infrastructure/dedup"
)

type fixedDealer struct {
	items []entity.ScoredItem
}

func (d fixedDealer) Assemble(int) []entity.ScoredItem {
	return d.items
}

type fakeNotifier struct {
	sent    []string
	failAll bool
}

func (n *fakeNotifier) Send(_ context.Context, content string) error {
	if n.failAll {
		return errors.New("boom")
	}

	n.sent = append(n.sent, content)

	return nil
}

func scoredItem(id string, score float64) entity.ScoredItem {
	return entity.ScoredItem{
		Listing: entity.Listing{
			ID:          id,
			Name:        "Emerald Loop Ring",
			Slot:        "ring",
			PriceChaos:  50,
			MarketChaos: 100,
		},
		Score: score,
	}
}

func TestScanDisabled(t *testing.T) {
	rq := require.New(t)

	notifier := &fakeNotifier{}
	service := alerts.NewService(
		fixedDealer{items: []entity.ScoredItem{scoredItem("m0-1", 9000)}},
		dedup.NewMemoryStore(),
		notifier,
		100,
		false,
	)

	report, err := service.Scan(context.Background(), 10)
	rq.NoError(err)
	rq.Equal(alerts.Report{Sent: 0, Reason: alerts.ReasonDisabled}, report)
	rq.Empty(notifier.sent)
}

func TestScanNoWebhook(t *testing.T) {
	rq := require.New(t)

	service := alerts.NewService(
		fixedDealer{items: []entity.ScoredItem{scoredItem("m0-1", 9000)}},
		dedup.NewMemoryStore(),
		nil,
		100,
		true,
	)

	report, err := service.Scan(context.Background(), 10)
	rq.NoError(err)
	rq.Equal(alerts.Report{Sent: 0, Reason: alerts.ReasonNoWebhook}, report)
}

func TestScanFiltersAndCaps(t *testing.T) {
	rq := require.New(t)

	items := make([]entity.ScoredItem, 0, 8)
	for i := 0; i < 7; i++ {
		items = append(items, scoredItem(fmt.Sprintf("m%d-1", i), 5000-float64(i)))
	}
	// Below threshold, must never be sent.
	items = append(items, scoredItem("m7-1", 10))

	notifier := &fakeNotifier{}
	service := alerts.NewService(fixedDealer{items: items}, dedup.NewMemoryStore(), notifier, 100, true)

	report, err := service.Scan(context.Background(), len(items))
	rq.NoError(err)
	rq.Equal(5, report.Sent)
	rq.Len(notifier.sent, 5)

	rq.Contains(notifier.sent[0], "Emerald Loop Ring")
	rq.Contains(notifier.sent[0], "Margin **50.0%**")
	rq.Contains(notifier.sent[0], "Spread **50.0c**")
	rq.Contains(notifier.sent[0], "Price **50c**")
	rq.Contains(notifier.sent[0], "Market **100c**")
}

func TestScanDedupAcrossScans(t *testing.T) {
	rq := require.New(t)

	items := []entity.ScoredItem{scoredItem("m0-1", 5000), scoredItem("m1-1", 4000)}
	notifier := &fakeNotifier{}
	service := alerts.NewService(fixedDealer{items: items}, dedup.NewMemoryStore(), notifier, 100, true)

	report, err := service.Scan(context.Background(), len(items))
	rq.NoError(err)
	rq.Equal(2, report.Sent)

	// Same pool later in the same UTC day: everything is already marked.
	report, err = service.Scan(context.Background(), len(items))
	rq.NoError(err)
	rq.Equal(0, report.Sent)
	rq.Len(notifier.sent, 2)
}

func TestScanMarksSentOnDeliveryFailure(t *testing.T) {
	rq := require.New(t)

	items := []entity.ScoredItem{scoredItem("m0-1", 5000)}
	notifier := &fakeNotifier{failAll: true}
	store := dedup.NewMemoryStore()
	service := alerts.NewService(fixedDealer{items: items}, store, notifier, 100, true)

	report, err := service.Scan(context.Background(), 1)
	rq.NoError(err)
	rq.Equal(1, report.Sent)

	sent, err := store.WasSent(context.Background(), "m0-1")
	rq.NoError(err)
	rq.True(sent)
}

func TestStatus(t *testing.T) {
	rq := require.New(t)

	store := dedup.NewMemoryStore()
	rq.NoError(store.MarkSent(context.Background(), "m0-1"))

	service := alerts.NewService(fixedDealer{}, store, &fakeNotifier{}, 150, true)

	status, err := service.Status(context.Background())
	rq.NoError(err)
	rq.Equal(alerts.Status{
		Enabled:    true,
		MinScore:   150,
		WebhookSet: true,
		SentToday:  1,
	}, status)

	service.SetEnabled(false)
	rq.False(service.Enabled())
}
