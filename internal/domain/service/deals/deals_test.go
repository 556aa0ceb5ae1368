package deals_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DerekDew/poe2-api-stub/internal/domain/service/deals"
	"github.com/DerekDew/poe2-api-stub/pkg/tests"
)

var listingIDPattern = regexp.MustCompile(`^m(\d+)-\d+$`) //nolint:gochecknoglobals

func TestGenerate(t *testing.T) {
	rq := require.New(t)

	generator := deals.NewGenerator(tests.NewSeededRandomizer(42).Source)

	sellers := map[string]bool{
		"ExileHub": true, "ChaosCorner": true, "MapDaddy": true,
		"GemVault": true, "HarbingerJoe": true,
	}

	for i := 0; i < 200; i++ {
		listing := generator.Generate(i)

		matches := listingIDPattern.FindStringSubmatch(listing.ID)
		rq.NotNil(matches, "id %q", listing.ID)

		rq.NotEmpty(listing.Name)
		rq.NotEmpty(listing.Slot)
		rq.True(sellers[listing.Seller], "seller %q", listing.Seller)

		rq.GreaterOrEqual(listing.MarketChaos, 10.0)
		rq.LessOrEqual(listing.MarketChaos, 140.0)
		rq.GreaterOrEqual(listing.PriceChaos, 1.0)
		rq.LessOrEqual(listing.PriceChaos, listing.MarketChaos)

		rq.GreaterOrEqual(listing.ListedAgoMin, 1)
		rq.LessOrEqual(listing.ListedAgoMin, 180)

		rq.NotNil(listing.ItemLevel)
		rq.GreaterOrEqual(*listing.ItemLevel, 60)
		rq.LessOrEqual(*listing.ItemLevel, 86)

		rq.Equal("#", listing.URL)

		// The generated discount keeps margin within [0, 100].
		margin := deals.MarginPct(listing.MarketChaos, listing.PriceChaos)
		rq.GreaterOrEqual(margin, 0.0)
		rq.LessOrEqual(margin, 100.0)
	}
}

func TestAssemble(t *testing.T) {
	rq := require.New(t)

	service := deals.NewService(deals.NewGenerator(tests.NewSeededRandomizer(7).Source))

	for _, count := range []int{1, 10, 500} {
		items := service.Assemble(count)
		rq.Len(items, count)

		for i := 1; i < len(items); i++ {
			rq.GreaterOrEqual(items[i-1].Score, items[i].Score)
		}
	}
}

func TestHistory(t *testing.T) {
	rq := require.New(t)

	service := deals.NewService(deals.NewGenerator(tests.NewSeededRandomizer(7).Source))

	points := service.History()
	rq.Len(points, 60)

	for _, p := range points {
		rq.GreaterOrEqual(p, 1.0)
	}
}
