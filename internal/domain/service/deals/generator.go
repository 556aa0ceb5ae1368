package deals

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/DerekDew/poe2-api-stub/internal/domain/entity"
)

// Каталог мокнутых лотов. Replace fetcher with real source.
//
//nolint:gochecknoglobals
var catalog = []struct {
	name string
	slot string
}{
	{"Ritual Fang Axe of the Bear", "weapon"},
	{"Emerald Loop Ring", "ring"},
	{"Dragonheart Scale Vest", "chest"},
	{"Zephyr Touch Gloves", "gloves"},
	{"Viper Talisman Amulet", "amulet"},
	{"Gale Stride Boots", "boots"},
	{"Quartz Flask of Light", "flask"},
	{"Crown of Thorns", "helmet"},
	{"Volcanic Fissure (20/20)", "gem"},
}

//nolint:gochecknoglobals
var sellers = []string{"ExileHub", "ChaosCorner", "MapDaddy", "GemVault", "HarbingerJoe"}

const (
	marketMin = 10.0
	marketMax = 140.0

	priceFloor      = 1.0
	discountMin     = 1.0
	discountMaxFrac = 0.7

	ageMinutesMax = 180

	itemLevelMin = 60
	itemLevelMax = 86
)

// Generator produces synthetic listings from the fixed catalog.
type Generator struct {
	random *rand.Rand
	now    func() time.Time
}

func NewGenerator(random *rand.Rand) *Generator {
	return &Generator{
		random: random,
		now:    time.Now,
	}
}

func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Generate builds one listing. The ID embeds the index and the current
// unix-millisecond timestamp; two listings with the same index generated
// within the same millisecond collide. Fine for a mock.
func (g *Generator) Generate(index int) entity.Listing {
	item := catalog[g.random.Intn(len(catalog))]

	market := round2(g.uniform(marketMin, marketMax))
	price := round2(max(priceFloor, market-g.uniform(discountMin, market*discountMaxFrac)))

	ilvl := itemLevelMin + g.random.Intn(itemLevelMax-itemLevelMin+1)

	return entity.Listing{
		ID:           fmt.Sprintf("m%d-%d", index, g.now().UnixMilli()),
		Name:         item.name,
		Slot:         item.slot,
		PriceChaos:   price,
		MarketChaos:  market,
		Seller:       sellers[g.random.Intn(len(sellers))],
		ListedAgoMin: 1 + g.random.Intn(ageMinutesMax),
		ItemLevel:    &ilvl,
		URL:          "#",
	}
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.random.Float64()*(hi-lo)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
