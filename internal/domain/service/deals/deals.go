package deals

import (
	"sort"

	"github.com/DerekDew/poe2-api-stub/internal/domain/entity"
)

const (
	historyPoints  = 60
	historyBaseMin = 10.0
	historyBaseMax = 120.0
	historyWobble  = 0.12
	historyFloor   = 1.0
)

// Service assembles scored synthetic deals. Every call regenerates the
// pool from scratch, nothing is cached.
type Service struct {
	generator *Generator
}

func NewService(generator *Generator) *Service {
	return &Service{
		generator: generator,
	}
}

// Assemble generates count listings, scores each and returns them in
// descending score order. Sort is stable, ties keep generation order.
// Count bounds are enforced by the HTTP layer.
func (s *Service) Assemble(count int) []entity.ScoredItem {
	items := make([]entity.ScoredItem, count)

	for i := range items {
		listing := s.generator.Generate(i)
		items[i] = entity.ScoredItem{
			Listing: listing,
			Score:   Score(listing),
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})

	return items
}

// History returns pure noise around a random base price. The requested
// id is echoed back by the HTTP layer and never inspected.
func (s *Service) History() []float64 {
	base := s.generator.uniform(historyBaseMin, historyBaseMax)

	points := make([]float64, historyPoints)
	for i := range points {
		wobble := s.generator.uniform(-historyWobble, historyWobble)
		points[i] = round2(max(historyFloor, base+wobble*base))
	}

	return points
}
