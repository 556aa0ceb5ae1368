package server

import (
	"github.com/DerekDew/poe2-api-stub/internal/domain/entity"
	"github.com/DerekDew/poe2-api-stub/pkg/lox"
	"github.com/DerekDew/poe2-api-stub/pkg/rest"
)

func newRESTDealsResponse(items []entity.ScoredItem) rest.DealsResponse {
	return rest.DealsResponse{
		Items: lox.Map(items, newRESTScoredItem),
	}
}

func newRESTScoredItem(item entity.ScoredItem) rest.ScoredItem {
	return rest.ScoredItem{
		Listing: newRESTListing(item.Listing),
		Score:   item.Score,
	}
}

func newRESTListing(listing entity.Listing) rest.Listing {
	return rest.Listing{
		ID:           listing.ID,
		Name:         listing.Name,
		Slot:         listing.Slot,
		PriceChaos:   listing.PriceChaos,
		MarketChaos:  listing.MarketChaos,
		Seller:       listing.Seller,
		ListedAgoMin: listing.ListedAgoMin,
		ItemLevel:    listing.ItemLevel,
		URL:          listing.URL,
	}
}
