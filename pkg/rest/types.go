// Wire types for the public API. Field names follow the dashboard
// contract and must stay stable.
package rest

type Listing struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Slot         string  `json:"slot"`
	PriceChaos   float64 `json:"price_chaos"`
	MarketChaos  float64 `json:"market_chaos"`
	Seller       string  `json:"seller"`
	ListedAgoMin int     `json:"listed_ago_min"`
	ItemLevel    *int    `json:"ilvl,omitempty"`
	URL          string  `json:"url,omitempty"`
}

type ScoredItem struct {
	Listing Listing `json:"listing"`
	Score   float64 `json:"score"`
}

type DealsResponse struct {
	Items []ScoredItem `json:"items"`
}

type Health struct {
	Status string  `json:"status"`
	Time   float64 `json:"time"`
}

type HistoryResponse struct {
	ID     string    `json:"id"`
	Points []float64 `json:"points"`
}

type AlertsStatus struct {
	Enabled    bool    `json:"enabled"`
	MinScore   float64 `json:"min_score"`
	WebhookSet bool    `json:"webhook_set"`
	SentToday  int     `json:"sent_today"`
}

type AlertsToggle struct {
	OK      bool `json:"ok"`
	Enabled bool `json:"enabled"`
}

type AlertsScan struct {
	OK     bool   `json:"ok"`
	Sent   int    `json:"sent"`
	Reason string `json:"reason,omitempty"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code string `json:"code"`

	// Message Сообщение об ошибке
	Message string `json:"message"`

	SupportID string `json:"supportId"`
}
