package memory

import "context"

// StaticFeed serves a fixed price list and matchday label. It backs the
// memory storage driver and tests; production wiring uses the HTTP feed
// client instead.
type StaticFeed struct {
	Prices   map[string]int64
	Matchday string
}

func NewStaticFeed(prices map[string]int64, matchday string) *StaticFeed {
	return &StaticFeed{Prices: prices, Matchday: matchday}
}

func (f *StaticFeed) PlayerPrices(_ context.Context, _ string) (map[string]int64, error) {
	prices := make(map[string]int64, len(f.Prices))
	for playerID, price := range f.Prices {
		prices[playerID] = price
	}
	return prices, nil
}

func (f *StaticFeed) CurrentMatchday(_ context.Context, _ string) (string, error) {
	return f.Matchday, nil
}
