package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateSource records where the active exchange rate came from.
type RateSource string

const (
	RateSourceLive   RateSource = "live"
	RateSourceManual RateSource = "manual"
)

// ExchangeRate is the single active base->local conversion rate.
// It is overwritten on every save; no history is kept.
type ExchangeRate struct {
	Rate        decimal.Decimal `json:"rate"`
	LastUpdated time.Time       `json:"lastUpdated"`
	Source      RateSource      `json:"source"`
}

// LiveRateCacheEntry is the last quote fetched from the live rate provider.
type LiveRateCacheEntry struct {
	Rate      decimal.Decimal `json:"rate"`
	Timestamp time.Time       `json:"timestamp"`
}

// IsFresh reports whether the entry is younger than ttl at now.
func (e LiveRateCacheEntry) IsFresh(now time.Time, ttl time.Duration) bool {
	if e.Timestamp.IsZero() || ttl <= 0 {
		return false
	}
	return now.Sub(e.Timestamp) < ttl
}

// RateConfigState is everything the rate configuration screen renders.
type RateConfigState struct {
	UseLiveRates       bool             `json:"useLiveRates"`
	ManualRate         *decimal.Decimal `json:"manualRate"`
	SavedRate          *decimal.Decimal `json:"savedRate"`
	SavedRateSource    RateSource       `json:"savedRateSource,omitempty"`
	LiveRate           *decimal.Decimal `json:"liveRate"`
	LastUpdated        *time.Time       `json:"lastUpdated"`
	CanSaveRate        bool             `json:"canSaveRate"`
	IsFetchingLiveRate bool             `json:"isFetchingLiveRate"`
	FetchError         string           `json:"fetchError,omitempty"`
}

// SameCalendarDay reports whether a and b fall on the same calendar day in loc.
func SameCalendarDay(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.UTC
	}
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// LiveRateFetchError is shown when the quote provider cannot be reached.
const LiveRateFetchError = "Unable to fetch live rate. Please try again later."
