package dto

import (
	"time"

	"github.com/Odongfelix/jweb/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SavedRateResponse is the rate currently used for conversions.
type SavedRateResponse struct {
	Rate        decimal.Decimal `json:"rate"`
	LastUpdated time.Time       `json:"lastUpdated"`
	Source      string          `json:"source"`
}

// RateConfigResponse is the state of the rate configuration screen.
type RateConfigResponse struct {
	UseLiveRates       bool             `json:"useLiveRates"`
	ManualRate         *decimal.Decimal `json:"manualRate"`
	SavedRate          *decimal.Decimal `json:"savedRate"`
	SavedRateSource    string           `json:"savedRateSource,omitempty"`
	LiveRate           *decimal.Decimal `json:"liveRate"`
	LastUpdated        *time.Time       `json:"lastUpdated"`
	CanSaveRate        bool             `json:"canSaveRate"`
	IsFetchingLiveRate bool             `json:"isFetchingLiveRate"`
	FetchError         *string          `json:"fetchError"`
}

// ToggleRateModeRequest switches between live and manual rates.
type ToggleRateModeRequest struct {
	UseLiveRates *bool `json:"useLiveRates" binding:"required"`
}

// SaveRateRequest saves either a manual rate or, with source "live", the current live rate.
type SaveRateRequest struct {
	Rate   *decimal.Decimal `json:"rate"`
	Source string           `json:"source" binding:"omitempty,oneof=live manual"`
}

// IsLive reports whether the request asks to save the live rate.
func (r SaveRateRequest) IsLive() bool {
	return r.Source == string(domain.RateSourceLive)
}

// ToSavedRateResponse converts a domain.ExchangeRate to SavedRateResponse DTO
func ToSavedRateResponse(rate *domain.ExchangeRate) SavedRateResponse {
	return SavedRateResponse{
		Rate:        rate.Rate,
		LastUpdated: rate.LastUpdated,
		Source:      string(rate.Source),
	}
}

// ToRateConfigResponse converts a domain.RateConfigState to RateConfigResponse DTO
func ToRateConfigResponse(state *domain.RateConfigState) RateConfigResponse {
	resp := RateConfigResponse{
		UseLiveRates:       state.UseLiveRates,
		ManualRate:         state.ManualRate,
		SavedRate:          state.SavedRate,
		SavedRateSource:    string(state.SavedRateSource),
		LiveRate:           state.LiveRate,
		LastUpdated:        state.LastUpdated,
		CanSaveRate:        state.CanSaveRate,
		IsFetchingLiveRate: state.IsFetchingLiveRate,
	}
	if state.FetchError != "" {
		msg := state.FetchError
		resp.FetchError = &msg
	}
	return resp
}
