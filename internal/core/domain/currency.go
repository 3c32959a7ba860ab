package domain

// Currency is a currency offered by the accounting API.
type Currency struct {
	Code          string `json:"code"`          // e.g. "USD"
	Name          string `json:"name"`          // e.g. "US Dollar"
	DisplaySymbol string `json:"displaySymbol"` // e.g. "$"
	DecimalPlaces int    `json:"decimalPlaces"`
}
