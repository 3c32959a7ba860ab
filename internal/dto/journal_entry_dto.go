package dto

import (
	"strings"
	"time"

	"github.com/Odongfelix/jweb/internal/apperrors"
	"github.com/Odongfelix/jweb/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineRequest is one debit or credit line.
type JournalLineRequest struct {
	GLAccountID int64           `json:"glAccountId"`
	Amount      decimal.Decimal `json:"amount"`
}

// CreateJournalEntryRequest is the submitted journal entry form.
// Field rules are checked together by the service so every invalid field is reported.
type CreateJournalEntryRequest struct {
	OfficeID        int64                `json:"officeId"`
	CurrencyCode    string               `json:"currencyCode"`
	Debits          []JournalLineRequest `json:"debits"`
	Credits         []JournalLineRequest `json:"credits"`
	ReferenceNumber string               `json:"referenceNumber"`
	TransactionDate string               `json:"transactionDate" example:"2024-05-10"`
	PaymentTypeID   int64                `json:"paymentTypeId"`
	AccountNumber   string               `json:"accountNumber"`
	ChequeNumber    string               `json:"chequeNumber"`
	RoutingCode     string               `json:"routingCode"`
	ReceiptNumber   string               `json:"receiptNumber"`
	BankNumber      string               `json:"bankNumber"`
	Comments        string               `json:"comments"`
}

// ToDraft converts the request to a domain draft. Dates without a time are
// read in loc. A malformed date is reported as a field error.
func (r CreateJournalEntryRequest) ToDraft(loc *time.Location) (domain.JournalEntryDraft, error) {
	draft := domain.JournalEntryDraft{
		OfficeID:        r.OfficeID,
		CurrencyCode:    strings.ToUpper(strings.TrimSpace(r.CurrencyCode)),
		Debits:          toJournalLines(r.Debits),
		Credits:         toJournalLines(r.Credits),
		ReferenceNumber: strings.TrimSpace(r.ReferenceNumber),
		Comments:        r.Comments,
	}

	if r.TransactionDate != "" {
		date, err := ParseDate(r.TransactionDate, loc)
		if err != nil {
			return draft, apperrors.ValidationErrors{"transactionDate": "Must be a date in YYYY-MM-DD format"}
		}
		draft.TransactionDate = date
	}

	payment := domain.PaymentDetails{
		PaymentTypeID: r.PaymentTypeID,
		AccountNumber: r.AccountNumber,
		ChequeNumber:  r.ChequeNumber,
		RoutingCode:   r.RoutingCode,
		ReceiptNumber: r.ReceiptNumber,
		BankNumber:    r.BankNumber,
	}
	if payment != (domain.PaymentDetails{}) {
		draft.Payment = &payment
	}
	return draft, nil
}

func toJournalLines(lines []JournalLineRequest) []domain.JournalLine {
	if lines == nil {
		return nil
	}
	out := make([]domain.JournalLine, len(lines))
	for i, l := range lines {
		out[i] = domain.JournalLine{GLAccountID: l.GLAccountID, Amount: l.Amount}
	}
	return out
}

// ParseDate accepts YYYY-MM-DD (midnight in loc) or RFC 3339.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// JournalEntryResponse acknowledges a submitted journal entry.
type JournalEntryResponse struct {
	TransactionID string `json:"transactionId"`
	OfficeID      int64  `json:"officeId"`
}

// ToJournalEntryResponse converts a domain.JournalEntryResult to JournalEntryResponse DTO
func ToJournalEntryResponse(result *domain.JournalEntryResult) JournalEntryResponse {
	return JournalEntryResponse{
		TransactionID: result.TransactionID,
		OfficeID:      result.OfficeID,
	}
}

// EntryFormResponse is the reference data and default selections of the entry form.
type EntryFormResponse struct {
	Offices       []domain.Office           `json:"offices"`
	Currencies    []domain.Currency         `json:"currencies"`
	PaymentTypes  []domain.PaymentType      `json:"paymentTypes"`
	GLAccounts    []domain.GLAccount        `json:"glAccounts"`
	Defaults      *domain.EntryDefaults     `json:"defaults"`
	Draft         *domain.JournalEntryDraft `json:"draft"`
	DataLoadError *string                   `json:"dataLoadError"`
}

// ToEntryFormResponse converts a domain.EntryForm to EntryFormResponse DTO
func ToEntryFormResponse(form *domain.EntryForm) EntryFormResponse {
	resp := EntryFormResponse{
		Offices:      form.ReferenceData.Offices,
		Currencies:   form.ReferenceData.Currencies,
		PaymentTypes: form.ReferenceData.PaymentTypes,
		GLAccounts:   form.ReferenceData.GLAccounts,
		Defaults:     form.Defaults,
		Draft:        form.Draft,
	}
	if form.DataLoadError != "" {
		msg := form.DataLoadError
		resp.DataLoadError = &msg
	}
	return resp
}
