package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentDetails is the optional payment metadata of a journal entry.
type PaymentDetails struct {
	PaymentTypeID int64  `json:"paymentTypeId,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty" validate:"omitempty,max=50"`
	ChequeNumber  string `json:"chequeNumber,omitempty" validate:"omitempty,max=50"`
	RoutingCode   string `json:"routingCode,omitempty" validate:"omitempty,max=50"`
	ReceiptNumber string `json:"receiptNumber,omitempty" validate:"omitempty,max=50"`
	BankNumber    string `json:"bankNumber,omitempty" validate:"omitempty,max=50"`
}

// JournalEntryDraft is the transient form state of a journal entry before submission.
type JournalEntryDraft struct {
	OfficeID        int64           `json:"officeId" validate:"required"`
	CurrencyCode    string          `json:"currencyCode" validate:"required,len=3"`
	Debits          []JournalLine   `json:"debits" validate:"required,min=1,dive"`
	Credits         []JournalLine   `json:"credits" validate:"required,min=1,dive"`
	ReferenceNumber string          `json:"referenceNumber,omitempty" validate:"omitempty,max=100"`
	TransactionDate time.Time       `json:"transactionDate"`
	Payment         *PaymentDetails `json:"paymentDetails,omitempty"`
	Comments        string          `json:"comments,omitempty" validate:"omitempty,max=500"`
}

// NewJournalEntryDraft returns a draft with one empty debit and one empty credit line.
func NewJournalEntryDraft(d EntryDefaults) *JournalEntryDraft {
	draft := &JournalEntryDraft{
		OfficeID:        d.OfficeID,
		CurrencyCode:    d.CurrencyCode,
		TransactionDate: d.TransactionDate,
		Debits:          []JournalLine{{}},
		Credits:         []JournalLine{{}},
	}
	if d.PaymentTypeID != 0 {
		draft.Payment = &PaymentDetails{PaymentTypeID: d.PaymentTypeID}
	}
	return draft
}

// AddDebitLine appends an empty debit line.
func (d *JournalEntryDraft) AddDebitLine() {
	d.Debits = append(d.Debits, JournalLine{})
}

// AddCreditLine appends an empty credit line.
func (d *JournalEntryDraft) AddCreditLine() {
	d.Credits = append(d.Credits, JournalLine{})
}

// RemoveDebitLine removes the debit line at i. Removing the last remaining line
// or an out-of-range index is a no-op; the return value reports whether a line was removed.
func (d *JournalEntryDraft) RemoveDebitLine(i int) bool {
	var ok bool
	d.Debits, ok = removeLine(d.Debits, i)
	return ok
}

// RemoveCreditLine is RemoveDebitLine for the credit side.
func (d *JournalEntryDraft) RemoveCreditLine(i int) bool {
	var ok bool
	d.Credits, ok = removeLine(d.Credits, i)
	return ok
}

func removeLine(lines []JournalLine, i int) ([]JournalLine, bool) {
	if len(lines) <= 1 || i < 0 || i >= len(lines) {
		return lines, false
	}
	return append(lines[:i:i], lines[i+1:]...), true
}

// TotalDebits sums the debit lines.
func (d *JournalEntryDraft) TotalDebits() decimal.Decimal {
	return sumLines(d.Debits)
}

// TotalCredits sums the credit lines.
func (d *JournalEntryDraft) TotalCredits() decimal.Decimal {
	return sumLines(d.Credits)
}

func sumLines(lines []JournalLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount)
	}
	return total
}

// JournalEntrySubmission is the payload posted to the accounting API.
// OriginalCurrency and ConversionRate are set only for converted entries.
type JournalEntrySubmission struct {
	JournalEntryDraft
	OriginalCurrency string           `json:"originalCurrency,omitempty"`
	ConversionRate   *decimal.Decimal `json:"conversionRate,omitempty"`
}

// JournalEntryResult is the accounting API's acknowledgement of a submitted entry.
type JournalEntryResult struct {
	TransactionID string `json:"transactionId"`
	OfficeID      int64  `json:"officeId"`
}
