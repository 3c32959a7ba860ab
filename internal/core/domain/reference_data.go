package domain

import "time"

// Office is a branch of the organisation journal entries are posted against.
type Office struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PaymentType is an optional payment channel attached to a journal entry.
type PaymentType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GLAccountType is the accounting classification of a general-ledger account.
type GLAccountType string

const (
	GLAsset     GLAccountType = "ASSET"
	GLLiability GLAccountType = "LIABILITY"
	GLEquity    GLAccountType = "EQUITY"
	GLIncome    GLAccountType = "INCOME"
	GLExpense   GLAccountType = "EXPENSE"
)

// GLAccount is a general-ledger account code debits and credits are posted to.
type GLAccount struct {
	ID     int64         `json:"id"`
	Name   string        `json:"name"`
	GLCode string        `json:"glCode"`
	Type   GLAccountType `json:"type"`
}

// ReferenceData holds the four lookups the journal entry form needs.
type ReferenceData struct {
	Offices      []Office      `json:"offices"`
	Currencies   []Currency    `json:"currencies"`
	PaymentTypes []PaymentType `json:"paymentTypes"`
	GLAccounts   []GLAccount   `json:"glAccounts"`
}

// EntryDefaults are the initial selections of a freshly loaded entry form.
type EntryDefaults struct {
	OfficeID        int64     `json:"officeId"`
	CurrencyCode    string    `json:"currencyCode"`
	PaymentTypeID   int64     `json:"paymentTypeId,omitempty"`
	TransactionDate time.Time `json:"transactionDate"`
}

// EntryForm is the result of loading the journal entry screen.
// Defaults and Draft are nil when DataLoadError is set.
type EntryForm struct {
	ReferenceData ReferenceData      `json:"referenceData"`
	Defaults      *EntryDefaults     `json:"defaults"`
	Draft         *JournalEntryDraft `json:"draft"`
	DataLoadError string             `json:"dataLoadError,omitempty"`
}
