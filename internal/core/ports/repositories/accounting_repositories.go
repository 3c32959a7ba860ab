package repositories

import (
	"context"

	"github.com/Odongfelix/jweb/internal/core/domain"
)

// ReferenceDataReader defines the accounting API lookups used by the entry form.
type ReferenceDataReader interface {
	ListOffices(ctx context.Context) ([]domain.Office, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
	ListPaymentTypes(ctx context.Context) ([]domain.PaymentType, error)
	ListGLAccounts(ctx context.Context) ([]domain.GLAccount, error)
}

// JournalEntryWriter submits journal entries to the accounting API.
type JournalEntryWriter interface {
	CreateJournalEntry(ctx context.Context, entry domain.JournalEntrySubmission) (*domain.JournalEntryResult, error)
}

// ReportingRepository retrieves report rows from the accounting API.
type ReportingRepository interface {
	// ListJournalEntryReport returns all rows matching the filter, unsorted and unpaged.
	ListJournalEntryReport(ctx context.Context, filter domain.ReportFilter) ([]domain.JournalEntryReportRow, error)
}

// AccountingRepositoryFacade is everything the accounting API offers.
type AccountingRepositoryFacade interface {
	ReferenceDataReader
	JournalEntryWriter
	ReportingRepository
}
