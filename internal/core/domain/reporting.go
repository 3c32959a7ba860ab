package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntryReportRow is a read-only row of the journal entry report.
type JournalEntryReportRow struct {
	Date           time.Time       `json:"date"`
	Office         string          `json:"office"`
	DebitAccount   string          `json:"debitAccount"`
	CreditAccount  string          `json:"creditAccount"`
	DebitUSD       decimal.Decimal `json:"debitUSD"`
	CreditUSD      decimal.Decimal `json:"creditUSD"`
	ConversionRate decimal.Decimal `json:"conversionRate"`
	DebitUGX       decimal.Decimal `json:"debitUGX"`
	CreditUGX      decimal.Decimal `json:"creditUGX"`
}

// ReportFilter narrows the report query. Zero values mean "no filter".
type ReportFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	OfficeID int64
}

// PageRequest selects which rows of the report are materialized.
type PageRequest struct {
	Offset   int
	Limit    int
	SortBy   string
	SortDesc bool
}

// ReportPage is the materialized slice of report rows.
type ReportPage struct {
	Rows          []JournalEntryReportRow `json:"rows"`
	Total         int                     `json:"total"`
	Offset        int                     `json:"offset"`
	Limit         int                     `json:"limit"`
	NextPageToken string                  `json:"nextPageToken,omitempty"`
}

// ExportFormat is a supported report export file format.
type ExportFormat string

const (
	ExportXLSX ExportFormat = "xlsx"
	ExportPDF  ExportFormat = "pdf"
)

// ExportFile is a generated export ready to be written or streamed.
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}
