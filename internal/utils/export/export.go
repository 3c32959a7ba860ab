// Package export renders journal entry report rows as spreadsheet and document files.
package export

import (
	"fmt"
	"time"

	"github.com/Odongfelix/jweb/internal/apperrors"
	"github.com/Odongfelix/jweb/internal/core/domain"
)

// SheetName is the worksheet the spreadsheet export writes to.
const SheetName = "Journal Entries"

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

// Options controls labels and decoration of an export.
type Options struct {
	Title         string
	BaseCurrency  string
	LocalCurrency string
	GeneratedAt   time.Time
	// Logo is an optional PNG, JPEG or GIF drawn on the document export.
	Logo []byte
	// OnLogoError is called when Logo cannot be used; the document is still produced.
	OnLogoError func(error)
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "Journal Entries Report"
	}
	if o.BaseCurrency == "" {
		o.BaseCurrency = "USD"
	}
	if o.LocalCurrency == "" {
		o.LocalCurrency = "UGX"
	}
	if o.GeneratedAt.IsZero() {
		o.GeneratedAt = time.Now()
	}
	return o
}

func (o Options) headers() []string {
	return []string{
		"Date",
		"Office",
		"Debit Account",
		"Credit Account",
		fmt.Sprintf("Debit (%s)", o.BaseCurrency),
		fmt.Sprintf("Credit (%s)", o.BaseCurrency),
		"Conversion Rate",
		fmt.Sprintf("Debit (%s)", o.LocalCurrency),
		fmt.Sprintf("Credit (%s)", o.LocalCurrency),
	}
}

// FileName returns journal_entries_report_<YYYY-MM-DD>.<ext>.
func FileName(format domain.ExportFormat, day time.Time) string {
	return fmt.Sprintf("journal_entries_report_%s.%s", day.Format("2006-01-02"), format)
}

// Render produces the export file for rows in the given format.
// An empty row set yields apperrors.ErrNoDataToExport and no file.
func Render(format domain.ExportFormat, rows []domain.JournalEntryReportRow, opts Options) (*domain.ExportFile, error) {
	if len(rows) == 0 {
		return nil, apperrors.ErrNoDataToExport
	}
	opts = opts.withDefaults()

	var (
		content     []byte
		contentType string
		err         error
	)
	switch format {
	case domain.ExportXLSX:
		content, err = XLSX(rows, opts)
		contentType = ContentTypeXLSX
	case domain.ExportPDF:
		content, err = PDF(rows, opts)
		contentType = ContentTypePDF
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("unsupported export format %q", format))
	}
	if err != nil {
		return nil, err
	}

	return &domain.ExportFile{
		FileName:    FileName(format, opts.GeneratedAt),
		ContentType: contentType,
		Content:     content,
	}, nil
}
