package services

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/Odongfelix/jweb/internal/apperrors"
	"github.com/Odongfelix/jweb/internal/core/domain"
	portsrepo "github.com/Odongfelix/jweb/internal/core/ports/repositories"
	portssvc "github.com/Odongfelix/jweb/internal/core/ports/services"
	"github.com/Odongfelix/jweb/internal/utils/export"
	"github.com/Odongfelix/jweb/internal/utils/pagination"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// reportSorters are the sortable report columns keyed by their JSON names.
var reportSorters = map[string]func(a, b domain.JournalEntryReportRow) int{
	"date":           func(a, b domain.JournalEntryReportRow) int { return a.Date.Compare(b.Date) },
	"office":         func(a, b domain.JournalEntryReportRow) int { return cmp.Compare(a.Office, b.Office) },
	"debitAccount":   func(a, b domain.JournalEntryReportRow) int { return cmp.Compare(a.DebitAccount, b.DebitAccount) },
	"creditAccount":  func(a, b domain.JournalEntryReportRow) int { return cmp.Compare(a.CreditAccount, b.CreditAccount) },
	"debitUSD":       func(a, b domain.JournalEntryReportRow) int { return a.DebitUSD.Cmp(b.DebitUSD) },
	"creditUSD":      func(a, b domain.JournalEntryReportRow) int { return a.CreditUSD.Cmp(b.CreditUSD) },
	"conversionRate": func(a, b domain.JournalEntryReportRow) int { return a.ConversionRate.Cmp(b.ConversionRate) },
	"debitUGX":       func(a, b domain.JournalEntryReportRow) int { return a.DebitUGX.Cmp(b.DebitUGX) },
	"creditUGX":      func(a, b domain.JournalEntryReportRow) int { return a.CreditUGX.Cmp(b.CreditUGX) },
}

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reports       portsrepo.ReportingRepository
	offices       portsrepo.ReferenceDataReader
	logoPath      string
	baseCurrency  string
	localCurrency string
	location      *time.Location
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportLogo sets the image file drawn on document exports.
func WithReportLogo(path string) ReportingServiceOption {
	return func(s *reportingService) {
		s.logoPath = path
	}
}

// WithReportCurrencies sets the currency labels of export column headers.
func WithReportCurrencies(base, local string) ReportingServiceOption {
	return func(s *reportingService) {
		s.baseCurrency = base
		s.localCurrency = local
	}
}

// WithReportClock sets the clock used for export file names.
func WithReportClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.Now = now
	}
}

// WithReportLocation sets the time zone export file names and timestamps use.
func WithReportLocation(loc *time.Location) ReportingServiceOption {
	return func(s *reportingService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.AccountingRepositoryFacade, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		reports:       repo,
		offices:       repo,
		baseCurrency:  "USD",
		localCurrency: "UGX",
		location:      time.UTC,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// ListOffices returns the office filter options.
func (s *reportingService) ListOffices(ctx context.Context) ([]domain.Office, error) {
	offices, err := s.offices.ListOffices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list offices")
		return nil, fmt.Errorf("failed to list offices: %w", err)
	}
	if offices == nil {
		return []domain.Office{}, nil
	}
	return offices, nil
}

// GetReport re-queries the accounting API, then sorts and pages the rows locally.
func (s *reportingService) GetReport(ctx context.Context, filter domain.ReportFilter, page domain.PageRequest) (*domain.ReportPage, error) {
	if filter.FromDate != nil && filter.ToDate != nil && filter.ToDate.Before(*filter.FromDate) {
		return nil, apperrors.ValidationErrors{"toDate": "To date must not be before from date"}
	}
	page, err := normalizePage(page)
	if err != nil {
		return nil, err
	}

	rows, err := s.reports.ListJournalEntryReport(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve journal entry report", reportFilterAttrs(filter)...)
		return nil, fmt.Errorf("failed to retrieve journal entry report: %w", err)
	}

	sorted := slices.Clone(rows)
	if page.SortBy != "" {
		less := reportSorters[page.SortBy]
		slices.SortStableFunc(sorted, func(a, b domain.JournalEntryReportRow) int {
			if page.SortDesc {
				return less(b, a)
			}
			return less(a, b)
		})
	}

	total := len(sorted)
	start := min(page.Offset, total)
	end := min(start+page.Limit, total)

	result := &domain.ReportPage{
		Rows:   slices.Clip(sorted[start:end]),
		Total:  total,
		Offset: page.Offset,
		Limit:  page.Limit,
	}
	if result.Rows == nil {
		result.Rows = []domain.JournalEntryReportRow{}
	}
	if end < total {
		next := page
		next.Offset = end
		result.NextPageToken = pagination.EncodePageToken(next)
	}

	s.LogDebug(ctx, "Journal entry report page materialized",
		slog.Int("total", total),
		slog.Int("offset", page.Offset),
		slog.Int("rows", len(result.Rows)))
	return result, nil
}

// Export renders only the rows of the requested page. An empty page yields
// apperrors.ErrNoDataToExport and no file.
func (s *reportingService) Export(ctx context.Context, format domain.ExportFormat, filter domain.ReportFilter, page domain.PageRequest) (*domain.ExportFile, error) {
	if format != domain.ExportXLSX && format != domain.ExportPDF {
		return nil, apperrors.ValidationErrors{"format": fmt.Sprintf("Unsupported export format %q", format)}
	}

	reportPage, err := s.GetReport(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	if len(reportPage.Rows) == 0 {
		s.LogInfo(ctx, "Export requested for empty report page", slog.String("format", string(format)))
		return nil, apperrors.ErrNoDataToExport
	}

	opts := export.Options{
		BaseCurrency:  s.baseCurrency,
		LocalCurrency: s.localCurrency,
		GeneratedAt:   s.now().In(s.location),
	}
	if format == domain.ExportPDF && s.logoPath != "" {
		logo, err := os.ReadFile(s.logoPath)
		if err != nil {
			s.LogWarn(ctx, err, "Report logo unavailable, exporting without it", slog.String("path", s.logoPath))
		} else {
			opts.Logo = logo
			opts.OnLogoError = func(err error) {
				s.LogWarn(ctx, err, "Report logo unusable, exporting without it", slog.String("path", s.logoPath))
			}
		}
	}

	file, err := export.Render(format, reportPage.Rows, opts)
	if err != nil {
		s.LogError(ctx, err, "Failed to render report export", slog.String("format", string(format)))
		return nil, fmt.Errorf("failed to render %s export: %w", format, err)
	}

	s.LogInfo(ctx, "Report exported",
		slog.String("format", string(format)),
		slog.String("file_name", file.FileName),
		slog.Int("rows", len(reportPage.Rows)))
	return file, nil
}

func normalizePage(page domain.PageRequest) (domain.PageRequest, error) {
	errs := apperrors.ValidationErrors{}
	if page.Offset < 0 {
		errs["offset"] = "Must not be negative"
	}
	switch {
	case page.Limit < 0:
		errs["limit"] = "Must not be negative"
	case page.Limit == 0:
		page.Limit = DefaultPageSize
	case page.Limit > MaxPageSize:
		page.Limit = MaxPageSize
	}
	if page.SortBy != "" {
		if _, ok := reportSorters[page.SortBy]; !ok {
			errs["sortBy"] = fmt.Sprintf("Unknown sort column %q", page.SortBy)
		}
	}
	if len(errs) > 0 {
		return page, errs
	}
	return page, nil
}

func reportFilterAttrs(filter domain.ReportFilter) []any {
	attrs := []any{slog.Int64("office_id", filter.OfficeID)}
	if filter.FromDate != nil {
		attrs = append(attrs, slog.String("from", filter.FromDate.Format(time.RFC3339)))
	}
	if filter.ToDate != nil {
		attrs = append(attrs, slog.String("to", filter.ToDate.Format(time.RFC3339)))
	}
	return attrs
}
