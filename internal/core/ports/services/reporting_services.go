package services

import (
	"context"

	"github.com/Odongfelix/jweb/internal/core/domain"
)

// ReportingService defines operations of the reporting screen.
type ReportingService interface {
	// ListOffices returns the office filter options; it may be empty.
	ListOffices(ctx context.Context) ([]domain.Office, error)

	// GetReport queries the report and materializes one sorted page of it.
	GetReport(ctx context.Context, filter domain.ReportFilter, page domain.PageRequest) (*domain.ReportPage, error)

	// Export renders the materialized page as a file.
	Export(ctx context.Context, format domain.ExportFormat, filter domain.ReportFilter, page domain.PageRequest) (*domain.ExportFile, error)
}
