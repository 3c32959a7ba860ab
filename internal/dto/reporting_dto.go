package dto

import (
	"time"

	"github.com/Odongfelix/jweb/internal/apperrors"
	"github.com/Odongfelix/jweb/internal/core/domain"
	"github.com/Odongfelix/jweb/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// ReportQuery holds the filter and table state of the reporting screen.
type ReportQuery struct {
	FromDate  string `form:"fromDate"`
	ToDate    string `form:"toDate"`
	Office    int64  `form:"office" binding:"min=0"`
	Offset    int    `form:"offset" binding:"min=0"`
	Limit     int    `form:"limit" binding:"min=0,max=100"`
	SortBy    string `form:"sortBy"`
	SortDir   string `form:"sortDir" binding:"omitempty,oneof=asc desc"`
	PageToken string `form:"pageToken"`
}

// ToFilter converts the query to a report filter. A date-only toDate covers that whole day.
func (q ReportQuery) ToFilter(loc *time.Location) (domain.ReportFilter, error) {
	filter := domain.ReportFilter{OfficeID: q.Office}
	errs := apperrors.ValidationErrors{}

	if q.FromDate != "" {
		from, err := ParseDate(q.FromDate, loc)
		if err != nil {
			errs["fromDate"] = "Must be a date in YYYY-MM-DD format"
		} else {
			filter.FromDate = &from
		}
	}
	if q.ToDate != "" {
		to, err := ParseDate(q.ToDate, loc)
		if err != nil {
			errs["toDate"] = "Must be a date in YYYY-MM-DD format"
		} else {
			if len(q.ToDate) == len("2006-01-02") {
				to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
			}
			filter.ToDate = &to
		}
	}

	if len(errs) > 0 {
		return filter, errs
	}
	return filter, nil
}

// ToPageRequest returns the page to materialize. A page token, when present,
// takes precedence over offset, limit and sort parameters.
func (q ReportQuery) ToPageRequest() (domain.PageRequest, error) {
	if q.PageToken != "" {
		page, err := pagination.DecodePageToken(q.PageToken)
		if err != nil {
			return domain.PageRequest{}, apperrors.ValidationErrors{"pageToken": err.Error()}
		}
		return page, nil
	}
	return domain.PageRequest{
		Offset:   q.Offset,
		Limit:    q.Limit,
		SortBy:   q.SortBy,
		SortDesc: q.SortDir == "desc",
	}, nil
}

// ExportQuery is a ReportQuery plus the export file format.
type ExportQuery struct {
	ReportQuery
	Format string `form:"format" binding:"required,oneof=xlsx pdf"`
}

// ReportRowResponse is one row of the journal entry report.
type ReportRowResponse struct {
	Date           string          `json:"date"`
	Office         string          `json:"office"`
	DebitAccount   string          `json:"debitAccount"`
	CreditAccount  string          `json:"creditAccount"`
	DebitUSD       decimal.Decimal `json:"debitUSD"`
	CreditUSD      decimal.Decimal `json:"creditUSD"`
	ConversionRate decimal.Decimal `json:"conversionRate"`
	DebitUGX       decimal.Decimal `json:"debitUGX"`
	CreditUGX      decimal.Decimal `json:"creditUGX"`
}

// ReportPageResponse is one materialized page of the report.
type ReportPageResponse struct {
	Rows          []ReportRowResponse `json:"rows"`
	Total         int                 `json:"total"`
	Offset        int                 `json:"offset"`
	Limit         int                 `json:"limit"`
	NextPageToken *string             `json:"nextPageToken"`
}

// OfficeResponse is an office filter option.
type OfficeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ToReportPageResponse converts a domain.ReportPage to ReportPageResponse DTO
func ToReportPageResponse(page *domain.ReportPage) ReportPageResponse {
	resp := ReportPageResponse{
		Rows:   make([]ReportRowResponse, len(page.Rows)),
		Total:  page.Total,
		Offset: page.Offset,
		Limit:  page.Limit,
	}
	for i, r := range page.Rows {
		resp.Rows[i] = ReportRowResponse{
			Date:           r.Date.Format("2006-01-02"),
			Office:         r.Office,
			DebitAccount:   r.DebitAccount,
			CreditAccount:  r.CreditAccount,
			DebitUSD:       r.DebitUSD,
			CreditUSD:      r.CreditUSD,
			ConversionRate: r.ConversionRate,
			DebitUGX:       r.DebitUGX,
			CreditUGX:      r.CreditUGX,
		}
	}
	if page.NextPageToken != "" {
		token := page.NextPageToken
		resp.NextPageToken = &token
	}
	return resp
}

// ToOfficeListResponse converts offices to OfficeResponse DTOs
func ToOfficeListResponse(offices []domain.Office) []OfficeResponse {
	resp := make([]OfficeResponse, len(offices))
	for i, o := range offices {
		resp[i] = OfficeResponse{ID: o.ID, Name: o.Name}
	}
	return resp
}
