package services_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Odongfelix/jweb/internal/apperrors"
	"github.com/Odongfelix/jweb/internal/core/domain"
	portssvc "github.com/Odongfelix/jweb/internal/core/ports/services"
	"github.com/Odongfelix/jweb/internal/core/services"
	"github.com/Odongfelix/jweb/internal/utils/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	repo    *MockAccountingRepository
	clock   *fakeClock
	service portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.repo = new(MockAccountingRepository)
	suite.clock = &fakeClock{now: time.Date(2024, 5, 10, 14, 0, 0, 0, kampala)}
	suite.service = services.NewReportingService(suite.repo, services.WithReportClock(suite.clock.Now))
}

func reportRow(day int, debitAccount string, usd int64) domain.JournalEntryReportRow {
	rate := decimal.NewFromInt(3700)
	amount := decimal.NewFromInt(usd)
	return domain.JournalEntryReportRow{
		Date:           time.Date(2024, 5, day, 0, 0, 0, 0, time.UTC),
		Office:         "Head Office",
		DebitAccount:   debitAccount,
		CreditAccount:  "Sales",
		DebitUSD:       amount,
		CreditUSD:      amount,
		ConversionRate: rate,
		DebitUGX:       amount.Mul(rate),
		CreditUGX:      amount.Mul(rate),
	}
}

func (suite *ReportingServiceTestSuite) rows() []domain.JournalEntryReportRow {
	return []domain.JournalEntryReportRow{
		reportRow(3, "Cash", 20),
		reportRow(1, "Bank", 50),
		reportRow(2, "Airtime", 10),
	}
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestListOffices_EmptyIsNotAnError() {
	suite.repo.On("ListOffices", mock.Anything).Return(nil, nil).Once()

	offices, err := suite.service.ListOffices(context.Background())

	suite.Require().NoError(err)
	suite.NotNil(offices)
	suite.Empty(offices)
}

func (suite *ReportingServiceTestSuite) TestGetReport_PassesFilterThrough() {
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	filter := domain.ReportFilter{FromDate: &from, OfficeID: 2}
	suite.repo.On("ListJournalEntryReport", mock.Anything, filter).Return(suite.rows(), nil).Once()

	page, err := suite.service.GetReport(context.Background(), filter, domain.PageRequest{})

	suite.Require().NoError(err)
	suite.Equal(3, page.Total)
	suite.Equal(services.DefaultPageSize, page.Limit)
	suite.Len(page.Rows, 3)
	suite.Empty(page.NextPageToken)
	suite.Equal("Cash", page.Rows[0].DebitAccount, "upstream order is kept when unsorted")
	suite.repo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetReport_SortsAndPages() {
	suite.repo.On("ListJournalEntryReport", mock.Anything, domain.ReportFilter{}).Return(suite.rows(), nil).Twice()

	page, err := suite.service.GetReport(context.Background(), domain.ReportFilter{}, domain.PageRequest{Limit: 2, SortBy: "date"})

	suite.Require().NoError(err)
	suite.Require().Len(page.Rows, 2)
	suite.Equal("Bank", page.Rows[0].DebitAccount)
	suite.Equal("Airtime", page.Rows[1].DebitAccount)
	suite.Require().NotEmpty(page.NextPageToken)

	next, err := pagination.DecodePageToken(page.NextPageToken)
	suite.Require().NoError(err)
	suite.Equal(domain.PageRequest{Offset: 2, Limit: 2, SortBy: "date"}, next)

	page, err = suite.service.GetReport(context.Background(), domain.ReportFilter{}, next)
	suite.Require().NoError(err)
	suite.Require().Len(page.Rows, 1)
	suite.Equal("Cash", page.Rows[0].DebitAccount)
	suite.Empty(page.NextPageToken)
}

func (suite *ReportingServiceTestSuite) TestGetReport_SortDescendingByAmount() {
	suite.repo.On("ListJournalEntryReport", mock.Anything, domain.ReportFilter{}).Return(suite.rows(), nil).Once()

	page, err := suite.service.GetReport(context.Background(), domain.ReportFilter{}, domain.PageRequest{SortBy: "debitUGX", SortDesc: true})

	suite.Require().NoError(err)
	suite.Equal([]string{"Bank", "Cash", "Airtime"}, []string{page.Rows[0].DebitAccount, page.Rows[1].DebitAccount, page.Rows[2].DebitAccount})
}

func (suite *ReportingServiceTestSuite) TestGetReport_InvalidRequests() {
	from := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	to := from.Add(-24 * time.Hour)

	_, err := suite.service.GetReport(context.Background(), domain.ReportFilter{FromDate: &from, ToDate: &to}, domain.PageRequest{})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.GetReport(context.Background(), domain.ReportFilter{}, domain.PageRequest{SortBy: "nope"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.GetReport(context.Background(), domain.ReportFilter{}, domain.PageRequest{Offset: -1})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.repo.AssertNotCalled(suite.T(), "ListJournalEntryReport", mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestGetReport_UpstreamError() {
	suite.repo.On("ListJournalEntryReport", mock.Anything, domain.ReportFilter{}).Return(nil, apperrors.ErrUpstream).Once()

	page, err := suite.service.GetReport(context.Background(), domain.ReportFilter{}, domain.PageRequest{})

	suite.Nil(page)
	suite.ErrorIs(err, apperrors.ErrUpstream)
}

func (suite *ReportingServiceTestSuite) TestExport_EmptyPageWritesNoFile() {
	suite.repo.On("ListJournalEntryReport", mock.Anything, domain.ReportFilter{}).Return([]domain.JournalEntryReportRow{}, nil).Once()

	file, err := suite.service.Export(context.Background(), domain.ExportXLSX, domain.ReportFilter{}, domain.PageRequest{})

	suite.Nil(file)
	suite.ErrorIs(err, apperrors.ErrNoDataToExport)
}

func (suite *ReportingServiceTestSuite) TestExport_OnlyCurrentPage() {
	suite.repo.On("ListJournalEntryReport", mock.Anything, domain.ReportFilter{}).Return(suite.rows(), nil).Once()

	file, err := suite.service.Export(context.Background(), domain.ExportXLSX, domain.ReportFilter{}, domain.PageRequest{Offset: 2, Limit: 2})

	suite.Require().NoError(err)
	suite.Equal("journal_entries_report_2024-05-10.xlsx", file.FileName)
	suite.NotEmpty(file.Content)
}

func (suite *ReportingServiceTestSuite) TestExport_PastLastPageIsEmpty() {
	suite.repo.On("ListJournalEntryReport", mock.Anything, domain.ReportFilter{}).Return(suite.rows(), nil).Once()

	file, err := suite.service.Export(context.Background(), domain.ExportPDF, domain.ReportFilter{}, domain.PageRequest{Offset: 10})

	suite.Nil(file)
	suite.ErrorIs(err, apperrors.ErrNoDataToExport)
}

func (suite *ReportingServiceTestSuite) TestExport_UnsupportedFormat() {
	_, err := suite.service.Export(context.Background(), "csv", domain.ReportFilter{}, domain.PageRequest{})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.repo.AssertNotCalled(suite.T(), "ListJournalEntryReport", mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestExport_PDFToleratesMissingAndBrokenLogo() {
	dir := suite.T().TempDir()
	broken := filepath.Join(dir, "logo.png")
	suite.Require().NoError(os.WriteFile(broken, []byte("not an image"), 0o600))

	for _, logo := range []string{filepath.Join(dir, "missing.png"), broken} {
		svc := services.NewReportingService(suite.repo,
			services.WithReportLogo(logo),
			services.WithReportClock(suite.clock.Now))
		suite.repo.On("ListJournalEntryReport", mock.Anything, domain.ReportFilter{}).Return(suite.rows(), nil).Once()

		file, err := svc.Export(context.Background(), domain.ExportPDF, domain.ReportFilter{}, domain.PageRequest{})

		suite.Require().NoError(err)
		suite.Equal("journal_entries_report_2024-05-10.pdf", file.FileName)
		suite.True(bytes.HasPrefix(file.Content, []byte("%PDF")))
	}
}

func (suite *ReportingServiceTestSuite) TestExport_FileNameUsesReportLocation() {
	// 22:30 UTC is already the next morning in Kampala
	clock := &fakeClock{now: time.Date(2024, 5, 10, 22, 30, 0, 0, time.UTC)}
	svc := services.NewReportingService(suite.repo,
		services.WithReportClock(clock.Now),
		services.WithReportLocation(kampala))
	suite.repo.On("ListJournalEntryReport", mock.Anything, domain.ReportFilter{}).Return(suite.rows(), nil).Once()

	file, err := svc.Export(context.Background(), domain.ExportXLSX, domain.ReportFilter{}, domain.PageRequest{})

	suite.Require().NoError(err)
	suite.Equal("journal_entries_report_2024-05-11.xlsx", file.FileName)
}

// --- Run Test Suite ---
func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
