package handlers_test

import (
	"context"

	"github.com/Odongfelix/jweb/internal/core/domain"
	portssvc "github.com/Odongfelix/jweb/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) Load(ctx context.Context) (*domain.RateConfigState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateConfigState), args.Error(1)
}

func (m *MockExchangeRateService) GetSavedRate(ctx context.Context) (*domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) CurrentRate(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockExchangeRateService) ToggleMode(ctx context.Context, useLive bool) (*domain.RateConfigState, error) {
	args := m.Called(ctx, useLive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateConfigState), args.Error(1)
}

func (m *MockExchangeRateService) FetchLiveRate(ctx context.Context) (*domain.RateConfigState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateConfigState), args.Error(1)
}

func (m *MockExchangeRateService) SaveManualRate(ctx context.Context, rate decimal.Decimal) (*domain.RateConfigState, error) {
	args := m.Called(ctx, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateConfigState), args.Error(1)
}

func (m *MockExchangeRateService) SaveLiveRate(ctx context.Context) (*domain.RateConfigState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateConfigState), args.Error(1)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Mock JournalEntryService ---
type MockJournalEntryService struct {
	mock.Mock
}

func (m *MockJournalEntryService) LoadEntryForm(ctx context.Context) (*domain.EntryForm, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EntryForm), args.Error(1)
}

func (m *MockJournalEntryService) Submit(ctx context.Context, draft domain.JournalEntryDraft) (*domain.JournalEntryResult, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntryResult), args.Error(1)
}

var _ portssvc.JournalEntrySvcFacade = (*MockJournalEntryService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) ListOffices(ctx context.Context) ([]domain.Office, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Office), args.Error(1)
}

func (m *MockReportingService) GetReport(ctx context.Context, filter domain.ReportFilter, page domain.PageRequest) (*domain.ReportPage, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportPage), args.Error(1)
}

func (m *MockReportingService) Export(ctx context.Context, format domain.ExportFormat, filter domain.ReportFilter, page domain.PageRequest) (*domain.ExportFile, error) {
	args := m.Called(ctx, format, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExportFile), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)
