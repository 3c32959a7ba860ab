package services_test

import (
	"context"
	"time"

	"github.com/Odongfelix/jweb/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock rate store ---
type MockRateStore struct {
	mock.Mock
}

func (m *MockRateStore) FindSavedRate(ctx context.Context) (*domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockRateStore) FindLiveRateCache(ctx context.Context) (*domain.LiveRateCacheEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LiveRateCacheEntry), args.Error(1)
}

func (m *MockRateStore) FindUseLiveRates(ctx context.Context) (bool, bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Bool(1), args.Error(2)
}

func (m *MockRateStore) SaveRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockRateStore) SaveLiveRateCache(ctx context.Context, entry domain.LiveRateCacheEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockRateStore) SaveUseLiveRates(ctx context.Context, useLive bool) error {
	args := m.Called(ctx, useLive)
	return args.Error(0)
}

// --- Mock live rate source ---
type MockLiveRateSource struct {
	mock.Mock
}

func (m *MockLiveRateSource) FetchRate(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock accounting API ---
type MockAccountingRepository struct {
	mock.Mock
}

func (m *MockAccountingRepository) ListOffices(ctx context.Context) ([]domain.Office, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Office), args.Error(1)
}

func (m *MockAccountingRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockAccountingRepository) ListPaymentTypes(ctx context.Context) ([]domain.PaymentType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentType), args.Error(1)
}

func (m *MockAccountingRepository) ListGLAccounts(ctx context.Context) ([]domain.GLAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GLAccount), args.Error(1)
}

func (m *MockAccountingRepository) CreateJournalEntry(ctx context.Context, entry domain.JournalEntrySubmission) (*domain.JournalEntryResult, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntryResult), args.Error(1)
}

func (m *MockAccountingRepository) ListJournalEntryReport(ctx context.Context, filter domain.ReportFilter) ([]domain.JournalEntryReportRow, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntryReportRow), args.Error(1)
}

// --- Mock rate reader ---
type MockRateReader struct {
	mock.Mock
}

func (m *MockRateReader) Load(ctx context.Context) (*domain.RateConfigState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateConfigState), args.Error(1)
}

func (m *MockRateReader) GetSavedRate(ctx context.Context) (*domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockRateReader) CurrentRate(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// fakeClock is a settable clock for day-boundary tests.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }
