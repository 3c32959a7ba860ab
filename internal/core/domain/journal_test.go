package domain_test

import (
	"testing"
	"time"

	"github.com/Odongfelix/jweb/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewJournalEntryDraft(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	draft := domain.NewJournalEntryDraft(domain.EntryDefaults{OfficeID: 1, CurrencyCode: "USD", PaymentTypeID: 4, TransactionDate: date})

	assert.Len(t, draft.Debits, 1)
	assert.Len(t, draft.Credits, 1)
	assert.Equal(t, int64(1), draft.OfficeID)
	assert.Equal(t, "USD", draft.CurrencyCode)
	assert.Equal(t, date, draft.TransactionDate)
	if assert.NotNil(t, draft.Payment) {
		assert.Equal(t, int64(4), draft.Payment.PaymentTypeID)
	}
}

func TestJournalEntryDraft_RemoveLastLineIsNoop(t *testing.T) {
	draft := domain.NewJournalEntryDraft(domain.EntryDefaults{})

	assert.False(t, draft.RemoveDebitLine(0))
	assert.False(t, draft.RemoveCreditLine(0))
	assert.Len(t, draft.Debits, 1)
	assert.Len(t, draft.Credits, 1)
}

func TestJournalEntryDraft_AddAndRemoveLines(t *testing.T) {
	draft := domain.NewJournalEntryDraft(domain.EntryDefaults{})
	draft.Debits[0].GLAccountID = 10
	draft.AddDebitLine()
	draft.Debits[1].GLAccountID = 11
	draft.AddCreditLine()

	assert.Len(t, draft.Debits, 2)
	assert.Len(t, draft.Credits, 2)

	assert.True(t, draft.RemoveDebitLine(0))
	assert.Len(t, draft.Debits, 1)
	assert.Equal(t, int64(11), draft.Debits[0].GLAccountID)

	assert.False(t, draft.RemoveCreditLine(5), "out of range index")
	assert.True(t, draft.RemoveCreditLine(1))
	assert.False(t, draft.RemoveCreditLine(0))
}

func TestJournalEntryDraft_Totals(t *testing.T) {
	draft := &domain.JournalEntryDraft{
		Debits:  []domain.JournalLine{{GLAccountID: 1, Amount: decimal.NewFromInt(60)}, {GLAccountID: 2, Amount: decimal.NewFromInt(40)}},
		Credits: []domain.JournalLine{{GLAccountID: 3, Amount: decimal.NewFromInt(100)}},
	}

	assert.True(t, decimal.NewFromInt(100).Equal(draft.TotalDebits()))
	assert.True(t, draft.TotalDebits().Equal(draft.TotalCredits()))
}

func TestLiveRateCacheEntry_IsFresh(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		entry domain.LiveRateCacheEntry
		ttl   time.Duration
		want  bool
	}{
		{"fresh", domain.LiveRateCacheEntry{Timestamp: now.Add(-30 * time.Minute)}, time.Hour, true},
		{"expired", domain.LiveRateCacheEntry{Timestamp: now.Add(-61 * time.Minute)}, time.Hour, false},
		{"exactly ttl", domain.LiveRateCacheEntry{Timestamp: now.Add(-time.Hour)}, time.Hour, false},
		{"zero timestamp", domain.LiveRateCacheEntry{}, time.Hour, false},
		{"caching disabled", domain.LiveRateCacheEntry{Timestamp: now}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.IsFresh(now, tt.ttl))
		})
	}
}

func TestSameCalendarDay(t *testing.T) {
	kampala := time.FixedZone("EAT", 3*60*60)
	a := time.Date(2024, 3, 1, 22, 0, 0, 0, time.UTC) // 2024-03-02 01:00 EAT
	b := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	assert.True(t, domain.SameCalendarDay(a, b, time.UTC))
	assert.False(t, domain.SameCalendarDay(a, b, kampala))
}
