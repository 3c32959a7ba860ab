package services

import (
	"context"

	"github.com/Odongfelix/jweb/internal/core/domain"
)

// JournalEntryReaderSvc defines read operations of the journal entry screen.
type JournalEntryReaderSvc interface {
	// LoadEntryForm loads the four reference data sets and the default selections.
	LoadEntryForm(ctx context.Context) (*domain.EntryForm, error)
}

// JournalEntryWriterSvc defines write operations of the journal entry screen.
type JournalEntryWriterSvc interface {
	// Submit validates, converts when needed, and posts the draft.
	Submit(ctx context.Context, draft domain.JournalEntryDraft) (*domain.JournalEntryResult, error)
}

// JournalEntrySvcFacade combines all journal entry-related service interfaces
type JournalEntrySvcFacade interface {
	JournalEntryReaderSvc
	JournalEntryWriterSvc
}
