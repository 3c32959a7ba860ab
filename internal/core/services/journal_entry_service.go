package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/Odongfelix/jweb/internal/apperrors"
	"github.com/Odongfelix/jweb/internal/core/domain"
	portsrepo "github.com/Odongfelix/jweb/internal/core/ports/repositories"
	portssvc "github.com/Odongfelix/jweb/internal/core/ports/services"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DataLoadErrorMessage is shown when the entry form's reference data cannot be loaded.
const DataLoadErrorMessage = "Failed to load form data. Please refresh the page or try again later."

// journalEntryService implements the JournalEntrySvcFacade interface
type journalEntryService struct {
	BaseService
	referenceData portsrepo.ReferenceDataReader
	writer        portsrepo.JournalEntryWriter
	rates         portssvc.ExchangeRateReaderSvc
	validate      *validator.Validate
	baseCurrency  string
	localCurrency string
	location      *time.Location
}

// JournalEntryOption is a functional option for configuring the journal entry service
type JournalEntryOption func(*journalEntryService)

// WithCurrencies sets the base currency amounts are entered in and the local currency they convert to.
func WithCurrencies(base, local string) JournalEntryOption {
	return func(s *journalEntryService) {
		s.baseCurrency = strings.ToUpper(base)
		s.localCurrency = strings.ToUpper(local)
	}
}

// WithJournalLocation sets the time zone of the default transaction date.
func WithJournalLocation(loc *time.Location) JournalEntryOption {
	return func(s *journalEntryService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithJournalClock sets the clock used for the default transaction date.
func WithJournalClock(now func() time.Time) JournalEntryOption {
	return func(s *journalEntryService) {
		s.Now = now
	}
}

// NewJournalEntryService creates the journal entry service with the provided options
func NewJournalEntryService(repo portsrepo.AccountingRepositoryFacade, rates portssvc.ExchangeRateReaderSvc, options ...JournalEntryOption) portssvc.JournalEntrySvcFacade {
	svc := &journalEntryService{
		referenceData: repo,
		writer:        repo,
		rates:         rates,
		validate:      newDraftValidator(),
		baseCurrency:  "USD",
		localCurrency: "UGX",
		location:      time.UTC,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.JournalEntrySvcFacade = (*journalEntryService)(nil)

// newDraftValidator reports fields by their JSON names.
func newDraftValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// LoadEntryForm loads the four lookups concurrently. Defaults are populated only
// when all of them succeed; otherwise the returned form carries DataLoadError
// alongside the error.
func (s *journalEntryService) LoadEntryForm(ctx context.Context) (*domain.EntryForm, error) {
	var (
		offices      []domain.Office
		currencies   []domain.Currency
		paymentTypes []domain.PaymentType
		glAccounts   []domain.GLAccount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		offices, err = s.referenceData.ListOffices(gctx)
		if err != nil {
			return fmt.Errorf("failed to load offices: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		currencies, err = s.referenceData.ListCurrencies(gctx)
		if err != nil {
			return fmt.Errorf("failed to load currencies: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		paymentTypes, err = s.referenceData.ListPaymentTypes(gctx)
		if err != nil {
			return fmt.Errorf("failed to load payment types: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		glAccounts, err = s.referenceData.ListGLAccounts(gctx)
		if err != nil {
			return fmt.Errorf("failed to load GL accounts: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load journal entry reference data")
		form := &domain.EntryForm{
			ReferenceData: domain.ReferenceData{
				Offices:      []domain.Office{},
				Currencies:   []domain.Currency{},
				PaymentTypes: []domain.PaymentType{},
				GLAccounts:   []domain.GLAccount{},
			},
			DataLoadError: DataLoadErrorMessage,
		}
		return form, err
	}

	form := &domain.EntryForm{
		ReferenceData: domain.ReferenceData{
			Offices:      nonNil(offices),
			Currencies:   nonNil(currencies),
			PaymentTypes: nonNil(paymentTypes),
			GLAccounts:   nonNil(glAccounts),
		},
	}
	defaults := s.defaults(form.ReferenceData)
	form.Defaults = &defaults
	form.Draft = domain.NewJournalEntryDraft(defaults)

	s.LogDebug(ctx, "Journal entry form loaded",
		slog.Int("offices", len(offices)),
		slog.Int("currencies", len(currencies)),
		slog.Int("payment_types", len(paymentTypes)),
		slog.Int("gl_accounts", len(glAccounts)))
	return form, nil
}

func (s *journalEntryService) defaults(ref domain.ReferenceData) domain.EntryDefaults {
	y, m, d := s.now().In(s.location).Date()
	defaults := domain.EntryDefaults{
		TransactionDate: time.Date(y, m, d, 0, 0, 0, 0, s.location),
	}
	if len(ref.Offices) > 0 {
		defaults.OfficeID = ref.Offices[0].ID
	}
	for _, c := range ref.Currencies {
		if strings.EqualFold(c.Code, s.baseCurrency) {
			defaults.CurrencyCode = c.Code
			break
		}
	}
	if defaults.CurrencyCode == "" && len(ref.Currencies) > 0 {
		defaults.CurrencyCode = ref.Currencies[0].Code
	}
	if len(ref.PaymentTypes) > 0 {
		defaults.PaymentTypeID = ref.PaymentTypes[0].ID
	}
	return defaults
}

// Submit validates the draft, converts base currency amounts at the current
// rate, and posts it. Nothing is sent when validation or conversion fails.
func (s *journalEntryService) Submit(ctx context.Context, draft domain.JournalEntryDraft) (*domain.JournalEntryResult, error) {
	if errs := s.validateDraft(draft); len(errs) > 0 {
		s.LogDebug(ctx, "Journal entry rejected by validation", slog.Int("invalid_fields", len(errs)))
		return nil, errs
	}

	submission := domain.JournalEntrySubmission{JournalEntryDraft: draft}
	submission.CurrencyCode = strings.ToUpper(draft.CurrencyCode)

	if submission.CurrencyCode == s.baseCurrency {
		rate, err := s.rates.CurrentRate(ctx)
		if err != nil {
			s.LogError(ctx, err, "Journal entry conversion failed", slog.String("currency", submission.CurrencyCode))
			if errors.Is(err, apperrors.ErrRateUnavailable) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %v", apperrors.ErrRateUnavailable, err)
		}
		submission.Debits = convertLines(draft.Debits, rate)
		submission.Credits = convertLines(draft.Credits, rate)
		submission.CurrencyCode = s.localCurrency
		submission.OriginalCurrency = s.baseCurrency
		submission.ConversionRate = &rate
	}

	result, err := s.writer.CreateJournalEntry(ctx, submission)
	if err != nil {
		s.LogError(ctx, err, "Failed to submit journal entry",
			slog.Int64("office_id", submission.OfficeID),
			slog.String("currency", submission.CurrencyCode))
		return nil, fmt.Errorf("failed to submit journal entry: %w", err)
	}

	s.LogInfo(ctx, "Journal entry submitted",
		slog.String("transaction_id", result.TransactionID),
		slog.Int64("office_id", submission.OfficeID),
		slog.String("currency", submission.CurrencyCode),
		slog.String("total", submission.TotalDebits().String()))
	return result, nil
}

// validateDraft collects every failure at once, keyed by field path.
func (s *journalEntryService) validateDraft(draft domain.JournalEntryDraft) apperrors.ValidationErrors {
	errs := apperrors.ValidationErrors{}

	if err := s.validate.Struct(draft); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			errs["draft"] = err.Error()
			return errs
		}
		for _, fe := range fieldErrs {
			errs[fieldPath(fe)] = fieldMessage(fe)
		}
	}

	for i, l := range draft.Debits {
		if !l.Amount.IsPositive() {
			errs[fmt.Sprintf("debits[%d].amount", i)] = "Amount must be greater than zero"
		}
	}
	for i, l := range draft.Credits {
		if !l.Amount.IsPositive() {
			errs[fmt.Sprintf("credits[%d].amount", i)] = "Amount must be greater than zero"
		}
	}
	if draft.TransactionDate.IsZero() {
		errs["transactionDate"] = "This field is required"
	}

	if len(errs) == 0 && !draft.TotalDebits().Equal(draft.TotalCredits()) {
		errs["credits"] = fmt.Sprintf("Total credits %s must equal total debits %s",
			draft.TotalCredits().String(), draft.TotalDebits().String())
	}
	return errs
}

// fieldPath drops the struct name from the namespace: "debits[0].glAccountId".
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return path
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("At least %s line is required", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "len":
		return fmt.Sprintf("Must be exactly %s characters", fe.Param())
	default:
		return "Invalid value"
	}
}

func convertLines(lines []domain.JournalLine, rate decimal.Decimal) []domain.JournalLine {
	converted := make([]domain.JournalLine, len(lines))
	for i, l := range lines {
		converted[i] = domain.JournalLine{GLAccountID: l.GLAccountID, Amount: l.Amount.Mul(rate)}
	}
	return converted
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
