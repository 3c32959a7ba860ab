package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/Odongfelix/jweb/internal/core/ports/services"
	"github.com/Odongfelix/jweb/internal/dto"
	"github.com/Odongfelix/jweb/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalEntryHandler handles HTTP requests of the journal entry screen.
type journalEntryHandler struct {
	journalEntryService portssvc.JournalEntrySvcFacade
	location            *time.Location
}

// newJournalEntryHandler creates a new journalEntryHandler.
func newJournalEntryHandler(js portssvc.JournalEntrySvcFacade, loc *time.Location) *journalEntryHandler {
	return &journalEntryHandler{
		journalEntryService: js,
		location:            loc,
	}
}

// registerJournalEntryRoutes registers routes related to journal entries.
func registerJournalEntryRoutes(rg *gin.RouterGroup, journalEntryService portssvc.JournalEntrySvcFacade, loc *time.Location) {
	h := newJournalEntryHandler(journalEntryService, loc)

	entries := rg.Group("/journal-entries")
	{
		entries.GET("/form", h.getEntryForm)
		entries.POST("", h.createJournalEntry)
	}
}

// getEntryForm godoc
// @Summary Load the journal entry form
// @Description Loads offices, currencies, payment types and GL accounts together with default selections.
// @Description If any lookup fails, dataLoadError is set and no defaults are returned.
// @Tags journal entries
// @Produce  json
// @Success 200 {object} dto.EntryFormResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} dto.EntryFormResponse "Reference data could not be loaded"
// @Security BearerAuth
// @Router /journal-entries/form [get]
func (h *journalEntryHandler) getEntryForm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	form, err := h.journalEntryService.LoadEntryForm(c.Request.Context())
	if err != nil {
		if form == nil {
			respondWithError(c, logger, err, "Failed to load form data")
			return
		}
		logger.Error("Journal entry form loaded without reference data", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, dto.ToEntryFormResponse(form))
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryFormResponse(form))
}

// createJournalEntry godoc
// @Summary Submit a journal entry
// @Description Validates the entry, converts USD amounts to the local currency at the saved rate, and posts it to the accounting system.
// @Tags journal entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateJournalEntryRequest true "Journal entry"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]interface{} "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "No exchange rate configured"
// @Failure 502 {object} map[string]string "Accounting system rejected or did not answer"
// @Security BearerAuth
// @Router /journal-entries [post]
func (h *journalEntryHandler) createJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateJournalEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	draft, err := req.ToDraft(h.location)
	if err != nil {
		respondWithError(c, logger, err, "Failed to submit journal entry")
		return
	}

	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		logger = logger.With(slog.String("submitted_by", userID))
	}
	logger.Info("Received request to create journal entry",
		slog.Int64("office_id", draft.OfficeID),
		slog.String("currency", draft.CurrencyCode),
		slog.Int("debit_lines", len(draft.Debits)),
		slog.Int("credit_lines", len(draft.Credits)))

	result, err := h.journalEntryService.Submit(c.Request.Context(), draft)
	if err != nil {
		respondWithError(c, logger, err, "Failed to submit journal entry")
		return
	}

	logger.Info("Journal entry created successfully", slog.String("transaction_id", result.TransactionID))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(result))
}
