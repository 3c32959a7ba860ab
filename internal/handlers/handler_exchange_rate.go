package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Odongfelix/jweb/internal/core/domain"
	portssvc "github.com/Odongfelix/jweb/internal/core/ports/services"
	"github.com/Odongfelix/jweb/internal/dto"
	"github.com/Odongfelix/jweb/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests of the rate configuration screen.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	rates := rg.Group("/mcurrency")
	{
		rates.GET("/today", h.getSavedRate)
		rates.GET("/config", h.getRateConfig)
		rates.PUT("/mode", h.toggleRateMode)
		rates.GET("/live", h.fetchLiveRate)
		rates.POST("/save", h.saveRate)
	}
}

// getSavedRate godoc
// @Summary Get the saved exchange rate
// @Description Returns the rate journal entries are converted with and when it was saved
// @Tags exchange rates
// @Produce  json
// @Success 200 {object} dto.SavedRateResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No rate has been saved"
// @Failure 500 {object} map[string]string "Failed to retrieve saved rate"
// @Security BearerAuth
// @Router /mcurrency/today [get]
func (h *exchangeRateHandler) getSavedRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rate, err := h.exchangeRateService.GetSavedRate(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve saved rate")
		return
	}

	c.JSON(http.StatusOK, dto.ToSavedRateResponse(rate))
}

// getRateConfig godoc
// @Summary Load the rate configuration
// @Description Returns the saved rate, the rate mode, whether a rate may be saved today and, in live mode, the live rate
// @Tags exchange rates
// @Produce  json
// @Success 200 {object} dto.RateConfigResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to load rate configuration"
// @Security BearerAuth
// @Router /mcurrency/config [get]
func (h *exchangeRateHandler) getRateConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := h.exchangeRateService.Load(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to load rate configuration")
		return
	}

	c.JSON(http.StatusOK, dto.ToRateConfigResponse(state))
}

// toggleRateMode godoc
// @Summary Switch between live and manual rates
// @Description Persists the rate mode. Switching to live clears the manual rate and fetches a live rate.
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   mode body dto.ToggleRateModeRequest true "Rate mode"
// @Success 200 {object} dto.RateConfigResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to change rate mode"
// @Security BearerAuth
// @Router /mcurrency/mode [put]
func (h *exchangeRateHandler) toggleRateMode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ToggleRateModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ToggleRateMode", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	state, err := h.exchangeRateService.ToggleMode(c.Request.Context(), *req.UseLiveRates)
	if err != nil {
		respondWithError(c, logger, err, "Failed to change rate mode")
		return
	}

	c.JSON(http.StatusOK, dto.ToRateConfigResponse(state))
}

// fetchLiveRate godoc
// @Summary Fetch the live exchange rate
// @Description Returns the live rate, served from cache while it is fresh. Provider failures are reported in fetchError.
// @Tags exchange rates
// @Produce  json
// @Success 200 {object} dto.RateConfigResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to fetch live rate"
// @Security BearerAuth
// @Router /mcurrency/live [get]
func (h *exchangeRateHandler) fetchLiveRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := h.exchangeRateService.FetchLiveRate(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to fetch live rate")
		return
	}

	c.JSON(http.StatusOK, dto.ToRateConfigResponse(state))
}

// saveRate godoc
// @Summary Save today's exchange rate
// @Description Saves a manual rate, or the current live rate when source is "live". Allowed once per calendar day.
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.SaveRateRequest true "Rate to save"
// @Success 200 {object} dto.RateConfigResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "A rate was already saved today"
// @Failure 502 {object} map[string]string "Live rate unavailable"
// @Security BearerAuth
// @Router /mcurrency/save [post]
func (h *exchangeRateHandler) saveRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	var (
		state   *domain.RateConfigState
		err     error
		failMsg = "Failed to save rate"
	)
	if req.IsLive() {
		logger.Info("Received request to save live rate")
		failMsg = domain.LiveRateFetchError
		state, err = h.exchangeRateService.SaveLiveRate(c.Request.Context())
	} else {
		if req.Rate == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": gin.H{"rate": "This field is required"}})
			return
		}
		logger.Info("Received request to save manual rate", slog.String("rate", req.Rate.String()))
		state, err = h.exchangeRateService.SaveManualRate(c.Request.Context(), *req.Rate)
	}
	if err != nil {
		respondWithError(c, logger, err, failMsg)
		return
	}

	logger.Info("Exchange rate saved", slog.String("source", string(state.SavedRateSource)))
	c.JSON(http.StatusOK, dto.ToRateConfigResponse(state))
}
