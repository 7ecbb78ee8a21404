package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/wheeltracker/backend/internal/api/response"
	"github.com/wheeltracker/backend/internal/apperrors"
	"github.com/wheeltracker/backend/internal/service"
)

// defaultTopPerformersLimit caps the ranking size when no limit parameter is given.
const defaultTopPerformersLimit = 5

// PremiumHandler handles HTTP requests for the premium accounting endpoints.
type PremiumHandler struct {
	premiumService *service.PremiumService
}

// NewPremiumHandler creates a new PremiumHandler with the provided service dependency.
func NewPremiumHandler(premiumService *service.PremiumService) *PremiumHandler {
	return &PremiumHandler{
		premiumService: premiumService,
	}
}

// Summary handles GET requests to retrieve the premium summary for all display periods.
//
// Endpoint: GET /api/premium/summary
// Response: 200 OK with PremiumSummary (week, weekNumber, month, ytd, yearly, projected, firstTradeDate)
// Error: 500 Internal Server Error if the ledger cannot be read
func (h *PremiumHandler) Summary(w http.ResponseWriter, _ *http.Request) {
	summary, err := h.premiumService.GetPremiumSummary(time.Now().UTC())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetPremiumSummary.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

// TopPerformers handles GET requests to retrieve the ticker ranking by realized premium.
//
// Endpoint: GET /api/premium/top?period=mtd&limit=5
// Response: 200 OK with array of TickerPremium, descending by total premium
// Error: 400 Bad Request if the period or limit parameter is invalid
// Error: 500 Internal Server Error if the ledger cannot be read
func (h *PremiumHandler) TopPerformers(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = service.PeriodMonthToDate
	}
	if period != service.PeriodMonthToDate && period != service.PeriodYearToDate {
		response.RespondError(w, http.StatusBadRequest, "invalid period", "period must be mtd or ytd")
		return
	}

	limit := defaultTopPerformersLimit
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed < 1 {
			response.RespondError(w, http.StatusBadRequest, "invalid limit", "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	performers, err := h.premiumService.GetTopPerformers(period, limit, time.Now().UTC())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetTopPerformers.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, performers)
}
