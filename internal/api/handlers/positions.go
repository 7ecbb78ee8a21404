package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wheeltracker/backend/internal/api/response"
	"github.com/wheeltracker/backend/internal/apperrors"
	"github.com/wheeltracker/backend/internal/service"
)

// PositionHandler handles HTTP requests for position endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the positionService.
type PositionHandler struct {
	positionService *service.PositionService
	tradeService    *service.TradeService
}

// NewPositionHandler creates a new PositionHandler with the provided service dependencies.
func NewPositionHandler(positionService *service.PositionService, tradeService *service.TradeService) *PositionHandler {
	return &PositionHandler{
		positionService: positionService,
		tradeService:    tradeService,
	}
}

// Positions handles GET requests to retrieve all positions with their premium totals.
//
// Endpoint: GET /api/positions
// Response: 200 OK with array of PositionSummary, ordered by total premium descending
// Error: 500 Internal Server Error if retrieval fails
func (h *PositionHandler) Positions(w http.ResponseWriter, _ *http.Request) {
	positions, err := h.positionService.GetAllPositions()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePositions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, positions)
}

// Position handles GET requests to retrieve a single position by ticker.
//
// Endpoint: GET /api/positions/{ticker}
// Response: 200 OK with Position
// Error: 404 Not Found if no position exists for the ticker
// Error: 500 Internal Server Error if retrieval fails
func (h *PositionHandler) Position(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	position, err := h.positionService.GetPosition(ticker)
	if err != nil {
		if errors.Is(err, apperrors.ErrPositionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPositionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePosition.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, position)
}

// PositionTrades handles GET requests to retrieve all trades for a position.
//
// Endpoint: GET /api/positions/{ticker}/trades
// Response: 200 OK with array of Trade, newest first
// Error: 404 Not Found if no position exists for the ticker
// Error: 500 Internal Server Error if retrieval fails
func (h *PositionHandler) PositionTrades(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	position, err := h.positionService.GetPosition(ticker)
	if err != nil {
		if errors.Is(err, apperrors.ErrPositionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPositionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePosition.Error(), err.Error())
		return
	}

	trades, err := h.tradeService.GetTradesForPosition(position.ID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTrades.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, trades)
}
