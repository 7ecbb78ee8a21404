package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wheeltracker/backend/internal/api/request"
	"github.com/wheeltracker/backend/internal/api/response"
	"github.com/wheeltracker/backend/internal/apperrors"
	"github.com/wheeltracker/backend/internal/model"
	"github.com/wheeltracker/backend/internal/service"
	"github.com/wheeltracker/backend/internal/validation"
)

// TradeHandler handles HTTP requests for trade endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the tradeService.
type TradeHandler struct {
	tradeService    *service.TradeService
	positionService *service.PositionService
}

// NewTradeHandler creates a new TradeHandler with the provided service dependencies.
func NewTradeHandler(tradeService *service.TradeService, positionService *service.PositionService) *TradeHandler {
	return &TradeHandler{
		tradeService:    tradeService,
		positionService: positionService,
	}
}

// Trades handles GET requests to retrieve all trades, optionally filtered by
// status and type query parameters.
//
// Endpoint: GET /api/trades?status=OPEN&type=CSP
// Response: 200 OK with array of Trade, newest first
// Error: 500 Internal Server Error if retrieval fails
func (h *TradeHandler) Trades(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	tradeType := r.URL.Query().Get("type")

	trades, err := h.tradeService.GetTrades(status, tradeType)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTrades.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, trades)
}

// GetTrade handles GET requests to retrieve a single trade by ID.
//
// Endpoint: GET /api/trades/{uuid}
// Response: 200 OK with Trade
// Error: 404 Not Found if trade not found
// Error: 500 Internal Server Error if retrieval fails
func (h *TradeHandler) GetTrade(w http.ResponseWriter, r *http.Request) {
	tradeID := chi.URLParam(r, "uuid")
	if err := validation.ValidateUUID(tradeID); err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidUUID.Error(), err.Error())
		return
	}

	trade, err := h.tradeService.GetTrade(tradeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTradeNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTradeNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTrade.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, trade)
}

// CreateTrade handles POST requests to record a new trade.
// Validates the request body and creates the trade in the OPEN state,
// lazily creating the position for its ticker.
//
// Endpoint: POST /api/trades
// Request Body: CreateTradeRequest (ticker, type, strike, expiration, premium, quantity, delta, notes)
// Response: 201 Created with Trade
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *TradeHandler) CreateTrade(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateTradeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateTrade(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	trade, err := h.tradeService.CreateTrade(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create trade", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, trade)
}

// CloseTrade handles PUT requests to move a trade to a terminal status.
//
// Endpoint: PUT /api/trades/{uuid}/close
// Request Body: CloseTradeRequest (status: CLOSED, EXPIRED or ASSIGNED)
// Response: 200 OK with updated Trade
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if trade not found
// Error: 409 Conflict if the trade has already left the OPEN state
// Error: 500 Internal Server Error if update fails
func (h *TradeHandler) CloseTrade(w http.ResponseWriter, r *http.Request) {
	tradeID := chi.URLParam(r, "uuid")
	if err := validation.ValidateUUID(tradeID); err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidUUID.Error(), err.Error())
		return
	}

	req, err := parseJSON[request.CloseTradeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCloseTrade(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	trade, err := h.tradeService.CloseTrade(r.Context(), tradeID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTradeNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTradeNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrTradeAlreadyClosed):
			response.RespondError(w, http.StatusConflict, apperrors.ErrTradeAlreadyClosed.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to close trade", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, trade)
}

// CreateAssignment handles POST requests to record an option assignment.
// A put assignment buys shares into the position at the strike; a call assignment
// sells shares away. Both append an ASSIGNMENT trade record.
//
// Endpoint: POST /api/assignments
// Request Body: CreateAssignmentRequest (ticker, kind, shares, costPerShare, notes)
// Response: 201 Created with the updated Position
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if recording fails
func (h *TradeHandler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateAssignmentRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateAssignment(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	var position model.Position
	if req.Kind == request.AssignmentKindPut {
		position, err = h.positionService.ApplyPutAssignment(r.Context(), req.Ticker, req.Shares, req.CostPerShare, req.Notes)
	} else {
		position, err = h.positionService.ApplyCallAssignment(r.Context(), req.Ticker, req.Shares, req.CostPerShare, req.Notes)
	}
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to record assignment", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, position)
}
