package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/wheeltracker/backend/internal/api/request"
	"github.com/wheeltracker/backend/internal/api/response"
	"github.com/wheeltracker/backend/internal/apperrors"
	"github.com/wheeltracker/backend/internal/repository"
	"github.com/wheeltracker/backend/internal/service"
)

// defaultSnapshotDays is the history window when no days parameter is given.
const defaultSnapshotDays = 90

// SnapshotHandler handles HTTP requests for the portfolio snapshot endpoints.
type SnapshotHandler struct {
	snapshotService *service.SnapshotService
}

// NewSnapshotHandler creates a new SnapshotHandler with the provided service dependency.
func NewSnapshotHandler(snapshotService *service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{
		snapshotService: snapshotService,
	}
}

// Snapshots handles GET requests to retrieve the snapshot history.
//
// Endpoint: GET /api/snapshots?days=90
// Response: 200 OK with array of Snapshot, oldest first
// Error: 400 Bad Request if the days parameter is invalid
// Error: 500 Internal Server Error if retrieval fails
func (h *SnapshotHandler) Snapshots(w http.ResponseWriter, r *http.Request) {
	days := defaultSnapshotDays
	if daysParam := r.URL.Query().Get("days"); daysParam != "" {
		parsed, err := strconv.Atoi(daysParam)
		if err != nil || parsed < 1 {
			response.RespondError(w, http.StatusBadRequest, "invalid days", "days must be a positive integer")
			return
		}
		days = parsed
	}

	snapshots, err := h.snapshotService.GetSnapshots(days)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSnapshots.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, snapshots)
}

// SaveSnapshot handles POST requests to store a snapshot for a date, replacing
// any existing one.
//
// Endpoint: POST /api/snapshots
// Request Body: SaveSnapshotRequest (date, portfolioValue, optionsPnl)
// Response: 201 Created with Snapshot
// Error: 400 Bad Request if the request body or date is invalid
// Error: 500 Internal Server Error if storing fails
func (h *SnapshotHandler) SaveSnapshot(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SaveSnapshotRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	date := time.Now().UTC()
	if req.Date != "" {
		date, err = time.Parse(repository.DateLayout, req.Date)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid date", "date must use the YYYY-MM-DD format")
			return
		}
	}

	snapshot, err := h.snapshotService.SaveSnapshot(r.Context(), date, req.PortfolioValue, req.OptionsPnL)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSaveSnapshot.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, snapshot)
}
