package handlers

import (
	"net/http"

	"github.com/wheeltracker/backend/internal/api/request"
	"github.com/wheeltracker/backend/internal/api/response"
	"github.com/wheeltracker/backend/internal/apperrors"
	"github.com/wheeltracker/backend/internal/model"
	"github.com/wheeltracker/backend/internal/service"
)

// ProfileHandler handles HTTP requests for the portfolio info and milestone endpoints.
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler with the provided service dependency.
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// Info handles GET requests to retrieve the portfolio description.
//
// Endpoint: GET /api/portfolio/info
// Response: 200 OK with PortfolioInfo, empty fields when never saved
// Error: 500 Internal Server Error if retrieval fails
func (h *ProfileHandler) Info(w http.ResponseWriter, _ *http.Request) {
	info, err := h.profileService.GetInfo()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveProfile.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, info)
}

// SaveInfo handles PUT requests to store the portfolio description.
//
// Endpoint: PUT /api/portfolio/info
// Request Body: SavePortfolioInfoRequest (startedInvesting, philosophy, optionsStrategy)
// Response: 200 OK with the saved PortfolioInfo
// Error: 400 Bad Request if the request body is invalid
// Error: 500 Internal Server Error if storing fails
func (h *ProfileHandler) SaveInfo(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SavePortfolioInfoRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	info := model.PortfolioInfo{
		StartedInvesting: req.StartedInvesting,
		Philosophy:       req.Philosophy,
		OptionsStrategy:  req.OptionsStrategy,
	}
	if err := h.profileService.SaveInfo(r.Context(), info); err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSaveProfile.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, info)
}

// Milestones handles GET requests to retrieve the milestone list in display order.
//
// Endpoint: GET /api/portfolio/milestones
// Response: 200 OK with array of Milestone
// Error: 500 Internal Server Error if retrieval fails
func (h *ProfileHandler) Milestones(w http.ResponseWriter, _ *http.Request) {
	milestones, err := h.profileService.GetMilestones()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve milestones", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, milestones)
}

// SaveMilestones handles PUT requests to replace the milestone list.
//
// Endpoint: PUT /api/portfolio/milestones
// Request Body: SaveMilestonesRequest (ordered milestone entries)
// Response: 200 OK with the saved milestones
// Error: 400 Bad Request if the request body is invalid
// Error: 500 Internal Server Error if storing fails
func (h *ProfileHandler) SaveMilestones(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SaveMilestonesRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	milestones := make([]model.Milestone, len(req.Milestones))
	for i, entry := range req.Milestones {
		milestones[i] = model.Milestone{
			Amount:      entry.Amount,
			DateReached: entry.DateReached,
			TimeToReach: entry.TimeToReach,
		}
	}

	if err := h.profileService.SaveMilestones(r.Context(), milestones); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to save milestones", err.Error())
		return
	}

	saved, err := h.profileService.GetMilestones()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve milestones", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, saved)
}
