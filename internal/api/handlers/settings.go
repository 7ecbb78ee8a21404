package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wheeltracker/backend/internal/api/request"
	"github.com/wheeltracker/backend/internal/api/response"
	"github.com/wheeltracker/backend/internal/apperrors"
	"github.com/wheeltracker/backend/internal/service"
)

// SettingHandler handles HTTP requests for the application settings endpoints.
type SettingHandler struct {
	settingService *service.SettingService
}

// NewSettingHandler creates a new SettingHandler with the provided service dependency.
func NewSettingHandler(settingService *service.SettingService) *SettingHandler {
	return &SettingHandler{
		settingService: settingService,
	}
}

// Settings handles GET requests to retrieve all settings.
//
// Endpoint: GET /api/settings
// Response: 200 OK with a key/value map
// Error: 500 Internal Server Error if retrieval fails
func (h *SettingHandler) Settings(w http.ResponseWriter, _ *http.Request) {
	settings, err := h.settingService.GetAllSettings()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSettings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, settings)
}

// GetSetting handles GET requests to retrieve a single setting value.
//
// Endpoint: GET /api/settings/{key}
// Response: 200 OK with {"key": ..., "value": ...}
// Error: 404 Not Found if the setting does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *SettingHandler) GetSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	value, err := h.settingService.GetSetting(key)
	if err != nil {
		if errors.Is(err, apperrors.ErrSettingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSettingNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve setting", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]string{"key": key, "value": value})
}

// UpdateSetting handles PUT requests to store a setting value.
//
// Endpoint: PUT /api/settings/{key}
// Request Body: UpdateSettingRequest (value)
// Response: 200 OK with {"key": ..., "value": ...}
// Error: 400 Bad Request if the request body is invalid
// Error: 500 Internal Server Error if storing fails
func (h *SettingHandler) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	req, err := parseJSON[request.UpdateSettingRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.settingService.SetSetting(r.Context(), key, req.Value); err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSaveSetting.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]string{"key": key, "value": req.Value})
}
