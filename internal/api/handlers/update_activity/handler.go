package update_activity

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/CC-ScheduleService/internal/service/activities"
)

const (
	msgInvalidActivityID  = "некорректный ID активности"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "активность не найдена"
)

type Handler struct {
	service ActivityService
	logger  Logger
}

func NewHandler(service ActivityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/activities/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	idStr := vars["id"]

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /activities/{id} - Invalid activity ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidActivityID)
		return
	}

	var req UpdateActivityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /activities/{id} - Invalid request body: activity_id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, activities.ErrActivityNotFound):
			h.logger.Warn("PUT /activities/{id} - Activity not found: activity_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, activities.ErrInvalidInput):
			h.logger.Warn("PUT /activities/{id} - Validation failed: activity_id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /activities/{id} - Failed to update activity: activity_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /activities/{id} - Activity updated successfully: activity_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
