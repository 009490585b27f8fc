package get_activity

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/CC-ScheduleService/internal/service/activities"
)

const (
	msgInvalidActivityID = "некорректный ID активности"
	msgNotFound          = "активность не найдена"
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

// Handle GET /api/v1/activities/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	idStr := vars["id"]

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /activities/{id} - Invalid activity ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidActivityID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, activities.ErrActivityNotFound) {
			h.logger.Warn("GET /activities/{id} - Activity not found: activity_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /activities/{id} - Failed to fetch activity: activity_id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
