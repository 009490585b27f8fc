package delete_activity

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
	msgActivityInUse     = "активность используется в расписании и не может быть удалена"
	msgDeleted           = "активность удалена"
)

// MessageResponse тело успешного удаления
type MessageResponse struct {
	Message string `json:"message"`
}

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

// Handle DELETE /api/v1/activities/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	idStr := vars["id"]

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /activities/{id} - Invalid activity ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidActivityID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, activities.ErrActivityNotFound):
			h.logger.Warn("DELETE /activities/{id} - Activity not found: activity_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, activities.ErrActivityInUse):
			h.logger.Warn("DELETE /activities/{id} - Activity in use: activity_id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgActivityInUse)

		default:
			h.logger.Error("DELETE /activities/{id} - Failed to delete activity: activity_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /activities/{id} - Activity deleted successfully: activity_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, MessageResponse{Message: msgDeleted})
}
