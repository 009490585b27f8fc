package delete_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/CC-ScheduleService/internal/service/schedules"
)

const (
	msgInvalidScheduleID = "некорректный ID записи расписания"
	msgNotFound          = "запись расписания не найдена"
	msgDeleted           = "запись расписания удалена"
)

// MessageResponse тело успешного удаления
type MessageResponse struct {
	Message string `json:"message"`
}

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/schedule/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	idStr := vars["id"]

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /schedule/{id} - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, schedules.ErrScheduleNotFound) {
			h.logger.Warn("DELETE /schedule/{id} - Schedule not found: schedule_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /schedule/{id} - Failed to delete schedule: schedule_id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /schedule/{id} - Schedule deleted successfully: schedule_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, MessageResponse{Message: msgDeleted})
}
