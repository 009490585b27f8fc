package update_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CC-ScheduleService/internal/api/handlers"
	updateSchedule "github.com/m04kA/CC-ScheduleService/internal/usecase/update_schedule"
)

const (
	msgInvalidScheduleID  = "некорректный ID записи расписания"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgNotFound           = "запись расписания не найдена"
	msgScheduleConflict   = "пересечение с существующей записью расписания на этой площадке"
)

type Handler struct {
	useCase UpdateScheduleUseCase
	logger  Logger
}

func NewHandler(useCase UpdateScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/schedule/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	idStr := vars["id"]

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /schedule/{id} - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/{id} - Invalid request body: schedule_id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("PUT /schedule/{id} - Failed to parse request: schedule_id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), id, useCaseReq)
	if err != nil {
		var conflictErr *updateSchedule.ConflictError

		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("PUT /schedule/{id} - Conflict: schedule_id=%d, conflicting_id=%d",
				id, conflictErr.ConflictingID)
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Error:               msgScheduleConflict,
				ConflictingSchedule: conflictErr.ConflictingID,
			})

		case errors.Is(err, updateSchedule.ErrScheduleNotFound):
			h.logger.Warn("PUT /schedule/{id} - Schedule not found: schedule_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateSchedule.ErrInvalidInput):
			h.logger.Warn("PUT /schedule/{id} - Validation failed: schedule_id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /schedule/{id} - Failed to update schedule: schedule_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/{id} - Schedule updated successfully: schedule_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
