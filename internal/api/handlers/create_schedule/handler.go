package create_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/CC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/CC-ScheduleService/internal/api/middleware"
	createSchedule "github.com/m04kA/CC-ScheduleService/internal/usecase/create_schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgActivityNotFound   = "активность не найдена"
	msgScheduleConflict   = "пересечение с существующей записью расписания на этой площадке"
)

type Handler struct {
	useCase CreateScheduleUseCase
	logger  Logger
}

func NewHandler(useCase CreateScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(middleware.GetUser(r.Context()))
	if err != nil {
		h.logger.Warn("POST /schedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflictErr *createSchedule.ConflictError

		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /schedule - Conflict: activity_id=%d, location=%s, conflicting_id=%d",
				req.ActivityID, req.Location, conflictErr.ConflictingID)
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Error:               msgScheduleConflict,
				ConflictingSchedule: conflictErr.ConflictingID,
			})

		case errors.Is(err, createSchedule.ErrActivityNotFound):
			h.logger.Warn("POST /schedule - Activity not found: activity_id=%d", req.ActivityID)
			handlers.RespondNotFound(w, msgActivityNotFound)

		case errors.Is(err, createSchedule.ErrInvalidInput):
			h.logger.Warn("POST /schedule - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /schedule - Failed to create schedule: activity_id=%d, error=%v",
				req.ActivityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule - Schedule created successfully: schedule_id=%d, activity_id=%d",
		result.ID, req.ActivityID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
