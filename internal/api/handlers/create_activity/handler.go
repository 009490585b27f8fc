package create_activity

import (
	"errors"
	"net/http"

	"github.com/m04kA/CC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/CC-ScheduleService/internal/service/activities"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/activities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateActivityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /activities - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		if errors.Is(err, activities.ErrInvalidInput) {
			h.logger.Warn("POST /activities - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /activities - Failed to create activity: name=%q, error=%v", req.Name, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /activities - Activity created successfully: activity_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
