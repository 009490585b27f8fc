package get_materials_needed

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/CC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/CC-ScheduleService/internal/domain"
	getMaterialsNeeded "github.com/m04kA/CC-ScheduleService/internal/usecase/get_materials_needed"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPeriod = "некорректный период: дата окончания раньше даты начала"
)

type Handler struct {
	useCase GetMaterialsNeededUseCase
	logger  Logger
}

func NewHandler(useCase GetMaterialsNeededUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/materials/needed?startDate=...&endDate=...
// Без параметров период равен текущей лагерной неделе
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getMaterialsNeeded.Request{}

	if dateStr := r.URL.Query().Get("startDate"); dateStr != "" {
		parsed, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /schedule/materials/needed - Invalid startDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &parsed
	}

	if dateStr := r.URL.Query().Get("endDate"); dateStr != "" {
		parsed, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /schedule/materials/needed - Invalid endDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &parsed
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, getMaterialsNeeded.ErrInvalidInput) {
			h.logger.Warn("GET /schedule/materials/needed - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		h.logger.Error("GET /schedule/materials/needed - Failed to aggregate materials: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
