package get_week_schedule

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/CC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/CC-ScheduleService/internal/domain"
	getWeekView "github.com/m04kA/CC-ScheduleService/internal/usecase/get_week_view"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetWeekViewUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekViewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/week и GET /api/v1/schedule/week/{startDate}
// Без даты возвращается текущая лагерная неделя
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var reference time.Time

	if dateStr, ok := mux.Vars(r)["startDate"]; ok {
		parsed, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /schedule/week - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		reference = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getWeekView.Request{Reference: reference})
	if err != nil {
		h.logger.Error("GET /schedule/week - Failed to fetch week view: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
