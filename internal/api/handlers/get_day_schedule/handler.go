package get_day_schedule

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/CC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/CC-ScheduleService/internal/domain"
	getDayView "github.com/m04kA/CC-ScheduleService/internal/usecase/get_day_view"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetDayViewUseCase
	logger  Logger
}

func NewHandler(useCase GetDayViewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/day и GET /api/v1/schedule/day/{date}
// Без даты возвращается сегодняшний день
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var date time.Time

	if dateStr, ok := mux.Vars(r)["date"]; ok {
		parsed, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /schedule/day - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getDayView.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /schedule/day - Failed to fetch day view: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
