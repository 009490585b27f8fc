package get_day_count

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/CC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/CC-ScheduleService/internal/domain"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

// CountResponse тело ответа с количеством записей
type CountResponse struct {
	Count int64 `json:"count"`
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

// Handle GET /api/v1/schedule/day/{date}/count
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dateStr := vars["date"]

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /schedule/day/{date}/count - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	count, err := h.service.CountForDay(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /schedule/day/{date}/count - Failed to count schedules: date=%s, error=%v",
			dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CountResponse{Count: count})
}
