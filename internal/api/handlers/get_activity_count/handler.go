package get_activity_count

import (
	"net/http"

	"github.com/m04kA/CC-ScheduleService/internal/api/handlers"
)

// CountResponse тело ответа с количеством активностей
type CountResponse struct {
	Count int64 `json:"count"`
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

// Handle GET /api/v1/activities/count
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.Count(r.Context())
	if err != nil {
		h.logger.Error("GET /activities/count - Failed to count activities: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CountResponse{Count: count})
}
