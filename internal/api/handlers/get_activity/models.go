package get_activity

import (
	"time"

	"github.com/m04kA/CC-ScheduleService/internal/service/activities/models"
)

// ActivityResponse HTTP response model
type ActivityResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	DurationMinutes int      `json:"durationMinutes"`
	AgeGroup        string   `json:"ageGroup"`
	DefaultLocation string   `json:"defaultLocation"`
	Materials       []string `json:"materials"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ActivityResponse) *ActivityResponse {
	return &ActivityResponse{
		ID:              resp.ID,
		Name:            resp.Name,
		Description:     resp.Description,
		DurationMinutes: resp.DurationMinutes,
		AgeGroup:        resp.AgeGroup,
		DefaultLocation: resp.DefaultLocation,
		Materials:       resp.Materials,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
