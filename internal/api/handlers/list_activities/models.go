package list_activities

import (
	"time"

	"github.com/m04kA/CC-ScheduleService/internal/service/activities/models"
)

// ActivityListResponse HTTP response model
type ActivityListResponse struct {
	Count      int                 `json:"count"`
	Activities []*ActivityResponse `json:"activities"`
}

// ActivityResponse HTTP модель активности
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
func FromServiceResponse(resp *models.ActivityListResponse) *ActivityListResponse {
	activities := make([]*ActivityResponse, 0, len(resp.Activities))
	for _, act := range resp.Activities {
		activities = append(activities, &ActivityResponse{
			ID:              act.ID,
			Name:            act.Name,
			Description:     act.Description,
			DurationMinutes: act.DurationMinutes,
			AgeGroup:        act.AgeGroup,
			DefaultLocation: act.DefaultLocation,
			Materials:       act.Materials,
			CreatedAt:       act.CreatedAt.Format(time.RFC3339),
			UpdatedAt:       act.UpdatedAt.Format(time.RFC3339),
		})
	}

	return &ActivityListResponse{
		Count:      resp.Count,
		Activities: activities,
	}
}
