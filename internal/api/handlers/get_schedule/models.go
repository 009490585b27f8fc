package get_schedule

import (
	"time"

	"github.com/m04kA/CC-ScheduleService/internal/domain"
	"github.com/m04kA/CC-ScheduleService/internal/service/schedules/models"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	ID                int64                        `json:"id"`
	ActivityID        int64                        `json:"activityId"`
	Date              string                       `json:"date"`
	StartTime         string                       `json:"startTime"`
	EndTime           string                       `json:"endTime"`
	AgeGroup          string                       `json:"ageGroup"`
	Location          string                       `json:"location"`
	AssignedCoach     string                       `json:"assignedCoach"`
	Notes             *string                      `json:"notes,omitempty"`
	MaterialsRequired []domain.MaterialRequirement `json:"materialsRequired"`
	CreatedBy         string                       `json:"createdBy"`
	CreatedAt         string                       `json:"createdAt"`
	UpdatedAt         string                       `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ScheduleResponse) *ScheduleResponse {
	return &ScheduleResponse{
		ID:                resp.ID,
		ActivityID:        resp.ActivityID,
		Date:              resp.Date.Format(domain.DateFormat),
		StartTime:         resp.StartTime.String(),
		EndTime:           resp.EndTime.String(),
		AgeGroup:          resp.AgeGroup,
		Location:          resp.Location,
		AssignedCoach:     resp.AssignedCoach,
		Notes:             resp.Notes,
		MaterialsRequired: resp.MaterialsRequired,
		CreatedBy:         resp.CreatedBy,
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         resp.UpdatedAt.Format(time.RFC3339),
	}
}
