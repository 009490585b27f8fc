package create_schedule

import (
	"time"

	"github.com/m04kA/CC-ScheduleService/internal/domain"
	createSchedule "github.com/m04kA/CC-ScheduleService/internal/usecase/create_schedule"
	"github.com/m04kA/CC-ScheduleService/pkg/types"
)

// CreateScheduleRequest HTTP request model
type CreateScheduleRequest struct {
	ActivityID        int64                        `json:"activityId"`
	Date              string                       `json:"date"`      // "2026-06-15"
	StartTime         string                       `json:"startTime"` // "10:00"
	EndTime           string                       `json:"endTime"`   // "11:00"
	AgeGroup          string                       `json:"ageGroup"`
	Location          string                       `json:"location"`
	AssignedCoach     string                       `json:"assignedCoach"`
	Notes             *string                      `json:"notes,omitempty"`
	MaterialsRequired []domain.MaterialRequirement `json:"materialsRequired,omitempty"`
}

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

// ConflictResponse тело ответа 409 с указанием конфликтующей записи
type ConflictResponse struct {
	Error               string `json:"error"`
	ConflictingSchedule int64  `json:"conflictingSchedule"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Идентичность вызывающего приходит отдельно из middleware
func (r *CreateScheduleRequest) ToUseCaseRequest(createdBy string) (*createSchedule.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createSchedule.Request{
		ActivityID:        r.ActivityID,
		Date:              date,
		StartTime:         startTime,
		EndTime:           endTime,
		AgeGroup:          r.AgeGroup,
		Location:          r.Location,
		AssignedCoach:     r.AssignedCoach,
		Notes:             r.Notes,
		MaterialsRequired: r.MaterialsRequired,
		CreatedBy:         createdBy,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createSchedule.Response) *ScheduleResponse {
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
