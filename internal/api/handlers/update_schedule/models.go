package update_schedule

import (
	"time"

	"github.com/m04kA/CC-ScheduleService/internal/domain"
	updateSchedule "github.com/m04kA/CC-ScheduleService/internal/usecase/update_schedule"
	"github.com/m04kA/CC-ScheduleService/pkg/types"
)

// UpdateScheduleRequest HTTP модель частичного обновления
// Ссылка на активность и метаданные создания в модели отсутствуют намеренно:
// клиент не может их изменить, такие поля отбрасываются при декодировании
type UpdateScheduleRequest struct {
	Date              *string                       `json:"date,omitempty"`
	StartTime         *string                       `json:"startTime,omitempty"`
	EndTime           *string                       `json:"endTime,omitempty"`
	AgeGroup          *string                       `json:"ageGroup,omitempty"`
	Location          *string                       `json:"location,omitempty"`
	AssignedCoach     *string                       `json:"assignedCoach,omitempty"`
	Notes             *string                       `json:"notes,omitempty"`
	MaterialsRequired *[]domain.MaterialRequirement `json:"materialsRequired,omitempty"`

	// Защищенные поля принимаются и молча игнорируются, чтобы клиенты,
	// отправляющие объект целиком, не получали 400
	ActivityID *int64  `json:"activityId,omitempty"`
	CreatedBy  *string `json:"createdBy,omitempty"`
	ID         *int64  `json:"id,omitempty"`
	CreatedAt  *string `json:"createdAt,omitempty"`
	UpdatedAt  *string `json:"updatedAt,omitempty"`
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

// ToUseCaseRequest конвертирует HTTP патч в модель use case
func (r *UpdateScheduleRequest) ToUseCaseRequest() (*updateSchedule.Request, error) {
	req := &updateSchedule.Request{
		AgeGroup:          r.AgeGroup,
		Location:          r.Location,
		AssignedCoach:     r.AssignedCoach,
		Notes:             r.Notes,
		MaterialsRequired: r.MaterialsRequired,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &startTime
	}

	if r.EndTime != nil {
		endTime, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, err
		}
		req.EndTime = &endTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateSchedule.Response) *ScheduleResponse {
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
