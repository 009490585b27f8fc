package get_week_schedule

import (
	"github.com/m04kA/CC-ScheduleService/internal/domain"
	getWeekView "github.com/m04kA/CC-ScheduleService/internal/usecase/get_week_view"
)

// WeekViewResponse HTTP response model
type WeekViewResponse struct {
	StartDate  string         `json:"startDate"`
	EndDate    string         `json:"endDate"`
	Activities []ScheduleItem `json:"activities"`
}

// ScheduleItem запись расписания вместе с данными активности
type ScheduleItem struct {
	ID                int64                        `json:"id"`
	Name              string                       `json:"name"`
	Description       string                       `json:"description"`
	Date              string                       `json:"date"`
	DayOfWeek         int                          `json:"dayOfWeek"`
	StartTime         string                       `json:"startTime"`
	EndTime           string                       `json:"endTime"`
	AgeGroup          string                       `json:"ageGroup"`
	Location          string                       `json:"location"`
	AssignedCoach     string                       `json:"assignedCoach"`
	Notes             *string                      `json:"notes,omitempty"`
	MaterialsRequired []domain.MaterialRequirement `json:"materialsRequired"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeekView.Response) *WeekViewResponse {
	items := make([]ScheduleItem, 0, len(resp.Activities))
	for _, item := range resp.Activities {
		items = append(items, ScheduleItem{
			ID:                item.ID,
			Name:              item.Name,
			Description:       item.Description,
			Date:              item.Date.Format(domain.DateFormat),
			DayOfWeek:         item.DayOfWeek,
			StartTime:         item.StartTime.String(),
			EndTime:           item.EndTime.String(),
			AgeGroup:          item.AgeGroup,
			Location:          item.Location,
			AssignedCoach:     item.AssignedCoach,
			Notes:             item.Notes,
			MaterialsRequired: item.MaterialsRequired,
		})
	}

	return &WeekViewResponse{
		StartDate:  resp.StartDate.Format(domain.DateFormat),
		EndDate:    resp.EndDate.Format(domain.DateFormat),
		Activities: items,
	}
}
