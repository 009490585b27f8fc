package get_day_schedule

import (
	"github.com/m04kA/CC-ScheduleService/internal/domain"
	getDayView "github.com/m04kA/CC-ScheduleService/internal/usecase/get_day_view"
)

// DayViewResponse HTTP response model
// Schedules сгруппированы по возрастным группам
type DayViewResponse struct {
	Date      string                    `json:"date"`
	DayOfWeek int                       `json:"dayOfWeek"`
	Schedules map[string][]ScheduleItem `json:"schedules"`
}

// ScheduleItem запись расписания в дневном представлении
type ScheduleItem struct {
	ID                int64                        `json:"id"`
	Name              string                       `json:"name"`
	StartTime         string                       `json:"startTime"`
	EndTime           string                       `json:"endTime"`
	Location          string                       `json:"location"`
	AssignedCoach     string                       `json:"assignedCoach"`
	Notes             *string                      `json:"notes,omitempty"`
	MaterialsRequired []domain.MaterialRequirement `json:"materialsRequired"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayView.Response) *DayViewResponse {
	schedules := make(map[string][]ScheduleItem, len(resp.Schedules))
	for ageGroup, items := range resp.Schedules {
		converted := make([]ScheduleItem, 0, len(items))
		for _, item := range items {
			converted = append(converted, ScheduleItem{
				ID:                item.ID,
				Name:              item.Name,
				StartTime:         item.StartTime.String(),
				EndTime:           item.EndTime.String(),
				Location:          item.Location,
				AssignedCoach:     item.AssignedCoach,
				Notes:             item.Notes,
				MaterialsRequired: item.MaterialsRequired,
			})
		}
		schedules[ageGroup] = converted
	}

	return &DayViewResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		DayOfWeek: resp.DayOfWeek,
		Schedules: schedules,
	}
}
