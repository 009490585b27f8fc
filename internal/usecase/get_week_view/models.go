package get_week_view

import (
	"time"

	"github.com/m04kA/CC-ScheduleService/internal/domain"
	"github.com/m04kA/CC-ScheduleService/pkg/types"
)

// Request модель запроса недельного расписания
// Если Reference нулевой, используется текущая дата
type Request struct {
	Reference time.Time
}

// Response недельное расписание: понедельник-пятница
type Response struct {
	StartDate  time.Time
	EndDate    time.Time
	Activities []Item
}

// Item запись расписания вместе с именем и описанием активности
type Item struct {
	ID                int64
	Name              string
	Description       string
	Date              time.Time
	DayOfWeek         int // 1=понедельник .. 7=воскресенье
	StartTime         types.TimeString
	EndTime           types.TimeString
	AgeGroup          string
	Location          string
	AssignedCoach     string
	Notes             *string
	MaterialsRequired []domain.MaterialRequirement
}

// itemFrom конвертирует запись с активностью в элемент ответа
func itemFrom(src *domain.ScheduleWithActivity) Item {
	return Item{
		ID:                src.Entry.ID,
		Name:              src.ActivityName,
		Description:       src.ActivityDesc,
		Date:              src.Entry.Date,
		DayOfWeek:         src.Entry.DayOfWeek(),
		StartTime:         src.Entry.StartTime,
		EndTime:           src.Entry.EndTime,
		AgeGroup:          src.Entry.AgeGroup,
		Location:          src.Entry.Location,
		AssignedCoach:     src.Entry.AssignedCoach,
		Notes:             src.Entry.Notes,
		MaterialsRequired: src.Entry.MaterialsRequired,
	}
}
