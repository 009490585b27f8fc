package get_day_view

import (
	"time"

	"github.com/m04kA/CC-ScheduleService/internal/domain"
	"github.com/m04kA/CC-ScheduleService/pkg/types"
)

// Request модель запроса дневного расписания
// Если Date нулевой, используется текущая дата
type Request struct {
	Date time.Time
}

// Response дневное расписание, сгруппированное по возрастным группам
type Response struct {
	Date      time.Time
	DayOfWeek int // 1=понедельник .. 7=воскресенье
	Schedules map[string][]Item
}

// Item запись расписания в дневном представлении
type Item struct {
	ID                int64
	Name              string
	StartTime         types.TimeString
	EndTime           types.TimeString
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
		StartTime:         src.Entry.StartTime,
		EndTime:           src.Entry.EndTime,
		Location:          src.Entry.Location,
		AssignedCoach:     src.Entry.AssignedCoach,
		Notes:             src.Entry.Notes,
		MaterialsRequired: src.Entry.MaterialsRequired,
	}
}
