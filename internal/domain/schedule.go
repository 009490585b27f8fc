package domain

import (
	"time"

	"github.com/m04kA/CC-ScheduleService/pkg/types"
)

// MaterialRequirement a material required by a schedule entry beyond
// the activity's defaults, with an explicit quantity
type MaterialRequirement struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

// ScheduleEntry represents a concrete booking of an activity at a
// date/time/location for an age group
type ScheduleEntry struct {
	ID         int64
	ActivityID int64 // Слабая ссылка на Activity; удаление Activity блокируется, пока есть записи

	Date      time.Time // Календарная дата без времени суток
	StartTime types.TimeString
	EndTime   types.TimeString

	AgeGroup      string
	Location      string
	AssignedCoach string
	Notes         *string

	MaterialsRequired []MaterialRequirement

	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the entry's half-open [start, end) time interval
func (e *ScheduleEntry) Interval() TimeInterval {
	return TimeInterval{Start: e.StartTime, End: e.EndTime}
}

// DayOfWeek returns the ISO day number of the entry's date (1=Monday .. 7=Sunday)
func (e *ScheduleEntry) DayOfWeek() int {
	return ISOWeekday(e.Date)
}

// ISOWeekday конвертирует time.Weekday (воскресенье=0) в ISO-нумерацию (понедельник=1 .. воскресенье=7)
func ISOWeekday(date time.Time) int {
	wd := int(date.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// ScheduleFilter фильтр для выборки записей расписания
type ScheduleFilter struct {
	StartDate *time.Time // Начало периода включительно (опционально)
	EndDate   *time.Time // Конец периода включительно (опционально)
	Location  *string    // Фильтр по площадке (опционально)
	ExcludeID *int64     // Исключить запись по ID (используется при update, чтобы запись не конфликтовала сама с собой)
}

// ScheduleWithActivity запись расписания вместе с данными родительской активности
// Используется в недельном/дневном представлениях и при подсчёте материалов
type ScheduleWithActivity struct {
	Entry             ScheduleEntry
	ActivityName      string
	ActivityDesc      string
	ActivityMaterials []string
}
