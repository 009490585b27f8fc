package get_week_view

import (
	"time"

	"github.com/m04kA/CC-ScheduleService/internal/domain"
)

// weekBounds вычисляет границы лагерной недели для произвольной опорной даты:
// понедельник этой недели и пятница четырьмя днями позже.
// Воскресенье считается седьмым днём ПРЕДЫДУЩЕЙ недели, поэтому для него
// возвращается понедельник прошедшей недели
func weekBounds(reference time.Time) (monday, friday time.Time) {
	day := normalizeDate(reference)
	monday = day.AddDate(0, 0, -(domain.ISOWeekday(day) - 1))
	friday = monday.AddDate(0, 0, domain.WeekViewDays-1)
	return monday, friday
}

// normalizeDate обнуляет время суток, оставляя только календарную дату
func normalizeDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}
