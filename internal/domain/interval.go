package domain

import "github.com/m04kA/CC-ScheduleService/pkg/types"

// TimeInterval represents a half-open [start, end) time-of-day interval
// with HH:MM granularity on a single calendar day
type TimeInterval struct {
	Start types.TimeString
	End   types.TimeString
}

// IsValid returns true if the interval has a positive length
func (i TimeInterval) IsValid() bool {
	return i.Start.IsBefore(i.End)
}

// Overlaps reports whether two half-open intervals overlap.
//
// Два интервала пересекаются тогда и только тогда, когда
// a.Start < b.End && b.Start < a.End (строгие сравнения).
// Граничные случаи (один интервал заканчивается ровно там, где начинается
// другой) пересечением НЕ считаются:
//   - [09:00,10:00) и [10:00,11:00) → нет пересечения
//   - [09:00,10:30) и [10:00,11:00) → есть пересечение
//   - [09:00,12:00) и [10:00,11:00) → есть пересечение (полное вложение)
//
// Инвертированные и нулевые интервалы здесь не отбрасываются - они
// отклоняются на границе валидации use case'ов.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.IsBefore(other.End) && other.Start.IsBefore(i.End)
}
