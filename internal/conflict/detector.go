package conflict

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/CC-ScheduleService/internal/domain"
	"github.com/m04kA/CC-ScheduleService/pkg/types"
)

// Candidate кандидат на бронирование: дата, площадка и интервал времени
type Candidate struct {
	Date     time.Time
	Location string
	Start    types.TimeString
	End      types.TimeString
}

// Interval returns the candidate's half-open [start, end) interval
func (c Candidate) Interval() domain.TimeInterval {
	return domain.TimeInterval{Start: c.Start, End: c.End}
}

// Detector проверяет кандидата на пересечение с существующими записями
// расписания на той же дате и площадке. Детектор только читает; найденный
// конфликт - это обычное возвращаемое значение, а не ошибка. Решение об
// отказе в записи принимает вызывающий use case
type Detector struct {
	scheduleRepo ScheduleRepository
}

// NewDetector создает новый детектор конфликтов
func NewDetector(scheduleRepo ScheduleRepository) *Detector {
	return &Detector{scheduleRepo: scheduleRepo}
}

// FindConflict ищет первую запись расписания, пересекающуюся с кандидатом
//
// Выбираются записи с той же календарной датой и площадкой; запись с ID,
// равным excludeID, исключается (используется при update-in-place, чтобы
// запись не конфликтовала со своим прежним состоянием). Порядок перебора -
// порядок выдачи репозитория; для бизнес-логики важен только факт конфликта,
// а не то, какой из них "первый".
//
// Возвращает nil, nil если пересечений нет
func (d *Detector) FindConflict(ctx context.Context, candidate Candidate, excludeID *int64) (*domain.ScheduleEntry, error) {
	day := normalizeDate(candidate.Date)

	filter := domain.ScheduleFilter{
		StartDate: &day,
		EndDate:   &day,
		Location:  &candidate.Location,
		ExcludeID: excludeID,
	}

	entries, err := d.scheduleRepo.GetByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("conflict: failed to fetch same-day entries: %w", err)
	}

	candidateInterval := candidate.Interval()

	for _, entry := range entries {
		if candidateInterval.Overlaps(entry.Interval()) {
			return entry, nil
		}
	}

	return nil, nil
}

// normalizeDate обнуляет время суток, оставляя только календарную дату
func normalizeDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}
