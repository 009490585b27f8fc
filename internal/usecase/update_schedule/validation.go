package update_schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/CC-ScheduleService/internal/domain"
)

// applyPatch накладывает непустые поля патча на копию текущей записи
func applyPatch(current *domain.ScheduleEntry, req *Request) domain.ScheduleEntry {
	merged := *current

	if req.Date != nil {
		merged.Date = normalizeDate(*req.Date)
	}
	if req.StartTime != nil {
		merged.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		merged.EndTime = *req.EndTime
	}
	if req.AgeGroup != nil {
		merged.AgeGroup = *req.AgeGroup
	}
	if req.Location != nil {
		merged.Location = *req.Location
	}
	if req.AssignedCoach != nil {
		merged.AssignedCoach = *req.AssignedCoach
	}
	if req.Notes != nil {
		merged.Notes = req.Notes
	}
	if req.MaterialsRequired != nil {
		merged.MaterialsRequired = *req.MaterialsRequired
	}

	return merged
}

// validateMerged валидирует итоговое состояние записи после наложения патча
// Проверяется именно результат слияния: патч может быть корректным сам по
// себе, но давать инвертированный интервал в сочетании с текущими полями
func validateMerged(merged *domain.ScheduleEntry) error {
	if merged.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := merged.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if err := merged.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if !merged.StartTime.IsBefore(merged.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	if merged.AgeGroup == "" {
		return fmt.Errorf("%w: ageGroup is required", ErrInvalidInput)
	}
	if merged.Location == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidInput)
	}
	if merged.AssignedCoach == "" {
		return fmt.Errorf("%w: assignedCoach is required", ErrInvalidInput)
	}

	if merged.Notes != nil && len(*merged.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	for _, m := range merged.MaterialsRequired {
		if m.Item == "" {
			return fmt.Errorf("%w: material item name is required", ErrInvalidInput)
		}
		if m.Quantity <= 0 {
			return fmt.Errorf("%w: material quantity must be positive", ErrInvalidInput)
		}
	}

	return nil
}

// normalizeDate обнуляет время суток, оставляя только календарную дату
func normalizeDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}
