package create_schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/CC-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ActivityID <= 0 {
		return fmt.Errorf("%w: activityID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	// Инвертированные и нулевые интервалы отклоняются здесь, до детектора:
	// формула пересечения для них дает неочевидные результаты
	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	if req.AgeGroup == "" {
		return fmt.Errorf("%w: ageGroup is required", ErrInvalidInput)
	}
	if req.Location == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidInput)
	}
	if req.AssignedCoach == "" {
		return fmt.Errorf("%w: assignedCoach is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	for _, m := range req.MaterialsRequired {
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
