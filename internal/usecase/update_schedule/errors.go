package update_schedule

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_schedule: invalid input data")

	// ErrScheduleNotFound возвращается, когда запись расписания не найдена
	ErrScheduleNotFound = errors.New("update_schedule: schedule entry not found")

	// ErrScheduleConflict возвращается при пересечении с существующей записью
	// на той же дате и площадке
	ErrScheduleConflict = errors.New("update_schedule: scheduling conflict detected")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_schedule: internal error")
)

// ConflictError ошибка конфликта расписания с ID конфликтующей записи
// Совместима с errors.Is(err, ErrScheduleConflict)
type ConflictError struct {
	ConflictingID int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: conflicting schedule id=%d", ErrScheduleConflict, e.ConflictingID)
}

func (e *ConflictError) Unwrap() error {
	return ErrScheduleConflict
}
