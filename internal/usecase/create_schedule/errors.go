package create_schedule

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_schedule: invalid input data")

	// ErrActivityNotFound возвращается, когда активность не найдена
	ErrActivityNotFound = errors.New("create_schedule: activity not found")

	// ErrScheduleConflict возвращается при пересечении с существующей записью
	// на той же дате и площадке
	ErrScheduleConflict = errors.New("create_schedule: scheduling conflict detected")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_schedule: internal error")
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
