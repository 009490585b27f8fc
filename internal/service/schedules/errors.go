package schedules

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда запись расписания не найдена
	ErrScheduleNotFound = errors.New("schedule entry not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedules service: internal error")
)
