package activities

import "errors"

var (
	// ErrActivityNotFound возвращается, когда активность не найдена
	ErrActivityNotFound = errors.New("activity not found")

	// ErrActivityInUse возвращается при попытке удалить активность,
	// на которую ссылаются записи расписания
	ErrActivityInUse = errors.New("activity is referenced by schedule entries")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("activities service: internal error")
)
