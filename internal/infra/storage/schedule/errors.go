package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда запись расписания не найдена
	ErrScheduleNotFound = errors.New("schedule.repository: schedule entry not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")

	// ErrMarshalMaterials возвращается при ошибке сериализации списка материалов
	ErrMarshalMaterials = errors.New("schedule.repository: failed to marshal materials")
)
