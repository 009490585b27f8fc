package create_schedule

import (
	"context"

	"github.com/m04kA/CC-ScheduleService/internal/conflict"
	"github.com/m04kA/CC-ScheduleService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	Create(ctx context.Context, entry *domain.ScheduleEntry) (*domain.ScheduleEntry, error)
}

// ActivityRepository интерфейс репозитория активностей
type ActivityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Activity, error)
}

// ConflictDetector интерфейс детектора конфликтов расписания
type ConflictDetector interface {
	FindConflict(ctx context.Context, candidate conflict.Candidate, excludeID *int64) (*domain.ScheduleEntry, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
