package schedules

import (
	"context"
	"time"

	"github.com/m04kA/CC-ScheduleService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ScheduleEntry, error)
	Delete(ctx context.Context, id int64) error
	CountForDay(ctx context.Context, date time.Time) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
