package activities

import (
	"context"

	"github.com/m04kA/CC-ScheduleService/internal/domain"
)

// ActivityRepository интерфейс репозитория активностей
type ActivityRepository interface {
	Create(ctx context.Context, act *domain.Activity) (*domain.Activity, error)
	GetByID(ctx context.Context, id int64) (*domain.Activity, error)
	List(ctx context.Context) ([]*domain.Activity, error)
	Update(ctx context.Context, act *domain.Activity) (*domain.Activity, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// ScheduleRepository интерфейс репозитория расписания
// Нужен для проверки ссылок перед удалением активности
type ScheduleRepository interface {
	CountByActivityID(ctx context.Context, activityID int64) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
