package conflict

import (
	"context"

	"github.com/m04kA/CC-ScheduleService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания, необходимый детектору
type ScheduleRepository interface {
	GetByFilter(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.ScheduleEntry, error)
}
