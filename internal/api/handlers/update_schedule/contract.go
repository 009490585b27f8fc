package update_schedule

import (
	"context"

	updateSchedule "github.com/m04kA/CC-ScheduleService/internal/usecase/update_schedule"
)

type UpdateScheduleUseCase interface {
	Execute(ctx context.Context, id int64, req *updateSchedule.Request) (*updateSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
