package get_week_schedule

import (
	"context"

	getWeekView "github.com/m04kA/CC-ScheduleService/internal/usecase/get_week_view"
)

type GetWeekViewUseCase interface {
	Execute(ctx context.Context, req *getWeekView.Request) (*getWeekView.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
