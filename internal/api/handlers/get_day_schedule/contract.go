package get_day_schedule

import (
	"context"

	getDayView "github.com/m04kA/CC-ScheduleService/internal/usecase/get_day_view"
)

type GetDayViewUseCase interface {
	Execute(ctx context.Context, req *getDayView.Request) (*getDayView.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
