package get_day_count

import (
	"context"
	"time"
)

type ScheduleService interface {
	CountForDay(ctx context.Context, date time.Time) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
