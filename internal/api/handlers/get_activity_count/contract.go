package get_activity_count

import "context"

type ActivityService interface {
	Count(ctx context.Context) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
