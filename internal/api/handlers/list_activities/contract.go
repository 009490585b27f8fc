package list_activities

import (
	"context"

	"github.com/m04kA/CC-ScheduleService/internal/service/activities/models"
)

type ActivityService interface {
	List(ctx context.Context) (*models.ActivityListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
