package create_activity

import (
	"context"

	"github.com/m04kA/CC-ScheduleService/internal/service/activities/models"
)

type ActivityService interface {
	Create(ctx context.Context, req *models.CreateActivityRequest) (*models.ActivityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
