package get_materials_needed

import (
	"context"

	getMaterialsNeeded "github.com/m04kA/CC-ScheduleService/internal/usecase/get_materials_needed"
)

type GetMaterialsNeededUseCase interface {
	Execute(ctx context.Context, req *getMaterialsNeeded.Request) (*getMaterialsNeeded.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
