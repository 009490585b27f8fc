package get_week_view

import (
	"context"
	"fmt"

	"github.com/m04kA/CC-ScheduleService/internal/domain"
)

// UseCase use case для получения недельного расписания (понедельник-пятница)
type UseCase struct {
	scheduleRepo ScheduleRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(scheduleRepo ScheduleRepository, logger Logger) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает расписание на неделю, содержащую опорную дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	reference := req.Reference
	if reference.IsZero() {
		reference = uc.timeProvider.Now()
	}

	monday, friday := weekBounds(reference)

	uc.logger.Info("GetWeekView: fetching schedules for week %s - %s",
		monday.Format(domain.DateFormat), friday.Format(domain.DateFormat))

	items, err := uc.scheduleRepo.ListWithActivity(ctx, monday, friday)
	if err != nil {
		uc.logger.Error("GetWeekView: failed to fetch schedules: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch schedules: %v", ErrInternal, err)
	}

	activities := make([]Item, 0, len(items))
	for _, item := range items {
		activities = append(activities, itemFrom(item))
	}

	uc.logger.Info("GetWeekView: fetched %d schedules for week starting %s",
		len(activities), monday.Format(domain.DateFormat))

	return &Response{
		StartDate:  monday,
		EndDate:    friday,
		Activities: activities,
	}, nil
}
