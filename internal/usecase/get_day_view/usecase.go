package get_day_view

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/CC-ScheduleService/internal/domain"
)

// UseCase use case для получения дневного расписания, сгруппированного
// по возрастным группам
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

// Execute возвращает расписание на указанную дату
// Записи отсортированы по времени начала (порядок выдачи репозитория)
// и сгруппированы по возрастной группе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	date := req.Date
	if date.IsZero() {
		date = uc.timeProvider.Now()
	}
	day := normalizeDate(date)

	uc.logger.Info("GetDayView: fetching schedules for %s", day.Format(domain.DateFormat))

	items, err := uc.scheduleRepo.ListWithActivity(ctx, day, day)
	if err != nil {
		uc.logger.Error("GetDayView: failed to fetch schedules: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch schedules: %v", ErrInternal, err)
	}

	grouped := make(map[string][]Item)
	for _, item := range items {
		ageGroup := item.Entry.AgeGroup
		grouped[ageGroup] = append(grouped[ageGroup], itemFrom(item))
	}

	uc.logger.Info("GetDayView: fetched %d schedules in %d age groups for %s",
		len(items), len(grouped), day.Format(domain.DateFormat))

	return &Response{
		Date:      day,
		DayOfWeek: domain.ISOWeekday(day),
		Schedules: grouped,
	}, nil
}

// normalizeDate обнуляет время суток, оставляя только календарную дату
func normalizeDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}
