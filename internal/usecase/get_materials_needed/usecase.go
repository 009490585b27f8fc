package get_materials_needed

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/CC-ScheduleService/internal/domain"
)

// UseCase use case для подсчёта материалов, необходимых на период
// Инвентарь не персистится - отчёт полностью производен от расписания
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

// Execute возвращает суммарный список материалов за период
// Если период не указан, используется текущая лагерная неделя
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	startDate, endDate, err := uc.resolvePeriod(req)
	if err != nil {
		uc.logger.Warn("GetMaterialsNeeded: invalid period: %v", err)
		return nil, err
	}

	uc.logger.Info("GetMaterialsNeeded: aggregating materials for %s - %s",
		startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat))

	items, err := uc.scheduleRepo.ListWithActivity(ctx, startDate, endDate)
	if err != nil {
		uc.logger.Error("GetMaterialsNeeded: failed to fetch schedules: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch schedules: %v", ErrInternal, err)
	}

	materials := aggregateMaterials(items)

	uc.logger.Info("GetMaterialsNeeded: %d distinct materials over %d schedules",
		len(materials), len(items))

	return &Response{
		StartDate: startDate,
		EndDate:   endDate,
		Materials: materials,
	}, nil
}

// resolvePeriod вычисляет границы периода отчёта
// Отсутствующие даты заменяются границами текущей лагерной недели
func (uc *UseCase) resolvePeriod(req *Request) (time.Time, time.Time, error) {
	if req.StartDate != nil && req.EndDate != nil {
		start := normalizeDate(*req.StartDate)
		end := normalizeDate(*req.EndDate)
		if end.Before(start) {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
		}
		return start, end, nil
	}

	now := normalizeDate(uc.timeProvider.Now())
	monday := now.AddDate(0, 0, -(domain.ISOWeekday(now) - 1))
	friday := monday.AddDate(0, 0, domain.WeekViewDays-1)

	start := monday
	if req.StartDate != nil {
		start = normalizeDate(*req.StartDate)
	}

	end := friday
	if req.EndDate != nil {
		end = normalizeDate(*req.EndDate)
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}

	return start, end, nil
}

// normalizeDate обнуляет время суток, оставляя только календарную дату
func normalizeDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}
