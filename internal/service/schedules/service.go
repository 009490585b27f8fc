package schedules

import (
	"context"
	"errors"
	"fmt"
	"time"

	scheduleRepo "github.com/m04kA/CC-ScheduleService/internal/infra/storage/schedule"
	"github.com/m04kA/CC-ScheduleService/internal/service/schedules/models"
)

// Service сервис для простых операций над записями расписания
// Создание и обновление живут в отдельных usecase, так как требуют
// проверки конфликтов внутри транзакции
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// GetByID получает запись расписания по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetByID: fetching schedule id=%d", id)

	entry, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("GetByID: schedule id=%d not found", id)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("GetByID: repository error for schedule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(entry), nil
}

// Delete удаляет запись расписания
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting schedule id=%d", id)

	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("Delete: schedule id=%d not found", id)
			return ErrScheduleNotFound
		}
		s.logger.Error("Delete: repository error for schedule id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted schedule id=%d", id)
	return nil
}

// CountForDay возвращает количество записей расписания на указанную дату
func (s *Service) CountForDay(ctx context.Context, date time.Time) (int64, error) {
	count, err := s.scheduleRepo.CountForDay(ctx, date)
	if err != nil {
		s.logger.Error("CountForDay: repository error for date=%s: %v", date.Format("2006-01-02"), err)
		return 0, fmt.Errorf("%w: CountForDay - repository error: %v", ErrInternal, err)
	}
	return count, nil
}
