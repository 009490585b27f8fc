package activities

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CC-ScheduleService/internal/domain"
	activityRepo "github.com/m04kA/CC-ScheduleService/internal/infra/storage/activity"
	"github.com/m04kA/CC-ScheduleService/internal/service/activities/models"
)

// Service сервис для работы с активностями
type Service struct {
	activityRepo ActivityRepository
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса активностей
func NewService(
	activityRepo ActivityRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *Service {
	return &Service{
		activityRepo: activityRepo,
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// List получает все активности, отсортированные по имени
func (s *Service) List(ctx context.Context) (*models.ActivityListResponse, error) {
	s.logger.Info("List: fetching all activities")

	acts, err := s.activityRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d activities", len(acts))
	return models.FromDomainActivityList(acts), nil
}

// Create создает новую активность
func (s *Service) Create(ctx context.Context, req *models.CreateActivityRequest) (*models.ActivityResponse, error) {
	s.logger.Info("Create: creating activity name=%q", req.Name)

	if err := s.validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	act := &domain.Activity{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		AgeGroup:        req.AgeGroup,
		DefaultLocation: req.DefaultLocation,
		Materials:       req.Materials,
	}

	created, err := s.activityRepo.Create(ctx, act)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created activity id=%d", created.ID)
	return models.FromDomainActivity(created), nil
}

// GetByID получает активность по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ActivityResponse, error) {
	s.logger.Info("GetByID: fetching activity id=%d", id)

	act, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, activityRepo.ErrActivityNotFound) {
			s.logger.Warn("GetByID: activity id=%d not found", id)
			return nil, ErrActivityNotFound
		}
		s.logger.Error("GetByID: repository error for activity id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainActivity(act), nil
}

// Update обновляет поля активности
// Поля патча со значением nil не изменяются
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateActivityRequest) (*models.ActivityResponse, error) {
	s.logger.Info("Update: updating activity id=%d", id)

	act, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, activityRepo.ErrActivityNotFound) {
			s.logger.Warn("Update: activity id=%d not found", id)
			return nil, ErrActivityNotFound
		}
		s.logger.Error("Update: repository error for activity id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		act.Name = *req.Name
	}
	if req.Description != nil {
		act.Description = *req.Description
	}
	if req.DurationMinutes != nil {
		act.DurationMinutes = *req.DurationMinutes
	}
	if req.AgeGroup != nil {
		act.AgeGroup = *req.AgeGroup
	}
	if req.DefaultLocation != nil {
		act.DefaultLocation = *req.DefaultLocation
	}
	if req.Materials != nil {
		act.Materials = *req.Materials
	}

	if err := s.validateActivity(act); err != nil {
		s.logger.Warn("Update: validation failed for activity id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.activityRepo.Update(ctx, act)
	if err != nil {
		if errors.Is(err, activityRepo.ErrActivityNotFound) {
			s.logger.Warn("Update: activity id=%d disappeared during update", id)
			return nil, ErrActivityNotFound
		}
		s.logger.Error("Update: repository error for activity id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated activity id=%d", id)
	return models.FromDomainActivity(updated), nil
}

// Delete удаляет активность
// Удаление блокируется, пока на активность ссылается хотя бы одна запись
// расписания: ссылка слабая, и без этой проверки записи остались бы сиротами
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting activity id=%d", id)

	refs, err := s.scheduleRepo.CountByActivityID(ctx, id)
	if err != nil {
		s.logger.Error("Delete: failed to count schedule references for activity id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - failed to count references: %v", ErrInternal, err)
	}

	if refs > 0 {
		s.logger.Warn("Delete: activity id=%d is referenced by %d schedule entries", id, refs)
		return ErrActivityInUse
	}

	if err := s.activityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, activityRepo.ErrActivityNotFound) {
			s.logger.Warn("Delete: activity id=%d not found", id)
			return ErrActivityNotFound
		}
		s.logger.Error("Delete: repository error for activity id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted activity id=%d", id)
	return nil
}

// Count возвращает общее количество активностей
func (s *Service) Count(ctx context.Context) (int64, error) {
	count, err := s.activityRepo.Count(ctx)
	if err != nil {
		s.logger.Error("Count: repository error: %v", err)
		return 0, fmt.Errorf("%w: Count - repository error: %v", ErrInternal, err)
	}
	return count, nil
}

// validateCreate валидирует запрос на создание активности
func (s *Service) validateCreate(req *models.CreateActivityRequest) error {
	act := &domain.Activity{
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
	}
	return s.validateActivity(act)
}

// validateActivity валидирует поля активности
func (s *Service) validateActivity(act *domain.Activity) error {
	if act.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(act.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must not exceed %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if act.DurationMinutes < 0 {
		return fmt.Errorf("%w: durationMinutes must not be negative", ErrInvalidInput)
	}
	return nil
}
