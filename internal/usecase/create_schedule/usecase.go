package create_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CC-ScheduleService/internal/conflict"
	"github.com/m04kA/CC-ScheduleService/internal/domain"
	activityRepo "github.com/m04kA/CC-ScheduleService/internal/infra/storage/activity"
)

// UseCase use case для создания записи расписания
type UseCase struct {
	scheduleRepo ScheduleRepository
	activityRepo ActivityRepository
	detector     ConflictDetector
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	activityRepo ActivityRepository,
	detector ConflictDetector,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		activityRepo: activityRepo,
		detector:     detector,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case создания записи расписания
// Проверка конфликтов и запись выполняются в сериализуемой транзакции,
// чтобы два конкурентных бронирования одного слота не прошли проверку
// одновременно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSchedule: activity=%d, date=%s, time=%s-%s, location=%s, by=%s",
		req.ActivityID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.Location, req.CreatedBy)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование активности
	if _, err := uc.activityRepo.GetByID(ctx, req.ActivityID); err != nil {
		if errors.Is(err, activityRepo.ErrActivityNotFound) {
			uc.logger.Warn("CreateSchedule: activity id=%d not found", req.ActivityID)
			return nil, ErrActivityNotFound
		}
		uc.logger.Error("CreateSchedule: failed to get activity id=%d: %v", req.ActivityID, err)
		return nil, fmt.Errorf("%w: failed to get activity: %v", ErrInternal, err)
	}

	// 3. Нормализуем дату к границе календарного дня
	day := normalizeDate(req.Date)

	var result *domain.ScheduleEntry

	// 4. Проверка конфликтов и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Ищем пересечение с существующими записями на этой дате и площадке
		candidate := conflict.Candidate{
			Date:     day,
			Location: req.Location,
			Start:    req.StartTime,
			End:      req.EndTime,
		}

		existing, err := uc.detector.FindConflict(txCtx, candidate, nil)
		if err != nil {
			uc.logger.Error("CreateSchedule: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}

		if existing != nil {
			uc.logger.Warn("CreateSchedule: conflict with schedule id=%d (%s-%s at %s)",
				existing.ID, existing.StartTime, existing.EndTime, existing.Location)
			return &ConflictError{ConflictingID: existing.ID}
		}

		// 4.2. Создаем запись с метаданными создания
		entry := &domain.ScheduleEntry{
			ActivityID:        req.ActivityID,
			Date:              day,
			StartTime:         req.StartTime,
			EndTime:           req.EndTime,
			AgeGroup:          req.AgeGroup,
			Location:          req.Location,
			AssignedCoach:     req.AssignedCoach,
			Notes:             req.Notes,
			MaterialsRequired: req.MaterialsRequired,
			CreatedBy:         req.CreatedBy,
		}

		created, err := uc.scheduleRepo.Create(txCtx, entry)
		if err != nil {
			uc.logger.Error("CreateSchedule: failed to create entry: %v", err)
			return fmt.Errorf("%w: failed to create entry: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateSchedule: successfully created schedule id=%d", result.ID)

	return fromDomain(result), nil
}
