package update_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CC-ScheduleService/internal/conflict"
	"github.com/m04kA/CC-ScheduleService/internal/domain"
	scheduleRepo "github.com/m04kA/CC-ScheduleService/internal/infra/storage/schedule"
)

// UseCase use case для обновления записи расписания
type UseCase struct {
	scheduleRepo ScheduleRepository
	detector     ConflictDetector
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	detector ConflictDetector,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		detector:     detector,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case обновления записи расписания
//
// Детектор конфликтов вызывается только если патч затрагивает дату, время
// или площадку - это избавляет от лишнего чтения расписания при обновлении,
// например, одних заметок. При проверке текущая запись исключается по ID,
// чтобы не конфликтовать со своим прежним состоянием
func (uc *UseCase) Execute(ctx context.Context, id int64, req *Request) (*Response, error) {
	uc.logger.Info("UpdateSchedule: updating schedule id=%d", id)

	// 1. Загружаем текущую запись
	current, err := uc.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Warn("UpdateSchedule: schedule id=%d not found", id)
			return nil, ErrScheduleNotFound
		}
		uc.logger.Error("UpdateSchedule: failed to get schedule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 2. Накладываем патч и валидируем результат слияния
	merged := applyPatch(current, req)
	if err := validateMerged(&merged); err != nil {
		uc.logger.Warn("UpdateSchedule: validation failed for id=%d: %v", id, err)
		return nil, err
	}

	// 3. Если конфликтные поля не менялись - пишем без проверки расписания
	if !req.TouchesConflictFields() {
		updated, err := uc.persist(ctx, &merged)
		if err != nil {
			return nil, err
		}

		uc.logger.Info("UpdateSchedule: successfully updated schedule id=%d (no conflict re-check)", id)
		return fromDomain(updated), nil
	}

	// 4. Конфликтные поля изменились - проверка и запись в сериализуемой транзакции
	var result *domain.ScheduleEntry

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		candidate := conflict.Candidate{
			Date:     merged.Date,
			Location: merged.Location,
			Start:    merged.StartTime,
			End:      merged.EndTime,
		}

		existing, err := uc.detector.FindConflict(txCtx, candidate, &id)
		if err != nil {
			uc.logger.Error("UpdateSchedule: conflict check failed for id=%d: %v", id, err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}

		if existing != nil {
			uc.logger.Warn("UpdateSchedule: conflict with schedule id=%d (%s-%s at %s)",
				existing.ID, existing.StartTime, existing.EndTime, existing.Location)
			return &ConflictError{ConflictingID: existing.ID}
		}

		updated, err := uc.persist(txCtx, &merged)
		if err != nil {
			return err
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateSchedule: successfully updated schedule id=%d", id)
	return fromDomain(result), nil
}

// persist записывает итоговое состояние записи в репозиторий
func (uc *UseCase) persist(ctx context.Context, merged *domain.ScheduleEntry) (*domain.ScheduleEntry, error) {
	updated, err := uc.scheduleRepo.Update(ctx, merged)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Warn("UpdateSchedule: schedule id=%d disappeared during update", merged.ID)
			return nil, ErrScheduleNotFound
		}
		uc.logger.Error("UpdateSchedule: failed to update schedule id=%d: %v", merged.ID, err)
		return nil, fmt.Errorf("%w: failed to update schedule: %v", ErrInternal, err)
	}
	return updated, nil
}
