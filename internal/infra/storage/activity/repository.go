package activity

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/CC-ScheduleService/internal/domain"
	"github.com/m04kA/CC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/CC-ScheduleService/pkg/psqlbuilder"
)

// activityColumns колонки таблицы activities в порядке сканирования
var activityColumns = []string{
	"id",
	"name",
	"description",
	"duration_minutes",
	"age_group",
	"default_location",
	"materials",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с активностями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория активностей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую активность
func (r *Repository) Create(ctx context.Context, act *domain.Activity) (*domain.Activity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("activities").
		Columns(
			"name",
			"description",
			"duration_minutes",
			"age_group",
			"default_location",
			"materials",
		).
		Values(
			act.Name,
			act.Description,
			act.DurationMinutes,
			act.AgeGroup,
			act.DefaultLocation,
			pq.Array(act.Materials),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&act.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	act.CreatedAt = createdAt.Time
	act.UpdatedAt = updatedAt.Time

	return act, nil
}

// GetByID получает активность по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Activity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(activityColumns...).
		From("activities").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var act domain.Activity
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&act.ID,
		&act.Name,
		&act.Description,
		&act.DurationMinutes,
		&act.AgeGroup,
		&act.DefaultLocation,
		pq.Array(&act.Materials),
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrActivityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan activity: %v", ErrScanRow, err)
	}

	act.CreatedAt = createdAt.Time
	act.UpdatedAt = updatedAt.Time

	return &act, nil
}

// List получает все активности, отсортированные по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Activity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(activityColumns...).
		From("activities").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	activities := make([]*domain.Activity, 0)

	for rows.Next() {
		var act domain.Activity
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&act.ID,
			&act.Name,
			&act.Description,
			&act.DurationMinutes,
			&act.AgeGroup,
			&act.DefaultLocation,
			pq.Array(&act.Materials),
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		act.CreatedAt = createdAt.Time
		act.UpdatedAt = updatedAt.Time

		activities = append(activities, &act)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return activities, nil
}

// Update обновляет поля активности
func (r *Repository) Update(ctx context.Context, act *domain.Activity) (*domain.Activity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("activities").
		Set("name", act.Name).
		Set("description", act.Description).
		Set("duration_minutes", act.DurationMinutes).
		Set("age_group", act.AgeGroup).
		Set("default_location", act.DefaultLocation).
		Set("materials", pq.Array(act.Materials)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": act.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrActivityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	act.UpdatedAt = updatedAt.Time

	return act, nil
}

// Delete удаляет активность
// Проверка, что на активность не ссылаются записи расписания, выполняется
// на уровне сервиса перед вызовом
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("activities").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrActivityNotFound
	}

	return nil
}

// Count возвращает общее количество активностей
func (r *Repository) Count(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("activities").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}
