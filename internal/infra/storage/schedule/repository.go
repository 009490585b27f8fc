package schedule

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/CC-ScheduleService/internal/domain"
	"github.com/m04kA/CC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/CC-ScheduleService/pkg/psqlbuilder"
)

// scheduleColumns колонки таблицы schedules в порядке сканирования
var scheduleColumns = []string{
	"id",
	"activity_id",
	"schedule_date",
	"start_time",
	"end_time",
	"age_group",
	"location",
	"assigned_coach",
	"notes",
	"materials_required",
	"created_by",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись расписания
// Если в контексте передана активная транзакция (через context.Value), использует её.
// При создании через use case бронирования запись всегда выполняется в той же
// сериализуемой транзакции, что и проверка конфликтов, - это закрывает гонку
// check-then-act между конкурентными бронированиями
func (r *Repository) Create(ctx context.Context, entry *domain.ScheduleEntry) (*domain.ScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	materials, err := json.Marshal(entry.MaterialsRequired)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal materials: %v", ErrMarshalMaterials, err)
	}

	query, args, err := psqlbuilder.Insert("schedules").
		Columns(
			"activity_id",
			"schedule_date",
			"start_time",
			"end_time",
			"age_group",
			"location",
			"assigned_coach",
			"notes",
			"materials_required",
			"created_by",
		).
		Values(
			entry.ActivityID,
			entry.Date,
			entry.StartTime,
			entry.EndTime,
			entry.AgeGroup,
			entry.Location,
			entry.AssignedCoach,
			entry.Notes,
			materials,
			entry.CreatedBy,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&entry.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time
	entry.UpdatedAt = updatedAt.Time

	return entry, nil
}

// GetByID получает запись расписания по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	entry, err := scanEntry(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan entry: %v", ErrScanRow, err)
	}

	return entry, nil
}

// GetByFilter получает записи расписания с гибкой фильтрацией
// Поддерживает фильтрацию по:
// - Периоду (StartDate, EndDate) - опционально
// - Площадке (Location) - опционально
// - Исключению записи по ID (ExcludeID) - используется при update-in-place
//
// Для запроса конфликтов (конкретная дата + площадка) внутри транзакции
// добавляется FOR UPDATE, чтобы заблокировать прочитанные записи до записи новой
func (r *Repository) GetByFilter(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.ScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(scheduleColumns...).
		From("schedules")

	// Фильтрация по периоду
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"schedule_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"schedule_date": *filter.EndDate})
	}

	// Фильтрация по площадке
	if filter.Location != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"location": *filter.Location})
	}

	// Исключение записи (update не должен конфликтовать сам с собой)
	if filter.ExcludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *filter.ExcludeID})
	}

	singleDay := filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate)

	// Для конкретной даты сортируем по времени начала, для периода - по дате и времени
	if singleDay {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("schedule_date ASC, start_time ASC")
	}

	// Блокировка для проверки конфликтов внутри транзакции бронирования
	if dbmetrics.IsInTransaction(ctx) && singleDay && filter.Location != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ListWithActivity получает записи расписания за период вместе с данными активности
// Используется недельным/дневным представлениями и отчётом по материалам
func (r *Repository) ListWithActivity(ctx context.Context, startDate, endDate time.Time) ([]*domain.ScheduleWithActivity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.activity_id",
		"s.schedule_date",
		"s.start_time",
		"s.end_time",
		"s.age_group",
		"s.location",
		"s.assigned_coach",
		"s.notes",
		"s.materials_required",
		"s.created_by",
		"s.created_at",
		"s.updated_at",
		"a.name",
		"a.description",
		"a.materials",
	).
		From("schedules s").
		Join("activities a ON a.id = s.activity_id").
		Where(squirrel.GtOrEq{"s.schedule_date": startDate}).
		Where(squirrel.LtOrEq{"s.schedule_date": endDate}).
		OrderBy("s.schedule_date ASC, s.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListWithActivity - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithActivity - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.ScheduleWithActivity, 0)

	for rows.Next() {
		var item domain.ScheduleWithActivity
		var createdAt, updatedAt sql.NullTime
		var materialsRaw []byte

		err := rows.Scan(
			&item.Entry.ID,
			&item.Entry.ActivityID,
			&item.Entry.Date,
			&item.Entry.StartTime,
			&item.Entry.EndTime,
			&item.Entry.AgeGroup,
			&item.Entry.Location,
			&item.Entry.AssignedCoach,
			&item.Entry.Notes,
			&materialsRaw,
			&item.Entry.CreatedBy,
			&createdAt,
			&updatedAt,
			&item.ActivityName,
			&item.ActivityDesc,
			pq.Array(&item.ActivityMaterials),
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListWithActivity - scan row: %v", ErrScanRow, err)
		}

		if err := json.Unmarshal(materialsRaw, &item.Entry.MaterialsRequired); err != nil {
			return nil, fmt.Errorf("%w: ListWithActivity - unmarshal materials: %v", ErrScanRow, err)
		}

		item.Entry.CreatedAt = createdAt.Time
		item.Entry.UpdatedAt = updatedAt.Time

		result = append(result, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithActivity - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Update обновляет изменяемые поля записи расписания
// activity_id, created_by и created_at не обновляются - они устанавливаются
// один раз при создании
func (r *Repository) Update(ctx context.Context, entry *domain.ScheduleEntry) (*domain.ScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	materials, err := json.Marshal(entry.MaterialsRequired)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - marshal materials: %v", ErrMarshalMaterials, err)
	}

	query, args, err := psqlbuilder.Update("schedules").
		Set("schedule_date", entry.Date).
		Set("start_time", entry.StartTime).
		Set("end_time", entry.EndTime).
		Set("age_group", entry.AgeGroup).
		Set("location", entry.Location).
		Set("assigned_coach", entry.AssignedCoach).
		Set("notes", entry.Notes).
		Set("materials_required", materials).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": entry.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	entry.UpdatedAt = updatedAt.Time

	return entry, nil
}

// Delete удаляет запись расписания
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedules").
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
		return ErrScheduleNotFound
	}

	return nil
}

// CountForDay возвращает количество записей расписания на указанную дату
func (r *Repository) CountForDay(ctx context.Context, date time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("schedules").
		Where(squirrel.Eq{"schedule_date": date}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountForDay - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountForDay - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// CountByActivityID возвращает количество записей, ссылающихся на активность
// Используется для блокировки удаления активности, на которую есть записи
func (r *Repository) CountByActivityID(ctx context.Context, activityID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("schedules").
		Where(squirrel.Eq{"activity_id": activityID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByActivityID - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByActivityID - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanEntry сканирует одну запись расписания
func scanEntry(row rowScanner) (*domain.ScheduleEntry, error) {
	var entry domain.ScheduleEntry
	var createdAt, updatedAt sql.NullTime
	var materialsRaw []byte

	err := row.Scan(
		&entry.ID,
		&entry.ActivityID,
		&entry.Date,
		&entry.StartTime,
		&entry.EndTime,
		&entry.AgeGroup,
		&entry.Location,
		&entry.AssignedCoach,
		&entry.Notes,
		&materialsRaw,
		&entry.CreatedBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(materialsRaw, &entry.MaterialsRequired); err != nil {
		return nil, err
	}

	entry.CreatedAt = createdAt.Time
	entry.UpdatedAt = updatedAt.Time

	return &entry, nil
}

// scanEntries сканирует результаты запроса в слайс записей расписания
func scanEntries(rows *sql.Rows) ([]*domain.ScheduleEntry, error) {
	entries := make([]*domain.ScheduleEntry, 0)

	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanEntries - scan row: %v", ErrScanRow, err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEntries - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
