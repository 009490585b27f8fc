package update_schedule

import (
	"time"

	"github.com/m04kA/CC-ScheduleService/internal/domain"
	"github.com/m04kA/CC-ScheduleService/pkg/types"
)

// Request модель частичного обновления записи расписания
// Поля со значением nil не изменяются. Ссылка на активность и метаданные
// создания (createdBy, createdAt) в модели отсутствуют намеренно: попытки
// изменить их молча отбрасываются на границе декодирования
type Request struct {
	Date              *time.Time                    // Новая дата (опционально)
	StartTime         *types.TimeString             // Новое время начала (опционально)
	EndTime           *types.TimeString             // Новое время окончания (опционально)
	AgeGroup          *string                       // Новая возрастная группа (опционально)
	Location          *string                       // Новая площадка (опционально)
	AssignedCoach     *string                       // Новый вожатый (опционально)
	Notes             *string                       // Новые заметки (опционально)
	MaterialsRequired *[]domain.MaterialRequirement // Новый список материалов (опционально)
}

// TouchesConflictFields returns true if the patch changes any field
// that participates in conflict detection (date, times, location)
func (r *Request) TouchesConflictFields() bool {
	return r.Date != nil || r.StartTime != nil || r.EndTime != nil || r.Location != nil
}

// Response модель ответа с обновленной записью расписания
type Response struct {
	ID                int64
	ActivityID        int64
	Date              time.Time
	StartTime         types.TimeString
	EndTime           types.TimeString
	AgeGroup          string
	Location          string
	AssignedCoach     string
	Notes             *string
	MaterialsRequired []domain.MaterialRequirement
	CreatedBy         string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// fromDomain конвертирует доменную запись в response
func fromDomain(entry *domain.ScheduleEntry) *Response {
	return &Response{
		ID:                entry.ID,
		ActivityID:        entry.ActivityID,
		Date:              entry.Date,
		StartTime:         entry.StartTime,
		EndTime:           entry.EndTime,
		AgeGroup:          entry.AgeGroup,
		Location:          entry.Location,
		AssignedCoach:     entry.AssignedCoach,
		Notes:             entry.Notes,
		MaterialsRequired: entry.MaterialsRequired,
		CreatedBy:         entry.CreatedBy,
		CreatedAt:         entry.CreatedAt,
		UpdatedAt:         entry.UpdatedAt,
	}
}
