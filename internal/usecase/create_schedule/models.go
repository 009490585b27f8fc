package create_schedule

import (
	"time"

	"github.com/m04kA/CC-ScheduleService/internal/domain"
	"github.com/m04kA/CC-ScheduleService/pkg/types"
)

// Request модель запроса на создание записи расписания
type Request struct {
	ActivityID        int64                        // ID активности
	Date              time.Time                    // Дата бронирования (без времени)
	StartTime         types.TimeString             // Время начала, например "10:00"
	EndTime           types.TimeString             // Время окончания, например "11:00"
	AgeGroup          string                       // Возрастная группа
	Location          string                       // Площадка
	AssignedCoach     string                       // Назначенный вожатый
	Notes             *string                      // Заметки (опционально)
	MaterialsRequired []domain.MaterialRequirement // Материалы сверх дефолтных у активности
	CreatedBy         string                       // Идентичность вызывающего, прокинутая из middleware
}

// Response модель ответа с созданной записью расписания
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
