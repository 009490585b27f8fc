package models

import (
	"time"

	"github.com/m04kA/CC-ScheduleService/internal/domain"
	"github.com/m04kA/CC-ScheduleService/pkg/types"
)

// ScheduleResponse ответ с данными записи расписания
type ScheduleResponse struct {
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

// FromDomainSchedule конвертирует доменную запись расписания в response
func FromDomainSchedule(entry *domain.ScheduleEntry) *ScheduleResponse {
	return &ScheduleResponse{
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
