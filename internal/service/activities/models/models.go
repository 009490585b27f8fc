package models

import (
	"time"

	"github.com/m04kA/CC-ScheduleService/internal/domain"
)

// CreateActivityRequest запрос на создание активности
type CreateActivityRequest struct {
	Name            string
	Description     string
	DurationMinutes int
	AgeGroup        string
	DefaultLocation string
	Materials       []string
}

// UpdateActivityRequest запрос на частичное обновление активности
// Поля со значением nil не изменяются
type UpdateActivityRequest struct {
	Name            *string
	Description     *string
	DurationMinutes *int
	AgeGroup        *string
	DefaultLocation *string
	Materials       *[]string
}

// ActivityResponse ответ с данными активности
type ActivityResponse struct {
	ID              int64
	Name            string
	Description     string
	DurationMinutes int
	AgeGroup        string
	DefaultLocation string
	Materials       []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ActivityListResponse ответ со списком активностей
type ActivityListResponse struct {
	Count      int
	Activities []*ActivityResponse
}

// FromDomainActivity конвертирует доменную активность в response
func FromDomainActivity(act *domain.Activity) *ActivityResponse {
	return &ActivityResponse{
		ID:              act.ID,
		Name:            act.Name,
		Description:     act.Description,
		DurationMinutes: act.DurationMinutes,
		AgeGroup:        act.AgeGroup,
		DefaultLocation: act.DefaultLocation,
		Materials:       act.Materials,
		CreatedAt:       act.CreatedAt,
		UpdatedAt:       act.UpdatedAt,
	}
}

// FromDomainActivityList конвертирует список доменных активностей в response
func FromDomainActivityList(acts []*domain.Activity) *ActivityListResponse {
	responses := make([]*ActivityResponse, 0, len(acts))
	for _, act := range acts {
		responses = append(responses, FromDomainActivity(act))
	}
	return &ActivityListResponse{
		Count:      len(responses),
		Activities: responses,
	}
}
