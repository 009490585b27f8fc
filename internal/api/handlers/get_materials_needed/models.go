package get_materials_needed

import (
	"github.com/m04kA/CC-ScheduleService/internal/domain"
	getMaterialsNeeded "github.com/m04kA/CC-ScheduleService/internal/usecase/get_materials_needed"
)

// MaterialsResponse HTTP response model
type MaterialsResponse struct {
	StartDate string         `json:"startDate"`
	EndDate   string         `json:"endDate"`
	Materials []MaterialLine `json:"materials"`
}

// MaterialLine строка отчёта по материалу
type MaterialLine struct {
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	LowThreshold int    `json:"lowThreshold"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMaterialsNeeded.Response) *MaterialsResponse {
	materials := make([]MaterialLine, 0, len(resp.Materials))
	for _, line := range resp.Materials {
		materials = append(materials, MaterialLine{
			Name:         line.Name,
			Quantity:     line.Quantity,
			LowThreshold: line.LowThreshold,
		})
	}

	return &MaterialsResponse{
		StartDate: resp.StartDate.Format(domain.DateFormat),
		EndDate:   resp.EndDate.Format(domain.DateFormat),
		Materials: materials,
	}
}
