package get_materials_needed

import (
	"sort"

	"github.com/m04kA/CC-ScheduleService/internal/domain"
)

// aggregateMaterials суммирует материалы по всем записям периода
//
// Материалы уровня записи расписания учитываются с их явным количеством.
// Дефолтные материалы активности учитываются как 1 штука на каждое
// вхождение активности в расписание: две записи одной активности с
// материалом "Cones" дают Cones=2
func aggregateMaterials(items []*domain.ScheduleWithActivity) []MaterialLine {
	totals := make(map[string]int)

	for _, item := range items {
		for _, m := range item.Entry.MaterialsRequired {
			totals[m.Item] += m.Quantity
		}

		for _, name := range item.ActivityMaterials {
			totals[name]++
		}
	}

	lines := make([]MaterialLine, 0, len(totals))
	for name, quantity := range totals {
		lines = append(lines, MaterialLine{
			Name:         name,
			Quantity:     quantity,
			LowThreshold: domain.LowStockThreshold,
		})
	}

	// Стабильный порядок для ответа: map в Go не упорядочен
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Name < lines[j].Name
	})

	return lines
}
