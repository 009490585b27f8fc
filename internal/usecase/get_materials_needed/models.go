package get_materials_needed

import "time"

// Request модель запроса отчёта по материалам за период
// Если обе даты nil, используется текущая лагерная неделя (понедельник-пятница)
type Request struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// MaterialLine строка отчёта: материал, суммарное количество и порог
type MaterialLine struct {
	Name         string
	Quantity     int
	LowThreshold int
}

// Response модель ответа со списком необходимых материалов
type Response struct {
	StartDate time.Time
	EndDate   time.Time
	Materials []MaterialLine
}
