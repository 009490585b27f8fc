package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNotesLength    = 500
	MaxNameLength     = 100
	MaxLabelLength    = 100
	MinDurationMinutes = 5
	MaxDurationMinutes = 480 // 8 часов
)

// Weekly view span: camp runs Monday through Friday
const (
	WeekViewDays = 5
)

// LowStockThreshold статический порог "мало на складе" для отчёта по материалам
// Инвентарь не персистится, порог одинаков для всех позиций
const LowStockThreshold = 5
