package domain

import "time"

// Activity represents a reusable camp program template
type Activity struct {
	ID              int64
	Name            string
	Description     string
	DurationMinutes int
	AgeGroup        string
	DefaultLocation string
	Materials       []string // Default material names, counted as quantity 1 per scheduled occurrence

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasMaterials returns true if the activity declares default materials
func (a *Activity) HasMaterials() bool {
	return len(a.Materials) > 0
}
