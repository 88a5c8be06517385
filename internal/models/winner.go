package models

// DefaultActivityType applies to winners recorded without an activity type.
const DefaultActivityType = "General"

// Winner is a student recognised for an event result.
type Winner struct {
	ID               string `json:"id"`
	Name             string `json:"name" validate:"required,max=200"`
	RollNumber       string `json:"rollNumber,omitempty" validate:"omitempty,max=50"`
	Event            string `json:"event" validate:"required,max=200"`
	Date             Date   `json:"date" validate:"required"`
	Photo            string `json:"photo,omitempty"`
	Year             string `json:"year" validate:"required,numeric,len=4"`
	IsThisWeekWinner bool   `json:"isThisWeekWinner"`
	Position         *int   `json:"position,omitempty" validate:"omitempty,min=1,max=3"`
	ActivityType     string `json:"activityType,omitempty" validate:"omitempty,max=100"`
	WeekNumber       *int   `json:"weekNumber,omitempty" validate:"omitempty,min=1"`
}

// ApplyDefaults fills documented defaults for unset optional fields.
func (w *Winner) ApplyDefaults() {
	if w.ActivityType == "" {
		w.ActivityType = DefaultActivityType
	}
}

// WinnerFilter narrows winner listings.
type WinnerFilter struct {
	ThisWeekOnly bool
}
