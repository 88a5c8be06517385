package models

// ActivityStatus tracks whether an activity is still ahead or already held.
type ActivityStatus string

const (
	ActivityStatusUpcoming  ActivityStatus = "upcoming"
	ActivityStatusCompleted ActivityStatus = "completed"
)

// Valid reports whether the status is one of the known values.
func (s ActivityStatus) Valid() bool {
	return s == ActivityStatusUpcoming || s == ActivityStatusCompleted
}

// Activity is an event organised for students.
type Activity struct {
	ID          string         `json:"id"`
	Name        string         `json:"name" validate:"required,max=200"`
	Date        Date           `json:"date" validate:"required"`
	Description string         `json:"description" validate:"required"`
	Status      ActivityStatus `json:"status" validate:"required,oneof=upcoming completed"`
	Poster      string         `json:"poster,omitempty"`
	Photos      []string       `json:"photos,omitempty" validate:"omitempty,dive,required"`
	Details     string         `json:"details,omitempty"`
	FormLink    string         `json:"formLink,omitempty" validate:"omitempty,url"`
}

// ActivityFilter narrows activity listings.
type ActivityFilter struct {
	Status ActivityStatus
}
