package models

// Student is an entry of the student roster. Its ID is always the PIN.
type Student struct {
	ID      string `json:"id"`
	PIN     string `json:"pin" validate:"required,max=20"`
	Name    string `json:"name" validate:"required,max=200"`
	Branch  string `json:"branch" validate:"required,max=50"`
	Year    string `json:"year" validate:"required,max=10"`
	Section string `json:"section" validate:"required,max=10"`
}

// StudentCandidate is a roster row awaiting insertion.
type StudentCandidate struct {
	PIN     string `json:"pin"`
	Name    string `json:"name"`
	Branch  string `json:"branch"`
	Year    string `json:"year"`
	Section string `json:"section"`
}

// Student converts the candidate into a roster entry keyed by its PIN.
func (c StudentCandidate) Student() Student {
	return Student{ID: c.PIN, PIN: c.PIN, Name: c.Name, Branch: c.Branch, Year: c.Year, Section: c.Section}
}
