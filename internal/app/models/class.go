package models

// Class defines the class model backed by the 'classes' table.
type Class struct {
	ID       int64   `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	Sections *string `json:"sections,omitempty" db:"sections"`
}
