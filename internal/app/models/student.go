package models

import "time"

// StudentFilter is the request-scoped search filter for listing students.
// Zero values mean "field not supplied".
type StudentFilter struct {
	Name      string
	ClassName string
	Section   string
	Roll      int
}

// StudentListItem is one row of the student list view.
type StudentListItem struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	SystemAccess bool       `json:"systemAccess"`
}

// StudentDetail is the joined user + profile + reporter view of one student.
type StudentDetail struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	SystemAccess bool        `json:"systemAccess"`
	Profile      UserProfile `json:"profile"`
	ReporterName *string     `json:"reporterName,omitempty"`
}

// StudentUpsert carries the fields of the single add-or-update entry point.
// A zero UserID selects the insert path; a positive one the update path.
type StudentUpsert struct {
	UserID  int64
	Name    *string
	Email   *string
	Profile UserProfile
}

// UpsertResult reports the outcome of the add-or-update entry point.
type UpsertResult struct {
	UserID  int64
	Message string
}

// CreateStudentResult distinguishes a clean create from one whose verification
// email could not be sent. The write is authoritative either way.
type CreateStudentResult struct {
	UserID    int64  `json:"userId"`
	EmailSent bool   `json:"emailSent"`
	Message   string `json:"message"`
}
