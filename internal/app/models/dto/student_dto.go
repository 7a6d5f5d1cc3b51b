package dto

import "time"

// ListStudentsQuery binds the optional student search filters.
type ListStudentsQuery struct {
	Name      string `form:"name"`
	ClassName string `form:"class"`
	Section   string `form:"section"`
	Roll      int    `form:"roll"`
}

// StudentProfilePayload carries the optional profile attributes shared by the
// create and update requests.
type StudentProfilePayload struct {
	Phone              *string    `json:"phone"`
	Gender             *string    `json:"gender"`
	DOB                *time.Time `json:"dob"`
	ClassName          *string    `json:"class"`
	SectionName        *string    `json:"section"`
	Roll               *int       `json:"roll"`
	FatherName         *string    `json:"fatherName"`
	FatherPhone        *string    `json:"fatherPhone"`
	MotherName         *string    `json:"motherName"`
	MotherPhone        *string    `json:"motherPhone"`
	GuardianName       *string    `json:"guardianName"`
	GuardianPhone      *string    `json:"guardianPhone"`
	RelationOfGuardian *string    `json:"relationOfGuardian"`
	CurrentAddress     *string    `json:"currentAddress"`
	PermanentAddress   *string    `json:"permanentAddress"`
	AdmissionAt        *time.Time `json:"admissionDate"`
}

// CreateStudentRequest is the payload for adding a new student.
type CreateStudentRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	StudentProfilePayload
}

// UpdateStudentRequest is the partial payload for updating a student. Name and
// email are optional; when present they are type- and pattern-checked.
type UpdateStudentRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	StudentProfilePayload
}

// SetStudentStatusRequest carries the review decision. Status is a pointer so
// a missing or non-boolean value is distinguishable from false.
type SetStudentStatusRequest struct {
	Status *bool `json:"status"`
}
