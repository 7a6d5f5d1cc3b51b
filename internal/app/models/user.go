package models

import (
	"time"
)

// RoleType identifies the role assigned to a user account.
type RoleType string

const (
	RoleAdmin   RoleType = "admin"
	RoleTeacher RoleType = "teacher"
	RoleStudent RoleType = "student"
)

// User defines the identity record backed by the 'users' table.
type User struct {
	ID                   int64      `json:"id" db:"id"`
	RoleID               int64      `json:"roleId" db:"role_id"`
	Name                 string     `json:"name" db:"name"`
	Email                string     `json:"email" db:"email"`
	Password             string     `json:"-" db:"password"`
	IsActive             bool       `json:"isActive" db:"is_active"`
	ReporterID           *int64     `json:"reporterId,omitempty" db:"reporter_id"`
	StatusLastReviewedAt *time.Time `json:"statusLastReviewedAt,omitempty" db:"status_last_reviewed_at"`
	LastLoginAt          *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
	CreatedAt            time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time  `json:"updatedAt" db:"updated_at"`
}

// UserProfile holds the extended student attributes, 1:1 with a User.
type UserProfile struct {
	UserID             int64      `json:"userId" db:"user_id"`
	Phone              *string    `json:"phone,omitempty" db:"phone"`
	Gender             *string    `json:"gender,omitempty" db:"gender"`
	DOB                *time.Time `json:"dob,omitempty" db:"dob"`
	ClassName          *string    `json:"class,omitempty" db:"class_name"`
	SectionName        *string    `json:"section,omitempty" db:"section_name"`
	Roll               *int       `json:"roll,omitempty" db:"roll"`
	FatherName         *string    `json:"fatherName,omitempty" db:"father_name"`
	FatherPhone        *string    `json:"fatherPhone,omitempty" db:"father_phone"`
	MotherName         *string    `json:"motherName,omitempty" db:"mother_name"`
	MotherPhone        *string    `json:"motherPhone,omitempty" db:"mother_phone"`
	GuardianName       *string    `json:"guardianName,omitempty" db:"guardian_name"`
	GuardianPhone      *string    `json:"guardianPhone,omitempty" db:"guardian_phone"`
	RelationOfGuardian *string    `json:"relationOfGuardian,omitempty" db:"relation_of_guardian"`
	CurrentAddress     *string    `json:"currentAddress,omitempty" db:"current_address"`
	PermanentAddress   *string    `json:"permanentAddress,omitempty" db:"permanent_address"`
	AdmissionAt        *time.Time `json:"admissionDate,omitempty" db:"admission_at"`
}
