package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/edupoint/schooladmin/internal/app/models"
	"github.com/edupoint/schooladmin/internal/app/models/dto"
	"github.com/edupoint/schooladmin/internal/app/repositories"
	"github.com/edupoint/schooladmin/internal/pkg/apperrors"
	"github.com/edupoint/schooladmin/internal/pkg/email"
	"github.com/edupoint/schooladmin/internal/pkg/validation"
	"github.com/rs/zerolog"
)

// Create outcome messages. The create is authoritative either way; only the
// verification email differs.
const (
	msgStudentAddedEmailSent   = "Student added and verification email sent successfully."
	msgStudentAddedEmailFailed = "Student added, but failed to send verification email."
)

// StudentStore abstracts the student persistence operations the service
// sequences.
type StudentStore interface {
	FindAll(ctx context.Context, filter *models.StudentFilter) ([]*models.StudentListItem, error)
	FindDetail(ctx context.Context, id int64) (*models.StudentDetail, error)
	AddOrUpdate(ctx context.Context, payload *models.StudentUpsert) (*models.UpsertResult, error)
	SetStatus(ctx context.Context, userID, reviewerID int64, status bool, reviewedAt time.Time) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// UserFinder is the identity lookup used as an existence guard before
// student operations.
type UserFinder interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// StudentService defines the interface for student lifecycle operations.
type StudentService interface {
	GetAllStudents(ctx context.Context, filter *models.StudentFilter) ([]*models.StudentListItem, error)
	GetStudentDetail(ctx context.Context, id int64) (*models.StudentDetail, error)
	AddNewStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.CreateStudentResult, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (string, error)
	SetStudentStatus(ctx context.Context, userID, reviewerID int64, status *bool) (string, error)
	RemoveStudent(ctx context.Context, id int64) (string, error)
}

// studentServiceImpl implements StudentService.
type studentServiceImpl struct {
	students StudentStore
	users    UserFinder
	mailer   email.Service
	logger   zerolog.Logger
}

// NewStudentService creates a new StudentService.
func NewStudentService(students StudentStore, users UserFinder, mailer email.Service, logger zerolog.Logger) StudentService {
	return &studentServiceImpl{
		students: students,
		users:    users,
		mailer:   mailer,
		logger:   logger,
	}
}

// ensureValidStudentID guards every id-consuming operation before any
// persistence call is made.
func ensureValidStudentID(id int64) error {
	if !validation.IsValidID(id) {
		return apperrors.NewInvalidArgumentError("Invalid student id")
	}
	return nil
}

// checkStudentExists verifies the referenced user exists. It is a guard, not
// a data fetch; callers re-fetch whatever they need afterwards.
func (s *studentServiceImpl) checkStudentExists(ctx context.Context, id int64) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return apperrors.WrapInternal(err, "Unable to verify student")
	}
	return nil
}

// GetAllStudents lists students matching the optional filter. Zero matches
// yield an empty slice, never an error.
func (s *studentServiceImpl) GetAllStudents(ctx context.Context, filter *models.StudentFilter) ([]*models.StudentListItem, error) {
	students, err := s.students.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list students")
		return nil, apperrors.WrapInternal(err, "Failed to fetch students")
	}
	if students == nil {
		students = make([]*models.StudentListItem, 0)
	}
	return students, nil
}

// GetStudentDetail fetches the full joined view of one student. The second
// not-found guard is distinct from the identity check: the user may have been
// deleted between the two calls.
func (s *studentServiceImpl) GetStudentDetail(ctx context.Context, id int64) (*models.StudentDetail, error) {
	if err := ensureValidStudentID(id); err != nil {
		return nil, err
	}
	if err := s.checkStudentExists(ctx, id); err != nil {
		return nil, err
	}

	detail, err := s.students.FindDetail(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, apperrors.WrapInternal(err, "Unable to fetch student detail")
	}
	return detail, nil
}

// AddNewStudent creates the User+Profile pair and then sends the verification
// email as a best-effort side effect: a mail failure never rolls back or
// fails the create.
func (s *studentServiceImpl) AddNewStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.CreateStudentResult, error) {
	if !validation.IsNonEmpty(req.Name) || !validation.IsNonEmpty(req.Email) {
		return nil, apperrors.NewInvalidArgumentError("Name and email are required fields")
	}
	if !validation.IsValidEmail(req.Email) {
		return nil, apperrors.NewInvalidArgumentError("Invalid email format")
	}

	name := strings.TrimSpace(req.Name)
	payload := &models.StudentUpsert{
		Name:    &name,
		Email:   &req.Email,
		Profile: profileFromPayload(&req.StudentProfilePayload),
	}

	result, err := s.students.AddOrUpdate(ctx, payload)
	if err != nil {
		s.logger.Error().Err(err).Str("email", req.Email).Msg("Failed to add student")
		if errors.Is(err, repositories.ErrEmailTaken) {
			return nil, apperrors.NewInternalError(err.Error())
		}
		return nil, apperrors.WrapInternal(err, "Unable to add student")
	}

	if err := s.mailer.SendVerificationEmail(result.UserID, req.Email); err != nil {
		s.logger.Warn().Err(err).Int64("userID", result.UserID).
			Msg("Student added but verification email failed")
		return &models.CreateStudentResult{
			UserID:    result.UserID,
			EmailSent: false,
			Message:   msgStudentAddedEmailFailed,
		}, nil
	}

	return &models.CreateStudentResult{
		UserID:    result.UserID,
		EmailSent: true,
		Message:   msgStudentAddedEmailSent,
	}, nil
}

// UpdateStudent updates the User+Profile pair through the same upsert entry
// point; a present id selects the update path. The store's success message is
// surfaced verbatim.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (string, error) {
	if id == 0 {
		return "", apperrors.NewInvalidArgumentError("Student ID is required")
	}
	if err := ensureValidStudentID(id); err != nil {
		return "", err
	}
	if err := s.checkStudentExists(ctx, id); err != nil {
		return "", err
	}
	if req.Email != nil && !validation.IsValidEmail(*req.Email) {
		return "", apperrors.NewInvalidArgumentError("Invalid email format")
	}

	payload := &models.StudentUpsert{
		UserID:  id,
		Name:    req.Name,
		Email:   req.Email,
		Profile: profileFromPayload(&req.StudentProfilePayload),
	}

	result, err := s.students.AddOrUpdate(ctx, payload)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", id).Msg("Failed to update student")
		if errors.Is(err, repositories.ErrEmailTaken) {
			return "", apperrors.NewInternalError(err.Error())
		}
		return "", apperrors.WrapInternal(err, "Unable to update student")
	}

	return result.Message, nil
}

// SetStudentStatus is the only path that writes the audit trail: every status
// transition carries the reviewer id and the review timestamp.
func (s *studentServiceImpl) SetStudentStatus(ctx context.Context, userID, reviewerID int64, status *bool) (string, error) {
	if err := ensureValidStudentID(userID); err != nil {
		return "", err
	}
	if err := s.checkStudentExists(ctx, userID); err != nil {
		return "", err
	}
	if status == nil {
		return "", apperrors.NewInvalidArgumentError("Status must be a boolean")
	}

	affected, err := s.students.SetStatus(ctx, userID, reviewerID, *status, time.Now())
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to change student status")
		return "", apperrors.WrapInternal(err, "Unable to change student status")
	}
	if affected <= 0 {
		return "", apperrors.NewInternalError("Unable to change student status")
	}

	return "Student status changed successfully", nil
}

// RemoveStudent deletes the Profile and User rows together. The store
// re-checks existence inside its transaction, so a delete racing another
// delete surfaces as NotFound, never as an internal failure.
func (s *studentServiceImpl) RemoveStudent(ctx context.Context, id int64) (string, error) {
	if err := ensureValidStudentID(id); err != nil {
		return "", err
	}
	if err := s.checkStudentExists(ctx, id); err != nil {
		return "", err
	}

	affected, err := s.students.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return "", apperrors.ErrStudentNotFound
		}
		s.logger.Error().Err(err).Int64("userID", id).Msg("Failed to delete student")
		return "", apperrors.WrapInternal(err, "Unable to delete student")
	}
	if affected <= 0 {
		return "", apperrors.NewInternalError("Unable to delete student")
	}

	return "Student deleted successfully", nil
}

// profileFromPayload maps the optional profile attributes of a request onto
// the domain profile.
func profileFromPayload(p *dto.StudentProfilePayload) models.UserProfile {
	return models.UserProfile{
		Phone:              p.Phone,
		Gender:             p.Gender,
		DOB:                p.DOB,
		ClassName:          p.ClassName,
		SectionName:        p.SectionName,
		Roll:               p.Roll,
		FatherName:         p.FatherName,
		FatherPhone:        p.FatherPhone,
		MotherName:         p.MotherName,
		MotherPhone:        p.MotherPhone,
		GuardianName:       p.GuardianName,
		GuardianPhone:      p.GuardianPhone,
		RelationOfGuardian: p.RelationOfGuardian,
		CurrentAddress:     p.CurrentAddress,
		PermanentAddress:   p.PermanentAddress,
		AdmissionAt:        p.AdmissionAt,
	}
}
