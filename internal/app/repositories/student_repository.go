package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/edupoint/schooladmin/internal/app/models"
	"github.com/edupoint/schooladmin/internal/db"
	"github.com/edupoint/schooladmin/internal/pkg/auth"
	"github.com/edupoint/schooladmin/internal/pkg/dberrors"
	"github.com/edupoint/schooladmin/internal/pkg/helpers"
	"github.com/edupoint/schooladmin/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Student repository errors
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrEmailTaken      = errors.New("email already in use")
)

// StudentRepository handles student database operations.
type StudentRepository struct {
	db    *pgxpool.Pool
	roles *RoleRepository
	sb    squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(db *pgxpool.Pool, roles *RoleRepository) *StudentRepository {
	return &StudentRepository{
		db:    db,
		roles: roles,
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// FindAll lists students matching the optional filter, ordered by name then
// id so pagination stays stable.
func (r *StudentRepository) FindAll(ctx context.Context, filter *models.StudentFilter) ([]*models.StudentListItem, error) {
	roleID, err := r.roles.GetRoleID(ctx, models.RoleStudent)
	if err != nil {
		return nil, fmt.Errorf("error resolving student role: %w", err)
	}

	sql, args, err := r.sb.Select("u.id", "u.name", "u.email", "u.last_login_at", "u.is_active").
		From("users u").
		LeftJoin("user_profiles p ON u.id = p.user_id").
		Where(StudentPredicate(filter, roleID)).
		OrderBy("u.name", "u.id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building student list SQL")
		return nil, fmt.Errorf("failed to build student list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	students := make([]*models.StudentListItem, 0)
	for rows.Next() {
		var s models.StudentListItem
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.LastLogin, &s.SystemAccess); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// FindDetail retrieves the joined user + profile + reporter view of one
// student.
func (r *StudentRepository) FindDetail(ctx context.Context, id int64) (*models.StudentDetail, error) {
	var d models.StudentDetail
	err := r.db.QueryRow(ctx, `
		SELECT
			u.id, u.name, u.email, u.is_active,
			p.phone, p.gender, p.dob, p.class_name, p.section_name, p.roll,
			p.father_name, p.father_phone, p.mother_name, p.mother_phone,
			p.guardian_name, p.guardian_phone, p.relation_of_guardian,
			p.current_address, p.permanent_address, p.admission_at,
			rep.name AS reporter_name
		FROM users u
		LEFT JOIN user_profiles p ON u.id = p.user_id
		LEFT JOIN users rep ON u.reporter_id = rep.id
		WHERE u.id = $1`, id).Scan(
		&d.ID, &d.Name, &d.Email, &d.SystemAccess,
		&d.Profile.Phone, &d.Profile.Gender, &d.Profile.DOB,
		&d.Profile.ClassName, &d.Profile.SectionName, &d.Profile.Roll,
		&d.Profile.FatherName, &d.Profile.FatherPhone,
		&d.Profile.MotherName, &d.Profile.MotherPhone,
		&d.Profile.GuardianName, &d.Profile.GuardianPhone,
		&d.Profile.RelationOfGuardian,
		&d.Profile.CurrentAddress, &d.Profile.PermanentAddress,
		&d.Profile.AdmissionAt,
		&d.ReporterName)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error scanning student detail")
		return nil, fmt.Errorf("error retrieving student detail: %w", err)
	}

	d.Profile.UserID = d.ID
	return &d, nil
}

// AddOrUpdate is the single entry point that creates a User+Profile pair when
// no id is supplied, or updates the existing pair when one is. Both rows are
// written in one transaction so a Profile can never outlive its User.
func (r *StudentRepository) AddOrUpdate(ctx context.Context, payload *models.StudentUpsert) (*models.UpsertResult, error) {
	roleID, err := r.roles.GetRoleID(ctx, models.RoleStudent)
	if err != nil {
		return nil, fmt.Errorf("error resolving student role: %w", err)
	}

	var result *models.UpsertResult
	err = db.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		var txErr error
		if payload.UserID == 0 {
			result, txErr = r.insertStudent(ctx, tx, roleID, payload)
		} else {
			result, txErr = r.updateStudent(ctx, tx, roleID, payload)
		}
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *StudentRepository) insertStudent(ctx context.Context, tx pgx.Tx, roleID int64, payload *models.StudentUpsert) (*models.UpsertResult, error) {
	tempPassword, err := auth.GenerateTemporaryPassword()
	if err != nil {
		return nil, err
	}
	hashed, err := auth.HashPassword(tempPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash temporary password: %w", err)
	}

	var userID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO users (role_id, name, email, password, is_active)
		VALUES ($1, $2, $3, $4, false)
		RETURNING id`,
		roleID, derefString(payload.Name), derefString(payload.Email), hashed).Scan(&userID)
	if err != nil {
		if dberrors.IsUniqueViolation(err, "users_email_key") {
			return nil, ErrEmailTaken
		}
		logger.Error().Err(err).Msg("Error inserting student user row")
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	if err := r.writeProfile(ctx, tx, userID, &payload.Profile); err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", userID).Msg("Student created")
	return &models.UpsertResult{UserID: userID, Message: "Student added successfully"}, nil
}

func (r *StudentRepository) updateStudent(ctx context.Context, tx pgx.Tx, roleID int64, payload *models.StudentUpsert) (*models.UpsertResult, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE users
		SET name = COALESCE($1, name),
		    email = COALESCE($2, email),
		    updated_at = $3
		WHERE id = $4 AND role_id = $5`,
		helpers.NullString(payload.Name), helpers.NullString(payload.Email),
		time.Now(), payload.UserID, roleID)
	if err != nil {
		if dberrors.IsUniqueViolation(err, "users_email_key") {
			return nil, ErrEmailTaken
		}
		logger.Error().Err(err).Int64("userID", payload.UserID).Msg("Error updating student user row")
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	if tag.RowsAffected() <= 0 {
		return nil, ErrStudentNotFound
	}

	if err := r.writeProfile(ctx, tx, payload.UserID, &payload.Profile); err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", payload.UserID).Msg("Student updated")
	return &models.UpsertResult{UserID: payload.UserID, Message: "Student updated successfully"}, nil
}

// writeProfile upserts the profile row. On conflict, absent payload fields
// keep their stored values.
func (r *StudentRepository) writeProfile(ctx context.Context, tx pgx.Tx, userID int64, p *models.UserProfile) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO user_profiles (
			user_id, phone, gender, dob, class_name, section_name, roll,
			father_name, father_phone, mother_name, mother_phone,
			guardian_name, guardian_phone, relation_of_guardian,
			current_address, permanent_address, admission_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (user_id) DO UPDATE SET
			phone = COALESCE(EXCLUDED.phone, user_profiles.phone),
			gender = COALESCE(EXCLUDED.gender, user_profiles.gender),
			dob = COALESCE(EXCLUDED.dob, user_profiles.dob),
			class_name = COALESCE(EXCLUDED.class_name, user_profiles.class_name),
			section_name = COALESCE(EXCLUDED.section_name, user_profiles.section_name),
			roll = COALESCE(EXCLUDED.roll, user_profiles.roll),
			father_name = COALESCE(EXCLUDED.father_name, user_profiles.father_name),
			father_phone = COALESCE(EXCLUDED.father_phone, user_profiles.father_phone),
			mother_name = COALESCE(EXCLUDED.mother_name, user_profiles.mother_name),
			mother_phone = COALESCE(EXCLUDED.mother_phone, user_profiles.mother_phone),
			guardian_name = COALESCE(EXCLUDED.guardian_name, user_profiles.guardian_name),
			guardian_phone = COALESCE(EXCLUDED.guardian_phone, user_profiles.guardian_phone),
			relation_of_guardian = COALESCE(EXCLUDED.relation_of_guardian, user_profiles.relation_of_guardian),
			current_address = COALESCE(EXCLUDED.current_address, user_profiles.current_address),
			permanent_address = COALESCE(EXCLUDED.permanent_address, user_profiles.permanent_address),
			admission_at = COALESCE(EXCLUDED.admission_at, user_profiles.admission_at)`,
		userID,
		helpers.NullString(p.Phone), helpers.NullString(p.Gender), helpers.NullTime(p.DOB),
		helpers.NullString(p.ClassName), helpers.NullString(p.SectionName), helpers.NullInt32(p.Roll),
		helpers.NullString(p.FatherName), helpers.NullString(p.FatherPhone),
		helpers.NullString(p.MotherName), helpers.NullString(p.MotherPhone),
		helpers.NullString(p.GuardianName), helpers.NullString(p.GuardianPhone),
		helpers.NullString(p.RelationOfGuardian),
		helpers.NullString(p.CurrentAddress), helpers.NullString(p.PermanentAddress),
		helpers.NullTime(p.AdmissionAt))
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error writing student profile row")
		return fmt.Errorf("error writing student profile: %w", err)
	}
	return nil
}

// SetStatus flips the active flag and records who reviewed it and when.
// Returns the number of affected rows.
func (r *StudentRepository) SetStatus(ctx context.Context, userID, reviewerID int64, status bool, reviewedAt time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET is_active = $1,
		    status_last_reviewed_at = $2,
		    reporter_id = $3
		WHERE id = $4`,
		status, reviewedAt, reviewerID, userID)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error updating student status")
		return 0, fmt.Errorf("error updating student status: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Delete removes the Profile and then the User row in one transaction. The
// existence re-check inside the transaction is deliberate: the caller's
// identity check may have raced a concurrent delete.
func (r *StudentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	roleID, err := r.roles.GetRoleID(ctx, models.RoleStudent)
	if err != nil {
		return 0, fmt.Errorf("error resolving student role: %w", err)
	}

	var affected int64
	err = db.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		var existingID int64
		err := tx.QueryRow(ctx, `SELECT id FROM users WHERE id = $1 AND role_id = $2`, id, roleID).Scan(&existingID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrStudentNotFound
			}
			return fmt.Errorf("error checking student existence: %w", err)
		}

		// Profile first: the FK points from user_profiles to users.
		if _, err := tx.Exec(ctx, `DELETE FROM user_profiles WHERE user_id = $1`, id); err != nil {
			logger.Error().Err(err).Int64("userID", id).Msg("Error deleting student profile row")
			return fmt.Errorf("error deleting student profile: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1 AND role_id = $2`, id, roleID)
		if err != nil {
			logger.Error().Err(err).Int64("userID", id).Msg("Error deleting student user row")
			return fmt.Errorf("error deleting student: %w", err)
		}
		affected = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info().Int64("userID", id).Msg("Student deleted")
	return affected, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
