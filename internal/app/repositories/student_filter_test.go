package repositories

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/edupoint/schooladmin/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func predicateSQL(t *testing.T, pred squirrel.And) (string, []interface{}) {
	t.Helper()
	sql, args, err := squirrel.Select("u.id").
		From("users u").
		Where(pred).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	require.NoError(t, err)
	return sql, args
}

func TestStudentPredicate_EmptyFilter(t *testing.T) {
	sql, args := predicateSQL(t, StudentPredicate(&models.StudentFilter{}, 3))

	assert.Contains(t, sql, "u.role_id = 3")
	assert.Empty(t, args)
	assert.NotContains(t, sql, "$1")
}

func TestStudentPredicate_NilFilter(t *testing.T) {
	sql, args := predicateSQL(t, StudentPredicate(nil, 3))

	assert.Contains(t, sql, "u.role_id = 3")
	assert.Empty(t, args)
}

func TestStudentPredicate_NameAndRoll(t *testing.T) {
	filter := &models.StudentFilter{Name: "an", Roll: 5}
	sql, args := predicateSQL(t, StudentPredicate(filter, 3))

	assert.Contains(t, sql, "u.role_id = 3")
	assert.Contains(t, sql, "u.name ILIKE $1")
	assert.Contains(t, sql, "p.roll = $2")
	assert.NotContains(t, sql, "$3")
	assert.Equal(t, []interface{}{"%an%", 5}, args)
}

func TestStudentPredicate_AllFields(t *testing.T) {
	filter := &models.StudentFilter{Name: "ada", ClassName: "10", Section: "A", Roll: 7}
	sql, args := predicateSQL(t, StudentPredicate(filter, 3))

	assert.Contains(t, sql, "u.name ILIKE $1")
	assert.Contains(t, sql, "p.class_name ILIKE $2")
	assert.Contains(t, sql, "p.section_name ILIKE $3")
	assert.Contains(t, sql, "p.roll = $4")
	assert.Equal(t, []interface{}{"%ada%", "%10%", "%A%", 7}, args)
}

func TestStudentPredicate_SingleOptionalField(t *testing.T) {
	filter := &models.StudentFilter{Section: "B"}
	sql, args := predicateSQL(t, StudentPredicate(filter, 3))

	// Parameter numbering starts at $1 no matter which field is supplied.
	assert.Contains(t, sql, "p.section_name ILIKE $1")
	assert.Equal(t, []interface{}{"%B%"}, args)
}
