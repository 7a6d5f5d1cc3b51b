package repositories

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/edupoint/schooladmin/internal/app/models"
)

// StudentPredicate composes the WHERE predicate for the student list query
// from an optional filter. The base clause always restricts to the student
// role; each supplied field appends exactly one clause, ANDed in a fixed
// order: name, class, section, roll. Name, class and section match partially
// and case-insensitively; roll matches exactly.
//
// roleID comes from the roles table cache, never from request input, so it is
// inlined rather than bound. That keeps the bound parameters numbered from $1
// with no gaps regardless of which filter fields are present.
func StudentPredicate(f *models.StudentFilter, roleID int64) squirrel.And {
	pred := squirrel.And{squirrel.Expr(fmt.Sprintf("u.role_id = %d", roleID))}
	if f == nil {
		return pred
	}
	if f.Name != "" {
		pred = append(pred, squirrel.ILike{"u.name": "%" + f.Name + "%"})
	}
	if f.ClassName != "" {
		pred = append(pred, squirrel.ILike{"p.class_name": "%" + f.ClassName + "%"})
	}
	if f.Section != "" {
		pred = append(pred, squirrel.ILike{"p.section_name": "%" + f.Section + "%"})
	}
	if f.Roll > 0 {
		pred = append(pred, squirrel.Eq{"p.roll": f.Roll})
	}
	return pred
}
