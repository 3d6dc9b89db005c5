package pgerrors

import (
	"errors"

	"github.com/lib/pq"
)

const uniqueViolation = "unique_violation"

// IsUniqueViolation true, если запрос нарушил уникальный индекс (SQLSTATE 23505)
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code.Name() == uniqueViolation
}

// ConstraintName имя нарушенного ограничения или пустая строка
func ConstraintName(err error) string {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return ""
	}
	return pqErr.Constraint
}
