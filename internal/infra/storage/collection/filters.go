package collection

import (
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Eq точное совпадение значения поля
func Eq(field string, value interface{}) squirrel.Sqlizer {
	return squirrel.Eq{field: value}
}

// Contains поиск подстроки без учёта регистра
// Спецсимволы LIKE в подстроке экранируются, поэтому ищется буквальный текст
func Contains(field, substr string) squirrel.Sqlizer {
	return squirrel.ILike{field: "%" + likeEscaper.Replace(substr) + "%"}
}

// GtOrEq field >= value
func GtOrEq(field string, value interface{}) squirrel.Sqlizer {
	return squirrel.GtOrEq{field: value}
}

// Lt field < value
func Lt(field string, value interface{}) squirrel.Sqlizer {
	return squirrel.Lt{field: value}
}

// LtOrEq field <= value
func LtOrEq(field string, value interface{}) squirrel.Sqlizer {
	return squirrel.LtOrEq{field: value}
}

// ArrayContains значение входит в колонку типа text[]
func ArrayContains(field, value string) squirrel.Sqlizer {
	return squirrel.Expr(field+" @> ?", pq.Array([]string{value}))
}

// Or логическое ИЛИ подфильтров
func Or(filters ...squirrel.Sqlizer) squirrel.Sqlizer {
	return squirrel.Or(filters)
}

// And логическое И подфильтров
func And(filters ...squirrel.Sqlizer) squirrel.Sqlizer {
	return squirrel.And(filters)
}
