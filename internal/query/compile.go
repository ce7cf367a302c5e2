package query

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/roach88/braglog/internal/filter"
	"github.com/roach88/braglog/internal/store"
)

// orderBy is the result ordering for every query.
var orderBy = []string{"log_date ASC", "id ASC"}

// Compile converts spec into a SELECT over the entries table.
func Compile(spec filter.Spec) sq.SelectBuilder {
	q := sq.Select(store.Columns...).From(store.Table)

	if conds := conditions(spec); len(conds) > 0 {
		q = q.Where(conds)
	}

	return q.OrderBy(orderBy...)
}

// conditions returns one WHERE term per present condition of spec.
func conditions(spec filter.Spec) sq.And {
	var conds sq.And
	if spec.On != nil {
		conds = append(conds, sq.Eq{"log_date": *spec.On})
	}
	if spec.Since != nil {
		conds = append(conds, sq.GtOrEq{"log_date": *spec.Since})
	}
	if spec.Until != nil {
		conds = append(conds, sq.LtOrEq{"log_date": *spec.Until})
	}
	if spec.HasContains {
		conds = append(conds, sq.Expr("instr(message, ?) > 0", spec.Contains))
	}
	return conds
}
