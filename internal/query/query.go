// Package query is the typed condition specification the repositories accept.
// Conditions are conjunctive (AND) equality/range/membership filters that
// compile to a parameterized SQL fragment. Unknown fields and operators are
// rejected when the fragment is built, never passed through to the database.
package query

import (
	"fmt"
	"strings"
)

// Op enumerates the supported comparison kinds.
type Op int

const (
	OpEq Op = iota
	OpGte
	OpLte
	OpIn
)

func (op Op) String() string {
	switch op {
	case OpEq:
		return "=="
	case OpGte:
		return ">="
	case OpLte:
		return "<="
	case OpIn:
		return "in"
	default:
		return fmt.Sprintf("op(%d)", int(op))
	}
}

func (op Op) sql() string {
	switch op {
	case OpEq:
		return "="
	case OpGte:
		return ">="
	case OpLte:
		return "<="
	default:
		return ""
	}
}

// Condition is one filter clause.
type Condition struct {
	Field string
	Op    Op
	Value interface{}
}

// Eq matches records where field equals value.
func Eq(field string, value interface{}) Condition {
	return Condition{Field: field, Op: OpEq, Value: value}
}

// Gte matches records where field is at or above value.
func Gte(field string, value interface{}) Condition {
	return Condition{Field: field, Op: OpGte, Value: value}
}

// Lte matches records where field is at or below value.
func Lte(field string, value interface{}) Condition {
	return Condition{Field: field, Op: OpLte, Value: value}
}

// In matches records where field equals any of the values.
func In(field string, values ...interface{}) Condition {
	return Condition{Field: field, Op: OpIn, Value: values}
}

// Sort orders the result set by a single field.
type Sort struct {
	Field string
	Desc  bool
}

// Compile turns conditions and an optional sort into a SQL suffix
// ("WHERE ... ORDER BY ...") with positional placeholders. The allowed set is
// the entity's queryable column list; anything outside it is an error.
func Compile(conds []Condition, sort *Sort, allowed map[string]bool) (string, []interface{}, error) {
	var sb strings.Builder
	var args []interface{}

	for i, c := range conds {
		if !allowed[c.Field] {
			return "", nil, fmt.Errorf("unknown query field %q", c.Field)
		}
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}

		switch c.Op {
		case OpEq, OpGte, OpLte:
			sb.WriteString(c.Field)
			sb.WriteString(" ")
			sb.WriteString(c.Op.sql())
			sb.WriteString(" ?")
			args = append(args, c.Value)
		case OpIn:
			values, ok := c.Value.([]interface{})
			if !ok || len(values) == 0 {
				return "", nil, fmt.Errorf("in condition on %q requires at least one value", c.Field)
			}
			sb.WriteString(c.Field)
			sb.WriteString(" IN (")
			for j, v := range values {
				if j > 0 {
					sb.WriteString(",")
				}
				sb.WriteString("?")
				args = append(args, v)
			}
			sb.WriteString(")")
		default:
			return "", nil, fmt.Errorf("unsupported operator %s on field %q", c.Op, c.Field)
		}
	}

	if sort != nil {
		if !allowed[sort.Field] {
			return "", nil, fmt.Errorf("unknown sort field %q", sort.Field)
		}
		sb.WriteString(" ORDER BY ")
		sb.WriteString(sort.Field)
		if sort.Desc {
			sb.WriteString(" DESC")
		} else {
			sb.WriteString(" ASC")
		}
	}

	return sb.String(), args, nil
}
