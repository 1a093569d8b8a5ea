package datatable

import (
	"fmt"

	"github.com/samber/lo"
)

// ConditionalStyle applies Style to rows for which When returns true.
type ConditionalStyle struct {
	When  func(Row) bool
	Style Style
}

// StyleResolver picks the override style for a row from a rule list.
// A nil result means no rule applies.
type StyleResolver func(row Row, rules []ConditionalStyle) *Style

// ConditionalStyleFor returns the style of the first rule matching row, or nil.
// Rules without a predicate never match.
func ConditionalStyleFor(row Row, rules []ConditionalStyle) *Style {
	rule, ok := lo.Find(rules, func(r ConditionalStyle) bool {
		return r.When != nil && r.When(row)
	})
	if !ok {
		return nil
	}
	s := rule.Style
	return &s
}

// FieldCondition builds row predicates over one field:
//
//	ConditionalStyle{When: If("age").Gt(65), Style: Style{FG: Yellow}}
//	ConditionalStyle{When: If("status").Eq("failed"), Style: Style{FG: Red}}
type FieldCondition struct {
	field string
}

// If starts a predicate over the named field.
func If(field string) FieldCondition {
	return FieldCondition{field: field}
}

type condOp int

const (
	condOpEq condOp = iota
	condOpNe
	condOpGt
	condOpLt
	condOpGte
	condOpLte
)

// Eq matches when the field equals val. Values compare by their printed form
// so 1 and int64(1) are equal.
func (c FieldCondition) Eq(val any) func(Row) bool {
	return c.cmp(condOpEq, val)
}

// Ne matches when the field differs from val.
func (c FieldCondition) Ne(val any) func(Row) bool {
	return c.cmp(condOpNe, val)
}

// Gt matches when the numeric field is greater than val.
func (c FieldCondition) Gt(val float64) func(Row) bool {
	return c.cmp(condOpGt, val)
}

// Lt matches when the numeric field is less than val.
func (c FieldCondition) Lt(val float64) func(Row) bool {
	return c.cmp(condOpLt, val)
}

// Gte matches when the numeric field is at least val.
func (c FieldCondition) Gte(val float64) func(Row) bool {
	return c.cmp(condOpGte, val)
}

// Lte matches when the numeric field is at most val.
func (c FieldCondition) Lte(val float64) func(Row) bool {
	return c.cmp(condOpLte, val)
}

// Truthy matches when the field is present and not a zero value.
func (c FieldCondition) Truthy() func(Row) bool {
	return func(r Row) bool {
		switch v := r[c.field].(type) {
		case nil:
			return false
		case bool:
			return v
		case string:
			return v != ""
		default:
			return toFloat64(v) != 0
		}
	}
}

func (c FieldCondition) cmp(op condOp, val any) func(Row) bool {
	return func(r Row) bool {
		got, ok := r[c.field]
		if !ok {
			return op == condOpNe
		}
		switch op {
		case condOpEq:
			return fmt.Sprint(got) == fmt.Sprint(val)
		case condOpNe:
			return fmt.Sprint(got) != fmt.Sprint(val)
		}
		a, b := toFloat64(got), toFloat64(val)
		switch op {
		case condOpGt:
			return a > b
		case condOpLt:
			return a < b
		case condOpGte:
			return a >= b
		case condOpLte:
			return a <= b
		}
		return false
	}
}

// All matches when every predicate matches.
func All(preds ...func(Row) bool) func(Row) bool {
	return func(r Row) bool {
		return lo.EveryBy(preds, func(p func(Row) bool) bool { return p(r) })
	}
}

// Any matches when at least one predicate matches.
func Any(preds ...func(Row) bool) func(Row) bool {
	return func(r Row) bool {
		return lo.SomeBy(preds, func(p func(Row) bool) bool { return p(r) })
	}
}
