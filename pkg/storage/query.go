package storage

import (
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/PattemChaitanya/custom-gateway/pkg/model"
)

// Op is a predicate operator. Only equality and negation are expressible;
// callers needing ranges or joins must pre-filter or accept a full scan.
type Op string

const (
	OpEq Op = "eq"
	OpNe Op = "ne"
)

// Predicate compares one column against a literal value. Predicates combine
// with implicit AND.
type Predicate struct {
	Column string
	Op     Op
	Value  interface{}
}

// Query is a declarative "select entity where predicates" request. An empty
// predicate list selects all entities of the kind.
type Query struct {
	Kind       model.Kind
	Predicates []Predicate
}

// Select starts a query for all entities of a kind.
func Select(kind model.Kind) Query {
	return Query{Kind: kind}
}

// Where adds an equality predicate.
func (q Query) Where(column string, value interface{}) Query {
	q.Predicates = append(q.Predicates, Predicate{Column: column, Op: OpEq, Value: value})
	return q
}

// WhereNot adds a negation predicate.
func (q Query) WhereNot(column string, value interface{}) Query {
	q.Predicates = append(q.Predicates, Predicate{Column: column, Op: OpNe, Value: value})
	return q
}

// Validate rejects predicate shapes the emulation layer cannot express.
func (q Query) Validate() error {
	for _, p := range q.Predicates {
		switch p.Op {
		case OpEq, OpNe:
		default:
			return fmt.Errorf("%w: operator %q", ErrQueryUnsupported, p.Op)
		}
		if p.Column == "" {
			return fmt.Errorf("%w: predicate without column", ErrQueryUnsupported)
		}
	}
	return nil
}

// Matches reports whether an entity satisfies every predicate. A field
// absent on the entity never matches its predicate, for eq and ne alike.
func (q Query) Matches(e model.Entity) (bool, error) {
	if err := q.Validate(); err != nil {
		return false, err
	}
	for _, p := range q.Predicates {
		have, ok := model.FieldValue(e, p.Column)
		if !ok {
			return false, nil
		}
		equal := valuesEqual(have, p.Value)
		if p.Op == OpEq && !equal {
			return false, nil
		}
		if p.Op == OpNe && equal {
			return false, nil
		}
	}
	return true, nil
}

// valuesEqual compares a stored field against a predicate literal,
// normalizing numeric widths so int and int64 literals compare equal.
func valuesEqual(a, b interface{}) bool {
	if na, ok := normalize(a); ok {
		if nb, ok := normalize(b); ok {
			return na == nb
		}
		return false
	}
	if ta, ok := a.(time.Time); ok {
		tb, ok := b.(time.Time)
		return ok && ta.Equal(tb)
	}
	return reflect.DeepEqual(a, b)
}

func normalize(v interface{}) (interface{}, bool) {
	switch x := v.(type) {
	case bool, string:
		return x, true
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(x), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return nil, false
}

// Result wraps the rows a query matched. Accessor semantics are identical
// on every tier.
type Result struct {
	rows []model.Entity
}

// NewResult builds a Result, sorting rows by ascending id so ordering is
// deterministic across tiers.
func NewResult(rows []model.Entity) *Result {
	sorted := make([]model.Entity, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].GetID() < sorted[j].GetID()
	})
	return &Result{rows: sorted}
}

// All returns every matched row.
func (r *Result) All() []model.Entity {
	return r.rows
}

// First returns the first matched row, or nil when nothing matched.
func (r *Result) First() model.Entity {
	if len(r.rows) == 0 {
		return nil
	}
	return r.rows[0]
}

// One returns the single matched row. It fails with ErrNoResult for zero
// matches and ErrMultipleResults for more than one.
func (r *Result) One() (model.Entity, error) {
	switch len(r.rows) {
	case 0:
		return nil, ErrNoResult
	case 1:
		return r.rows[0], nil
	}
	return nil, ErrMultipleResults
}

// OneOrNone returns the single matched row, nil for zero matches, and
// ErrMultipleResults for more than one.
func (r *Result) OneOrNone() (model.Entity, error) {
	switch len(r.rows) {
	case 0:
		return nil, nil
	case 1:
		return r.rows[0], nil
	}
	return nil, ErrMultipleResults
}
