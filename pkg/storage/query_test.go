package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PattemChaitanya/custom-gateway/pkg/model"
)

func TestQueryBuilders(t *testing.T) {
	q := Select(model.KindAccount).Where("login", "alice").WhereNot("active", false)

	assert.Equal(t, model.KindAccount, q.Kind)
	require.Len(t, q.Predicates, 2)
	assert.Equal(t, Predicate{Column: "login", Op: OpEq, Value: "alice"}, q.Predicates[0])
	assert.Equal(t, Predicate{Column: "active", Op: OpNe, Value: false}, q.Predicates[1])
}

func TestQueryValidate(t *testing.T) {
	tests := []struct {
		name    string
		query   Query
		wantErr bool
	}{
		{
			name:  "empty query is valid",
			query: Select(model.KindAccount),
		},
		{
			name:  "eq and ne are valid",
			query: Select(model.KindAccount).Where("login", "a").WhereNot("login", "b"),
		},
		{
			name: "unknown operator",
			query: Query{Kind: model.KindAccount, Predicates: []Predicate{
				{Column: "login", Op: "like", Value: "a%"},
			}},
			wantErr: true,
		},
		{
			name: "predicate without column",
			query: Query{Kind: model.KindAccount, Predicates: []Predicate{
				{Op: OpEq, Value: "a"},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrQueryUnsupported)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQueryMatches(t *testing.T) {
	account := &model.Account{Login: "alice", Active: true}
	account.SetID(1)

	tests := []struct {
		name    string
		query   Query
		matches bool
	}{
		{
			name:    "empty query matches everything",
			query:   Select(model.KindAccount),
			matches: true,
		},
		{
			name:    "eq match",
			query:   Select(model.KindAccount).Where("login", "alice"),
			matches: true,
		},
		{
			name:    "eq mismatch",
			query:   Select(model.KindAccount).Where("login", "bob"),
			matches: false,
		},
		{
			name:    "ne match",
			query:   Select(model.KindAccount).WhereNot("login", "bob"),
			matches: true,
		},
		{
			name:    "ne mismatch",
			query:   Select(model.KindAccount).WhereNot("login", "alice"),
			matches: false,
		},
		{
			name:    "predicates combine with and",
			query:   Select(model.KindAccount).Where("login", "alice").Where("active", false),
			matches: false,
		},
		{
			name:    "absent field never matches eq",
			query:   Select(model.KindAccount).Where("no_such_column", "x"),
			matches: false,
		},
		{
			name:    "absent field never matches ne",
			query:   Select(model.KindAccount).WhereNot("no_such_column", "x"),
			matches: false,
		},
		{
			name:    "int literal matches int64 field",
			query:   Select(model.KindAccount).Where("id", 1),
			matches: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, err := tt.query.Matches(account)
			require.NoError(t, err)
			assert.Equal(t, tt.matches, match)
		})
	}
}

func makeAccounts(ids ...int64) []model.Entity {
	entities := make([]model.Entity, 0, len(ids))
	for _, id := range ids {
		a := &model.Account{}
		a.SetID(id)
		entities = append(entities, a)
	}
	return entities
}

func TestResultOrdering(t *testing.T) {
	result := NewResult(makeAccounts(3, 1, 2))

	rows := result.All()
	require.Len(t, rows, 3)
	assert.Equal(t, int64(1), rows[0].GetID())
	assert.Equal(t, int64(2), rows[1].GetID())
	assert.Equal(t, int64(3), rows[2].GetID())
	assert.Equal(t, int64(1), result.First().GetID())
}

func TestResultEmpty(t *testing.T) {
	result := NewResult(nil)

	assert.Empty(t, result.All())
	assert.Nil(t, result.First())

	_, err := result.One()
	assert.ErrorIs(t, err, ErrNoResult)

	row, err := result.OneOrNone()
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestResultSingle(t *testing.T) {
	result := NewResult(makeAccounts(5))

	row, err := result.One()
	require.NoError(t, err)
	assert.Equal(t, int64(5), row.GetID())

	row, err = result.OneOrNone()
	require.NoError(t, err)
	assert.Equal(t, int64(5), row.GetID())
}

func TestResultMultiple(t *testing.T) {
	result := NewResult(makeAccounts(1, 2))

	_, err := result.One()
	assert.ErrorIs(t, err, ErrMultipleResults)

	_, err = result.OneOrNone()
	assert.ErrorIs(t, err, ErrMultipleResults)
}
