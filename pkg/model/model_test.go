package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindRoundTrip(t *testing.T) {
	for _, kind := range KindValues() {
		parsed, err := KindString(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}
}

func TestNewCoversEveryKind(t *testing.T) {
	for _, kind := range KindValues() {
		e := New(kind)
		require.NotNil(t, e, "no factory for kind %s", kind)
		assert.Equal(t, kind, e.Kind())
		assert.NotEmpty(t, Table(kind))
	}
}

func TestUniqueKeys(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		expected [][]string
	}{
		{
			name:     "account keyed by login",
			kind:     KindAccount,
			expected: [][]string{{"login"}},
		},
		{
			name:     "api definition keyed by name and version",
			kind:     KindAPIDefinition,
			expected: [][]string{{"name", "version"}},
		},
		{
			name:     "role assignment has no unique key",
			kind:     KindRoleAssignment,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UniqueKeys(tt.kind))
		})
	}
}

func TestColumnsIncludeEmbeddedID(t *testing.T) {
	cols := Columns(&Account{})
	require.NotEmpty(t, cols)
	assert.Equal(t, "id", cols[0].Name)

	names := make([]string, 0, len(cols))
	for _, col := range cols {
		names = append(names, col.Name)
	}
	assert.Contains(t, names, "login")
	assert.Contains(t, names, "hashed_password")
	assert.Contains(t, names, "created_at")
}

func TestFieldValue(t *testing.T) {
	account := &Account{Login: "alice", Active: true}
	account.SetID(7)

	value, ok := FieldValue(account, "login")
	require.True(t, ok)
	assert.Equal(t, "alice", value)

	value, ok = FieldValue(account, "id")
	require.True(t, ok)
	assert.Equal(t, int64(7), value)

	_, ok = FieldValue(account, "no_such_column")
	assert.False(t, ok)
}

func TestSetFieldValue(t *testing.T) {
	account := &Account{}

	require.True(t, SetFieldValue(account, "login", "bob"))
	assert.Equal(t, "bob", account.Login)

	// int converts into the int64 id field
	require.True(t, SetFieldValue(account, "id", 3))
	assert.Equal(t, int64(3), account.GetID())

	assert.False(t, SetFieldValue(account, "login", 42))
	assert.False(t, SetFieldValue(account, "no_such_column", "x"))
}

func TestJSONMapValueScan(t *testing.T) {
	m := JSONMap{"url": "http://upstream:8080", "weight": float64(2)}

	value, err := m.Value()
	require.NoError(t, err)

	var decoded JSONMap
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, m, decoded)
}

func TestJSONMapNil(t *testing.T) {
	var m JSONMap
	value, err := m.Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	var decoded JSONMap
	require.NoError(t, decoded.Scan(nil))
	assert.Nil(t, decoded)
}

func TestStringListValueScan(t *testing.T) {
	l := StringList{"read", "write"}

	value, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, `["read","write"]`, value)

	var decoded StringList
	require.NoError(t, decoded.Scan([]byte(`["read","write"]`)))
	assert.Equal(t, l, decoded)
}
