package model

//go:generate go run github.com/dmarkham/enumer -type Kind -trimprefix Kind -transform snake -output kind.gen.go

// Kind identifies an entity type stored by the configuration store.
type Kind int

const (
	KindAccount Kind = iota
	KindCredentialToken
	KindOneTimeCode
	KindRole
	KindPermission
	KindRoleAssignment
	KindAPIDefinition
	KindConnector
	KindSecret
)

// New returns a zero-value entity of the given kind, or nil for an
// unknown kind.
func New(kind Kind) Entity {
	switch kind {
	case KindAccount:
		return &Account{}
	case KindCredentialToken:
		return &CredentialToken{}
	case KindOneTimeCode:
		return &OneTimeCode{}
	case KindRole:
		return &Role{}
	case KindPermission:
		return &Permission{}
	case KindRoleAssignment:
		return &RoleAssignment{}
	case KindAPIDefinition:
		return &APIDefinition{}
	case KindConnector:
		return &Connector{}
	case KindSecret:
		return &Secret{}
	}
	return nil
}

// Table returns the table name backing a kind on the relational tiers.
// Returns an empty string for an unknown kind.
func Table(kind Kind) string {
	e := New(kind)
	if e == nil {
		return ""
	}
	t, ok := e.(interface{ TableName() string })
	if !ok {
		return ""
	}
	return t.TableName()
}

// UniqueKeys returns the logical unique key column sets for a kind. Every
// tier enforces these, so a duplicate insert fails identically whether the
// constraint lives in the database or in the adapter.
func UniqueKeys(kind Kind) [][]string {
	switch kind {
	case KindAccount:
		return [][]string{{"login"}}
	case KindCredentialToken:
		return [][]string{{"token"}}
	case KindRole:
		return [][]string{{"name"}}
	case KindPermission:
		return [][]string{{"name"}}
	case KindAPIDefinition:
		return [][]string{{"name", "version"}}
	case KindSecret:
		return [][]string{{"name"}}
	}
	return nil
}
