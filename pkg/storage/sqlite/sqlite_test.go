package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PattemChaitanya/custom-gateway/pkg/model"
	"github.com/PattemChaitanya/custom-gateway/pkg/storage"
)

func openTestAdapter(t *testing.T) *Adapter {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gateway.db")
	adapter, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = adapter.Close() })
	return adapter
}

func TestOpenCreatesSchema(t *testing.T) {
	adapter := openTestAdapter(t)
	require.True(t, adapter.Initialized())

	stats, err := adapter.Stats(context.Background())
	require.NoError(t, err)
	for _, kind := range model.KindValues() {
		count, ok := stats[kind.String()]
		require.True(t, ok, "no table for kind %s", kind)
		assert.Equal(t, 0, count)
	}
}

func TestCommitAssignsIDs(t *testing.T) {
	adapter := openTestAdapter(t)
	ctx := context.Background()
	session := adapter.Session()

	alice := &model.Account{Login: "alice", HashedPassword: "x"}
	bob := &model.Account{Login: "bob", HashedPassword: "y"}
	session.Add(alice)
	session.Add(bob)
	require.NoError(t, session.Commit(ctx))

	assert.Equal(t, int64(1), alice.GetID())
	assert.Equal(t, int64(2), bob.GetID())
}

func TestStagedWritesAreInvisibleUntilCommit(t *testing.T) {
	adapter := openTestAdapter(t)
	ctx := context.Background()
	session := adapter.Session()

	session.Add(&model.Account{Login: "alice", HashedPassword: "x"})

	result, err := session.Execute(ctx, storage.Select(model.KindAccount))
	require.NoError(t, err)
	assert.Empty(t, result.All())

	require.NoError(t, session.Commit(ctx))

	result, err = session.Execute(ctx, storage.Select(model.KindAccount))
	require.NoError(t, err)
	assert.Len(t, result.All(), 1)
}

func TestRollbackDiscardsStagedWrites(t *testing.T) {
	adapter := openTestAdapter(t)
	ctx := context.Background()
	session := adapter.Session()

	session.Add(&model.Account{Login: "alice", HashedPassword: "x"})
	require.NoError(t, session.Rollback(ctx))
	require.NoError(t, session.Commit(ctx))

	result, err := session.Execute(ctx, storage.Select(model.KindAccount))
	require.NoError(t, err)
	assert.Empty(t, result.All())
}

func TestExecuteFiltersAndOrders(t *testing.T) {
	adapter := openTestAdapter(t)
	ctx := context.Background()
	session := adapter.Session()

	for _, login := range []string{"carol", "alice", "bob"} {
		session.Add(&model.Account{Login: login, HashedPassword: "x", Active: login != "carol"})
	}
	require.NoError(t, session.Commit(ctx))

	result, err := session.Execute(ctx, storage.Select(model.KindAccount).Where("active", true))
	require.NoError(t, err)
	rows := result.All()
	require.Len(t, rows, 2)
	assert.Equal(t, "alice", rows[0].(*model.Account).Login)
	assert.Equal(t, "bob", rows[1].(*model.Account).Login)

	result, err = session.Execute(ctx, storage.Select(model.KindAccount).WhereNot("login", "alice"))
	require.NoError(t, err)
	assert.Len(t, result.All(), 2)
}

func TestExecuteUnknownColumnMatchesNothing(t *testing.T) {
	adapter := openTestAdapter(t)
	ctx := context.Background()
	session := adapter.Session()

	session.Add(&model.Account{Login: "alice", HashedPassword: "x"})
	require.NoError(t, session.Commit(ctx))

	result, err := session.Execute(ctx, storage.Select(model.KindAccount).Where("no_such_field", "v"))
	require.NoError(t, err)
	assert.Empty(t, result.All())

	result, err = session.Execute(ctx, storage.Select(model.KindAccount).WhereNot("no_such_field", "v"))
	require.NoError(t, err)
	assert.Empty(t, result.All())
}

func TestUniquenessConflictRollsBackWholeCommit(t *testing.T) {
	adapter := openTestAdapter(t)
	ctx := context.Background()
	session := adapter.Session()

	session.Add(&model.Account{Login: "alice", HashedPassword: "x"})
	require.NoError(t, session.Commit(ctx))

	session.Add(&model.Account{Login: "bob", HashedPassword: "y"})
	session.Add(&model.Account{Login: "alice", HashedPassword: "z"})
	err := session.Commit(ctx)

	var integrityErr *storage.IntegrityError
	require.ErrorAs(t, err, &integrityErr)
	assert.Equal(t, model.KindAccount, integrityErr.Kind)
	assert.Equal(t, []string{"login"}, integrityErr.Columns)

	// bob must not have been applied
	result, err := session.Execute(ctx, storage.Select(model.KindAccount))
	require.NoError(t, err)
	assert.Len(t, result.All(), 1)
}

func TestStructuredFieldsRoundTrip(t *testing.T) {
	adapter := openTestAdapter(t)
	ctx := context.Background()
	session := adapter.Session()

	api := &model.APIDefinition{
		Name:     "payments",
		Version:  "v1",
		Type:     "rest",
		Upstream: model.JSONMap{"url": "http://payments:8080"},
		Config:   model.JSONMap{"timeout": float64(30)},
	}
	session.Add(api)
	require.NoError(t, session.Commit(ctx))

	result, err := session.Execute(ctx, storage.Select(model.KindAPIDefinition).Where("name", "payments"))
	require.NoError(t, err)
	row, err := result.One()
	require.NoError(t, err)

	got := row.(*model.APIDefinition)
	assert.Equal(t, model.JSONMap{"url": "http://payments:8080"}, got.Upstream)
	assert.Equal(t, model.JSONMap{"timeout": float64(30)}, got.Config)
	assert.Equal(t, "rest", got.Type)
}

func TestBoolAndTimeRoundTrip(t *testing.T) {
	adapter := openTestAdapter(t)
	ctx := context.Background()
	session := adapter.Session()

	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	token := &model.CredentialToken{
		Token:     "tok-1",
		AccountID: 1,
		ExpiresAt: expires,
		Revoked:   true,
	}
	session.Add(token)
	require.NoError(t, session.Commit(ctx))

	result, err := session.Execute(ctx, storage.Select(model.KindCredentialToken).Where("revoked", true))
	require.NoError(t, err)
	row, err := result.One()
	require.NoError(t, err)

	got := row.(*model.CredentialToken)
	assert.True(t, got.Revoked)
	assert.True(t, expires.Equal(got.ExpiresAt))
}

func TestRefresh(t *testing.T) {
	adapter := openTestAdapter(t)
	ctx := context.Background()
	session := adapter.Session()

	secret := &model.Secret{Name: "api-key", Value: "v1"}
	session.Add(secret)
	require.NoError(t, session.Commit(ctx))

	// another session updates the row
	other := adapter.Session()
	updated := &model.Secret{Name: "api-key", Value: "v2"}
	updated.SetID(secret.GetID())
	other.Add(updated)
	require.NoError(t, other.Commit(ctx))

	require.NoError(t, session.Refresh(ctx, secret))
	assert.Equal(t, "v2", secret.Value)
}

func TestDataSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gateway.db")
	ctx := context.Background()

	adapter, err := Open(ctx, path)
	require.NoError(t, err)
	session := adapter.Session()
	session.Add(&model.Account{Login: "alice", HashedPassword: "x"})
	require.NoError(t, session.Commit(ctx))
	require.NoError(t, adapter.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	result, err := reopened.Session().Execute(ctx, storage.Select(model.KindAccount).Where("login", "alice"))
	require.NoError(t, err)
	row, err := result.One()
	require.NoError(t, err)
	assert.Equal(t, "alice", row.(*model.Account).Login)
}

func TestDeleteAndClosedHandle(t *testing.T) {
	adapter := openTestAdapter(t)
	ctx := context.Background()
	session := adapter.Session()

	alice := &model.Account{Login: "alice", HashedPassword: "x"}
	session.Add(alice)
	require.NoError(t, session.Commit(ctx))

	session.Delete(alice)
	require.NoError(t, session.Commit(ctx))

	result, err := session.Execute(ctx, storage.Select(model.KindAccount))
	require.NoError(t, err)
	assert.Empty(t, result.All())

	require.NoError(t, adapter.Close())
	session.Add(alice)
	assert.ErrorIs(t, session.Commit(ctx), storage.ErrClosed)
	_, err = session.Execute(ctx, storage.Select(model.KindAccount))
	assert.ErrorIs(t, err, storage.ErrClosed)
}
