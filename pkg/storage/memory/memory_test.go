package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PattemChaitanya/custom-gateway/pkg/model"
	"github.com/PattemChaitanya/custom-gateway/pkg/storage"
)

func TestAddAssignsIDs(t *testing.T) {
	store := New()
	session := store.Session()

	alice := &model.Account{Login: "alice"}
	bob := &model.Account{Login: "bob"}
	session.Add(alice)
	session.Add(bob)
	require.NoError(t, session.Commit(context.Background()))

	assert.Equal(t, int64(1), alice.GetID())
	assert.Equal(t, int64(2), bob.GetID())
}

func TestIDCounterNotReusedAfterDelete(t *testing.T) {
	store := New()
	ctx := context.Background()
	session := store.Session()

	alice := &model.Account{Login: "alice"}
	session.Add(alice)
	require.NoError(t, session.Commit(ctx))

	session.Delete(alice)
	require.NoError(t, session.Commit(ctx))

	bob := &model.Account{Login: "bob"}
	session.Add(bob)
	require.NoError(t, session.Commit(ctx))

	assert.Equal(t, int64(2), bob.GetID())
}

func TestExecuteFiltersAndOrders(t *testing.T) {
	store := New()
	ctx := context.Background()
	session := store.Session()

	for _, login := range []string{"carol", "alice", "bob"} {
		session.Add(&model.Account{Login: login, Active: login != "carol"})
	}
	require.NoError(t, session.Commit(ctx))

	result, err := session.Execute(ctx, storage.Select(model.KindAccount).Where("active", true))
	require.NoError(t, err)

	rows := result.All()
	require.Len(t, rows, 2)
	// ascending id order
	assert.Equal(t, "alice", rows[0].(*model.Account).Login)
	assert.Equal(t, "bob", rows[1].(*model.Account).Login)

	result, err = session.Execute(ctx, storage.Select(model.KindAccount).WhereNot("login", "alice"))
	require.NoError(t, err)
	assert.Len(t, result.All(), 2)
}

func TestExecuteUnknownKindYieldsEmptyResult(t *testing.T) {
	store := New()
	session := store.Session()

	result, err := session.Execute(context.Background(), storage.Select(model.KindSecret))
	require.NoError(t, err)
	assert.Empty(t, result.All())
}

func TestUniquenessConflictSurfacesOnCommit(t *testing.T) {
	store := New()
	ctx := context.Background()
	session := store.Session()

	session.Add(&model.Account{Login: "alice"})
	require.NoError(t, session.Commit(ctx))

	session.Add(&model.Account{Login: "alice"})
	err := session.Commit(ctx)

	var integrityErr *storage.IntegrityError
	require.ErrorAs(t, err, &integrityErr)
	assert.Equal(t, model.KindAccount, integrityErr.Kind)
	assert.Equal(t, []string{"login"}, integrityErr.Columns)

	// the error is consumed, the next commit is clean
	assert.NoError(t, session.Commit(ctx))
}

func TestCompositeUniqueKey(t *testing.T) {
	store := New()
	ctx := context.Background()
	session := store.Session()

	session.Add(&model.APIDefinition{Name: "payments", Version: "v1"})
	session.Add(&model.APIDefinition{Name: "payments", Version: "v2"})
	require.NoError(t, session.Commit(ctx))

	session.Add(&model.APIDefinition{Name: "payments", Version: "v1"})
	err := session.Commit(ctx)

	var integrityErr *storage.IntegrityError
	require.ErrorAs(t, err, &integrityErr)
	assert.Equal(t, []string{"name", "version"}, integrityErr.Columns)
}

func TestUpdateSameIDIsNotAConflict(t *testing.T) {
	store := New()
	ctx := context.Background()
	session := store.Session()

	alice := &model.Account{Login: "alice"}
	session.Add(alice)
	require.NoError(t, session.Commit(ctx))

	alice.Active = true
	session.Add(alice)
	require.NoError(t, session.Commit(ctx))

	result, err := session.Execute(ctx, storage.Select(model.KindAccount))
	require.NoError(t, err)
	assert.Len(t, result.All(), 1)
}

func TestRollbackDiscardsError(t *testing.T) {
	store := New()
	ctx := context.Background()
	session := store.Session()

	session.Add(&model.Account{Login: "alice"})
	require.NoError(t, session.Commit(ctx))

	session.Add(&model.Account{Login: "alice"})
	require.NoError(t, session.Rollback(ctx))
	assert.NoError(t, session.Commit(ctx))
}

func TestDelete(t *testing.T) {
	store := New()
	ctx := context.Background()
	session := store.Session()

	alice := &model.Account{Login: "alice"}
	session.Add(alice)
	require.NoError(t, session.Commit(ctx))

	session.Delete(alice)
	require.NoError(t, session.Commit(ctx))

	result, err := session.Execute(ctx, storage.Select(model.KindAccount))
	require.NoError(t, err)
	assert.Empty(t, result.All())

	// deleting again is a no-op
	session.Delete(alice)
	assert.NoError(t, session.Commit(ctx))
}

func TestCloseDiscardsData(t *testing.T) {
	store := New()
	ctx := context.Background()
	session := store.Session()

	session.Add(&model.Account{Login: "alice"})
	require.NoError(t, session.Commit(ctx))
	require.True(t, store.Initialized())

	require.NoError(t, store.Close())
	assert.False(t, store.Initialized())

	session.Add(&model.Account{Login: "bob"})
	assert.ErrorIs(t, session.Commit(ctx), storage.ErrClosed)
}

func TestStats(t *testing.T) {
	store := New()
	ctx := context.Background()
	session := store.Session()

	session.Add(&model.Account{Login: "alice"})
	session.Add(&model.Secret{Name: "api-key", Value: "s3cret"})
	require.NoError(t, session.Commit(ctx))

	stats := store.Stats()
	assert.Equal(t, 1, stats[model.KindAccount.String()])
	assert.Equal(t, 1, stats[model.KindSecret.String()])
	assert.Equal(t, 0, stats[model.KindRole.String()])
}
