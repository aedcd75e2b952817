package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/PattemChaitanya/custom-gateway/pkg/model"
	"github.com/PattemChaitanya/custom-gateway/pkg/storage"
)

type Suite struct {
	suite.Suite
	adapter *Adapter
	mock    sqlmock.Sqlmock
}

func (s *Suite) SetupTest() {
	var (
		db  *sql.DB
		err error
	)

	db, s.mock, err = sqlmock.New()
	require.NoError(s.T(), err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(s.T(), err)

	s.adapter = NewAdapter(gdb)
}

func (s *Suite) AfterTest(_, _ string) {
	require.NoError(s.T(), s.mock.ExpectationsWereMet())
}

func TestPostgresSession(t *testing.T) {
	suite.Run(t, new(Suite))
}

func accountRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "login", "hashed_password", "active", "superuser", "roles", "created_at", "updated_at",
	})
}

func (s *Suite) TestExecuteBuildsWhereAndOrder() {
	s.mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "accounts" WHERE login = $1 ORDER BY id`)).
		WithArgs("alice").
		WillReturnRows(accountRows().AddRow(1, "alice", "x", true, false, "", nil, nil))

	session := s.adapter.Session()
	result, err := session.Execute(context.Background(), storage.Select(model.KindAccount).Where("login", "alice"))
	require.NoError(s.T(), err)

	row, err := result.One()
	require.NoError(s.T(), err)
	account := row.(*model.Account)
	assert.Equal(s.T(), int64(1), account.GetID())
	assert.Equal(s.T(), "alice", account.Login)
	assert.True(s.T(), account.Active)
}

func (s *Suite) TestExecuteNegationPredicate() {
	s.mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "accounts" WHERE login <> $1 ORDER BY id`)).
		WithArgs("alice").
		WillReturnRows(accountRows().
			AddRow(2, "bob", "y", true, false, "", nil, nil).
			AddRow(3, "carol", "z", true, false, "", nil, nil))

	session := s.adapter.Session()
	result, err := session.Execute(context.Background(), storage.Select(model.KindAccount).WhereNot("login", "alice"))
	require.NoError(s.T(), err)

	rows := result.All()
	require.Len(s.T(), rows, 2)
	assert.Equal(s.T(), "bob", rows[0].(*model.Account).Login)
	assert.Equal(s.T(), "carol", rows[1].(*model.Account).Login)
}

func (s *Suite) TestExecuteUnknownColumnIssuesNoSQL() {
	session := s.adapter.Session()

	result, err := session.Execute(context.Background(), storage.Select(model.KindAccount).Where("no_such_field", "v"))
	require.NoError(s.T(), err)
	assert.Empty(s.T(), result.All())
}

func (s *Suite) TestExecuteRejectsUnsupportedOperator() {
	session := s.adapter.Session()
	q := storage.Query{Kind: model.KindAccount, Predicates: []storage.Predicate{
		{Column: "login", Op: "like", Value: "a%"},
	}}

	_, err := session.Execute(context.Background(), q)
	assert.ErrorIs(s.T(), err, storage.ErrQueryUnsupported)
}

func (s *Suite) TestCommitInsertsStagedEntity() {
	s.mock.ExpectBegin()
	s.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "accounts"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	s.mock.ExpectCommit()

	session := s.adapter.Session()
	alice := &model.Account{Login: "alice", HashedPassword: "x"}
	session.Add(alice)
	require.NoError(s.T(), session.Commit(context.Background()))
	assert.Equal(s.T(), int64(1), alice.GetID())
}

func (s *Suite) TestCommitUpdatesEntityWithID() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "accounts" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectCommit()

	session := s.adapter.Session()
	alice := &model.Account{Login: "alice", HashedPassword: "x"}
	alice.SetID(7)
	session.Add(alice)
	require.NoError(s.T(), session.Commit(context.Background()))
}

func (s *Suite) TestCommitEmptyStageIssuesNoSQL() {
	session := s.adapter.Session()
	require.NoError(s.T(), session.Commit(context.Background()))
}

func (s *Suite) TestRollbackDiscardsStagedWrites() {
	session := s.adapter.Session()
	session.Add(&model.Account{Login: "alice"})
	require.NoError(s.T(), session.Rollback(context.Background()))
	require.NoError(s.T(), session.Commit(context.Background()))
}

func (s *Suite) TestUniqueViolationBecomesIntegrityError() {
	s.mock.ExpectBegin()
	s.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "accounts"`)).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "accounts_login_key"})
	s.mock.ExpectRollback()

	session := s.adapter.Session()
	session.Add(&model.Account{Login: "alice", HashedPassword: "x"})
	err := session.Commit(context.Background())

	var integrityErr *storage.IntegrityError
	require.ErrorAs(s.T(), err, &integrityErr)
	assert.Equal(s.T(), model.KindAccount, integrityErr.Kind)
	assert.Equal(s.T(), []string{"login"}, integrityErr.Columns)
}

func (s *Suite) TestDeleteSkipsEntitiesWithoutID() {
	s.mock.ExpectBegin()
	s.mock.ExpectCommit()

	session := s.adapter.Session()
	session.Delete(&model.Account{Login: "alice"})
	require.NoError(s.T(), session.Commit(context.Background()))
}

func (s *Suite) TestDeleteByID() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "accounts"`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectCommit()

	session := s.adapter.Session()
	alice := &model.Account{}
	alice.SetID(7)
	session.Delete(alice)
	require.NoError(s.T(), session.Commit(context.Background()))
}

func (s *Suite) TestRefreshMissingRowLeavesEntityUntouched() {
	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts"`)).
		WillReturnRows(accountRows())

	session := s.adapter.Session()
	alice := &model.Account{Login: "alice"}
	alice.SetID(9)
	require.NoError(s.T(), session.Refresh(context.Background(), alice))
	assert.Equal(s.T(), "alice", alice.Login)
}

func (s *Suite) TestPing() {
	s.mock.ExpectExec(regexp.QuoteMeta(`SELECT 1`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(s.T(), s.adapter.Ping(context.Background()))
}
