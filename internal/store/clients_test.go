package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jekabolt/grbpwr-insights/internal/entity"
	gerr "github.com/jekabolt/grbpwr-insights/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clientColumns = []string{"id", "tenant_id", "name", "phone", "email"}

func TestClientIdentity(t *testing.T) {
	ms, mock := newMockStore(t)
	mock.ExpectQuery(q("FROM client")).
		WithArgs(7, 3).
		WillReturnRows(sqlmock.NewRows(clientColumns).AddRow(3, 7, "Ana", "+37060000000", nil))

	c, err := ms.Clients().ClientIdentity(context.Background(), 7, 3)
	require.NoError(t, err)
	assert.Equal(t, "Ana", c.Name)
	assert.True(t, c.Phone.Valid)
	assert.False(t, c.Email.Valid)
}

func TestClientIdentityNotFound(t *testing.T) {
	ms, mock := newMockStore(t)
	mock.ExpectQuery(q("FROM client")).
		WithArgs(7, 404).
		WillReturnRows(sqlmock.NewRows(clientColumns))

	c, err := ms.Clients().ClientIdentity(context.Background(), 7, 404)
	assert.ErrorIs(t, err, gerr.ErrClientNotFound)
	assert.Nil(t, c)
}

func TestClientIdentities(t *testing.T) {
	ms, mock := newMockStore(t)
	mock.ExpectQuery(q("id IN (?, ?)")).
		WithArgs(7, 3, 5).
		WillReturnRows(sqlmock.NewRows(clientColumns).
			AddRow(3, 7, "Ana", nil, nil).
			AddRow(5, 7, "Jonas", nil, "jonas@example.com"))

	got, err := ms.Clients().ClientIdentities(context.Background(), 7, []int{3, 5})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Jonas", got[5].Name)
	assert.Equal(t, "jonas@example.com", got[5].Email.String)
}

func TestAddClient(t *testing.T) {
	ms, mock := newMockStore(t)
	mock.ExpectExec(q("INSERT INTO client")).
		WithArgs(7, "Ana", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := ms.Clients().AddClient(context.Background(), &entity.ClientInsert{TenantId: 7, Name: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestEnsureTenant(t *testing.T) {
	ms, mock := newMockStore(t)
	mock.ExpectExec(q("INSERT IGNORE INTO tenant")).
		WithArgs(7, "demo").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, ms.Clients().EnsureTenant(context.Background(), 7, "demo"))
}

func TestPasswordHashByUsername(t *testing.T) {
	ms, mock := newMockStore(t)
	mock.ExpectQuery(q("FROM admins")).
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"password_hash"}).AddRow("$2a$10$hash"))

	hash, err := ms.Admin().PasswordHashByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$hash", hash)
}
