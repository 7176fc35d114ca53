package txmanager

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ChefReservationService/pkg/dbmetrics"
)

func newManager(t *testing.T) (*TransactionManager, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewTransactionManager(dbmetrics.Wrap(db, nil)), mock
}

func TestDoSerializable_Commit(t *testing.T) {
	m, mock := newManager(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_RollbackOnError(t *testing.T) {
	m, mock := newManager(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.False(t, IsSerializationFailure(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_MarksSerializationFailure(t *testing.T) {
	m, mock := newManager(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return fmt.Errorf("insert: %w", &pq.Error{Code: "40001"})
	})

	assert.ErrorIs(t, err, ErrSerialization)
	assert.True(t, IsSerializationFailure(err))
}

func TestDo_NestedReusesTransaction(t *testing.T) {
	m, mock := newManager(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return m.DoSerializable(ctx, func(ctx context.Context) error { return nil })
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
