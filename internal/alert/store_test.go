package alert

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"farescout/pkg/db"
)

// MockSQLExecutor is a mock implementation of db.SQLExecutor
type MockSQLExecutor struct {
	mock.Mock
}

func (m *MockSQLExecutor) DB() *sql.DB {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*sql.DB)
}

func (m *MockSQLExecutor) WithTransaction(ctx context.Context, isolation sql.IsolationLevel, fn db.TxFunc) error {
	args := m.Called(ctx, isolation, fn)
	return args.Error(0)
}

func (m *MockSQLExecutor) ExecContext(ctx context.Context, query string, queryArgs ...any) (sql.Result, error) {
	args := m.Called(ctx, query, queryArgs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(sql.Result), args.Error(1)
}

func (m *MockSQLExecutor) QueryContext(ctx context.Context, query string, queryArgs ...any) (*sql.Rows, error) {
	args := m.Called(ctx, query, queryArgs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sql.Rows), args.Error(1)
}

func (m *MockSQLExecutor) QueryRowContext(ctx context.Context, query string, queryArgs ...any) *sql.Row {
	args := m.Called(ctx, query, queryArgs)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*sql.Row)
}

type MockResult struct {
	mock.Mock
}

func (m *MockResult) LastInsertId() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResult) RowsAffected() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func TestStore_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockDB := new(MockSQLExecutor)
		mockResult := new(MockResult)
		store := NewStore(mockDB)

		mockDB.On("ExecContext", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
			Return(mockResult, nil)

		created, err := store.Create(context.Background(), CreateRequest{
			Origin:        "DUB",
			Destination:   "BCN",
			DepartureDate: "2025-06-10",
			MaxPrice:      120,
			Currency:      "EUR",
			Email:         "traveller@example.com",
		})

		assert.NoError(t, err)
		assert.Equal(t, "DUB", created.Origin)
		assert.Equal(t, float64(120), created.MaxPrice)
		assert.NotEmpty(t, created.ID)
		_, parseErr := uuid.Parse(created.ID)
		assert.NoError(t, parseErr)
		assert.False(t, created.CreatedAt.IsZero())
		mockDB.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		mockDB := new(MockSQLExecutor)
		store := NewStore(mockDB)
		expectedErr := errors.New("connection refused")

		mockDB.On("ExecContext", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
			Return(nil, expectedErr)

		_, err := store.Create(context.Background(), CreateRequest{
			Origin:        "DUB",
			Destination:   "BCN",
			DepartureDate: "2025-06-10",
			MaxPrice:      120,
			Email:         "traveller@example.com",
		})

		assert.Error(t, err)
		assert.ErrorIs(t, err, expectedErr)
		mockDB.AssertExpectations(t)
	})
}

func TestStore_Delete(t *testing.T) {
	t.Run("deletes existing alert", func(t *testing.T) {
		mockDB := new(MockSQLExecutor)
		mockResult := new(MockResult)
		store := NewStore(mockDB)

		mockResult.On("RowsAffected").Return(int64(1), nil)
		mockDB.On("ExecContext", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
			Return(mockResult, nil)

		err := store.Delete(context.Background(), "some-id")
		assert.NoError(t, err)
		mockDB.AssertExpectations(t)
	})

	t.Run("missing alert", func(t *testing.T) {
		mockDB := new(MockSQLExecutor)
		mockResult := new(MockResult)
		store := NewStore(mockDB)

		mockResult.On("RowsAffected").Return(int64(0), nil)
		mockDB.On("ExecContext", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
			Return(mockResult, nil)

		err := store.Delete(context.Background(), "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

// ListByEmail scans *sql.Rows, which cannot be mocked through this
// interface; it is covered by integration tests against a real database.
