package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func TestTransactionManager_ReadWriteCommit(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	tm := NewTransactionManager(mock)

	mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadWrite})
	mock.ExpectCommit()

	err := tm.WithinReadWrite(context.Background(), func(ctx context.Context) error {
		if _, ok := txFromContext(ctx); !ok {
			t.Fatalf("transaction not injected into context")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinReadWrite returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTransactionManager_IsolationLevel(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	tm := NewTransactionManager(mock, WithIsolationLevel(pgx.RepeatableRead))

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadWrite})
	mock.ExpectCommit()

	if err := tm.WithinReadWrite(context.Background(), func(context.Context) error { return nil }); err != nil {
		t.Fatalf("WithinReadWrite returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTransactionManager_ReadOnlyRollbackOnError(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	tm := NewTransactionManager(mock)

	mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadOnly})
	mock.ExpectRollback()

	expectedErr := errors.New("usecase error")
	err := tm.WithinReadOnly(context.Background(), func(ctx context.Context) error {
		if _, ok := txFromContext(ctx); !ok {
			t.Fatalf("transaction not injected into context")
		}
		return expectedErr
	})

	if !errors.Is(err, expectedErr) {
		t.Fatalf("expected %v, got %v", expectedErr, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTransactionManager_CommitFailure(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	tm := NewTransactionManager(mock)

	commitErr := errors.New("connection reset")
	mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadWrite})
	mock.ExpectCommit().WillReturnError(commitErr)
	mock.ExpectRollback()

	err := tm.WithinReadWrite(context.Background(), func(context.Context) error { return nil })
	if !errors.Is(err, commitErr) {
		t.Fatalf("expected commit error, got %v", err)
	}
}

func TestTransactionManager_NestedReuse(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	tm := NewTransactionManager(mock)

	mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadWrite})
	mock.ExpectCommit()

	err := tm.WithinReadWrite(context.Background(), func(ctx context.Context) error {
		return tm.WithinReadOnly(ctx, func(inner context.Context) error {
			if _, ok := txFromContext(inner); !ok {
				t.Fatalf("nested transaction lost context")
			}
			return nil
		})
	})
	if err != nil {
		t.Fatalf("nested transaction returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTransactionManager_NilPoolRunsDirectly(t *testing.T) {
	t.Parallel()

	tm := NewTransactionManager(nil)

	called := false
	if err := tm.WithinReadWrite(context.Background(), func(ctx context.Context) error {
		called = true
		if _, ok := txFromContext(ctx); ok {
			t.Fatalf("unexpected transaction in context")
		}
		return nil
	}); err != nil {
		t.Fatalf("WithinReadWrite returned error: %v", err)
	}
	if !called {
		t.Fatal("expected fn to be called")
	}
}

func TestQueryerFromContext_Fallback(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	if got := QueryerFromContext(context.Background(), mock); got != mock {
		t.Fatalf("expected fallback queryer")
	}
}
