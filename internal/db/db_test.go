package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func TestNewPool_NewError(t *testing.T) {
	originalNewPool := newPool
	originalPingPool := pingPool
	originalClosePool := closePool
	defer func() {
		newPool = originalNewPool
		pingPool = originalPingPool
		closePool = originalClosePool
	}()

	expectedErr := errors.New("new pool failed")
	newPool = func(ctx context.Context, url string) (*pgxpool.Pool, error) {
		return nil, expectedErr
	}

	pingCalled := false
	pingPool = func(ctx context.Context, pool poolPinger) error {
		pingCalled = true
		return nil
	}

	closeCalled := false
	closePool = func(pool poolPinger) {
		closeCalled = true
	}

	pool, err := NewPool(context.Background(), "postgres://example")

	require.Nil(t, pool)
	require.ErrorIs(t, err, expectedErr)
	require.False(t, pingCalled)
	require.False(t, closeCalled)
}

func TestNewPool_PingErrorClosesPool(t *testing.T) {
	originalNewPool := newPool
	originalPingPool := pingPool
	originalClosePool := closePool
	defer func() {
		newPool = originalNewPool
		pingPool = originalPingPool
		closePool = originalClosePool
	}()

	newPool = func(ctx context.Context, url string) (*pgxpool.Pool, error) {
		return &pgxpool.Pool{}, nil
	}

	expectedErr := errors.New("ping failed")
	pingPool = func(ctx context.Context, pool poolPinger) error {
		return expectedErr
	}

	closeCalled := false
	closePool = func(pool poolPinger) {
		closeCalled = true
	}

	pool, err := NewPool(context.Background(), "postgres://example")

	require.Nil(t, pool)
	require.ErrorIs(t, err, expectedErr)
	require.True(t, closeCalled)
}

func TestNewPool_Success(t *testing.T) {
	originalNewPool := newPool
	originalPingPool := pingPool
	originalClosePool := closePool
	defer func() {
		newPool = originalNewPool
		pingPool = originalPingPool
		closePool = originalClosePool
	}()

	expectedPool := &pgxpool.Pool{}
	newPool = func(ctx context.Context, url string) (*pgxpool.Pool, error) {
		return expectedPool, nil
	}

	var pingDeadline time.Time
	pingPool = func(ctx context.Context, pool poolPinger) error {
		pingDeadline, _ = ctx.Deadline()
		return nil
	}

	closeCalled := false
	closePool = func(pool poolPinger) {
		closeCalled = true
	}

	pool, err := NewPool(context.Background(), "postgres://example")

	require.NoError(t, err)
	require.Same(t, expectedPool, pool)
	require.False(t, closeCalled)
	// El arranque no puede quedar colgado: el ping corre con deadline.
	require.False(t, pingDeadline.IsZero())
}
