package services

import (
	"context"
	"errors"
	"testing"

	"library-management/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOverdue struct {
	count int64
	err   error
}

func (s stubOverdue) CountOverdue(context.Context) (int64, error) {
	return s.count, s.err
}

func TestCronService_SweepOverdue(t *testing.T) {
	NewCronService(stubOverdue{count: 4}, "@daily", nil).SweepOverdue()
	assert.Equal(t, 4.0, testutil.ToFloat64(metrics.OverdueBorrowings))

	// a failed sweep keeps the last value
	NewCronService(stubOverdue{err: errors.New("db down")}, "@daily", nil).SweepOverdue()
	assert.Equal(t, 4.0, testutil.ToFloat64(metrics.OverdueBorrowings))
}

func TestCronService_StartRejectsBadSpec(t *testing.T) {
	err := NewCronService(stubOverdue{}, "not a cron spec", nil).Start()
	assert.Error(t, err)
}

func TestCronService_StartStop(t *testing.T) {
	svc := NewCronService(stubOverdue{}, "30 8 * * *", nil)
	require.NoError(t, svc.Start())
	svc.Stop()
}
