package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

type countingJob struct {
	calls int
	err   error
}

func (j *countingJob) Execute(ctx context.Context) (int, error) {
	j.calls++
	return 3, j.err
}

func TestRegisterReconcileJob(t *testing.T) {
	m, err := NewSchedulerManager(logger.Nop())
	require.NoError(t, err)

	require.NoError(t, m.RegisterReconcileJob(&countingJob{}, "30 3 * * *"))
	require.Len(t, m.Jobs(), 1)
	assert.Equal(t, "counter-reconcile", m.Jobs()[0].Name())
}

func TestRegisterReconcileJob_InvalidCron(t *testing.T) {
	m, err := NewSchedulerManager(logger.Nop())
	require.NoError(t, err)

	assert.Error(t, m.RegisterReconcileJob(&countingJob{}, "not a cron"))
	assert.Empty(t, m.Jobs())
}

func TestRunReconcile_SwallowsErrors(t *testing.T) {
	m, err := NewSchedulerManager(logger.Nop())
	require.NoError(t, err)

	job := &countingJob{err: errors.New("db down")}
	m.runReconcile(context.Background(), job)
	assert.Equal(t, 1, job.calls)
}

func TestStartStop(t *testing.T) {
	m, err := NewSchedulerManager(logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, m.Stop(), "stopping an idle manager is a no-op")

	m.Start()
	m.Start()
	assert.True(t, m.IsStarted())

	require.NoError(t, m.Stop())
	assert.False(t, m.IsStarted())
}
