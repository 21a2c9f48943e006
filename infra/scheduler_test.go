package infra

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePruner struct {
	calls   atomic.Int32
	removed int64
	err     error
}

func (p *fakePruner) PruneExpired(ctx context.Context) (int64, error) {
	p.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return 0, errors.New("prune called without deadline")
	}
	return p.removed, p.err
}

func TestRunPrune_LogsRemovedCount(t *testing.T) {
	log, hook := test.NewNullLogger()
	pruner := &fakePruner{removed: 3}

	RunPrune(context.Background(), pruner, log)

	assert.Equal(t, int32(1), pruner.calls.Load())
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	assert.Equal(t, int64(3), hook.LastEntry().Data["removed"])
}

func TestRunPrune_LogsFailure(t *testing.T) {
	log, hook := test.NewNullLogger()
	pruner := &fakePruner{err: errors.New("database is locked")}

	RunPrune(context.Background(), pruner, log)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestRunPrune_QuietWhenNothingRemoved(t *testing.T) {
	log, hook := test.NewNullLogger()

	RunPrune(context.Background(), &fakePruner{}, log)

	assert.Empty(t, hook.AllEntries())
}

func TestNewPruneScheduler_InvalidSchedule(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	_, err := NewPruneScheduler("not a schedule", &fakePruner{}, log)
	assert.Error(t, err)
}

func TestNewPruneScheduler_RunsJob(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	pruner := &fakePruner{}

	c, err := NewPruneScheduler("@every 1s", pruner, log)
	require.NoError(t, err)
	c.Start()
	defer func() { <-c.Stop().Done() }()

	assert.Eventually(t, func() bool { return pruner.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
}
