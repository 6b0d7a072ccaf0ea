package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingPurger struct {
	calls atomic.Int32
}

func (p *countingPurger) PurgeExpired() int {
	p.calls.Add(1)
	return 1
}

func TestSessionSweeper_RunsPeriodically(t *testing.T) {
	purger := &countingPurger{}
	sweeper := NewSessionSweeper(purger, 50*time.Millisecond)
	require.NoError(t, sweeper.Start())
	defer sweeper.Stop()

	assert.Eventually(t, func() bool { return purger.calls.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestSessionSweeper_RejectsNonPositiveInterval(t *testing.T) {
	sweeper := NewSessionSweeper(&countingPurger{}, 0)
	assert.Error(t, sweeper.Start())
}
