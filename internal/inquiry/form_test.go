package inquiry

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormLifecycle(t *testing.T) {
	var f Form
	s, _ := f.State()
	assert.Equal(t, StateIdle, s)

	require.NoError(t, f.Begin())
	assert.ErrorIs(t, f.Begin(), ErrInFlight)

	boom := errors.New("boom")
	assert.Equal(t, StateFailed, f.Finish(boom))
	s, err := f.State()
	assert.Equal(t, StateFailed, s)
	assert.Equal(t, boom, err)

	require.NoError(t, f.Begin(), "a failed form stays editable and may resubmit")
	assert.Equal(t, StateSucceeded, f.Finish(nil))
	_, err = f.State()
	assert.NoError(t, err)
	assert.Equal(t, "succeeded", StateSucceeded.String())
}

func TestTrackerAllowsOneInFlightPerSession(t *testing.T) {
	tr := NewTracker()
	var started atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := tr.Begin("sess-1", KindDemo); err == nil {
				started.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), started.Load())

	_, err := tr.Begin("sess-1", KindDemo)
	assert.ErrorIs(t, err, ErrInFlight)
	_, err = tr.Begin("sess-2", KindDemo)
	require.NoError(t, err, "other sessions are independent")
	_, err = tr.Begin("sess-1", KindContact)
	require.NoError(t, err, "other forms are independent")
}

func TestTrackerFinishReleasesSession(t *testing.T) {
	tr := NewTracker()
	f, err := tr.Begin("s", KindContact)
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Len())

	assert.Equal(t, StateFailed, tr.Finish("s", KindContact, f, errors.New("upstream down")))
	assert.Equal(t, 0, tr.Len())

	f2, err := tr.Begin("s", KindContact)
	require.NoError(t, err, "a failed form may resubmit")
	assert.NotSame(t, f, f2)
}

func TestTrackerNeverRunsTwoSubmissionsForOneSession(t *testing.T) {
	tr := NewTracker()
	var running, overlaps atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				f, err := tr.Begin("sess", KindDemo)
				if err != nil {
					continue
				}
				if running.Add(1) > 1 {
					overlaps.Add(1)
				}
				running.Add(-1)
				tr.Finish("sess", KindDemo, f, nil)
			}
		}()
	}
	wg.Wait()
	assert.Zero(t, overlaps.Load())
	assert.Equal(t, 0, tr.Len())
}
