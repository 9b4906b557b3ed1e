package catalog

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_CoalescesBurstIntoOneFire(t *testing.T) {
	d := NewDebouncer(40 * time.Millisecond)
	var fired atomic.Int32
	for i := 0; i < 5; i++ {
		d.Trigger(func() { fired.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestDebouncer_FiresAgainAfterQuietPeriod(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var fired atomic.Int32
	d.Trigger(func() { fired.Add(1) })
	time.Sleep(100 * time.Millisecond)
	d.Trigger(func() { fired.Add(1) })
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(2), fired.Load())
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var fired atomic.Int32
	d.Trigger(func() { fired.Add(1) })
	d.Stop()
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}
