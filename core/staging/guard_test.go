package staging

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_SerialisesSameTarget(t *testing.T) {
	g := NewGuard()
	var running, peak atomic.Int32

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := g.Do(context.Background(), "pair_order", func() error {
				n := running.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(2 * time.Millisecond)
				running.Add(-1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), peak.Load())
}

func TestGuard_OtherTargetsDoNotWait(t *testing.T) {
	g := NewGuard()
	held := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = g.Do(context.Background(), "pair_order", func() error {
			close(held)
			<-release
			return nil
		})
	}()
	<-held
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	ran := false
	require.NoError(t, g.Do(ctx, "security_alert", func() error {
		ran = true
		return nil
	}))
	assert.True(t, ran)
}

func TestGuard_CancelledWhileWaiting(t *testing.T) {
	g := NewGuard()
	held := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = g.Do(context.Background(), "pair_order", func() error {
			close(held)
			<-release
			return nil
		})
	}()
	<-held
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := g.Do(ctx, "pair_order", func() error {
		t.Error("ran while another replace held the slot")
		return nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.ErrorContains(t, err, "pair_order: waiting for running replace")
}

func TestGuard_Nil(t *testing.T) {
	var g *Guard
	ran := false
	require.NoError(t, g.Do(context.Background(), "pair_order", func() error {
		ran = true
		return nil
	}))
	assert.True(t, ran)
}
