package lifecycle_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/file-flow/pkg/lifecycle"
)

func TestCoordinator_ReadyAfterStartup(t *testing.T) {
	lc := lifecycle.New()
	var ran atomic.Int32

	for range 3 {
		lc.OnStartup(func() {
			time.Sleep(5 * time.Millisecond)
			ran.Add(1)
		})
	}

	assert.False(t, lc.Ready())
	lc.WaitForStartup()

	assert.True(t, lc.Ready())
	assert.Equal(t, int32(3), ran.Load())
}

func TestCoordinator_ShutdownCancelsContext(t *testing.T) {
	lc := lifecycle.New()
	released := make(chan struct{})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		close(released)
	})

	require.NoError(t, lc.Shutdown(time.Second))

	select {
	case <-released:
	default:
		t.Fatal("shutdown hook did not complete")
	}
	assert.Error(t, lc.Context().Err())
}

func TestCoordinator_ShutdownTimeout(t *testing.T) {
	lc := lifecycle.New()
	block := make(chan struct{})
	defer close(block)

	lc.OnShutdown(func() {
		<-block
	})

	err := lc.Shutdown(10 * time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shutdown timeout")
}
