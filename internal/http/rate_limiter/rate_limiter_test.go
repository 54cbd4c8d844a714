package rate_limiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllow_BurstThenThrottle(t *testing.T) {
	l := New(1, 3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("10.0.0.1"), "request %d within burst", i+1)
	}
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"), "other clients have their own bucket")
}

func TestCleanup(t *testing.T) {
	l := New(1, 3, 10*time.Millisecond)
	l.Allow("10.0.0.1")

	time.Sleep(20 * time.Millisecond)
	l.Allow("10.0.0.2")
	l.Cleanup()

	assert.Equal(t, 1, l.Len())

	l.CleanupAllVisitors()
	assert.Equal(t, 0, l.Len())
}
