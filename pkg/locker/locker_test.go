package locker

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockSerializesPerKey(t *testing.T) {
	k := New()
	const workers = 16
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := k.Lock("trip-1")
			defer unlock()
			counter++ // safe only if the lock actually serializes
		}()
	}
	wg.Wait()
	assert.Equal(t, workers, counter)
}

func TestLockIndependentKeysDoNotBlock(t *testing.T) {
	k := New()
	unlockA := k.Lock("a")

	done := make(chan struct{})
	go func() {
		unlockB := k.Lock("b")
		unlockB()
		close(done)
	}()
	<-done // would deadlock if "b" waited on "a"
	unlockA()
}

func TestLockDropsEntryAfterLastUnlock(t *testing.T) {
	k := New()
	unlock := k.Lock("a")
	unlock()

	k.mu.Lock()
	defer k.mu.Unlock()
	assert.Empty(t, k.locks)
}
