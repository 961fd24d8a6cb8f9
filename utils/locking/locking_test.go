package locking

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	k := NewKeyedMutex()

	counter := 0
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			k.Lock("mer-1")
			counter++
			k.Unlock("mer-1")
		}()
	}

	wg.Wait()
	assert.Equal(t, 100, counter)
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	k := NewKeyedMutex()

	k.Lock("mer-1")
	done := make(chan struct{})
	go func() {
		k.Lock("mer-2")
		k.Unlock("mer-2")
		close(done)
	}()

	<-done
	k.Unlock("mer-1")
}

func TestKeyedMutex_ReleasesEntry(t *testing.T) {
	k := NewKeyedMutex()

	k.Lock("mer-1")
	k.Unlock("mer-1")

	assert.Equal(t, 0, len(k.locks))
}
