package keylock

import (
	"sync"
	"testing"
)

func TestLockSerializesPerKey(t *testing.T) {
	var m Map
	var wg sync.WaitGroup
	counter := 0
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := m.Lock("a")
			defer unlock()
			v := counter
			counter = v + 1
		}()
	}
	wg.Wait()
	if counter != 50 {
		t.Fatalf("counter = %d, want 50", counter)
	}
	if len(m.locks) != 0 {
		t.Fatalf("%d idle locks retained", len(m.locks))
	}
}

func TestLockIndependentKeys(t *testing.T) {
	var m Map
	unlockA := m.Lock("a")
	done := make(chan struct{})
	go func() {
		unlock := m.Lock("b")
		unlock()
		close(done)
	}()
	<-done
	unlockA()
}
