package queue

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSerializerPreservesSubmissionOrder(t *testing.T) {
	s := New(8)
	var got []int
	for i := 0; i < 100; i++ {
		i := i
		s.Enqueue(func() { got = append(got, i) })
	}
	s.Close()

	if len(got) != 100 {
		t.Fatalf("expected 100 tasks to run, got %d", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("task %d ran out of order (got %d)", i, v)
		}
	}
}

func TestSerializerNeverOverlapsTasks(t *testing.T) {
	s := New(4)
	var running int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 16; j++ {
				s.Enqueue(func() {
					if atomic.AddInt32(&running, 1) != 1 {
						t.Errorf("two tasks ran concurrently")
					}
					time.Sleep(100 * time.Microsecond)
					atomic.AddInt32(&running, -1)
				})
			}
		}()
	}
	wg.Wait()
	s.Close()
}

func TestSerializerCloseDrainsQueue(t *testing.T) {
	s := New(64)
	var ran int32
	for i := 0; i < 32; i++ {
		s.Enqueue(func() { atomic.AddInt32(&ran, 1) })
	}
	s.Close()
	if n := atomic.LoadInt32(&ran); n != 32 {
		t.Fatalf("Close returned before draining: %d of 32 tasks ran", n)
	}
}
