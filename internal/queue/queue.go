// Package queue provides the action serializer: a single-worker task queue
// that gives all game-state mutation one global total order. Every inbound
// action, join, and disconnect runs here, so no two mutations of any session
// ever execute concurrently.
package queue

import "sync"

// Serializer runs submitted tasks one at a time, in submission order, each
// to completion before the next is dequeued.
type Serializer struct {
	tasks chan func()
	wg    sync.WaitGroup

	closeOnce sync.Once
}

// New starts a serializer with the given queue depth.
func New(depth int) *Serializer {
	s := &Serializer{tasks: make(chan func(), depth)}
	s.wg.Add(1)
	go s.loop()
	return s
}

func (s *Serializer) loop() {
	defer s.wg.Done()
	for task := range s.tasks {
		task()
	}
}

// Enqueue appends task to the queue, blocking if the queue is full.
// Enqueueing after Close panics, matching send-on-closed-channel semantics.
func (s *Serializer) Enqueue(task func()) {
	s.tasks <- task
}

// Close stops the worker after draining the queue and waits for it to exit.
func (s *Serializer) Close() {
	s.closeOnce.Do(func() { close(s.tasks) })
	s.wg.Wait()
}
