package scene

import (
	"time"

	"github.com/grindlemire/go-scene/internal/debug"
)

// Watcher forwards work from a background source onto a scene's UI
// goroutine.
type Watcher interface {
	// Watch runs on its own goroutine, posting closures to queue until
	// stop is closed.
	Watch(queue chan<- func(), stop <-chan struct{})
}

// AddWatcher registers w. Watchers start when Run starts, or immediately
// when Run is already running.
func (s *Scene) AddWatcher(w Watcher) {
	s.watchersMu.Lock()
	defer s.watchersMu.Unlock()
	s.watchers = append(s.watchers, w)
	if s.watchersStarted {
		s.startWatcherLocked(w)
	}
}

func (s *Scene) startWatchers() {
	s.watchersMu.Lock()
	defer s.watchersMu.Unlock()
	s.watchersStarted = true
	for _, w := range s.watchers {
		s.startWatcherLocked(w)
	}
}

func (s *Scene) startWatcherLocked(w Watcher) {
	s.watcherWG.Add(1)
	go func() {
		defer s.watcherWG.Done()
		w.Watch(s.queue, s.stopCh)
	}()
}

// ChannelWatcher watches a channel and calls handler for each value.
type ChannelWatcher[T any] struct {
	ch      <-chan T
	handler func(T)
}

// Watch creates a channel watcher. The handler is called on the UI
// goroutine whenever data arrives on the channel.
//
// Example:
//
//	sizes := make(chan float64)
//	s.AddWatcher(scene.Watch(sizes, func(w float64) {
//	    panel.SetWidth(w)
//	}))
func Watch[T any](ch <-chan T, handler func(T)) *ChannelWatcher[T] {
	return &ChannelWatcher[T]{ch: ch, handler: handler}
}

// Watch forwards values until the channel closes or stop is closed.
func (w *ChannelWatcher[T]) Watch(queue chan<- func(), stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case val, ok := <-w.ch:
			if !ok {
				return
			}
			select {
			case queue <- func() { w.handler(val) }:
			case <-stop:
				return
			}
		}
	}
}

// timerWatcher fires at a regular interval.
type timerWatcher struct {
	interval time.Duration
	handler  func()
}

// OnTimer creates a watcher that calls handler on the UI goroutine at the
// given interval.
func OnTimer(interval time.Duration, handler func()) Watcher {
	return &timerWatcher{interval: interval, handler: handler}
}

func (w *timerWatcher) Watch(queue chan<- func(), stop <-chan struct{}) {
	debug.Log("timer watcher started, interval %s", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			select {
			case queue <- w.handler:
			case <-stop:
				return
			}
		}
	}
}
