package scene

import (
	"context"
	"fmt"
	"time"

	"github.com/grindlemire/go-scene/internal/debug"
)

// Run binds the calling goroutine as the UI goroutine and runs the frame
// loop: posted tasks for up to half a frame, then every pending drain.
// Run blocks until Stop is called or ctx is done, then stops the watchers
// and waits for them. A drain error stops the loop and is returned.
func (s *Scene) Run(ctx context.Context) error {
	if s.stopped.Load() {
		return ErrStopped
	}
	if !s.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer s.running.Store(false)
	defer s.watcherWG.Wait()
	defer s.Stop()

	s.bindOwner()
	s.startWatchers()
	debug.Event("scene running", "frame", s.frameDuration)

	for {
		frameStart := time.Now()

		// Process tasks for up to half the frame budget (non-blocking)
		deadline := frameStart.Add(s.frameDuration / 2)
	tasks:
		for time.Now().Before(deadline) {
			select {
			case fn := <-s.queue:
				fn()
			case <-s.stopCh:
				return nil
			case <-ctx.Done():
				return nil
			default:
				break tasks
			}
		}

		if _, err := s.drainWindows(); err != nil {
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < s.frameDuration {
			select {
			case <-time.After(s.frameDuration - elapsed):
			case <-s.stopCh:
				return nil
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// Stop signals Run to exit and stops all watchers. Stop is idempotent and
// safe from any goroutine.
func (s *Scene) Stop() {
	s.stopOnce.Do(func() {
		s.stopped.Store(true)
		close(s.stopCh)
	})
}

// Stopped reports whether Stop was called.
func (s *Scene) Stopped() bool {
	return s.stopped.Load()
}

// Post enqueues fn to run on the UI goroutine. Safe to call from any
// goroutine. Posting to a stopped scene, or to a full queue, drops fn.
func (s *Scene) Post(fn func()) {
	if s.stopped.Load() {
		return
	}
	select {
	case s.queue <- fn:
	case <-s.stopCh:
	default:
		debug.Warn("task queue full, dropping task", "capacity", cap(s.queue))
	}
}

// Call runs fn on the UI goroutine and waits for it. Called from the UI
// goroutine itself, fn runs immediately.
func (s *Scene) Call(ctx context.Context, fn func()) error {
	if s.onOwner() {
		fn()
		return nil
	}
	done := make(chan struct{})
	task := func() {
		defer close(done)
		fn()
	}
	select {
	case s.queue <- task:
	case <-s.stopCh:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-done:
		return nil
	case <-s.stopCh:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunPending runs queued tasks and pending drains on the calling (UI)
// goroutine until nothing is left. It returns the first drain error, or
// ErrUnsettled when work is still arriving after the settle limit.
func (s *Scene) RunPending() error {
	s.checkThread("RunPending")
	for round := 0; round < s.settleLimit; round++ {
		ran := s.runQueued()
		drained, err := s.drainWindows()
		if err != nil {
			return err
		}
		if !ran && !drained {
			return nil
		}
	}
	return fmt.Errorf("%w after %d rounds", ErrUnsettled, s.settleLimit)
}

// runQueued runs the tasks queued when it was called.
func (s *Scene) runQueued() bool {
	n := len(s.queue)
	for i := 0; i < n; i++ {
		(<-s.queue)()
	}
	return n > 0
}

// drainWindows drains every window whose drain the frame loop owns.
func (s *Scene) drainWindows() (bool, error) {
	drained := false
	for _, w := range s.windows {
		if w.scheduler != nil || !w.checkAndClearPending() {
			continue
		}
		drained = true
		if err := w.Drain(); err != nil {
			return drained, err
		}
	}
	return drained, nil
}
