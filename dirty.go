package scene

// requestDrain asks for a drain on the next scheduling tick. At most one
// request is outstanding per window; later ones are no-ops until the drain
// starts.
func (w *Window) requestDrain() {
	if !w.pending.CompareAndSwap(false, true) {
		return
	}
	if w.scheduler != nil {
		w.scheduler.Post(w.scheduledDrain)
	}
}

// DrainPending reports whether a drain has been requested and not yet run.
func (w *Window) DrainPending() bool {
	return w.pending.Load()
}

func (w *Window) scheduledDrain() {
	if !w.pending.Load() {
		return
	}
	if err := w.Drain(); err != nil {
		w.scene.reportError(err)
	}
}

// checkAndClearPending returns true if a drain was requested and clears
// the request. Called by the frame loop.
func (w *Window) checkAndClearPending() bool {
	return w.pending.Swap(false)
}

// resetPending clears the request without draining.
func (w *Window) resetPending() {
	w.pending.Store(false)
}
