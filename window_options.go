package scene

import (
	"fmt"
)

// WindowOption is a functional option for configuring a Window.
type WindowOption func(*Window) error

// WithWindowName sets the name used in logs and snapshots. Default is the
// first eight characters of the window's uuid.
func WithWindowName(name string) WindowOption {
	return func(w *Window) error {
		if name == "" {
			return fmt.Errorf("window name must not be empty")
		}
		w.name = name
		return nil
	}
}

// WithCompositor installs the visual back end. Default is a retained
// compositor.Tree, reachable through Window.Visuals.
func WithCompositor(c Compositor) WindowOption {
	return func(w *Window) error {
		if c == nil {
			return fmt.Errorf("compositor must not be nil")
		}
		w.compositor = c
		return nil
	}
}

// WithSpatialIndex installs the spatial index. Hit testing then falls back
// to walking the tree.
func WithSpatialIndex(idx SpatialIndex) WindowOption {
	return func(w *Window) error {
		if idx == nil {
			return fmt.Errorf("spatial index must not be nil")
		}
		w.spatial = idx
		return nil
	}
}

// WithScheduler posts drain requests to sched instead of leaving them for
// the scene's frame loop.
func WithScheduler(sched Scheduler) WindowOption {
	return func(w *Window) error {
		if sched == nil {
			return fmt.Errorf("scheduler must not be nil")
		}
		w.scheduler = sched
		return nil
	}
}
