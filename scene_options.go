package scene

import (
	"fmt"
	"math"
	"time"
)

// SceneOption is a functional option for configuring a Scene.
type SceneOption func(*Scene) error

// WithThreadCheck enables or disables the UI goroutine check on layout
// mutations and pipeline calls. Default is enabled.
func WithThreadCheck(enabled bool) SceneOption {
	return func(s *Scene) error {
		s.threadCheck = enabled
		return nil
	}
}

// WithLoopDetection makes a drain fail with an Oscillation contract error
// when it raises exactly the invalidations the previous drain raised with
// no outside input in between. Default is disabled.
func WithLoopDetection(enabled bool) SceneOption {
	return func(s *Scene) error {
		s.loopDetection = enabled
		return nil
	}
}

// WithLayoutRounding snaps arranged rects to integer boundaries (floor
// origin, ceil extent). Default is disabled.
func WithLayoutRounding(enabled bool) SceneOption {
	return func(s *Scene) error {
		s.rounding = enabled
		return nil
	}
}

// WithQueueSize sets the capacity of the posted task queue.
// Default is 256. Must be at least 1.
func WithQueueSize(size int) SceneOption {
	return func(s *Scene) error {
		if size < 1 {
			return fmt.Errorf("queue size must be at least 1")
		}
		s.queueSize = size
		return nil
	}
}

// WithFrameRate sets the target tick rate of Run.
// Default is 60 fps. Valid range is 1-240 fps.
func WithFrameRate(fps int) SceneOption {
	return func(s *Scene) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		s.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithSettleLimit bounds the rounds RunPending runs before giving up with
// ErrUnsettled. Default is 64.
func WithSettleLimit(rounds int) SceneOption {
	return func(s *Scene) error {
		if rounds < 1 {
			return fmt.Errorf("settle limit must be at least 1")
		}
		s.settleLimit = rounds
		return nil
	}
}

// WithTextCache sets how many measured strings are kept. 0 disables the
// cache. Default is 512.
func WithTextCache(size int) SceneOption {
	return func(s *Scene) error {
		if size < 0 {
			return fmt.Errorf("text cache size cannot be negative")
		}
		s.textCacheSize = size
		return nil
	}
}

// WithTextMetrics sets the cell size Text policies measure with.
func WithTextMetrics(m TextMetrics) SceneOption {
	return func(s *Scene) error {
		if !positiveFinite(m.CellWidth) || !positiveFinite(m.LineHeight) {
			return fmt.Errorf("text metrics %+v must be positive and finite", m)
		}
		s.textMetrics = m
		return nil
	}
}

// WithErrorHandler receives drain errors from windows drained by a custom
// scheduler. Without one they are logged.
func WithErrorHandler(fn func(error)) SceneOption {
	return func(s *Scene) error {
		s.onError = fn
		return nil
	}
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
