package scene

import (
	"bytes"
	"strconv"

	"github.com/grindlemire/go-scene/internal/debug"
)

// loopDetector compares the invalidations each drain raises with those of
// the drain before it. A pipeline that keeps raising the same sequence with
// no outside input will never settle.
type loopDetector struct {
	enabled  bool
	current  bytes.Buffer
	previous []byte

	// external is set by any invalidation raised outside a drain since the
	// previous drain finished.
	external bool
}

func newLoopDetector(enabled bool) *loopDetector {
	return &loopDetector{enabled: enabled}
}

// recordMarker appends inv to the marker log of the running drain, or notes
// outside input when no drain is running.
func (w *Window) recordMarker(inv Invalidation) {
	l := w.loop
	if !l.enabled {
		return
	}
	if !w.draining {
		l.external = true
		return
	}
	l.current.WriteString(strconv.Itoa(int(inv.Node.id)))
	l.current.WriteByte(':')
	l.current.WriteString(inv.Mode.String())
	l.current.WriteByte(':')
	l.current.WriteString(inv.Reason)
	l.current.WriteByte(';')
}

// finish closes the marker log of a drain and reports an oscillation when
// it repeats the previous drain's log byte for byte.
func (w *Window) finishLoopCheck() error {
	l := w.loop
	if !l.enabled {
		return nil
	}
	markers := bytes.Clone(l.current.Bytes())
	l.current.Reset()
	repeated := len(markers) > 0 && !l.external && bytes.Equal(markers, l.previous)
	l.previous = markers
	l.external = false
	if !repeated {
		return nil
	}
	root, _ := w.Root()
	debug.Warn("invalidation loop", "window", w.name, "markers", string(markers))
	return newContractError(Oscillation, root, "two consecutive drains raised %q", markers)
}
