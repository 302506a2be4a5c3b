package scene

import (
	"bytes"
	"runtime"
	"strconv"
)

var goroutinePrefix = []byte("goroutine ")

// goroutineID returns the id of the calling goroutine, parsed from the
// first line of its stack trace ("goroutine 42 [running]:").
func goroutineID() uint64 {
	var buf [64]byte
	b := buf[:runtime.Stack(buf[:], false)]
	b = bytes.TrimPrefix(b, goroutinePrefix)
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	id, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		panic("scene: cannot parse goroutine id: " + err.Error())
	}
	return id
}

// bindOwner makes the calling goroutine the scene's UI goroutine.
func (s *Scene) bindOwner() {
	s.owner.Store(goroutineID())
}

func (s *Scene) onOwner() bool {
	return goroutineID() == s.owner.Load()
}

// checkThread panics with a *ThreadError when called off the UI goroutine.
func (s *Scene) checkThread(op string) {
	if !s.threadCheck {
		return
	}
	if cur := goroutineID(); cur != s.owner.Load() {
		panic(&ThreadError{Op: op, Owner: s.owner.Load(), Current: cur})
	}
}
