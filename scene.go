package scene

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/grindlemire/go-scene/internal/debug"
)

// Scene owns a node arena, the windows hosting its trees and the task queue
// feeding its UI goroutine. All layout work happens on that goroutine: the
// one that called NewScene, or the one running Run.
type Scene struct {
	nodes []*nodeData
	free  []int32
	owner atomic.Uint64

	threadCheck   bool
	loopDetection bool
	rounding      bool
	queueSize     int
	frameDuration time.Duration
	settleLimit   int
	onError       func(error)

	queue    chan func()
	stopCh   chan struct{}
	stopOnce sync.Once
	running  atomic.Bool
	stopped  atomic.Bool

	windows []*Window

	watchersMu      sync.Mutex
	watchers        []Watcher
	watchersStarted bool
	watcherWG       sync.WaitGroup

	textMetrics   TextMetrics
	textCacheSize int
	textCache     *lru.Cache[textKey, textExtent]
}

// NewScene creates a scene whose UI goroutine is the caller's.
func NewScene(opts ...SceneOption) (*Scene, error) {
	s := &Scene{
		threadCheck:   true,
		queueSize:     256,
		frameDuration: 16 * time.Millisecond,
		settleLimit:   64,
		textMetrics:   DefaultTextMetrics,
		textCacheSize: 512,
		stopCh:        make(chan struct{}),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	s.queue = make(chan func(), s.queueSize)
	if s.textCacheSize > 0 {
		cache, err := lru.New[textKey, textExtent](s.textCacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating text cache: %w", err)
		}
		s.textCache = cache
	}
	s.bindOwner()
	return s, nil
}

// Windows returns the scene's windows in creation order.
func (s *Scene) Windows() []*Window {
	out := make([]*Window, len(s.windows))
	copy(out, s.windows)
	return out
}

// NodeCount returns the number of live nodes.
func (s *Scene) NodeCount() int {
	return len(s.nodes) - len(s.free)
}

// TextMetrics returns the cell metrics used by Text policies.
func (s *Scene) TextMetrics() TextMetrics {
	return s.textMetrics
}

// reportError hands a drain error raised outside Run or RunPending to the
// error handler.
func (s *Scene) reportError(err error) {
	if s.onError != nil {
		s.onError(err)
		return
	}
	debug.Warn("unhandled drain error", "err", err)
}
