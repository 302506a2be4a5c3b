package scene

import (
	"errors"
	"fmt"
)

// ErrContract matches every *ContractError through errors.Is.
var ErrContract = errors.New("scene: contract violation")

// ErrWrongThread matches every *ThreadError through errors.Is.
var ErrWrongThread = errors.New("scene: called off the UI goroutine")

// ErrStopped is returned by Call and Run once the scene has been stopped.
var ErrStopped = errors.New("scene: stopped")

// ErrUnsettled is returned by RunPending when work keeps arriving after the
// settle limit.
var ErrUnsettled = errors.New("scene: did not settle")

// ErrInvalidLength is returned by node options given a negative or infinite
// length.
var ErrInvalidLength = errors.New("scene: invalid length")

// ErrRunning is returned by Run when the frame loop is already running.
var ErrRunning = errors.New("scene: already running")

// ContractKind classifies a contract violation.
type ContractKind uint8

const (
	// InvalidMeasure means a layout policy returned a NaN, negative or
	// infinite size from MeasureCore.
	InvalidMeasure ContractKind = iota + 1
	// ArrangeBeforeMeasure means Arrange was called on a node that has never
	// been measured.
	ArrangeBeforeMeasure
	// RenderBeforeArrange means Render was called on a node that has never
	// been arranged.
	RenderBeforeArrange
	// AlreadyParented means a node that already has a parent (or is a window
	// root) was added to another parent.
	AlreadyParented
	// CyclicParent means a node was added beneath itself.
	CyclicParent
	// StaleNode means a handle to a destroyed node was used.
	StaleNode
	// Oscillation means two consecutive drains raised byte-identical
	// invalidations without outside input.
	Oscillation
)

// String returns the kind name.
func (k ContractKind) String() string {
	switch k {
	case InvalidMeasure:
		return "invalid measure"
	case ArrangeBeforeMeasure:
		return "arrange before measure"
	case RenderBeforeArrange:
		return "render before arrange"
	case AlreadyParented:
		return "already parented"
	case CyclicParent:
		return "cyclic parent"
	case StaleNode:
		return "stale node"
	case Oscillation:
		return "oscillation"
	default:
		return "unknown"
	}
}

// ContractError reports a programming error in a node, a layout policy or
// the code driving the scene. Contract violations panic with a
// *ContractError; Window.Drain recovers them into its returned error.
type ContractError struct {
	Kind     ContractKind
	Node     Node
	NodeName string
	Detail   string
}

func newContractError(kind ContractKind, n Node, format string, args ...any) *ContractError {
	return &ContractError{
		Kind:     kind,
		Node:     n,
		NodeName: n.label(),
		Detail:   fmt.Sprintf(format, args...),
	}
}

func (e *ContractError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("scene: %s on node %s", e.Kind, e.NodeName)
	}
	return fmt.Sprintf("scene: %s on node %s: %s", e.Kind, e.NodeName, e.Detail)
}

// Is reports whether target is ErrContract.
func (e *ContractError) Is(target error) bool {
	return target == ErrContract
}

// ThreadError reports a layout mutation or pipeline call made from a
// goroutine other than the scene's UI goroutine.
type ThreadError struct {
	Op      string
	Owner   uint64
	Current uint64
}

func (e *ThreadError) Error() string {
	return fmt.Sprintf("scene: %s called from goroutine %d, UI goroutine is %d", e.Op, e.Current, e.Owner)
}

// Is reports whether target is ErrWrongThread.
func (e *ThreadError) Is(target error) bool {
	return target == ErrWrongThread
}
