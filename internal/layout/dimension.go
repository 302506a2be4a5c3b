package layout

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidDimension is returned when a dimension declaration cannot be parsed.
var ErrInvalidDimension = errors.New("invalid dimension")

// DimensionKind says how a grid row or column gets its size.
type DimensionKind uint8

const (
	DimensionAuto  DimensionKind = iota // Sized to the largest content touching it
	DimensionFixed                      // Declared size
	DimensionStar                       // Share of the leftover space by weight
)

// String returns the kind name.
func (k DimensionKind) String() string {
	switch k {
	case DimensionFixed:
		return "fixed"
	case DimensionStar:
		return "star"
	default:
		return "auto"
	}
}

// Dimension is one row or column of a grid. The kind is fixed at
// construction; the resolved size and start position are written by the
// grid solver.
type Dimension struct {
	kind  DimensionKind
	value float64 // size for Fixed, weight for Star

	// DefaultAlignment is used for children that do not declare an
	// alignment on this dimension's axis. Unset means Stretch.
	DefaultAlignment Alignment

	desired    float64
	hasDesired bool
	start      float64
	hasStart   bool

	// scratch for the current measure pass
	content float64
	fill    bool
}

// Fixed returns a dimension with a declared size. Negative or NaN sizes
// become 0.
func Fixed(size float64) *Dimension {
	return &Dimension{kind: DimensionFixed, value: NonNegative(size)}
}

// Auto returns a content-sized dimension.
func Auto() *Dimension {
	return &Dimension{kind: DimensionAuto}
}

// Star returns a proportional dimension. Negative or NaN weights become 0.
func Star(weight float64) *Dimension {
	return &Dimension{kind: DimensionStar, value: NonNegative(weight)}
}

// DefaultDimension is the dimension a grid falls back to when it has none:
// a single star taking all the space.
func DefaultDimension() *Dimension {
	return Star(1)
}

// ParseDimension parses a declaration: "" or "auto" for Auto, "*" or "2.5*"
// for Star, and a plain number for Fixed.
func ParseDimension(s string) (*Dimension, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case s == "" || s == "auto":
		return Auto(), nil
	case strings.HasSuffix(s, "*"):
		w := 1.0
		if prefix := strings.TrimSuffix(s, "*"); prefix != "" {
			v, err := strconv.ParseFloat(prefix, 64)
			if err != nil {
				return nil, fmt.Errorf("%w %q: %v", ErrInvalidDimension, s, err)
			}
			w = v
		}
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, fmt.Errorf("%w %q: weight must be a non-negative number", ErrInvalidDimension, s)
		}
		return Star(w), nil
	default:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidDimension, s, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, fmt.Errorf("%w %q: size must be a non-negative number", ErrInvalidDimension, s)
		}
		return Fixed(v), nil
	}
}

// Kind returns how the dimension is sized.
func (d *Dimension) Kind() DimensionKind {
	return d.kind
}

// Value returns the declared size (Fixed) or weight (Star); 0 for Auto.
func (d *Dimension) Value() float64 {
	return d.value
}

// DesiredSize returns the size resolved by the last measure pass.
func (d *Dimension) DesiredSize() (float64, bool) {
	return d.desired, d.hasDesired
}

// FinalStartPosition returns the start offset assigned by the last arrange
// pass. ok is false when the dimension lies outside the arranged space.
func (d *Dimension) FinalStartPosition() (float64, bool) {
	return d.start, d.hasStart
}

// size returns the resolved size, or 0 when not yet resolved.
func (d *Dimension) size() float64 {
	if !d.hasDesired {
		return 0
	}
	return d.desired
}

func (d *Dimension) setDesired(v float64) {
	d.desired = v
	d.hasDesired = true
}

func (d *Dimension) reset() {
	d.desired, d.hasDesired = 0, false
	d.content = 0
	d.fill = false
}

// String formats the dimension the way ParseDimension reads it.
func (d *Dimension) String() string {
	switch d.kind {
	case DimensionFixed:
		return strconv.FormatFloat(d.value, 'g', -1, 64)
	case DimensionStar:
		if d.value == 1 {
			return "*"
		}
		return strconv.FormatFloat(d.value, 'g', -1, 64) + "*"
	default:
		return "auto"
	}
}

// DimensionList is an ordered set of rows or columns. It is never empty:
// removing the last dimension inserts a fresh default one.
type DimensionList struct {
	dims []*Dimension

	// OnChange is called after every mutation.
	OnChange func()
}

// NewDimensionList creates a list holding dims, or a single default
// dimension when dims is empty.
func NewDimensionList(dims ...*Dimension) *DimensionList {
	l := &DimensionList{}
	for _, d := range dims {
		if d != nil {
			l.dims = append(l.dims, d)
		}
	}
	l.ensureNotEmpty()
	return l
}

// Len returns the number of dimensions.
func (l *DimensionList) Len() int {
	return len(l.dims)
}

// At returns the dimension at index i.
func (l *DimensionList) At(i int) *Dimension {
	return l.dims[i]
}

// All returns the dimensions in declaration order.
func (l *DimensionList) All() []*Dimension {
	return l.dims
}

// Add appends dimensions.
func (l *DimensionList) Add(dims ...*Dimension) {
	for _, d := range dims {
		if d != nil {
			l.dims = append(l.dims, d)
		}
	}
	l.changed()
}

// Insert places d at index i (clamped to the list bounds).
func (l *DimensionList) Insert(i int, d *Dimension) {
	if d == nil {
		return
	}
	i = max(0, min(i, len(l.dims)))
	l.dims = append(l.dims, nil)
	copy(l.dims[i+1:], l.dims[i:])
	l.dims[i] = d
	l.changed()
}

// Set replaces the dimension at index i.
func (l *DimensionList) Set(i int, d *Dimension) {
	if d == nil || i < 0 || i >= len(l.dims) {
		return
	}
	l.dims[i] = d
	l.changed()
}

// RemoveAt removes the dimension at index i. Returns false if i is out of range.
func (l *DimensionList) RemoveAt(i int) bool {
	if i < 0 || i >= len(l.dims) {
		return false
	}
	l.dims = append(l.dims[:i], l.dims[i+1:]...)
	l.ensureNotEmpty()
	l.changed()
	return true
}

// Remove removes d by pointer. Returns true if it was found.
func (l *DimensionList) Remove(d *Dimension) bool {
	for i, c := range l.dims {
		if c == d {
			return l.RemoveAt(i)
		}
	}
	return false
}

// Clear removes every dimension, leaving a single default one.
func (l *DimensionList) Clear() {
	l.dims = nil
	l.ensureNotEmpty()
	l.changed()
}

func (l *DimensionList) ensureNotEmpty() {
	if len(l.dims) == 0 {
		l.dims = append(l.dims, DefaultDimension())
	}
}

func (l *DimensionList) changed() {
	if l.OnChange != nil {
		l.OnChange()
	}
}
