package scene

import (
	"fmt"
	"math"

	"github.com/grindlemire/go-scene/internal/layout"
)

// Option configures a node created by Scene.NewNode.
type Option func(Node) error

// WithName sets the node's debug name.
func WithName(name string) Option {
	return func(n Node) error {
		n.SetName(name)
		return nil
	}
}

// WithWidth pins the node's width.
func WithWidth(w float64) Option {
	return func(n Node) error {
		if err := checkLength("width", w, false); err != nil {
			return err
		}
		n.SetWidth(w)
		return nil
	}
}

// WithHeight pins the node's height.
func WithHeight(h float64) Option {
	return func(n Node) error {
		if err := checkLength("height", h, false); err != nil {
			return err
		}
		n.SetHeight(h)
		return nil
	}
}

// WithSize pins both axes.
func WithSize(w, h float64) Option {
	return func(n Node) error {
		if err := checkLength("width", w, false); err != nil {
			return err
		}
		if err := checkLength("height", h, false); err != nil {
			return err
		}
		n.SetSize(w, h)
		return nil
	}
}

// WithMinSize sets minimum lengths. Pass Unset to leave an axis free.
func WithMinSize(w, h float64) Option {
	return func(n Node) error {
		if err := checkLength("min width", w, false); err != nil {
			return err
		}
		if err := checkLength("min height", h, false); err != nil {
			return err
		}
		n.SetMinWidth(w)
		n.SetMinHeight(h)
		return nil
	}
}

// WithMaxSize sets maximum lengths. Pass Unset to leave an axis free.
func WithMaxSize(w, h float64) Option {
	return func(n Node) error {
		if err := checkLength("max width", w, true); err != nil {
			return err
		}
		if err := checkLength("max height", h, true); err != nil {
			return err
		}
		n.SetMaxWidth(w)
		n.SetMaxHeight(h)
		return nil
	}
}

// WithMargin sets the space outside the node.
func WithMargin(t Thickness) Option {
	return func(n Node) error {
		n.SetMargin(t)
		return nil
	}
}

// WithPadding sets the space between the node's edge and its content.
func WithPadding(t Thickness) Option {
	return func(n Node) error {
		n.SetPadding(t)
		return nil
	}
}

// WithAlignment sets horizontal and vertical alignment.
func WithAlignment(h, v Alignment) Option {
	return func(n Node) error {
		n.SetHorizontalAlignment(h)
		n.SetVerticalAlignment(v)
		return nil
	}
}

// WithZoom sets the uniform scale factor.
func WithZoom(z float64) Option {
	return func(n Node) error {
		if z <= 0 || !layout.IsBounded(z) {
			return fmt.Errorf("zoom must be a positive finite number, got %v", z)
		}
		n.SetZoom(z)
		return nil
	}
}

// WithVisible sets the initial visibility.
func WithVisible(v bool) Option {
	return func(n Node) error {
		n.SetVisible(v)
		return nil
	}
}

// WithEnabled sets whether hit testing may return the node.
func WithEnabled(v bool) Option {
	return func(n Node) error {
		n.SetEnabled(v)
		return nil
	}
}

// WithClipFromParent sets whether rendering clips the node to its parent.
func WithClipFromParent(v bool) Option {
	return func(n Node) error {
		n.SetClipFromParent(v)
		return nil
	}
}

// WithShadow marks the node as owning a shadow effect.
func WithShadow() Option {
	return func(n Node) error {
		n.SetShadow(true)
		return nil
	}
}

// WithZIndex sets an explicit z-index.
func WithZIndex(z int) Option {
	return func(n Node) error {
		n.SetZIndex(z)
		return nil
	}
}

// WithCell places the node in a grid row and column.
func WithCell(row, column int) Option {
	return func(n Node) error {
		n.SetRow(row)
		n.SetColumn(column)
		return nil
	}
}

// WithSpan sets the grid row and column spans. Spans below 1 are rejected
// with ErrInvalidSpan.
func WithSpan(rows, columns int) Option {
	return func(n Node) error {
		if err := n.SetRowSpan(rows); err != nil {
			return err
		}
		return n.SetColumnSpan(columns)
	}
}

// WithGrow sets the node's share of free space in a Flex parent.
func WithGrow(g float64) Option {
	return func(n Node) error {
		n.SetGrow(g)
		return nil
	}
}

// WithShrink sets the node's share of a deficit in a Flex parent.
func WithShrink(s float64) Option {
	return func(n Node) error {
		n.SetShrink(s)
		return nil
	}
}

// WithPolicy sets the node's layout policy.
func WithPolicy(p LayoutPolicy) Option {
	return func(n Node) error {
		n.SetPolicy(p)
		return nil
	}
}

// WithChildren appends children in order.
func WithChildren(children ...Node) Option {
	return func(n Node) error {
		for _, c := range children {
			n.AddChild(c)
		}
		return nil
	}
}

// checkLength accepts Unset and non-negative finite lengths. Max lengths may
// also be +Inf.
func checkLength(name string, v float64, allowInf bool) error {
	switch {
	case math.IsNaN(v):
		return nil
	case v < 0, math.IsInf(v, 1) && !allowInf:
		return fmt.Errorf("%s %v: %w", name, v, ErrInvalidLength)
	}
	return nil
}
