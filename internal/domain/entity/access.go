package entity

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned by access policies that cannot map a
// coordinate into the grid. It is recoverable: callers skip the cell.
var ErrOutOfBounds = errors.New("tile coordinate out of bounds")

// AccessPolicy decides how a grid coordinate outside [0,w)x[0,h) is
// resolved. The set is closed; each policy maps to one locate function.
type AccessPolicy uint8

const (
	AccessStrict AccessPolicy = iota // out of range on either axis fails
	AccessEdge                       // both axes clamp to the border
	AccessClampX                     // x clamps, y out of range fails
	AccessClampY                     // y clamps, x out of range fails
	AccessWrapX                      // x repeats, y out of range fails
	AccessWrapY                      // y repeats, x out of range fails
	AccessTorus                      // both axes repeat
)

type locateFunc func(w, h, x, y int) (int, int, bool)

var locators = [...]locateFunc{
	AccessStrict: func(w, h, x, y int) (int, int, bool) {
		return x, y, inRange(x, w) && inRange(y, h)
	},
	AccessEdge: func(w, h, x, y int) (int, int, bool) {
		return clamp(x, w), clamp(y, h), true
	},
	AccessClampX: func(w, h, x, y int) (int, int, bool) {
		return clamp(x, w), y, inRange(y, h)
	},
	AccessClampY: func(w, h, x, y int) (int, int, bool) {
		return x, clamp(y, h), inRange(x, w)
	},
	AccessWrapX: func(w, h, x, y int) (int, int, bool) {
		return wrap(x, w), y, inRange(y, h)
	},
	AccessWrapY: func(w, h, x, y int) (int, int, bool) {
		return x, wrap(y, h), inRange(x, w)
	},
	AccessTorus: func(w, h, x, y int) (int, int, bool) {
		return wrap(x, w), wrap(y, h), true
	},
}

var policyNames = [...]string{
	AccessStrict: "strict",
	AccessEdge:   "edge",
	AccessClampX: "clamp-x",
	AccessClampY: "clamp-y",
	AccessWrapX:  "wrap-x",
	AccessWrapY:  "wrap-y",
	AccessTorus:  "torus",
}

// Locate maps (x, y) into a grid of size w x h.
func (p AccessPolicy) Locate(w, h, x, y int) (int, int, error) {
	if int(p) >= len(locators) || w <= 0 || h <= 0 {
		return 0, 0, ErrOutOfBounds
	}
	lx, ly, ok := locators[p](w, h, x, y)
	if !ok {
		return 0, 0, ErrOutOfBounds
	}
	return lx, ly, nil
}

// Total reports whether the policy resolves every coordinate.
func (p AccessPolicy) Total() bool {
	return p == AccessEdge || p == AccessTorus
}

func (p AccessPolicy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("AccessPolicy(%d)", uint8(p))
}

// ParseAccessPolicy parses a policy name as written in level configs.
// An empty name selects AccessEdge.
func ParseAccessPolicy(name string) (AccessPolicy, error) {
	if name == "" {
		return AccessEdge, nil
	}
	for p, n := range policyNames {
		if n == name {
			return AccessPolicy(p), nil
		}
	}
	return AccessStrict, fmt.Errorf("unknown access policy %q", name)
}

func inRange(v, n int) bool {
	return v >= 0 && v < n
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// wrap is a floored modulo, so negative coordinates repeat as well.
func wrap(v, n int) int {
	return (v%n + n) % n
}
