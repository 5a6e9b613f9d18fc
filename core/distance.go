// Distance models a best-known path cost as a tagged value: either a finite
// int64 weight sum or the positive-infinity sentinel meaning "unreached".
//
// The tag exists so that Infinite + w can never silently overflow into a
// finite-looking wrong answer, which is the classic failure mode of using a
// magic large constant for infinity.
package core

import "strconv"

// Distance is a total path cost: Finite(value) or Infinite.
//
// The zero value is Infinite, so looking up a vertex that an algorithm never
// touched in a distance table yields the correct "unreached" answer.
type Distance struct {
	finite bool
	value  int64
}

// NewDistance returns a finite Distance of the given weight sum.
func NewDistance(v int64) Distance {
	return Distance{finite: true, value: v}
}

// Infinite returns the positive-infinity Distance (same as the zero value).
func Infinite() Distance {
	return Distance{}
}

// IsInfinite reports whether d is the infinity sentinel.
func (d Distance) IsInfinite() bool {
	return !d.finite
}

// Value returns the finite weight sum and true, or (0, false) for Infinite.
func (d Distance) Value() (int64, bool) {
	if !d.finite {
		return 0, false
	}

	return d.value, true
}

// Add returns d + w. Infinity is absorbing: Infinite.Add(w) == Infinite,
// so relaxation through an unreachable vertex can never "improve" a distance.
func (d Distance) Add(w int64) Distance {
	if !d.finite {
		return d
	}

	return Distance{finite: true, value: d.value + w}
}

// Less reports whether d is a strictly better (smaller) cost than o.
// Infinite is greater than every finite distance and not less than itself.
func (d Distance) Less(o Distance) bool {
	if !d.finite {
		return false // infinity improves nothing
	}
	if !o.finite {
		return true // any finite beats infinity
	}

	return d.value < o.value
}

// Equal reports whether d and o are the same distance
// (both Infinite, or both finite with equal values).
func (d Distance) Equal(o Distance) bool {
	if d.finite != o.finite {
		return false
	}

	return !d.finite || d.value == o.value
}

// Negative reports whether d is finite and below zero. Used by the
// all-pairs cycle check (a negative self-distance proves a negative cycle).
func (d Distance) Negative() bool {
	return d.finite && d.value < 0
}

// String renders the distance for logs and test failure messages.
func (d Distance) String() string {
	if !d.finite {
		return "+Inf"
	}

	return strconv.FormatInt(d.value, 10)
}
