package advanced

import (
	"fmt"
	"math"
	"strings"
)

// A half open range [Start, End).
type Interval struct {
	Start, End float64
}

func (in Interval) Length() float64 {
	return in.End - in.Start
}

// A set of disjoint sub-ranges of a circular domain, such as the angles
// [0, 2π) around a circle. The set starts out covering the whole domain, and
// can only shrink.
type CircularIntervalSet struct {
	DomainStart, DomainEnd float64
	// Sorted and non-overlapping, never empty ranges
	intervals []Interval
}

func NewCircularIntervalSet(domainStart, domainEnd float64) *CircularIntervalSet {
	return &CircularIntervalSet{
		DomainStart: domainStart,
		DomainEnd:   domainEnd,
		intervals:   []Interval{{domainStart, domainEnd}},
	}
}

// Wrap a value into [DomainStart, DomainEnd).
func (s *CircularIntervalSet) normalize(value float64) float64 {
	span := s.DomainEnd - s.DomainStart
	if span <= 0 {
		return s.DomainStart
	}
	offset := math.Mod(value-s.DomainStart, span)
	if offset < 0 {
		offset += span
	}
	if offset >= span {
		offset = 0
	}
	return s.DomainStart + offset
}

// Keep only the part of the set lying on the arc that runs from start to end
// in the increasing direction. If start comes after end, the arc wraps around
// through the end of the domain. Values outside the domain are wrapped into
// it first.
//
// An arc that starts where it ends is taken to be the whole domain, so
// intersecting with it changes nothing. That includes the domain's own
// bounds, since DomainEnd wraps to DomainStart.
func (s *CircularIntervalSet) Intersect(start, end float64) {
	start = s.normalize(start)
	end = s.normalize(end)
	if start == end {
		return
	}

	var arcs []Interval
	if start < end {
		arcs = []Interval{{start, end}}
	} else {
		arcs = []Interval{{s.DomainStart, end}, {start, s.DomainEnd}}
	}

	var result []Interval
	for _, in := range s.intervals {
		for _, arc := range arcs {
			clipped := Interval{math.Max(in.Start, arc.Start), math.Min(in.End, arc.End)}
			if clipped.Length() > 0 {
				result = append(result, clipped)
			}
		}
	}
	// Each interval is clipped against the arcs in ascending order, and the
	// intervals themselves are sorted and disjoint, so result stays sorted.
	s.intervals = result
}

func (s *CircularIntervalSet) Clear() {
	s.intervals = nil
}

func (s *CircularIntervalSet) IsEmpty() bool {
	return len(s.intervals) == 0
}

// A copy of the intervals, in ascending order.
func (s *CircularIntervalSet) Intervals() []Interval {
	result := make([]Interval, len(s.intervals))
	copy(result, s.intervals)
	return result
}

// Total length covered by the set.
func (s *CircularIntervalSet) Length() float64 {
	var total float64
	for _, in := range s.intervals {
		total += in.Length()
	}
	return total
}

func (s *CircularIntervalSet) Contains(value float64) bool {
	value = s.normalize(value)
	for _, in := range s.intervals {
		if value >= in.Start && value < in.End {
			return true
		}
	}
	return false
}

func (s *CircularIntervalSet) String() string {
	parts := make([]string, len(s.intervals))
	for i, in := range s.intervals {
		parts[i] = fmt.Sprintf("[%g, %g)", in.Start, in.End)
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
}
