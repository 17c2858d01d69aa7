package line

import (
	"slices"
	"strings"
)

// Line is an append-only sequence of stations.
// The zero value is an unnamed, empty line ready to use.
type Line struct {
	name  string
	head  *Station
	tail  *Station // kept so Append never walks the chain
	count int
}

// New returns an empty line with the given name.
func New(name string) *Line {
	return &Line{name: name}
}

// NewWithStation returns a line whose only station is initial.
// A nil initial yields an empty line. Any link already carried by initial is
// cleared so the line holds exactly one station.
func NewWithStation(name string, initial *Station) *Line {
	l := New(name)
	if initial != nil {
		initial.SetNext(nil)
		l.head = initial
		l.tail = initial
		l.count = 1
	}
	return l
}

// Name returns the label of the line.
func (l *Line) Name() string {
	return l.name
}

// Head returns the first station, or nil if the line is empty.
func (l *Line) Head() *Station {
	return l.head
}

// Tail returns the last station, or nil if the line is empty.
func (l *Line) Tail() *Station {
	return l.tail
}

// Append adds a new station with the given name to the end of the line.
// Any string, including "", is a valid name.
func (l *Line) Append(name string) {
	s := NewStation(name)
	if l.head == nil {
		l.head = s
	} else {
		l.tail.SetNext(s)
	}
	l.tail = s
	l.count++
}

// Count returns the number of stations on the line.
func (l *Line) Count() int {
	return l.count
}

// IsEmpty reports whether the line has no stations.
func (l *Line) IsEmpty() bool {
	return l.count == 0
}

// Contains reports whether any station on the line is named exactly name.
func (l *Line) Contains(name string) bool {
	return l.IndexOf(name) != -1
}

// IndexOf returns the zero-based position of the first station named name,
// or -1 if there is none. Matching is exact and case-sensitive.
func (l *Line) IndexOf(name string) int {
	i := 0
	for s := l.head; s != nil; s = s.Next() {
		if s.Name() == name {
			return i
		}
		i++
	}
	return -1
}

// Names returns the station names from head to tail.
// The returned slice is never nil.
func (l *Line) Names() []string {
	names := make([]string, 0, l.count)
	for s := l.head; s != nil; s = s.Next() {
		names = append(names, s.Name())
	}
	return names
}

// ReverseSequence returns the station names from tail to head, one per line,
// with no leading or trailing newline. An empty line yields "".
func (l *Line) ReverseSequence() string {
	// The walk follows the chain rather than trusting count, so a station
	// shared with another line cannot push it out of bounds.
	names := make([]string, 0, l.count)
	for s := l.head; s != nil; s = s.Next() {
		names = append(names, s.Name())
	}
	slices.Reverse(names)
	return strings.Join(names, "\n")
}
