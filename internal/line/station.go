// Package line implements a train line as a singly linked list of stations.
// It has no external dependencies and performs no I/O. A Line is not safe
// for concurrent use; callers that share one must synchronize access.
package line

// Station is a single named stop on a Line.
// Each station is owned by its predecessor, or by the Line if it is the head.
type Station struct {
	name string
	next *Station
}

// NewStation returns a detached station with the given name.
func NewStation(name string) *Station {
	return &Station{name: name}
}

// Name returns the station's name.
func (s *Station) Name() string {
	return s.name
}

// Next returns the following station, or nil if s is the last one.
func (s *Station) Next() *Station {
	return s.next
}

// SetNext links next after s.
func (s *Station) SetNext(next *Station) {
	s.next = next
}
