package tracker

// UndoStack keeps the most recent prior intake values, newest last. Pushing
// past its depth drops the oldest value.
type UndoStack struct {
	depth  int
	values []float64
}

// NewUndoStack returns an empty stack holding at most depth values.
func NewUndoStack(depth int) *UndoStack {
	if depth <= 0 {
		depth = UndoDepth
	}
	return &UndoStack{depth: depth, values: make([]float64, 0, depth)}
}

// Push records v.
func (s *UndoStack) Push(v float64) {
	s.values = append(s.values, v)
	if len(s.values) > s.depth {
		s.values = append(s.values[:0], s.values[len(s.values)-s.depth:]...)
	}
}

// Pop removes and returns the most recently pushed value.
func (s *UndoStack) Pop() (float64, bool) {
	if len(s.values) == 0 {
		return 0, false
	}
	v := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]
	return v, true
}

// Len is the number of values held.
func (s *UndoStack) Len() int {
	return len(s.values)
}

// Clear drops every value.
func (s *UndoStack) Clear() {
	s.values = s.values[:0]
}
