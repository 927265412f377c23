package generator

// Store owns the live obstacles of one engine.
// It is mutated only by the engine; readers work on Snapshot copies.
type Store struct {
	obstacles []Obstacle
}

// NewStore creates an empty obstacle store.
func NewStore() *Store {
	return &Store{obstacles: make([]Obstacle, 0, 64)}
}

// Add appends obstacles to the store.
func (s *Store) Add(obstacles ...Obstacle) {
	s.obstacles = append(s.obstacles, obstacles...)
}

// RemoveBelow drops every obstacle whose Y is below threshold and returns
// the removed obstacles. Survivors keep their order.
func (s *Store) RemoveBelow(threshold float64) []Obstacle {
	var removed []Obstacle
	for _, o := range s.obstacles {
		if o.Y < threshold {
			removed = append(removed, o)
		}
	}
	if len(removed) == 0 {
		return nil
	}

	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.Y >= threshold {
			kept = append(kept, o)
		}
	}
	// Clear the tail so removed Movement pointers are not retained
	for i := len(kept); i < len(s.obstacles); i++ {
		s.obstacles[i] = Obstacle{}
	}
	s.obstacles = kept
	return removed
}

// Snapshot returns a copy of the live obstacles.
// The slice is safe to keep for the current tick only; Movement pointers
// refer to live hazard state.
func (s *Store) Snapshot() []Obstacle {
	out := make([]Obstacle, len(s.obstacles))
	copy(out, s.obstacles)
	return out
}

// Len returns the number of live obstacles.
func (s *Store) Len() int {
	return len(s.obstacles)
}

// ByRow returns copies of the obstacles belonging to one row.
func (s *Store) ByRow(index int) []Obstacle {
	var out []Obstacle
	for _, o := range s.obstacles {
		if o.RowIndex == index {
			out = append(out, o)
		}
	}
	return out
}

// Count returns how many live obstacles are of the given kind.
func (s *Store) Count(kind ObstacleKind) int {
	n := 0
	for _, o := range s.obstacles {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

// Highest returns the top edge of the highest live obstacle.
func (s *Store) Highest() (float64, bool) {
	if len(s.obstacles) == 0 {
		return 0, false
	}
	top := s.obstacles[0].Top()
	for _, o := range s.obstacles[1:] {
		top = max(top, o.Top())
	}
	return top, true
}
