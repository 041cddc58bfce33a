package timing

import "sync"

// targetSet is the animator's set of registered timing targets.
//
// Writers replace the backing slice rather than mutating it in place, so a
// snapshot taken before a mutation stays safe to iterate after the lock is
// released. Membership changes are effective for future notification
// passes and best-effort for passes already in flight.
type targetSet struct {
	mu   sync.Mutex
	list []TimingTarget
}

// add registers a target. Nil targets and duplicates are ignored.
func (s *targetSet) add(target TimingTarget) {
	if target == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.list {
		if t == target {
			return
		}
	}
	next := make([]TimingTarget, len(s.list), len(s.list)+1)
	copy(next, s.list)
	s.list = append(next, target)
}

// remove deregisters a target. Removing an unregistered target is a no-op.
func (s *targetSet) remove(target TimingTarget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.list {
		if t == target {
			next := make([]TimingTarget, 0, len(s.list)-1)
			next = append(next, s.list[:i]...)
			next = append(next, s.list[i+1:]...)
			s.list = next
			return
		}
	}
}

// clear deregisters all targets.
func (s *targetSet) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list = nil
}

// snapshot returns the current membership for iteration outside the lock.
// The returned slice is never mutated by the set.
func (s *targetSet) snapshot() []TimingTarget {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list
}
