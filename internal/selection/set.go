// Package selection holds the skill ids chosen within one open form.
// A Set has exactly one logical owner at a time and does no locking of
// its own; a host sharing one across goroutines must serialize access.
package selection

// Set is an insertion-ordered set of skill ids.
type Set struct {
	ids     []string
	members map[string]bool
}

// New builds a set from seed ids, dropping duplicates. Order of first
// occurrence is kept for display but carries no meaning.
func New(seed ...string) *Set {
	s := &Set{members: make(map[string]bool, len(seed))}
	for _, id := range seed {
		s.Add(id)
	}
	return s
}

// Add appends id unless already present.
func (s *Set) Add(id string) {
	if s.members[id] {
		return
	}
	s.members[id] = true
	s.ids = append(s.ids, id)
}

// Remove deletes id; absent ids are a no-op.
func (s *Set) Remove(id string) {
	if !s.members[id] {
		return
	}
	delete(s.members, id)
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
}

// Toggle removes id if present, otherwise adds it. Two toggles in a
// row leave membership as it started.
func (s *Set) Toggle(id string) {
	if s.members[id] {
		s.Remove(id)
		return
	}
	s.Add(id)
}

func (s *Set) Contains(id string) bool {
	return s.members[id]
}

func (s *Set) Len() int {
	return len(s.ids)
}

// IDs returns the ids in insertion order. The slice is a copy.
func (s *Set) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Membership returns the set as a lookup map, the shape the search
// engine and facet browser take as input. The map is a copy.
func (s *Set) Membership() map[string]bool {
	out := make(map[string]bool, len(s.members))
	for id := range s.members {
		out[id] = true
	}
	return out
}
