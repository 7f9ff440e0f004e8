package engine

// lineSet tracks which lines the run currently holds activated, in
// activation order, so recovery can release exactly those.
type lineSet struct {
	order []int
	seen  map[int]bool
}

func newLineSet() *lineSet {
	return &lineSet{seen: make(map[int]bool)}
}

func (s *lineSet) add(lines ...int) {
	for _, line := range lines {
		if s.seen[line] {
			continue
		}
		s.seen[line] = true
		s.order = append(s.order, line)
	}
}

func (s *lineSet) remove(lines ...int) {
	for _, line := range lines {
		if !s.seen[line] {
			continue
		}
		delete(s.seen, line)
		for i, held := range s.order {
			if held == line {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

func (s *lineSet) snapshot() []int {
	out := make([]int, len(s.order))
	copy(out, s.order)
	return out
}
