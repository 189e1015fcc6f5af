package domain

import "sort"

// State is the user's selection. Checked holds only members; an id that is
// not in the dataset is allowed and simply never matches anything.
type State struct {
	SelectedDate string
	Checked      map[string]bool
}

func NewState(selectedDate string) State {
	return State{SelectedDate: selectedDate, Checked: map[string]bool{}}
}

// Toggle flips membership of id.
func (s *State) Toggle(id string) {
	if s.Checked == nil {
		s.Checked = map[string]bool{}
	}
	if s.Checked[id] {
		delete(s.Checked, id)
		return
	}
	s.Checked[id] = true
}

func (s State) IsChecked(id string) bool { return s.Checked[id] }

func (s State) Count() int { return len(s.Checked) }

// IDs returns the checked ids in lexical order.
func (s State) IDs() []string {
	ids := make([]string, 0, len(s.Checked))
	for id, ok := range s.Checked {
		if ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Clone returns a deep copy safe to hand to observers.
func (s State) Clone() State {
	out := State{SelectedDate: s.SelectedDate, Checked: make(map[string]bool, len(s.Checked))}
	for id, ok := range s.Checked {
		if ok {
			out.Checked[id] = true
		}
	}
	return out
}
