package dto

type StateOutput struct {
	SelectedDate string
	// CheckedIDs is sorted.
	CheckedIDs []string
}

func (s StateOutput) Count() int { return len(s.CheckedIDs) }

func (s StateOutput) Has(id string) bool {
	for _, v := range s.CheckedIDs {
		if v == id {
			return true
		}
	}
	return false
}
