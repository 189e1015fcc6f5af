package domain

// VenueIndex resolves a venue reference given as either id or display name.
// Datasets mix both forms, so references are normalized once here.
type VenueIndex struct {
	byID   map[string]Venue
	byName map[string]Venue
}

func NewVenueIndex(venues []Venue) VenueIndex {
	idx := VenueIndex{
		byID:   make(map[string]Venue, len(venues)),
		byName: make(map[string]Venue, len(venues)),
	}
	for _, v := range venues {
		if _, ok := idx.byID[v.ID]; !ok {
			idx.byID[v.ID] = v
		}
		if _, ok := idx.byName[v.Name]; !ok {
			idx.byName[v.Name] = v
		}
	}
	return idx
}

// Resolve prefers an id match over a name match.
func (idx VenueIndex) Resolve(ref string) (Venue, bool) {
	if v, ok := idx.byID[ref]; ok {
		return v, true
	}
	v, ok := idx.byName[ref]
	return v, ok
}

// CanonicalID returns the venue id for ref, or "" when ref names no venue.
func (idx VenueIndex) CanonicalID(ref string) string {
	if v, ok := idx.Resolve(ref); ok {
		return v.ID
	}
	return ""
}
