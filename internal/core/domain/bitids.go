package domain

// BitIDs is an ordered collection of ids. Duplicates are allowed until Dedupe.
type BitIDs []BitID

// ParseBitIDs parses every raw id, failing on the first malformed one.
func ParseBitIDs(raws []string) (BitIDs, error) {
	ids := make(BitIDs, 0, len(raws))
	for _, raw := range raws {
		id, err := ParseBitID(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Dedupe returns the ids with later duplicates removed, keeping first occurrences in order.
func (ids BitIDs) Dedupe() BitIDs {
	seen := make(map[string]struct{}, len(ids))
	out := make(BitIDs, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id.Key()]; ok {
			continue
		}
		seen[id.Key()] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Strings formats every id.
func (ids BitIDs) Strings() []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// Contains reports whether an id with the same key is present.
func (ids BitIDs) Contains(target BitID) bool {
	for _, id := range ids {
		if id.Key() == target.Key() {
			return true
		}
	}
	return false
}

// ScopeGroup is the slice of a BitIDs owned by one scope.
// Positions holds the index of each id in the original collection.
type ScopeGroup struct {
	Scope     string
	IDs       BitIDs
	Positions []int
}

// GroupByScope splits the ids by owning scope. Groups appear in order of first
// occurrence and each group keeps the requested order of its ids.
func (ids BitIDs) GroupByScope() []ScopeGroup {
	index := make(map[string]int)
	var groups []ScopeGroup
	for pos, id := range ids {
		i, ok := index[id.Scope]
		if !ok {
			i = len(groups)
			index[id.Scope] = i
			groups = append(groups, ScopeGroup{Scope: id.Scope})
		}
		groups[i].IDs = append(groups[i].IDs, id)
		groups[i].Positions = append(groups[i].Positions, pos)
	}
	return groups
}
