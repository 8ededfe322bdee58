package domain

// ExplicitOrder is a total order over origin identities built from
// their first-seen position on the original, pre-transform classpath.
// Identities not present in the order sort after all present ones; ties
// between them are left to the stability of the caller's sort.
type ExplicitOrder struct {
	index map[OriginIdentity]int
}

// NewExplicitOrder builds the order from the given identities in
// encounter order. Duplicates keep their first position.
func NewExplicitOrder(identities []OriginIdentity) ExplicitOrder {
	index := make(map[OriginIdentity]int, len(identities))
	for _, id := range identities {
		if _, ok := index[id]; ok {
			continue
		}
		index[id] = len(index)
	}
	return ExplicitOrder{index: index}
}

// Position returns the sort key for an identity. Unknown identities
// all map to the same position past the end of the order.
func (o ExplicitOrder) Position(id OriginIdentity) int {
	if pos, ok := o.index[id]; ok {
		return pos
	}
	return len(o.index)
}

// Len returns the number of distinct identities in the order.
func (o ExplicitOrder) Len() int {
	return len(o.index)
}

// OrderingKey derives the explicit order for assembly: the distinct
// origin identities of the pre-transform artifact set, in encounter
// order.
func OrderingKey(originals []ResolvedArtifact) ExplicitOrder {
	identities := make([]OriginIdentity, 0, len(originals))
	for _, a := range originals {
		identities = append(identities, a.OriginIdentity())
	}
	return NewExplicitOrder(identities)
}
