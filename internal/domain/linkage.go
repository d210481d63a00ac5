package domain

// Linkage is one level deep: a child rolls its progress ledger up into the
// goal named by its ParentGoalID, and the pair is kept field-identical.
// Only direct pairs are ever traversed, so self-references and cycles
// through intermediate goals cannot cause unbounded walks.

// LinkedPair is a resolved child/parent relationship
type LinkedPair struct {
	Child  *Goal
	Parent *Goal
}

// IndexByID builds an id lookup over the goal collection
func IndexByID(goals []*Goal) map[string]*Goal {
	idx := make(map[string]*Goal, len(goals))
	for _, g := range goals {
		idx[g.ID] = g
	}
	return idx
}

// RelatedGoals returns the symmetric peer set for a goal: the goal itself,
// its parent when the reference resolves, and every goal whose
// ParentGoalID names it. A dangling parent reference contributes nothing.
func RelatedGoals(all []*Goal, goal *Goal) []*Goal {
	related := []*Goal{goal}
	if goal.ParentGoalID != "" && goal.ParentGoalID != goal.ID {
		if parent, ok := IndexByID(all)[goal.ParentGoalID]; ok {
			related = append(related, parent)
		}
	}
	for _, g := range all {
		if g.ID != goal.ID && g.ParentGoalID == goal.ID {
			related = append(related, g)
		}
	}
	return related
}

// LinkedPairs returns every resolvable (child, parent) pair in the
// collection, for bulk sync passes. Pairs with dangling or self
// references are skipped.
func LinkedPairs(all []*Goal) []LinkedPair {
	idx := IndexByID(all)
	var pairs []LinkedPair
	for _, g := range all {
		if g.ParentGoalID == "" || g.ParentGoalID == g.ID {
			continue
		}
		parent, ok := idx[g.ParentGoalID]
		if !ok {
			continue
		}
		pairs = append(pairs, LinkedPair{Child: g, Parent: parent})
	}
	return pairs
}
