// Package refdiff computes the per-relation change sets the reference
// maintainer applies after an entity update. Set-valued relations (sizes,
// flavours) diff into added/removed id sets; single-valued relations
// (category, billboard) reduce to a swap.
package refdiff

import "go.mongodb.org/mongo-driver/bson/primitive"

// Change is the outcome of diffing one set-valued relation.
type Change struct {
	Added   []primitive.ObjectID
	Removed []primitive.ObjectID
}

// Empty reports whether the change carries no work.
func (c Change) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0
}

// Diff computes old→new membership changes. Ids present on both sides are
// untouched; duplicates within a side are collapsed.
func Diff(old, new []primitive.ObjectID) Change {
	oldSet := toSet(old)
	newSet := toSet(new)

	var change Change
	for _, id := range new {
		if _, seen := newSet[id]; !seen {
			continue // already emitted
		}
		delete(newSet, id)
		if _, ok := oldSet[id]; !ok {
			change.Added = append(change.Added, id)
		}
	}
	// rebuild to test membership of removals against the full new side
	newSet = toSet(new)
	for _, id := range old {
		if _, seen := oldSet[id]; !seen {
			continue
		}
		delete(oldSet, id)
		if _, ok := newSet[id]; !ok {
			change.Removed = append(change.Removed, id)
		}
	}
	return change
}

// Swap compares a single-valued relation. Both sides may be nil (relation
// optional). Returns the detach/attach targets; equal values mean no-op.
func Swap(old, new *primitive.ObjectID) (detach, attach *primitive.ObjectID, changed bool) {
	switch {
	case old == nil && new == nil:
		return nil, nil, false
	case old == nil:
		return nil, new, true
	case new == nil:
		return old, nil, true
	case *old == *new:
		return nil, nil, false
	default:
		return old, new, true
	}
}

// Contains reports whether ids holds id.
func Contains(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func toSet(ids []primitive.ObjectID) map[primitive.ObjectID]struct{} {
	set := make(map[primitive.ObjectID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
