package identity

import "github.com/google/uuid"

// Identifiable is implemented by persisted entities. Identity returns
// uuid.Nil for records that have not been saved yet.
type Identifiable interface {
	Identity() uuid.UUID
}

// Same reports whether two records refer to the same persisted entity.
// Two unsaved records (both uuid.Nil) are never the same, so freshly built
// entities can never compare equal by accident.
func Same(a, b Identifiable) bool {
	if a == nil || b == nil {
		return false
	}
	ai, bi := a.Identity(), b.Identity()
	if ai == uuid.Nil || bi == uuid.Nil {
		return false
	}
	return ai == bi
}
