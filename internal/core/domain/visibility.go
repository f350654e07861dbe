package domain

// VisibilityScope is the set of listings an actor may see, expressed as data so the
// repository can turn it into a mandatory predicate.
type VisibilityScope struct {
	// All grants every listing.
	All bool
	// OwnerID grants listings whose cedente is this actor.
	OwnerID string
	// IncludeAvailable additionally grants listings in ListingDisponivel.
	IncludeAvailable bool
}

// ScopeFor computes the visibility scope of an actor.
func ScopeFor(a *Actor) VisibilityScope {
	if a.IsPrivileged() {
		return VisibilityScope{All: true}
	}
	scope := VisibilityScope{OwnerID: a.ActorID}
	if a.HasAnyRole(RoleBroker, RoleAdvogado) {
		scope.IncludeAvailable = true
	}
	return scope
}

// Allows reports whether l falls inside the scope.
func (s VisibilityScope) Allows(l *Listing) bool {
	if s.All {
		return true
	}
	if l.CedenteID == s.OwnerID {
		return true
	}
	return s.IncludeAvailable && l.Status == ListingDisponivel
}

// CanView reports whether the actor may read the listing.
func CanView(a *Actor, l *Listing) bool {
	return ScopeFor(a).Allows(l)
}

// CanMutate reports whether the actor may update, delete or attach documents to the listing.
func CanMutate(a *Actor, l *Listing) bool {
	return a.IsPrivileged() || l.CedenteID == a.ActorID
}
