package repositories

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	ActorRepo        ActorRepositoryFacade
	AddressRepo      AddressRepositoryFacade
	ReferenceRepo    ReferenceRepositoryFacade
	ListingRepo      ListingRepositoryFacade
	DocumentRepo     DocumentRepositoryFacade
	DueDiligenceRepo DueDiligenceRepositoryFacade
	ProposalRepo     ProposalRepositoryFacade
}
