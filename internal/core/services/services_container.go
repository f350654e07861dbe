package services

import (
	portsrepo "github.com/SscSPs/precatorio_marketplace/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/precatorio_marketplace/internal/core/ports/services"
	"github.com/SscSPs/precatorio_marketplace/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, store portsrepo.DocumentStore, denylist portsrepo.TokenDenylist) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth:         NewAuthService(cfg, repos.ActorRepo, denylist),
		GoogleOAuth:  NewGoogleOAuthService(cfg),
		User:         NewUserService(repos.ActorRepo, repos.AddressRepo),
		Address:      NewAddressService(repos.AddressRepo),
		Reference:    NewReferenceService(repos.ReferenceRepo),
		Listing:      NewListingService(repos, store),
		Document:     NewDocumentService(repos.ListingRepo, repos.DocumentRepo, store),
		DueDiligence: NewDueDiligenceService(repos.DueDiligenceRepo, repos.ListingRepo, repos.ActorRepo),
		Proposal:     NewProposalService(repos.ProposalRepo, repos.ListingRepo),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AuthSvcFacade         = (*authService)(nil)
	_ portssvc.GoogleOAuthSvcFacade  = (*googleOAuthService)(nil)
	_ portssvc.ListingSvcFacade      = (*listingService)(nil)
	_ portssvc.DueDiligenceSvcFacade = (*dueDiligenceService)(nil)
	_ portssvc.ProposalSvcFacade     = (*proposalService)(nil)
)
