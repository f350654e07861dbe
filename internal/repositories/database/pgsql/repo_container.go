package pgsql

import (
	portsrepo "github.com/SscSPs/precatorio_marketplace/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ActorRepo:        newPgxActorRepository(dbPool),
		AddressRepo:      newPgxAddressRepository(dbPool),
		ReferenceRepo:    newPgxReferenceRepository(dbPool),
		ListingRepo:      newPgxListingRepository(dbPool),
		DocumentRepo:     newPgxDocumentRepository(dbPool),
		DueDiligenceRepo: newPgxDueDiligenceRepository(dbPool),
		ProposalRepo:     newPgxProposalRepository(dbPool),
	}
}
