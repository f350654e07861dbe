package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/precatorio_marketplace/internal/apperrors"
	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/precatorio_marketplace/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/precatorio_marketplace/internal/core/ports/services"
	"github.com/SscSPs/precatorio_marketplace/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type listingService struct {
	BaseService
	listingRepo      portsrepo.ListingRepositoryFacade
	actorRepo        portsrepo.ActorReader
	referenceRepo    portsrepo.ReferenceRepositoryFacade
	documentRepo     portsrepo.DocumentRepositoryFacade
	dueDiligenceRepo portsrepo.DueDiligenceReader
	documentStore    portsrepo.DocumentStore
}

func NewListingService(repos portsrepo.RepositoryProvider, store portsrepo.DocumentStore) portssvc.ListingSvcFacade {
	return &listingService{
		listingRepo:      repos.ListingRepo,
		actorRepo:        repos.ActorRepo,
		referenceRepo:    repos.ReferenceRepo,
		documentRepo:     repos.DocumentRepo,
		dueDiligenceRepo: repos.DueDiligenceRepo,
		documentStore:    store,
	}
}

// findMutable loads a listing through the actor's visibility scope and then applies the
// ownership guard. Outside the scope is NotFound; visible but not owned is Forbidden.
func findMutable(ctx context.Context, repo portsrepo.ListingReader, actor *domain.Actor, listingID string) (*domain.Listing, error) {
	listing, err := repo.FindListingByID(ctx, domain.ScopeFor(actor), listingID)
	if err != nil {
		return nil, err
	}
	if !domain.CanMutate(actor, listing) {
		return nil, apperrors.NewForbiddenError("only the owner or an administrator may change this listing")
	}
	return listing, nil
}

func (s *listingService) resolveOwner(ctx context.Context, actor *domain.Actor, cedenteID *string) (string, error) {
	if cedenteID == nil || *cedenteID == actor.ActorID {
		if actor.Role != domain.RoleCedente {
			if actor.IsPrivileged() {
				return "", apperrors.NewFieldValidationError("cedenteId", "administrators must name the cedente the listing belongs to")
			}
			return "", apperrors.NewForbiddenError("only cedentes may list precatórios")
		}
		return actor.ActorID, nil
	}
	if !actor.IsPrivileged() {
		return "", apperrors.NewForbiddenError("only administrators may list on behalf of another cedente")
	}
	owner, err := s.actorRepo.FindActorByID(ctx, *cedenteID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.NewFieldValidationError("cedenteId", "cedente does not exist")
		}
		return "", err
	}
	if owner.Role != domain.RoleCedente {
		return "", apperrors.NewFieldValidationError("cedenteId", "referenced actor is not a cedente")
	}
	return owner.ActorID, nil
}

func (s *listingService) checkAdvogado(ctx context.Context, advogadoID string) error {
	advogado, err := s.actorRepo.FindActorByID(ctx, advogadoID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewFieldValidationError("advogadoId", "advogado does not exist")
		}
		return err
	}
	if advogado.Role != domain.RoleAdvogado {
		return apperrors.NewFieldValidationError("advogadoId", "referenced actor is not an advogado")
	}
	return nil
}

func (s *listingService) CreateListing(ctx context.Context, actor *domain.Actor, req dto.CreateListingRequest) (*domain.Listing, error) {
	ownerID, err := s.resolveOwner(ctx, actor, req.CedenteID)
	if err != nil {
		return nil, err
	}
	if req.AdvogadoID != nil {
		if err := s.checkAdvogado(ctx, *req.AdvogadoID); err != nil {
			return nil, err
		}
	}
	court, err := s.referenceRepo.FindCourtByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewFieldValidationError("courtId", "court does not exist")
		}
		return nil, err
	}
	debtor, err := s.referenceRepo.FindDebtorByID(ctx, req.DebtorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewFieldValidationError("debtorId", "debtor entity does not exist")
		}
		return nil, err
	}

	face := *req.FaceValue
	if err := requireNonNegative("faceValue", face); err != nil {
		return nil, err
	}
	if req.AskingValue != nil {
		if err := requireNonNegative("askingValue", *req.AskingValue); err != nil {
			return nil, err
		}
	}
	if !domain.AskingWithinFace(face, req.AskingValue) {
		return nil, apperrors.NewFieldValidationError("askingValue", "asking value must not exceed face value")
	}
	fee := decimal.Zero
	if req.FeePercent != nil {
		fee = *req.FeePercent
		if err := requirePercent("feePercent", fee); err != nil {
			return nil, err
		}
	}
	issueDate, err := parseDate("issueDate", req.IssueDate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	listing := domain.Listing{
		ListingID:     uuid.NewString(),
		CedenteID:     ownerID,
		AdvogadoID:    req.AdvogadoID,
		CourtID:       court.CourtID,
		DebtorID:      debtor.DebtorID,
		ProcessNumber: strings.TrimSpace(req.ProcessNumber),
		Nature:        domain.Nature(req.Nature),
		FaceValue:     face,
		AskingValue:   req.AskingValue,
		FeePercent:    fee,
		IssueDate:     issueDate,
		BudgetYear:    req.BudgetYear,
		Status:        domain.ListingEmAnalise,
		Description:   req.Description,
		AuditFields:   domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.listingRepo.SaveListing(ctx, listing); err != nil {
		s.LogUnexpected(ctx, err, "Failed to save listing", slog.String("process_number", listing.ProcessNumber))
		return nil, err
	}

	listing.Court = court
	listing.Debtor = debtor
	s.LogInfo(ctx, "Listing created",
		slog.String("listing_id", listing.ListingID),
		slog.String("cedente_id", listing.CedenteID))
	return &listing, nil
}

func (s *listingService) GetListing(ctx context.Context, actor *domain.Actor, listingID string) (*domain.Listing, error) {
	listing, err := s.listingRepo.FindListingByID(ctx, domain.ScopeFor(actor), listingID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find listing", slog.String("listing_id", listingID))
		return nil, err
	}

	if listing.Court, err = s.referenceRepo.FindCourtByID(ctx, listing.CourtID); err != nil {
		return nil, err
	}
	if listing.Debtor, err = s.referenceRepo.FindDebtorByID(ctx, listing.DebtorID); err != nil {
		return nil, err
	}
	if listing.Documents, err = s.documentRepo.ListDocuments(ctx, listing.ListingID); err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *listingService) ListListings(ctx context.Context, actor *domain.Actor, filter domain.ListingFilter, page domain.Page) ([]domain.Listing, int, error) {
	listings, total, err := s.listingRepo.ListListings(ctx, domain.ScopeFor(actor), filter, page.Normalize())
	if err != nil {
		s.LogError(ctx, err, "Failed to list listings", slog.String("actor_id", actor.ActorID))
		return nil, 0, err
	}
	if listings == nil {
		listings = []domain.Listing{}
	}
	return listings, total, nil
}

func (s *listingService) UpdateListing(ctx context.Context, actor *domain.Actor, listingID string, req dto.UpdateListingRequest) (*domain.Listing, error) {
	listing, err := findMutable(ctx, s.listingRepo, actor, listingID)
	if err != nil {
		return nil, err
	}

	if req.AdvogadoID != nil {
		if err := s.checkAdvogado(ctx, *req.AdvogadoID); err != nil {
			return nil, err
		}
		listing.AdvogadoID = req.AdvogadoID
	}
	if req.AskingValue != nil {
		if err := requireNonNegative("askingValue", *req.AskingValue); err != nil {
			return nil, err
		}
		listing.AskingValue = req.AskingValue
	}
	if !domain.AskingWithinFace(listing.FaceValue, listing.AskingValue) {
		return nil, apperrors.NewFieldValidationError("askingValue", "asking value must not exceed face value")
	}
	if req.FeePercent != nil {
		if err := requirePercent("feePercent", *req.FeePercent); err != nil {
			return nil, err
		}
		listing.FeePercent = *req.FeePercent
	}
	if req.Description != nil {
		listing.Description = req.Description
	}
	if req.Status != nil {
		next, ok := domain.ParseListingStatus(*req.Status)
		if !ok {
			return nil, apperrors.NewFieldValidationError("status", "unknown listing status")
		}
		if next == domain.ListingDisponivel && listing.Status != domain.ListingDisponivel {
			if err := s.requireClearedReview(ctx, listing.ListingID); err != nil {
				return nil, err
			}
		}
		listing.Status = next
	}
	listing.UpdatedAt = time.Now()

	if err := s.listingRepo.UpdateListing(ctx, *listing); err != nil {
		s.LogUnexpected(ctx, err, "Failed to update listing", slog.String("listing_id", listingID))
		return nil, err
	}
	s.LogInfo(ctx, "Listing updated",
		slog.String("listing_id", listingID),
		slog.String("status", string(listing.Status)))
	return listing, nil
}

// requireClearedReview allows a listing on sale only when its active review cleared it.
func (s *listingService) requireClearedReview(ctx context.Context, listingID string) error {
	dd, err := s.dueDiligenceRepo.FindActiveDueDiligence(ctx, listingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewInvalidTransitionError("listing has no approved due diligence")
		}
		return err
	}
	if !dd.Status.Clears() {
		return apperrors.NewInvalidTransitionError("due diligence is " + string(dd.Status) + ", not approved")
	}
	return nil
}

func (s *listingService) DeleteListing(ctx context.Context, actor *domain.Actor, listingID string) error {
	listing, err := findMutable(ctx, s.listingRepo, actor, listingID)
	if err != nil {
		return err
	}
	docs, err := s.documentRepo.ListDocuments(ctx, listing.ListingID)
	if err != nil {
		return err
	}
	if err := s.listingRepo.DeleteListing(ctx, listing.ListingID); err != nil {
		s.LogUnexpected(ctx, err, "Failed to delete listing", slog.String("listing_id", listingID))
		return err
	}

	// Rows cascade with the listing; the stored objects do not.
	for _, doc := range docs {
		if err := s.documentStore.Delete(ctx, doc.FileRef); err != nil {
			s.LogError(ctx, err, "Failed to delete stored document", slog.String("file_ref", doc.FileRef))
		}
	}
	s.LogInfo(ctx, "Listing deleted", slog.String("listing_id", listingID))
	return nil
}
