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
)

var analystRoles = []domain.Role{domain.RoleBroker, domain.RoleAdministrador}

type dueDiligenceService struct {
	BaseService
	dueDiligenceRepo portsrepo.DueDiligenceRepositoryFacade
	listingRepo      portsrepo.ListingReader
	actorRepo        portsrepo.ActorReader
}

func NewDueDiligenceService(dueDiligenceRepo portsrepo.DueDiligenceRepositoryFacade, listingRepo portsrepo.ListingReader, actorRepo portsrepo.ActorReader) portssvc.DueDiligenceSvcFacade {
	return &dueDiligenceService{dueDiligenceRepo: dueDiligenceRepo, listingRepo: listingRepo, actorRepo: actorRepo}
}

func (s *dueDiligenceService) OpenDueDiligence(ctx context.Context, actor *domain.Actor, listingID string, req dto.OpenDueDiligenceRequest) (*domain.DueDiligence, error) {
	listing, err := findMutable(ctx, s.listingRepo, actor, listingID)
	if err != nil {
		return nil, err
	}

	analyst, err := s.actorRepo.FindActorByID(ctx, req.AnalystID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewFieldValidationError("analystId", "analyst does not exist")
		}
		return nil, err
	}
	if !analyst.HasAnyRole(analystRoles...) {
		return nil, apperrors.NewFieldValidationError("analystId", "analyst must be a Broker or an Administrador")
	}
	notes := strings.TrimSpace(req.Notes)
	if notes == "" {
		return nil, apperrors.NewFieldValidationError("notes", "notes are required")
	}

	now := time.Now()
	dd := domain.DueDiligence{
		DueDiligenceID: uuid.NewString(),
		ListingID:      listing.ListingID,
		AnalystID:      analyst.ActorID,
		Status:         domain.DueDiligencePendente,
		Notes:          notes,
		AuditFields:    domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.dueDiligenceRepo.SaveDueDiligence(ctx, dd); err != nil {
		s.LogUnexpected(ctx, err, "Failed to open due diligence", slog.String("listing_id", listingID))
		return nil, err
	}

	s.LogInfo(ctx, "Due diligence opened",
		slog.String("due_diligence_id", dd.DueDiligenceID),
		slog.String("listing_id", listingID),
		slog.String("analyst_id", dd.AnalystID))
	return &dd, nil
}

// load returns the review and its listing, hiding reviews the actor is not involved in.
func (s *dueDiligenceService) load(ctx context.Context, actor *domain.Actor, dueDiligenceID string) (*domain.DueDiligence, *domain.Listing, error) {
	dd, err := s.dueDiligenceRepo.FindDueDiligenceByID(ctx, dueDiligenceID)
	if err != nil {
		return nil, nil, err
	}
	listing, err := s.listingRepo.FindListingByID(ctx, domain.VisibilityScope{All: true}, dd.ListingID)
	if err != nil {
		return nil, nil, err
	}
	if !actor.IsPrivileged() && actor.ActorID != dd.AnalystID && actor.ActorID != listing.CedenteID {
		return nil, nil, apperrors.ErrNotFound
	}
	return dd, listing, nil
}

func (s *dueDiligenceService) TransitionDueDiligence(ctx context.Context, actor *domain.Actor, dueDiligenceID string, req dto.TransitionDueDiligenceRequest) (*domain.DueDiligence, error) {
	dd, listing, err := s.load(ctx, actor, dueDiligenceID)
	if err != nil {
		return nil, err
	}
	if actor.ActorID != dd.AnalystID && !actor.IsPrivileged() {
		return nil, apperrors.NewForbiddenError("only the assigned analyst or an administrator may review this listing")
	}
	if !actor.HasAnyRole(analystRoles...) {
		return nil, apperrors.NewForbiddenError("only brokers and administrators may review listings")
	}

	next, ok := domain.ParseDueDiligenceStatus(req.Status)
	if !ok {
		return nil, apperrors.NewFieldValidationError("status", "unknown due diligence status")
	}
	from := dd.Status
	if !from.CanTransitionTo(next) {
		return nil, apperrors.NewInvalidTransitionError("cannot move due diligence from " + string(from) + " to " + string(next))
	}
	if next == domain.DueDiligenceRepactuado {
		if req.RepactuationReason == nil || strings.TrimSpace(*req.RepactuationReason) == "" {
			return nil, apperrors.NewFieldValidationError("repactuationReason", "a reason is required to renegotiate")
		}
		reason := strings.TrimSpace(*req.RepactuationReason)
		dd.RepactuationReason = &reason
	}
	if req.Notes != nil {
		notes := strings.TrimSpace(*req.Notes)
		if notes == "" {
			return nil, apperrors.NewFieldValidationError("notes", "notes cannot be cleared")
		}
		dd.Notes = notes
	}
	if req.DocumentApproved != nil {
		dd.DocumentApproved = *req.DocumentApproved
	}
	dd.Apply(next, time.Now())

	var move *domain.ListingMove
	if next == domain.DueDiligenceAprovado {
		move = &domain.ListingMove{ListingID: listing.ListingID, From: domain.ListingEmAnalise, To: domain.ListingDisponivel}
	}

	if err := s.dueDiligenceRepo.UpdateDueDiligence(ctx, *dd, from, move); err != nil {
		s.LogUnexpected(ctx, err, "Failed to transition due diligence", slog.String("due_diligence_id", dueDiligenceID))
		return nil, err
	}

	s.LogInfo(ctx, "Due diligence transitioned",
		slog.String("due_diligence_id", dueDiligenceID),
		slog.String("from", string(from)),
		slog.String("to", string(next)))
	return dd, nil
}

func (s *dueDiligenceService) GetDueDiligence(ctx context.Context, actor *domain.Actor, dueDiligenceID string) (*domain.DueDiligence, error) {
	dd, _, err := s.load(ctx, actor, dueDiligenceID)
	return dd, err
}

func (s *dueDiligenceService) ListDueDiligences(ctx context.Context, actor *domain.Actor, listingID string) ([]domain.DueDiligence, error) {
	listing, err := s.listingRepo.FindListingByID(ctx, domain.VisibilityScope{All: true}, listingID)
	if err != nil {
		return nil, err
	}
	dds, err := s.dueDiligenceRepo.ListDueDiligences(ctx, listingID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list due diligences", slog.String("listing_id", listingID))
		return nil, err
	}
	if actor.IsPrivileged() || actor.ActorID == listing.CedenteID {
		if dds == nil {
			dds = []domain.DueDiligence{}
		}
		return dds, nil
	}

	assigned := make([]domain.DueDiligence, 0, len(dds))
	for _, dd := range dds {
		if dd.AnalystID == actor.ActorID {
			assigned = append(assigned, dd)
		}
	}
	if len(assigned) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return assigned, nil
}
