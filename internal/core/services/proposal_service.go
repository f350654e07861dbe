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

const expiryReason = "due date passed without an answer"

type proposalService struct {
	BaseService
	proposalRepo portsrepo.ProposalRepositoryFacade
	listingRepo  portsrepo.ListingReader
}

func NewProposalService(proposalRepo portsrepo.ProposalRepositoryFacade, listingRepo portsrepo.ListingReader) portssvc.ProposalSvcFacade {
	return &proposalService{proposalRepo: proposalRepo, listingRepo: listingRepo}
}

func (s *proposalService) CreateProposal(ctx context.Context, actor *domain.Actor, listingID string, req dto.CreateProposalRequest) (*domain.Proposal, error) {
	listing, err := s.listingRepo.FindListingByID(ctx, domain.ScopeFor(actor), listingID)
	if err != nil {
		return nil, err
	}
	if listing.Status != domain.ListingDisponivel && listing.Status != domain.ListingEmNegociacao {
		return nil, apperrors.NewInvalidTransitionError("listing is not open for proposals")
	}
	if listing.CedenteID == actor.ActorID {
		return nil, apperrors.NewForbiddenError("owners cannot make proposals on their own listing")
	}

	amounts := []struct {
		field   string
		value   *decimal.Decimal
		percent bool
	}{
		{"proposedValue", req.ProposedValue, false},
		{"discountRate", req.DiscountRate, true},
		{"annualInterestRate", req.AnnualInterestRate, true},
		{"netValueCedente", req.NetValueCedente, false},
		{"netValueProponent", req.NetValueProponent, false},
		{"profitMarginPercent", req.ProfitMarginPercent, true},
	}
	for _, a := range amounts {
		if a.value == nil {
			return nil, apperrors.NewFieldValidationError(a.field, a.field+" is required")
		}
		check := requireNonNegative
		if a.percent {
			check = requirePercent
		}
		if err := check(a.field, *a.value); err != nil {
			return nil, err
		}
	}
	if req.TermMonths < 1 {
		return nil, apperrors.NewFieldValidationError("termMonths", "term must be at least one month")
	}
	dueDate, err := parseDate("dueDate", req.DueDate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	p := domain.Proposal{
		ProposalID:          uuid.NewString(),
		ListingID:           listing.ListingID,
		ProposerID:          actor.ActorID,
		ProposedValue:       *req.ProposedValue,
		DiscountRate:        *req.DiscountRate,
		AnnualInterestRate:  *req.AnnualInterestRate,
		TermMonths:          req.TermMonths,
		NetValueCedente:     *req.NetValueCedente,
		NetValueProponent:   *req.NetValueProponent,
		ProfitMarginPercent: *req.ProfitMarginPercent,
		DueDate:             dueDate,
		Status:              domain.ProposalRascunho,
		Notes:               req.Notes,
		AuditFields:         domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.proposalRepo.SaveProposal(ctx, p); err != nil {
		s.LogUnexpected(ctx, err, "Failed to save proposal", slog.String("listing_id", listingID))
		return nil, err
	}

	s.LogInfo(ctx, "Proposal created",
		slog.String("proposal_id", p.ProposalID),
		slog.String("listing_id", listingID))
	return &p, nil
}

// load returns the proposal and its listing. Proposals are visible to the proposer, the
// listing owner and administrators; anyone else gets ErrNotFound.
func (s *proposalService) load(ctx context.Context, actor *domain.Actor, proposalID string) (*domain.Proposal, *domain.Listing, error) {
	p, err := s.proposalRepo.FindProposalByID(ctx, proposalID)
	if err != nil {
		return nil, nil, err
	}
	listing, err := s.listingRepo.FindListingByID(ctx, domain.VisibilityScope{All: true}, p.ListingID)
	if err != nil {
		return nil, nil, err
	}
	if !actor.IsPrivileged() && actor.ActorID != p.ProposerID && actor.ActorID != listing.CedenteID {
		return nil, nil, apperrors.ErrNotFound
	}
	return p, listing, nil
}

// mayMoveTo applies the per-status actor rules of the proposal state machine.
func mayMoveTo(actor *domain.Actor, p *domain.Proposal, listing *domain.Listing, next domain.ProposalStatus) bool {
	if actor.IsPrivileged() {
		return true
	}
	switch next {
	case domain.ProposalEnviada:
		return actor.ActorID == p.ProposerID
	case domain.ProposalAceita, domain.ProposalRejeitada:
		return actor.ActorID == listing.CedenteID
	}
	return false
}

func (s *proposalService) TransitionProposal(ctx context.Context, actor *domain.Actor, proposalID string, req dto.TransitionProposalRequest) (*domain.Proposal, error) {
	p, listing, err := s.load(ctx, actor, proposalID)
	if err != nil {
		return nil, err
	}
	next, ok := domain.ParseProposalStatus(req.Status)
	if !ok {
		return nil, apperrors.NewFieldValidationError("status", "unknown proposal status")
	}
	if !p.Status.CanTransitionTo(next) {
		return nil, apperrors.NewInvalidTransitionError("cannot move proposal from " + string(p.Status) + " to " + string(next))
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, apperrors.NewFieldValidationError("reason", "a reason is required")
	}
	if !mayMoveTo(actor, p, listing, next) {
		return nil, apperrors.NewForbiddenError("not allowed to move this proposal to " + string(next))
	}

	value := p.ProposedValue
	if req.ProposedValue != nil {
		if err := requireNonNegative("proposedValue", *req.ProposedValue); err != nil {
			return nil, err
		}
		value = *req.ProposedValue
	}
	return s.apply(ctx, actor, p, next, value, reason, time.Now())
}

func (s *proposalService) ReviseProposal(ctx context.Context, actor *domain.Actor, proposalID string, req dto.ReviseProposalRequest) (*domain.Proposal, error) {
	p, _, err := s.load(ctx, actor, proposalID)
	if err != nil {
		return nil, err
	}
	if actor.ActorID != p.ProposerID && !actor.IsPrivileged() {
		return nil, apperrors.NewForbiddenError("only the proposer or an administrator may revise a proposal")
	}
	if !p.Status.Revisable() {
		return nil, apperrors.NewInvalidTransitionError("a " + string(p.Status) + " proposal can no longer be revised")
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, apperrors.NewFieldValidationError("reason", "a reason is required")
	}
	if err := requireNonNegative("proposedValue", *req.ProposedValue); err != nil {
		return nil, err
	}
	if req.ProposedValue.Equal(p.ProposedValue) {
		return nil, apperrors.NewFieldValidationError("proposedValue", "value is unchanged")
	}
	return s.apply(ctx, actor, p, p.Status, *req.ProposedValue, reason, time.Now())
}

// apply records one transition: the proposal row guarded by its current status, the
// history row, and the listing move an acceptance implies.
func (s *proposalService) apply(ctx context.Context, actor *domain.Actor, p *domain.Proposal, next domain.ProposalStatus, value decimal.Decimal, reason string, now time.Time) (*domain.Proposal, error) {
	from := p.Status
	updated := *p
	updated.Status = next
	updated.ProposedValue = value
	updated.UpdatedAt = now

	t := domain.ProposalTransition{
		Proposal: &updated,
		From:     from,
		History: domain.ProposalHistory{
			HistoryID:    uuid.NewString(),
			ProposalID:   p.ProposalID,
			StatusBefore: from,
			StatusAfter:  next,
			ValueBefore:  p.ProposedValue,
			ValueAfter:   value,
			ActorID:      actor.ActorID,
			Reason:       reason,
			CreatedAt:    now,
		},
	}
	if next == domain.ProposalAceita && from != next {
		t.ListingMove = &domain.ListingMove{ListingID: p.ListingID, From: domain.ListingDisponivel, To: domain.ListingEmNegociacao}
	}

	if err := s.proposalRepo.ApplyTransition(ctx, t); err != nil {
		s.LogUnexpected(ctx, err, "Failed to apply proposal transition",
			slog.String("proposal_id", p.ProposalID),
			slog.String("from", string(from)),
			slog.String("to", string(next)))
		return nil, err
	}

	s.LogInfo(ctx, "Proposal transitioned",
		slog.String("proposal_id", p.ProposalID),
		slog.String("from", string(from)),
		slog.String("to", string(next)))
	return &updated, nil
}

func (s *proposalService) ExpireOverdue(ctx context.Context, actor *domain.Actor, now time.Time) ([]domain.Proposal, error) {
	if err := s.RequirePrivileged(ctx, actor, "expire proposals"); err != nil {
		return nil, err
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	overdue, err := s.proposalRepo.FindOverdueProposals(ctx, today)
	if err != nil {
		s.LogError(ctx, err, "Failed to find overdue proposals")
		return nil, err
	}

	expired := make([]domain.Proposal, 0, len(overdue))
	for i := range overdue {
		p := &overdue[i]
		if !p.IsOverdue(now) {
			continue
		}
		updated, err := s.apply(ctx, actor, p, domain.ProposalExpirada, p.ProposedValue, expiryReason, now)
		if err != nil {
			// Answered between the query and the update.
			if errors.Is(err, apperrors.ErrConflict) {
				continue
			}
			return expired, err
		}
		expired = append(expired, *updated)
	}

	s.LogInfo(ctx, "Overdue proposals expired", slog.Int("count", len(expired)))
	return expired, nil
}

func (s *proposalService) GetProposal(ctx context.Context, actor *domain.Actor, proposalID string) (*domain.Proposal, error) {
	p, _, err := s.load(ctx, actor, proposalID)
	return p, err
}

func (s *proposalService) ListProposals(ctx context.Context, actor *domain.Actor, listingID *string, page domain.Page) ([]domain.Proposal, error) {
	actorID := actor.ActorID
	if actor.IsPrivileged() {
		actorID = ""
	}
	proposals, err := s.proposalRepo.ListProposals(ctx, actorID, listingID, page.Normalize())
	if err != nil {
		s.LogError(ctx, err, "Failed to list proposals", slog.String("actor_id", actor.ActorID))
		return nil, err
	}
	if proposals == nil {
		proposals = []domain.Proposal{}
	}
	return proposals, nil
}

func (s *proposalService) ListHistory(ctx context.Context, actor *domain.Actor, proposalID string) ([]domain.ProposalHistory, error) {
	if _, _, err := s.load(ctx, actor, proposalID); err != nil {
		return nil, err
	}
	history, err := s.proposalRepo.ListHistory(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []domain.ProposalHistory{}
	}
	return history, nil
}
