package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/precatorio_marketplace/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/precatorio_marketplace/internal/core/ports/services"
	"github.com/SscSPs/precatorio_marketplace/internal/dto"
	"github.com/google/uuid"
)

type referenceService struct {
	BaseService
	referenceRepo portsrepo.ReferenceRepositoryFacade
}

func NewReferenceService(referenceRepo portsrepo.ReferenceRepositoryFacade) portssvc.ReferenceSvcFacade {
	return &referenceService{referenceRepo: referenceRepo}
}

func (s *referenceService) ListCourts(ctx context.Context) ([]domain.Court, error) {
	courts, err := s.referenceRepo.ListCourts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list courts")
		return nil, err
	}
	if courts == nil {
		courts = []domain.Court{}
	}
	return courts, nil
}

func (s *referenceService) CreateCourt(ctx context.Context, actor *domain.Actor, req dto.CreateCourtRequest) (*domain.Court, error) {
	if err := s.RequirePrivileged(ctx, actor, "register courts"); err != nil {
		return nil, err
	}
	court := domain.Court{
		CourtID: uuid.NewString(),
		Name:    strings.TrimSpace(req.Name),
		Acronym: strings.ToUpper(strings.TrimSpace(req.Acronym)),
		State:   upper(req.State),
	}
	if err := s.referenceRepo.SaveCourt(ctx, court); err != nil {
		s.LogUnexpected(ctx, err, "Failed to save court", slog.String("acronym", court.Acronym))
		return nil, err
	}
	s.LogInfo(ctx, "Court registered", slog.String("court_id", court.CourtID))
	return &court, nil
}

func (s *referenceService) ListDebtors(ctx context.Context) ([]domain.DebtorEntity, error) {
	debtors, err := s.referenceRepo.ListDebtors(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list debtor entities")
		return nil, err
	}
	if debtors == nil {
		debtors = []domain.DebtorEntity{}
	}
	return debtors, nil
}

func (s *referenceService) CreateDebtor(ctx context.Context, actor *domain.Actor, req dto.CreateDebtorRequest) (*domain.DebtorEntity, error) {
	if err := s.RequirePrivileged(ctx, actor, "register debtor entities"); err != nil {
		return nil, err
	}
	debtor := domain.DebtorEntity{
		DebtorID: uuid.NewString(),
		Name:     strings.TrimSpace(req.Name),
		CNPJ:     req.CNPJ,
		Sphere:   domain.Sphere(req.Sphere),
	}
	if err := s.referenceRepo.SaveDebtor(ctx, debtor); err != nil {
		s.LogUnexpected(ctx, err, "Failed to save debtor entity", slog.String("name", debtor.Name))
		return nil, err
	}
	s.LogInfo(ctx, "Debtor entity registered", slog.String("debtor_id", debtor.DebtorID))
	return &debtor, nil
}
