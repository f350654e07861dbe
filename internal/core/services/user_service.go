package services

import (
	"context"
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

type userService struct {
	BaseService
	actorRepo   portsrepo.ActorRepositoryFacade
	addressRepo portsrepo.AddressRepositoryFacade
}

func NewUserService(actorRepo portsrepo.ActorRepositoryFacade, addressRepo portsrepo.AddressRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{actorRepo: actorRepo, addressRepo: addressRepo}
}

func (s *userService) GetMe(ctx context.Context, actor *domain.Actor) (*domain.Actor, error) {
	me, err := s.actorRepo.FindActorByID(ctx, actor.ActorID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to load actor", slog.String("actor_id", actor.ActorID))
		return nil, err
	}
	addresses, err := s.addressRepo.ListAddresses(ctx, actor.ActorID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load addresses", slog.String("actor_id", actor.ActorID))
		return nil, err
	}
	me.Addresses = addresses
	return me, nil
}

func (s *userService) UpdateMe(ctx context.Context, actor *domain.Actor, req dto.UpdateMeRequest) (*domain.Actor, error) {
	me, err := s.actorRepo.FindActorByID(ctx, actor.ActorID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil && *req.Name != me.Name {
		me.Name = strings.TrimSpace(*req.Name)
		updated = true
	}
	if req.Email != nil && *req.Email != me.Email {
		me.Email = strings.TrimSpace(*req.Email)
		updated = true
	}
	if req.Username != nil && *req.Username != me.Username {
		me.Username = strings.TrimSpace(*req.Username)
		updated = true
	}
	if req.CPF != nil {
		me.CPF = req.CPF
		updated = true
	}
	if req.Phone != nil {
		me.Phone = req.Phone
		updated = true
	}
	if !updated {
		return me, nil
	}

	me.UpdatedAt = time.Now()
	me.EnforcePrivilegeInvariant()
	if err := s.actorRepo.UpdateActor(ctx, *me); err != nil {
		s.LogUnexpected(ctx, err, "Failed to update actor", slog.String("actor_id", me.ActorID))
		return nil, err
	}
	s.LogInfo(ctx, "Actor profile updated", slog.String("actor_id", me.ActorID))
	return me, nil
}

func (s *userService) DeleteMe(ctx context.Context, actor *domain.Actor) error {
	if err := s.actorRepo.DeleteActor(ctx, actor.ActorID); err != nil {
		s.LogUnexpected(ctx, err, "Failed to delete actor", slog.String("actor_id", actor.ActorID))
		return err
	}
	s.LogInfo(ctx, "Actor deleted", slog.String("actor_id", actor.ActorID))
	return nil
}

func (s *userService) ChangeRole(ctx context.Context, actor *domain.Actor, targetID string, req dto.ChangeRoleRequest) (*domain.Actor, error) {
	if err := s.RequirePrivileged(ctx, actor, "change roles"); err != nil {
		return nil, err
	}
	role, ok := domain.ParseRole(req.Role)
	if !ok {
		return nil, apperrors.NewFieldValidationError("role", "unknown role")
	}

	target, err := s.actorRepo.FindActorByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	target.Role = role
	target.UpdatedAt = time.Now()
	target.EnforcePrivilegeInvariant()

	if err := s.actorRepo.UpdateActor(ctx, *target); err != nil {
		s.LogUnexpected(ctx, err, "Failed to change role", slog.String("target_id", targetID))
		return nil, err
	}
	s.LogInfo(ctx, "Actor role changed",
		slog.String("target_id", targetID),
		slog.String("role", string(role)))
	return target, nil
}

// --- Addresses ---

type addressService struct {
	BaseService
	addressRepo portsrepo.AddressRepositoryFacade
}

func NewAddressService(addressRepo portsrepo.AddressRepositoryFacade) portssvc.AddressSvcFacade {
	return &addressService{addressRepo: addressRepo}
}

func newAddress(actorID string, req dto.AddressRequest, now time.Time) domain.Address {
	return domain.Address{
		AddressID:   uuid.NewString(),
		ActorID:     actorID,
		Street:      req.Street,
		Number:      req.Number,
		Complement:  req.Complement,
		City:        req.City,
		State:       upper(req.State),
		ZipCode:     req.ZipCode,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
}

func upper(s *string) *string {
	if s == nil {
		return nil
	}
	u := strings.ToUpper(*s)
	return &u
}

func (s *addressService) ListAddresses(ctx context.Context, actor *domain.Actor) ([]domain.Address, error) {
	return s.addressRepo.ListAddresses(ctx, actor.ActorID)
}

func (s *addressService) GetAddress(ctx context.Context, actor *domain.Actor, addressID string) (*domain.Address, error) {
	return s.addressRepo.FindAddress(ctx, actor.ActorID, addressID)
}

func (s *addressService) CreateAddress(ctx context.Context, actor *domain.Actor, req dto.AddressRequest) (*domain.Address, error) {
	addr := newAddress(actor.ActorID, req, time.Now())
	if err := s.addressRepo.SaveAddress(ctx, addr); err != nil {
		s.LogUnexpected(ctx, err, "Failed to save address", slog.String("actor_id", actor.ActorID))
		return nil, err
	}
	return &addr, nil
}

func (s *addressService) UpdateAddress(ctx context.Context, actor *domain.Actor, addressID string, req dto.AddressRequest) (*domain.Address, error) {
	addr, err := s.addressRepo.FindAddress(ctx, actor.ActorID, addressID)
	if err != nil {
		return nil, err
	}
	if req.Street != nil {
		addr.Street = req.Street
	}
	if req.Number != nil {
		addr.Number = req.Number
	}
	if req.Complement != nil {
		addr.Complement = req.Complement
	}
	if req.City != nil {
		addr.City = req.City
	}
	if req.State != nil {
		addr.State = upper(req.State)
	}
	if req.ZipCode != nil {
		addr.ZipCode = req.ZipCode
	}
	addr.UpdatedAt = time.Now()

	if err := s.addressRepo.UpdateAddress(ctx, *addr); err != nil {
		s.LogUnexpected(ctx, err, "Failed to update address", slog.String("address_id", addressID))
		return nil, err
	}
	return addr, nil
}

func (s *addressService) DeleteAddress(ctx context.Context, actor *domain.Actor, addressID string) error {
	return s.addressRepo.DeleteAddress(ctx, actor.ActorID, addressID)
}
