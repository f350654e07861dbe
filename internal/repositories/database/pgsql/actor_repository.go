package pgsql

import (
	"context"

	"github.com/SscSPs/precatorio_marketplace/internal/apperrors"
	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/precatorio_marketplace/internal/core/ports/repositories"
	"github.com/SscSPs/precatorio_marketplace/internal/models"
	"github.com/SscSPs/precatorio_marketplace/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const actorColumns = `user_id, username, email, password_hash, name, cpf, phone, role,
	is_active, is_staff, is_superuser, created_at, updated_at`

type PgxActorRepository struct {
	BaseRepository
}

func newPgxActorRepository(pool *pgxpool.Pool) *PgxActorRepository {
	return &PgxActorRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ActorRepositoryFacade = (*PgxActorRepository)(nil)

// SaveActor inserts the actor and its addresses in one transaction.
func (r *PgxActorRepository) SaveActor(ctx context.Context, actor domain.Actor) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelActor(actor)
	query := `
		INSERT INTO users (` + actorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, query,
		m.ActorID, m.Username, m.Email, m.PasswordHash, m.Name, m.CPF, m.Phone, m.Role,
		m.IsActive, m.IsStaff, m.IsSuperuser, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "failed to insert user "+m.ActorID)
	}

	if len(actor.Addresses) > 0 {
		batch := &pgx.Batch{}
		for _, addr := range actor.Addresses {
			queueAddressInsert(batch, mapping.ToModelAddress(addr))
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return translateWriteError(err, "failed to insert addresses for user "+m.ActorID)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxActorRepository) FindActorByID(ctx context.Context, actorID string) (*domain.Actor, error) {
	return r.findOne(ctx, `WHERE user_id = $1`, actorID)
}

func (r *PgxActorRepository) FindActorByEmail(ctx context.Context, email string) (*domain.Actor, error) {
	return r.findOne(ctx, `WHERE LOWER(email) = LOWER($1)`, email)
}

func (r *PgxActorRepository) findOne(ctx context.Context, where string, arg any) (*domain.Actor, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+actorColumns+` FROM users `+where, arg)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query user", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Actor])
	if err != nil {
		return nil, notFoundOr(err, "failed to scan user")
	}
	actor := mapping.ToDomainActor(m)
	return &actor, nil
}

func (r *PgxActorRepository) UpdateActor(ctx context.Context, actor domain.Actor) error {
	m := mapping.ToModelActor(actor)
	query := `
		UPDATE users
		SET username = $1, email = $2, name = $3, cpf = $4, phone = $5, role = $6,
		    is_active = $7, is_staff = $8, is_superuser = $9, updated_at = $10
		WHERE user_id = $11;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Username, m.Email, m.Name, m.CPF, m.Phone, m.Role,
		m.IsActive, m.IsStaff, m.IsSuperuser, m.UpdatedAt, m.ActorID,
	)
	if err != nil {
		return translateWriteError(err, "failed to update user "+m.ActorID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxActorRepository) DeleteActor(ctx context.Context, actorID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, actorID)
	if err != nil {
		return translateDeleteError(err, "failed to delete user "+actorID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
