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

const addressColumns = `address_id, user_id, street, number, complement, city, state, zip_code, created_at, updated_at`

const insertAddressQuery = `
	INSERT INTO addresses (` + addressColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
`

type PgxAddressRepository struct {
	BaseRepository
}

func newPgxAddressRepository(pool *pgxpool.Pool) *PgxAddressRepository {
	return &PgxAddressRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AddressRepositoryFacade = (*PgxAddressRepository)(nil)

func queueAddressInsert(batch *pgx.Batch, m models.Address) {
	batch.Queue(insertAddressQuery,
		m.AddressID, m.ActorID, m.Street, m.Number, m.Complement, m.City, m.State, m.ZipCode,
		m.CreatedAt, m.UpdatedAt,
	)
}

func (r *PgxAddressRepository) ListAddresses(ctx context.Context, actorID string) ([]domain.Address, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+addressColumns+` FROM addresses WHERE user_id = $1 ORDER BY created_at`, actorID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query addresses", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Address])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan addresses", err)
	}
	return mapping.ToDomainAddressSlice(ms), nil
}

func (r *PgxAddressRepository) FindAddress(ctx context.Context, actorID, addressID string) (*domain.Address, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+addressColumns+` FROM addresses WHERE address_id = $1 AND user_id = $2`, addressID, actorID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query address", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Address])
	if err != nil {
		return nil, notFoundOr(err, "failed to scan address")
	}
	addr := mapping.ToDomainAddress(m)
	return &addr, nil
}

func (r *PgxAddressRepository) SaveAddress(ctx context.Context, address domain.Address) error {
	m := mapping.ToModelAddress(address)
	_, err := r.Pool.Exec(ctx, insertAddressQuery,
		m.AddressID, m.ActorID, m.Street, m.Number, m.Complement, m.City, m.State, m.ZipCode,
		m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "failed to insert address")
	}
	return nil
}

func (r *PgxAddressRepository) UpdateAddress(ctx context.Context, address domain.Address) error {
	m := mapping.ToModelAddress(address)
	query := `
		UPDATE addresses
		SET street = $1, number = $2, complement = $3, city = $4, state = $5, zip_code = $6, updated_at = $7
		WHERE address_id = $8 AND user_id = $9;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Street, m.Number, m.Complement, m.City, m.State, m.ZipCode, m.UpdatedAt, m.AddressID, m.ActorID,
	)
	if err != nil {
		return translateWriteError(err, "failed to update address")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAddressRepository) DeleteAddress(ctx context.Context, actorID, addressID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM addresses WHERE address_id = $1 AND user_id = $2`, addressID, actorID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete address", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
