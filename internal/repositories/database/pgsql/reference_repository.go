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

type PgxReferenceRepository struct {
	BaseRepository
}

func newPgxReferenceRepository(pool *pgxpool.Pool) *PgxReferenceRepository {
	return &PgxReferenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReferenceRepositoryFacade = (*PgxReferenceRepository)(nil)

func (r *PgxReferenceRepository) ListCourts(ctx context.Context) ([]domain.Court, error) {
	rows, err := r.Pool.Query(ctx, `SELECT court_id, name, acronym, state FROM courts ORDER BY acronym`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query courts", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Court])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan courts", err)
	}
	courts := make([]domain.Court, len(ms))
	for i, m := range ms {
		courts[i] = mapping.ToDomainCourt(m)
	}
	return courts, nil
}

func (r *PgxReferenceRepository) FindCourtByID(ctx context.Context, courtID string) (*domain.Court, error) {
	rows, err := r.Pool.Query(ctx, `SELECT court_id, name, acronym, state FROM courts WHERE court_id = $1`, courtID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query court", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Court])
	if err != nil {
		return nil, notFoundOr(err, "failed to scan court")
	}
	court := mapping.ToDomainCourt(m)
	return &court, nil
}

func (r *PgxReferenceRepository) SaveCourt(ctx context.Context, court domain.Court) error {
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO courts (court_id, name, acronym, state) VALUES ($1, $2, $3, $4)`,
		court.CourtID, court.Name, court.Acronym, mapping.ToNullString(court.State),
	)
	if err != nil {
		return translateWriteError(err, "failed to insert court")
	}
	return nil
}

func (r *PgxReferenceRepository) ListDebtors(ctx context.Context) ([]domain.DebtorEntity, error) {
	rows, err := r.Pool.Query(ctx, `SELECT debtor_id, name, cnpj, sphere FROM debtor_entities ORDER BY name`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query debtor entities", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.DebtorEntity])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan debtor entities", err)
	}
	debtors := make([]domain.DebtorEntity, len(ms))
	for i, m := range ms {
		debtors[i] = mapping.ToDomainDebtor(m)
	}
	return debtors, nil
}

func (r *PgxReferenceRepository) FindDebtorByID(ctx context.Context, debtorID string) (*domain.DebtorEntity, error) {
	rows, err := r.Pool.Query(ctx, `SELECT debtor_id, name, cnpj, sphere FROM debtor_entities WHERE debtor_id = $1`, debtorID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query debtor entity", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.DebtorEntity])
	if err != nil {
		return nil, notFoundOr(err, "failed to scan debtor entity")
	}
	debtor := mapping.ToDomainDebtor(m)
	return &debtor, nil
}

func (r *PgxReferenceRepository) SaveDebtor(ctx context.Context, debtor domain.DebtorEntity) error {
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO debtor_entities (debtor_id, name, cnpj, sphere) VALUES ($1, $2, $3, $4)`,
		debtor.DebtorID, debtor.Name, mapping.ToNullString(debtor.CNPJ), string(debtor.Sphere),
	)
	if err != nil {
		return translateWriteError(err, "failed to insert debtor entity")
	}
	return nil
}
