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

const dueDiligenceColumns = `due_diligence_id, listing_id, analyst_id, status, notes, document_approved,
	repactuation_reason, started_at, completed_at, created_at, updated_at`

type PgxDueDiligenceRepository struct {
	BaseRepository
}

func newPgxDueDiligenceRepository(pool *pgxpool.Pool) *PgxDueDiligenceRepository {
	return &PgxDueDiligenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DueDiligenceRepositoryFacade = (*PgxDueDiligenceRepository)(nil)

func (r *PgxDueDiligenceRepository) SaveDueDiligence(ctx context.Context, dd domain.DueDiligence) error {
	m := mapping.ToModelDueDiligence(dd)
	query := `
		INSERT INTO due_diligences (` + dueDiligenceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DueDiligenceID, m.ListingID, m.AnalystID, m.Status, m.Notes, m.DocumentApproved,
		m.RepactuationReason, m.StartedAt, m.CompletedAt, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "failed to insert due diligence for listing "+m.ListingID)
	}
	return nil
}

func (r *PgxDueDiligenceRepository) FindDueDiligenceByID(ctx context.Context, dueDiligenceID string) (*domain.DueDiligence, error) {
	return r.findOne(ctx, `WHERE due_diligence_id = $1`, dueDiligenceID)
}

func (r *PgxDueDiligenceRepository) FindActiveDueDiligence(ctx context.Context, listingID string) (*domain.DueDiligence, error) {
	return r.findOne(ctx, `WHERE listing_id = $1 AND status <> 'REJEITADO'`, listingID)
}

func (r *PgxDueDiligenceRepository) findOne(ctx context.Context, where string, arg any) (*domain.DueDiligence, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+dueDiligenceColumns+` FROM due_diligences `+where, arg)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query due diligence", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.DueDiligence])
	if err != nil {
		return nil, notFoundOr(err, "failed to scan due diligence")
	}
	dd := mapping.ToDomainDueDiligence(m)
	return &dd, nil
}

func (r *PgxDueDiligenceRepository) ListDueDiligences(ctx context.Context, listingID string) ([]domain.DueDiligence, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+dueDiligenceColumns+` FROM due_diligences WHERE listing_id = $1 ORDER BY created_at`, listingID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query due diligences", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.DueDiligence])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan due diligences", err)
	}
	dds := make([]domain.DueDiligence, len(ms))
	for i, m := range ms {
		dds[i] = mapping.ToDomainDueDiligence(m)
	}
	return dds, nil
}

func (r *PgxDueDiligenceRepository) UpdateDueDiligence(ctx context.Context, dd domain.DueDiligence, from domain.DueDiligenceStatus, move *domain.ListingMove) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelDueDiligence(dd)
	query := `
		UPDATE due_diligences
		SET status = $1, notes = $2, document_approved = $3, repactuation_reason = $4,
		    started_at = $5, completed_at = $6, updated_at = $7
		WHERE due_diligence_id = $8 AND status = $9;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.Status, m.Notes, m.DocumentApproved, m.RepactuationReason,
		m.StartedAt, m.CompletedAt, m.UpdatedAt, m.DueDiligenceID, string(from),
	)
	if err != nil {
		return translateWriteError(err, "failed to update due diligence "+m.DueDiligenceID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewConflictError("due diligence was changed concurrently")
	}

	if err := applyListingMove(ctx, tx, move, dd.UpdatedAt); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}
