package pgsql

import (
	"context"
	"strconv"
	"time"

	"github.com/SscSPs/precatorio_marketplace/internal/apperrors"
	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/precatorio_marketplace/internal/core/ports/repositories"
	"github.com/SscSPs/precatorio_marketplace/internal/models"
	"github.com/SscSPs/precatorio_marketplace/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const listingColumns = `listing_id, cedente_id, advogado_id, court_id, debtor_id, process_number, nature,
	face_value, asking_value, fee_percent, issue_date, budget_year, status, description, created_at, updated_at`

type PgxListingRepository struct {
	BaseRepository
}

func newPgxListingRepository(pool *pgxpool.Pool) *PgxListingRepository {
	return &PgxListingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ListingRepositoryFacade = (*PgxListingRepository)(nil)

func (r *PgxListingRepository) SaveListing(ctx context.Context, listing domain.Listing) error {
	m := mapping.ToModelListing(listing)
	query := `
		INSERT INTO listings (` + listingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ListingID, m.CedenteID, m.AdvogadoID, m.CourtID, m.DebtorID, m.ProcessNumber, m.Nature,
		m.FaceValue, m.AskingValue, m.FeePercent, m.IssueDate, m.BudgetYear, m.Status, m.Description,
		m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "failed to insert listing "+m.ListingID)
	}
	return nil
}

func (r *PgxListingRepository) FindListingByID(ctx context.Context, scope domain.VisibilityScope, listingID string) (*domain.Listing, error) {
	q := &listingQuery{}
	q.scopePredicate(scope)
	q.add("listing_id = ?", listingID)

	rows, err := r.Pool.Query(ctx, `SELECT `+listingColumns+` FROM listings`+q.where(), q.args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query listing", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Listing])
	if err != nil {
		return nil, notFoundOr(err, "failed to scan listing")
	}
	listing := mapping.ToDomainListing(m)
	return &listing, nil
}

func (r *PgxListingRepository) ListListings(ctx context.Context, scope domain.VisibilityScope, filter domain.ListingFilter, page domain.Page) ([]domain.Listing, int, error) {
	page = page.Normalize()
	q := buildListingQuery(scope, filter)

	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM listings`+q.where(), q.args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count listings", err)
	}

	args := append(q.args, page.Limit, page.Offset)
	limitPos := strconv.Itoa(len(q.args) + 1)
	offsetPos := strconv.Itoa(len(q.args) + 2)
	query := `SELECT ` + listingColumns + ` FROM listings` + q.where() + listingOrderBy(filter) +
		` LIMIT $` + limitPos + ` OFFSET $` + offsetPos

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query listings", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Listing])
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to scan listings", err)
	}
	return mapping.ToDomainListingSlice(ms), total, nil
}

func (r *PgxListingRepository) UpdateListing(ctx context.Context, listing domain.Listing) error {
	m := mapping.ToModelListing(listing)
	query := `
		UPDATE listings
		SET advogado_id = $1, asking_value = $2, fee_percent = $3, status = $4, description = $5, updated_at = $6
		WHERE listing_id = $7;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.AdvogadoID, m.AskingValue, m.FeePercent, m.Status, m.Description, m.UpdatedAt, m.ListingID,
	)
	if err != nil {
		return translateWriteError(err, "failed to update listing "+m.ListingID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxListingRepository) DeleteListing(ctx context.Context, listingID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM listings WHERE listing_id = $1`, listingID)
	if err != nil {
		return translateDeleteError(err, "failed to delete listing "+listingID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// applyListingMove runs a conditional status change inside tx. A listing that already left
// move.From is left untouched.
func applyListingMove(ctx context.Context, tx pgx.Tx, move *domain.ListingMove, now time.Time) error {
	if move == nil {
		return nil
	}
	_, err := tx.Exec(ctx,
		`UPDATE listings SET status = $1, updated_at = $2 WHERE listing_id = $3 AND status = $4`,
		string(move.To), now, move.ListingID, string(move.From),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to move listing "+move.ListingID, err)
	}
	return nil
}
