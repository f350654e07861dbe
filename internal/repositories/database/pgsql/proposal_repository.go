package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/precatorio_marketplace/internal/apperrors"
	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/precatorio_marketplace/internal/core/ports/repositories"
	"github.com/SscSPs/precatorio_marketplace/internal/models"
	"github.com/SscSPs/precatorio_marketplace/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const proposalColumns = `proposal_id, listing_id, proposer_id, proposed_value, discount_rate, annual_interest_rate,
	term_months, net_value_cedente, net_value_proponent, profit_margin_percent, due_date, status, notes,
	created_at, updated_at`

const historyColumns = `history_id, proposal_id, status_before, status_after, value_before, value_after,
	actor_id, reason, created_at`

type PgxProposalRepository struct {
	BaseRepository
}

func newPgxProposalRepository(pool *pgxpool.Pool) *PgxProposalRepository {
	return &PgxProposalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProposalRepositoryFacade = (*PgxProposalRepository)(nil)

func (r *PgxProposalRepository) SaveProposal(ctx context.Context, proposal domain.Proposal) error {
	m := mapping.ToModelProposal(proposal)
	query := `
		INSERT INTO proposals (` + proposalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProposalID, m.ListingID, m.ProposerID, m.ProposedValue, m.DiscountRate, m.AnnualInterestRate,
		m.TermMonths, m.NetValueCedente, m.NetValueProponent, m.ProfitMarginPercent, m.DueDate, m.Status,
		m.Notes, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "failed to insert proposal "+m.ProposalID)
	}
	return nil
}

func (r *PgxProposalRepository) FindProposalByID(ctx context.Context, proposalID string) (*domain.Proposal, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+proposalColumns+` FROM proposals WHERE proposal_id = $1`, proposalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query proposal", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Proposal])
	if err != nil {
		return nil, notFoundOr(err, "failed to scan proposal")
	}
	p := mapping.ToDomainProposal(m)
	return &p, nil
}

func (r *PgxProposalRepository) ListProposals(ctx context.Context, actorID string, listingID *string, page domain.Page) ([]domain.Proposal, error) {
	page = page.Normalize()
	query := `
		SELECT ` + proposalColumns + ` FROM proposals p
		WHERE ($1 = '' OR p.proposer_id::text = $1
		       OR EXISTS (SELECT 1 FROM listings l WHERE l.listing_id = p.listing_id AND l.cedente_id::text = $1))
		  AND ($2::uuid IS NULL OR p.listing_id = $2::uuid)
		ORDER BY p.created_at DESC, p.proposal_id
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.Pool.Query(ctx, query, actorID, listingID, page.Limit, page.Offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query proposals", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Proposal])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan proposals", err)
	}
	return mapping.ToDomainProposalSlice(ms), nil
}

func (r *PgxProposalRepository) FindOverdueProposals(ctx context.Context, day time.Time) ([]domain.Proposal, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+proposalColumns+` FROM proposals WHERE status = $1 AND due_date < $2::date ORDER BY due_date, proposal_id`,
		string(domain.ProposalEnviada), day,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query overdue proposals", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Proposal])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan overdue proposals", err)
	}
	return mapping.ToDomainProposalSlice(ms), nil
}

func (r *PgxProposalRepository) ListHistory(ctx context.Context, proposalID string) ([]domain.ProposalHistory, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+historyColumns+` FROM proposal_history WHERE proposal_id = $1 ORDER BY created_at, history_id`, proposalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query proposal history", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ProposalHistory])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan proposal history", err)
	}
	history := make([]domain.ProposalHistory, len(ms))
	for i, m := range ms {
		history[i] = mapping.ToDomainProposalHistory(m)
	}
	return history, nil
}

// ApplyTransition writes the new proposal state, its history row and the optional listing
// move atomically.
func (r *PgxProposalRepository) ApplyTransition(ctx context.Context, t domain.ProposalTransition) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	p := t.Proposal
	cmdTag, err := tx.Exec(ctx, `
		UPDATE proposals SET status = $1, proposed_value = $2, updated_at = $3
		WHERE proposal_id = $4 AND status = $5;
	`, string(p.Status), p.ProposedValue, p.UpdatedAt, p.ProposalID, string(t.From))
	if err != nil {
		return translateWriteError(err, "failed to update proposal "+p.ProposalID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewConflictError("proposal was changed concurrently")
	}

	h := t.History
	_, err = tx.Exec(ctx,
		`INSERT INTO proposal_history (`+historyColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		h.HistoryID, h.ProposalID, string(h.StatusBefore), string(h.StatusAfter), h.ValueBefore, h.ValueAfter,
		h.ActorID, h.Reason, h.CreatedAt,
	)
	if err != nil {
		return translateWriteError(err, "failed to insert history for proposal "+p.ProposalID)
	}

	if err := applyListingMove(ctx, tx, t.ListingMove, p.UpdatedAt); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}
