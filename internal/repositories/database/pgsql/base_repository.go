package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/precatorio_marketplace/internal/apperrors"
	portsrepo "github.com/SscSPs/precatorio_marketplace/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgInvalidTextRep      = "22P02"
)

// constraintFields maps constraint names to the request field they guard.
var constraintFields = map[string]string{
	"uq_users_username":                "username",
	"uq_users_email":                   "email",
	"uq_users_cpf":                     "cpf",
	"uq_users_phone":                   "phone",
	"uq_courts_name":                   "name",
	"uq_courts_acronym":                "acronym",
	"uq_debtor_entities_cnpj":          "cnpj",
	"uq_listings_process_number":       "processNumber",
	"uq_due_diligences_active_listing": "listingId",
	"fk_listings_cedente":              "cedenteId",
	"fk_listings_advogado":             "advogadoId",
	"fk_listings_court":                "courtId",
	"fk_listings_debtor":               "debtorId",
	"fk_due_diligences_analyst":        "analystId",
	"chk_listings_asking_le_face":      "askingValue",
	"chk_listings_fee_percent":         "feePercent",
	"chk_proposal_history_reason":      "reason",
	"chk_proposals_term":               "termMonths",
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

var _ portsrepo.TransactionManager = (*BaseRepository)(nil)

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// translateWriteError turns storage constraint breaches into taxonomy errors. Unique
// violations and restricted deletes become conflicts; dangling references on insert and
// failed checks become field validation errors. Anything else is wrapped as a server fault.
func translateWriteError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return apperrors.NewAppError(500, msg, err)
	}
	field := constraintFields[pgErr.ConstraintName]
	switch pgErr.Code {
	case pgUniqueViolation:
		if field == "" {
			return apperrors.NewConflictError("resource already exists")
		}
		return apperrors.NewFieldConflictError(field, field+" already in use")
	case pgForeignKeyViolation:
		if field == "" {
			return apperrors.NewConflictError("resource is referenced by other records")
		}
		return apperrors.NewFieldValidationError(field, "referenced record does not exist")
	case pgCheckViolation:
		return apperrors.NewFieldValidationError(field, "value violates constraint "+pgErr.ConstraintName)
	}
	return apperrors.NewAppError(500, msg, err)
}

// notFoundOr maps pgx.ErrNoRows and malformed ids to ErrNotFound and wraps anything else.
func notFoundOr(err error, msg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgInvalidTextRep {
		return apperrors.ErrNotFound
	}
	return apperrors.NewAppError(500, msg, err)
}

// translateDeleteError reports restricted deletes as conflicts.
func translateDeleteError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return apperrors.NewConflictError("resource is referenced by other records")
	}
	return apperrors.NewAppError(500, msg, err)
}
