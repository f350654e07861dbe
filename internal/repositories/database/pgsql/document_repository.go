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

const documentColumns = `document_id, listing_id, title, file_ref, file_name, size_bytes, uploaded_at`

type PgxDocumentRepository struct {
	BaseRepository
}

func newPgxDocumentRepository(pool *pgxpool.Pool) *PgxDocumentRepository {
	return &PgxDocumentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, doc domain.Document) error {
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO listing_documents (`+documentColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		doc.DocumentID, doc.ListingID, doc.Title, doc.FileRef, doc.FileName, doc.SizeBytes, doc.UploadedAt,
	)
	if err != nil {
		return translateWriteError(err, "failed to insert document")
	}
	return nil
}

func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+documentColumns+` FROM listing_documents WHERE document_id = $1`, documentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query document", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Document])
	if err != nil {
		return nil, notFoundOr(err, "failed to scan document")
	}
	doc := mapping.ToDomainDocument(m)
	return &doc, nil
}

func (r *PgxDocumentRepository) ListDocuments(ctx context.Context, listingID string) ([]domain.Document, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+documentColumns+` FROM listing_documents WHERE listing_id = $1 ORDER BY uploaded_at`, listingID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query documents", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Document])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan documents", err)
	}
	return mapping.ToDomainDocumentSlice(ms), nil
}

func (r *PgxDocumentRepository) DeleteDocument(ctx context.Context, documentID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM listing_documents WHERE document_id = $1`, documentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete document", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
