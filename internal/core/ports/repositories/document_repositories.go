package repositories

import (
	"context"
	"io"

	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
)

// DocumentRepositoryFacade persists document references
type DocumentRepositoryFacade interface {
	SaveDocument(ctx context.Context, doc domain.Document) error
	FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)
	ListDocuments(ctx context.Context, listingID string) ([]domain.Document, error)
	DeleteDocument(ctx context.Context, documentID string) error
}

// DocumentStore keeps the uploaded file bytes. Put rejects files whose extension or size are
// not accepted before anything is stored.
type DocumentStore interface {
	Put(ctx context.Context, key, fileName string, size int64, body io.Reader) (string, error)
	Delete(ctx context.Context, fileRef string) error
}
