package services

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/SscSPs/precatorio_marketplace/internal/apperrors"
	"github.com/SscSPs/precatorio_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/precatorio_marketplace/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/precatorio_marketplace/internal/core/ports/services"
	"github.com/SscSPs/precatorio_marketplace/internal/utils"
	"github.com/google/uuid"
)

type documentService struct {
	BaseService
	listingRepo  portsrepo.ListingReader
	documentRepo portsrepo.DocumentRepositoryFacade
	store        portsrepo.DocumentStore
}

func NewDocumentService(listingRepo portsrepo.ListingReader, documentRepo portsrepo.DocumentRepositoryFacade, store portsrepo.DocumentStore) portssvc.DocumentSvcFacade {
	return &documentService{listingRepo: listingRepo, documentRepo: documentRepo, store: store}
}

func (s *documentService) UploadDocument(ctx context.Context, actor *domain.Actor, listingID string, upload portssvc.DocumentUpload) (*domain.Document, error) {
	listing, err := findMutable(ctx, s.listingRepo, actor, listingID)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(upload.Title)
	if title == "" {
		return nil, apperrors.NewFieldValidationError("title", "title is required")
	}
	fileName := filepath.Base(upload.FileName)

	suffix, err := utils.GenerateSecureRandomString(8)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to generate object key", err)
	}
	key := listing.ListingID + "/" + suffix + "-" + fileName

	ref, err := s.store.Put(ctx, key, fileName, upload.Size, upload.Body)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to store document", slog.String("listing_id", listingID))
		return nil, err
	}

	doc := domain.Document{
		DocumentID: uuid.NewString(),
		ListingID:  listing.ListingID,
		Title:      title,
		FileRef:    ref,
		FileName:   fileName,
		SizeBytes:  upload.Size,
		UploadedAt: time.Now(),
	}
	if err := s.documentRepo.SaveDocument(ctx, doc); err != nil {
		s.LogError(ctx, err, "Failed to save document reference", slog.String("listing_id", listingID))
		if delErr := s.store.Delete(ctx, ref); delErr != nil {
			s.LogError(ctx, delErr, "Failed to remove orphaned document", slog.String("file_ref", ref))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Document uploaded",
		slog.String("listing_id", listingID),
		slog.String("document_id", doc.DocumentID))
	return &doc, nil
}

func (s *documentService) ListDocuments(ctx context.Context, actor *domain.Actor, listingID string) ([]domain.Document, error) {
	if _, err := s.listingRepo.FindListingByID(ctx, domain.ScopeFor(actor), listingID); err != nil {
		return nil, err
	}
	docs, err := s.documentRepo.ListDocuments(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	return docs, nil
}

func (s *documentService) DeleteDocument(ctx context.Context, actor *domain.Actor, documentID string) error {
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return err
	}
	if _, err := findMutable(ctx, s.listingRepo, actor, doc.ListingID); err != nil {
		return err
	}
	if err := s.documentRepo.DeleteDocument(ctx, documentID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, doc.FileRef); err != nil {
		s.LogError(ctx, err, "Failed to delete stored document", slog.String("file_ref", doc.FileRef))
	}
	s.LogInfo(ctx, "Document deleted", slog.String("document_id", documentID))
	return nil
}
