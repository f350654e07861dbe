package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/SscSPs/precatorio_marketplace/internal/apperrors"
)

// BasePath prefixes every stored object key.
const BasePath = "documents/"

var allowedExtensions = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// checkUpload enforces the accepted file types and the size ceiling. It returns the
// content type to store the object with.
func checkUpload(fileName string, size, maxBytes int64) (string, error) {
	if fileName == "" {
		return "", apperrors.NewFieldValidationError("file", "file name is empty")
	}
	contentType, ok := allowedExtensions[strings.ToLower(filepath.Ext(fileName))]
	if !ok {
		return "", apperrors.NewFieldValidationError("file", "only PDF, DOC and DOCX files are accepted")
	}
	if size <= 0 {
		return "", apperrors.NewFieldValidationError("file", "file is empty")
	}
	if size > maxBytes {
		return "", apperrors.NewFieldValidationError("file", fmt.Sprintf("file exceeds the %d byte limit", maxBytes))
	}
	return contentType, nil
}
