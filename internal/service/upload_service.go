package service

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"notebook-dashboard-be/internal/dto"
	"notebook-dashboard-be/internal/entity"
	"notebook-dashboard-be/internal/pkg/logger"
	"notebook-dashboard-be/internal/pkg/serverutils"
	"notebook-dashboard-be/internal/repository/contract"
	"notebook-dashboard-be/pkg/ipynb"
	"notebook-dashboard-be/pkg/utils"

	"github.com/google/uuid"
)

const notebookExtension = ".ipynb"

type IUploadService interface {
	Upload(ctx context.Context, userID uint, filename string, file io.Reader, req *dto.UploadRequest) (*entity.Notebook, error)
}

type uploadService struct {
	notebookRepo contract.NotebookRepository
	uploadDir    string
	log          logger.ILogger
}

func NewUploadService(notebookRepo contract.NotebookRepository, uploadDir string, log logger.ILogger) IUploadService {
	return &uploadService{
		notebookRepo: notebookRepo,
		uploadDir:    uploadDir,
		log:          log,
	}
}

// Upload validates the file, persists the bytes under a collision-free
// name and then creates the catalog record. The record is never created
// when the file write fails.
func (s *uploadService) Upload(ctx context.Context, userID uint, filename string, file io.Reader, req *dto.UploadRequest) (*entity.Notebook, error) {
	if filename == "" {
		return nil, serverutils.NewAppError(serverutils.ErrCodeNoFileProvided, "No file selected")
	}
	if !strings.EqualFold(filepath.Ext(filename), notebookExtension) {
		return nil, serverutils.NewAppError(serverutils.ErrCodeInvalidFileType, "Invalid file type. Please upload a .ipynb file.")
	}

	sanitized := utils.SanitizeFilename(filename)
	storageName := uuid.NewString() + "_" + sanitized
	storagePath := filepath.Join(s.uploadDir, storageName)

	if err := s.writeFile(storagePath, file); err != nil {
		return nil, err
	}

	title, description := s.extractMetadata(storagePath, sanitized)

	notebook := &entity.Notebook{
		Title:       title,
		Description: description,
		Filename:    sanitized,
		FilePath:    storagePath,
		Tags:        req.Tags, // stored verbatim
		IsPublic:    req.IsPublic,
		UserId:      userID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.notebookRepo.Create(ctx, notebook); err != nil {
		return nil, err
	}

	s.log.Info("upload", "notebook stored", map[string]interface{}{
		"notebook_id": notebook.Id,
		"user_id":     userID,
		"path":        storagePath,
	})

	return notebook, nil
}

func (s *uploadService) writeFile(path string, file io.Reader) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, file); err != nil {
		out.Close()
		// Leave no partial file behind.
		os.Remove(path)
		return err
	}
	return out.Close()
}

// extractMetadata is best-effort: any parse failure falls back to the
// filename-derived title and an empty description, never an error.
func (s *uploadService) extractMetadata(path, sanitized string) (title, description string) {
	fallback := strings.TrimSuffix(sanitized, notebookExtension)

	nb, err := ipynb.ParseFile(path)
	if err != nil {
		s.log.Debug("upload", "metadata parse failed, using filename", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return fallback, ""
	}

	title = nb.Metadata.Title
	if title == "" {
		title = fallback
	}
	return title, nb.Metadata.Description
}
