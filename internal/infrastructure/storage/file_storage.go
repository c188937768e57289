package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/hrithikqw/Invoice-Tracker-App/internal/application/port"
	"github.com/hrithikqw/Invoice-Tracker-App/internal/domain/entity"
	"go.uber.org/zap"
)

// LocalFileStorage implements port.FileStorage on the local filesystem.
// Files are stored under <baseDir>/<owner>/<uuid>.<ext> and exposed through
// stable URLs beneath publicBase (served statically by the HTTP layer).
type LocalFileStorage struct {
	baseDir    string
	publicBase string
	logger     *zap.Logger
}

// NewLocalFileStorage creates a new LocalFileStorage
func NewLocalFileStorage(baseDir, publicBase string, logger *zap.Logger) port.FileStorage {
	return &LocalFileStorage{
		baseDir:    baseDir,
		publicBase: strings.TrimSuffix(publicBase, "/"),
		logger:     logger,
	}
}

// Save writes content under the owner's directory with a generated name,
// keeping only the original extension.
func (s *LocalFileStorage) Save(ctx context.Context, owner, filename string, content []byte) (*port.StoredFile, error) {
	if owner == "" {
		return nil, fmt.Errorf("owner is required")
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	relPath := filepath.Join(owner, name)
	fullPath := filepath.Join(s.baseDir, relPath)

	if err := s.validatePath(fullPath); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		s.logger.Error("Failed to create storage directory",
			zap.String("path", filepath.Dir(fullPath)),
			zap.Error(err))
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		s.logger.Error("Failed to write file",
			zap.String("path", fullPath),
			zap.Error(err))
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	s.logger.Debug("File saved",
		zap.String("path", fullPath),
		zap.Int("size", len(content)))

	return &port.StoredFile{
		Path: relPath,
		URL:  s.publicBase + "/" + path.Join(owner, name),
	}, nil
}

// Read returns the raw bytes of a stored file
func (s *LocalFileStorage) Read(ctx context.Context, relPath string) ([]byte, error) {
	fullPath := filepath.Join(s.baseDir, relPath)

	if err := s.validatePath(fullPath); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(fullPath)
	if os.IsNotExist(err) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		s.logger.Error("Failed to read file",
			zap.String("path", fullPath),
			zap.Error(err))
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return content, nil
}

// Delete removes a stored file. Missing files are treated as already deleted.
func (s *LocalFileStorage) Delete(ctx context.Context, relPath string) error {
	fullPath := filepath.Join(s.baseDir, relPath)

	if err := s.validatePath(fullPath); err != nil {
		return err
	}

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return nil
	}

	if err := os.Remove(fullPath); err != nil {
		s.logger.Error("Failed to delete file",
			zap.String("path", fullPath),
			zap.Error(err))
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// validatePath checks that the path stays within baseDir
func (s *LocalFileStorage) validatePath(fullPath string) error {
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	absBase, err := filepath.Abs(s.baseDir)
	if err != nil {
		return fmt.Errorf("failed to resolve base path: %w", err)
	}

	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) && absPath != absBase {
		return fmt.Errorf("path escapes base directory: %s", fullPath)
	}

	return nil
}
