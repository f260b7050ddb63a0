package gdrive

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"google.golang.org/api/drive/v3"

	"github.com/c2fo/gdrive/options"
	"github.com/c2fo/gdrive/options/upload"
)

// Upload creates a new file in folderID from the local file at path and returns the new file's id.
//
// The remote name is the base name of path unless upload.WithName is given. The media type is taken from
// upload.WithContentType, or inferred with ContentTypeFor.
//
// Local read failures are returned as *IOError, Drive rejections as *TransferError.
func (s *Service) Upload(ctx context.Context, path, folderID string, opts ...options.UploadOption) (string, error) {
	if s == nil {
		return "", ErrServiceRequired
	}
	if folderID == "" {
		return "", ErrFolderRequired
	}

	name := filepath.Base(path)
	contentType := ""
	for _, o := range opts {
		switch o := o.(type) {
		case *upload.ContentType:
			contentType = string(*o)
		case *upload.Name:
			name = string(*o)
		}
	}
	if contentType == "" {
		contentType = ContentTypeFor(name)
	}

	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return "", wrapIOError("open", path, err)
	}
	defer func() { _ = f.Close() }()

	metadata := &drive.File{
		Name:    name,
		Parents: []string{folderID},
	}
	created, err := s.client.Create(ctx, metadata, f, contentType, "id")
	if err != nil {
		return "", wrapTransferError("files.create", err)
	}

	s.logger.Debug("uploaded file",
		zap.String("file_id", created.Id),
		zap.String("name", name),
		zap.String("folder_id", folderID),
		zap.String("content_type", contentType))
	return created.Id, nil
}
