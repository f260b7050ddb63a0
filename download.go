package gdrive

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Download fetches a file from Drive and writes it into the download directory, returning its absolute path.
//
// With byID the identifier is a file id and the local name is taken from the file's metadata. Otherwise the
// identifier is an exact file name looked up in folderID; when nothing matches Download returns "" and a nil
// error, since absence is not a failure. When several files share the name the first one listed is used.
//
// Drive failures are returned as *TransferError, local write failures as *IOError.
func (s *Service) Download(ctx context.Context, identifier, folderID string, byID bool) (string, error) {
	if s == nil {
		return "", ErrServiceRequired
	}

	ref, found, err := s.resolve(ctx, identifier, folderID, byID)
	if err != nil || !found {
		return "", err
	}

	name, err := localName(ref.Name)
	if err != nil {
		return "", wrapIOError("write", ref.Name, err)
	}

	d := newDownloader(s.client, ref.ID, s.options.ChunkSize)
	for done := false; !done; {
		var progress float64
		progress, done, err = d.NextChunk(ctx)
		if err != nil {
			return "", wrapTransferError("files.get media", err)
		}
		s.logger.Debug("download chunk",
			zap.String("file_id", ref.ID),
			zap.Float64("progress", progress))
	}

	target := filepath.Join(s.options.DownloadDir, name)
	abs, err := filepath.Abs(target)
	if err != nil {
		return "", wrapIOError("resolve", target, err)
	}
	if err := os.WriteFile(abs, d.Bytes(), 0o644); err != nil { //nolint:gosec
		return "", wrapIOError("write", abs, err)
	}

	s.logger.Debug("downloaded file",
		zap.String("file_id", ref.ID),
		zap.String("path", abs),
		zap.Int("bytes", d.Len()))
	return abs, nil
}

// resolve turns the download identifier into a file id and the local save name.
func (s *Service) resolve(ctx context.Context, identifier, folderID string, byID bool) (FileRef, bool, error) {
	if byID {
		f, err := s.client.Get(ctx, identifier, "id, name, parents")
		if err != nil {
			return FileRef{}, false, wrapTransferError("files.get", err)
		}
		return FileRef{ID: f.Id, Name: f.Name}, true, nil
	}

	if folderID == "" {
		return FileRef{}, false, ErrFolderRequired
	}

	list, err := s.client.List(ctx, ListRequest{
		Query:  nameEqualsQuery(identifier, folderID),
		Fields: "files(id)",
	})
	if err != nil {
		return FileRef{}, false, wrapTransferError("files.list", err)
	}
	if len(list.Files) == 0 {
		s.logger.Debug("no file with name in folder",
			zap.String("name", identifier),
			zap.String("folder_id", folderID))
		return FileRef{}, false, nil
	}
	if len(list.Files) > 1 {
		s.logger.Debug("several files share the name, using the first",
			zap.String("name", identifier),
			zap.Int("matches", len(list.Files)))
	}
	return FileRef{ID: list.Files[0].Id, Name: identifier}, true, nil
}

// downloader pulls file content chunk by chunk into memory until the whole file is buffered.
type downloader struct {
	client    Client
	fileID    string
	chunkSize int64
	buf       bytes.Buffer
	total     int64
	done      bool
}

func newDownloader(client Client, fileID string, chunkSize int64) *downloader {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &downloader{
		client:    client,
		fileID:    fileID,
		chunkSize: chunkSize,
		total:     -1,
	}
}

// NextChunk requests the next chunk and reports the fraction downloaded so far and whether the file is complete.
// Progress is 0 while the total size is unknown.
func (d *downloader) NextChunk(ctx context.Context) (float64, bool, error) {
	if d.done {
		return d.progress(), true, nil
	}

	offset := int64(d.buf.Len())
	chunk, err := d.client.DownloadChunk(ctx, d.fileID, offset, d.chunkSize)
	if err != nil {
		return d.progress(), false, err
	}
	d.buf.Write(chunk.Data)
	if chunk.Total >= 0 {
		d.total = chunk.Total
	}

	switch {
	case d.total >= 0:
		d.done = int64(d.buf.Len()) >= d.total
	default:
		d.done = int64(len(chunk.Data)) < d.chunkSize
	}
	if len(chunk.Data) == 0 {
		d.done = true
	}
	return d.progress(), d.done, nil
}

func (d *downloader) progress() float64 {
	if d.total <= 0 {
		if d.done {
			return 1
		}
		return 0
	}
	return float64(d.buf.Len()) / float64(d.total)
}

// Bytes returns the content buffered so far.
func (d *downloader) Bytes() []byte {
	return d.buf.Bytes()
}

// Len returns the number of bytes buffered so far.
func (d *downloader) Len() int {
	return d.buf.Len()
}
