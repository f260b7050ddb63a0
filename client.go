package gdrive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

// Client defines the subset of the Drive v3 files resource used by Service.
// This interface limits the API surface and enables mocking in tests.
type Client interface {
	// Get returns metadata for a file, restricted to the given fields.
	Get(ctx context.Context, fileID string, fields ...googleapi.Field) (*drive.File, error)

	// List runs one files.list request and returns a single page.
	List(ctx context.Context, req ListRequest) (*drive.FileList, error)

	// DownloadChunk fetches up to size bytes of file content starting at offset.
	DownloadChunk(ctx context.Context, fileID string, offset, size int64) (MediaChunk, error)

	// Create uploads media as a new file described by file and returns the fields requested.
	Create(ctx context.Context, file *drive.File, media io.Reader, contentType string, fields ...googleapi.Field) (*drive.File, error)
}

// ListRequest carries the parameters of one files.list call.
type ListRequest struct {
	Query     string
	Fields    googleapi.Field
	Spaces    string
	PageToken string
}

// MediaChunk is one ranged slice of a file's content.
type MediaChunk struct {
	Data []byte
	// Total is the full size of the file, or -1 when the server did not report it.
	Total int64
}

// driveClient implements Client on top of the generated Drive v3 bindings.
type driveClient struct {
	files *drive.FilesService
}

func newDriveClient(svc *drive.Service) *driveClient {
	return &driveClient{files: svc.Files}
}

func (c *driveClient) Get(ctx context.Context, fileID string, fields ...googleapi.Field) (*drive.File, error) {
	call := c.files.Get(fileID).Context(ctx)
	if len(fields) > 0 {
		call = call.Fields(fields...)
	}
	return call.Do()
}

func (c *driveClient) List(ctx context.Context, req ListRequest) (*drive.FileList, error) {
	call := c.files.List().Context(ctx).Q(req.Query)
	if req.Spaces != "" {
		call = call.Spaces(req.Spaces)
	}
	if req.Fields != "" {
		call = call.Fields(req.Fields)
	}
	if req.PageToken != "" {
		call = call.PageToken(req.PageToken)
	}
	return call.Do()
}

func (c *driveClient) DownloadChunk(ctx context.Context, fileID string, offset, size int64) (MediaChunk, error) {
	call := c.files.Get(fileID).Context(ctx)
	call.Header().Set("Range", fmt.Sprintf("bytes=%d-%d", offset, offset+size-1))

	resp, err := call.Download()
	if err != nil {
		// an empty file has no satisfiable range
		var gerr *googleapi.Error
		if offset == 0 && errors.As(err, &gerr) && gerr.Code == http.StatusRequestedRangeNotSatisfiable {
			return MediaChunk{Total: 0}, nil
		}
		return MediaChunk{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return MediaChunk{}, err
	}

	if resp.StatusCode != http.StatusPartialContent {
		// range ignored, the body is the whole file
		total := int64(len(data))
		if offset >= total {
			return MediaChunk{Total: total}, nil
		}
		return MediaChunk{Data: data[offset:], Total: total}, nil
	}

	return MediaChunk{Data: data, Total: parseContentRangeTotal(resp.Header.Get("Content-Range"))}, nil
}

func (c *driveClient) Create(ctx context.Context, file *drive.File, media io.Reader, contentType string, fields ...googleapi.Field) (*drive.File, error) {
	call := c.files.Create(file).Context(ctx).Media(media, googleapi.ContentType(contentType))
	if len(fields) > 0 {
		call = call.Fields(fields...)
	}
	return call.Do()
}

// parseContentRangeTotal extracts the complete length from a "bytes 0-99/1234" header, returning -1 for "*" or
// anything unparsable.
func parseContentRangeTotal(header string) int64 {
	i := strings.LastIndex(header, "/")
	if i < 0 {
		return -1
	}
	total, err := strconv.ParseInt(strings.TrimSpace(header[i+1:]), 10, 64)
	if err != nil {
		return -1
	}
	return total
}
