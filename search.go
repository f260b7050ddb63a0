package gdrive

import (
	"context"
	"iter"
	"slices"

	"go.uber.org/zap"
	"google.golang.org/api/iterator"
)

// FileRef identifies a remote file by id and name.
type FileRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SearchSuffix returns the sorted names of the XML playlists (names containing PlaylistSuffix) in folderID.
// Only the first page of results is read.
func (s *Service) SearchSuffix(ctx context.Context, folderID string) ([]string, error) {
	if s == nil {
		return nil, ErrServiceRequired
	}
	if folderID == "" {
		return nil, ErrFolderRequired
	}

	list, err := s.client.List(ctx, ListRequest{
		Query:  suffixQuery(folderID),
		Fields: "files(name)",
	})
	if err != nil {
		return nil, wrapTransferError("files.list", err)
	}

	names := make([]string, 0, len(list.Files))
	for _, f := range list.Files {
		names = append(names, f.Name)
	}
	slices.Sort(names)

	s.logger.Debug("suffix search",
		zap.String("folder_id", folderID),
		zap.Int("matches", len(names)))
	return names, nil
}

// SearchSubstring returns a lazy iterator over the non-trashed files in folderID whose name contains query.
// Pages are requested only as the iterator is consumed.
func (s *Service) SearchSubstring(ctx context.Context, folderID, query string) *FileIterator {
	it := &FileIterator{ctx: ctx}
	switch {
	case s == nil:
		it.err = ErrServiceRequired
		return it
	case folderID == "":
		it.err = ErrFolderRequired
		return it
	}
	it.client = s.client
	it.logger = s.logger
	it.req = ListRequest{
		Query:  substringQuery(folderID, query),
		Fields: "nextPageToken, files(id, name)",
		Spaces: "drive",
	}
	return it
}

// SearchSubstringAll drains SearchSubstring and returns every match in the order the service returned them.
func (s *Service) SearchSubstringAll(ctx context.Context, folderID, query string) ([]FileRef, error) {
	it := s.SearchSubstring(ctx, folderID, query)
	refs := []FileRef{}
	for {
		ref, err := it.Next()
		if err == iterator.Done {
			return refs, nil
		}
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
}

// FileIterator walks a paginated files.list result. It is not safe for concurrent use.
type FileIterator struct {
	ctx    context.Context
	client Client
	logger *zap.Logger
	req    ListRequest

	buf       []FileRef
	pageToken string
	pages     int
	exhausted bool
	err       error
}

// Next returns the next file. Its second return value is iterator.Done if there are no more results. Once Next
// returns Done or an error, all subsequent calls return the same.
func (it *FileIterator) Next() (FileRef, error) {
	for len(it.buf) == 0 {
		if it.err != nil {
			return FileRef{}, it.err
		}
		if it.exhausted {
			return FileRef{}, iterator.Done
		}
		it.fetch()
	}
	ref := it.buf[0]
	it.buf = it.buf[1:]
	return ref, nil
}

// Pages returns the number of list requests issued so far.
func (it *FileIterator) Pages() int {
	return it.pages
}

func (it *FileIterator) fetch() {
	if it.client == nil {
		it.err = ErrServiceRequired
		return
	}
	if it.logger == nil {
		it.logger = zap.NewNop()
	}

	req := it.req
	req.PageToken = it.pageToken

	list, err := it.client.List(it.ctx, req)
	if err != nil {
		it.err = wrapTransferError("files.list", err)
		return
	}
	it.pages++

	for _, f := range list.Files {
		it.buf = append(it.buf, FileRef{ID: f.Id, Name: f.Name})
	}
	it.pageToken = list.NextPageToken
	if it.pageToken == "" {
		it.exhausted = true
	}

	it.logger.Debug("search page",
		zap.Int("page", it.pages),
		zap.Int("files", len(list.Files)),
		zap.Bool("more", !it.exhausted))
}

// All returns the whole result set as a sequence, starting again from the first page on every range and
// independent of any Next calls. Ranging stops after the first error, which is yielded with a zero FileRef.
func (it *FileIterator) All() iter.Seq2[FileRef, error] {
	return func(yield func(FileRef, error) bool) {
		fresh := &FileIterator{
			ctx:    it.ctx,
			client: it.client,
			logger: it.logger,
			req:    it.req,
		}
		if it.client == nil {
			fresh.err = it.err
		}
		for {
			ref, err := fresh.Next()
			if err == iterator.Done {
				return
			}
			if err != nil {
				yield(FileRef{}, err)
				return
			}
			if !yield(ref, nil) {
				return
			}
		}
	}
}
