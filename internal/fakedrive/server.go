// Package fakedrive runs an in-memory stand-in for the Drive v3 files endpoints used by gdrive: metadata get,
// ranged media get, paginated list with a small query language, and multipart create.
package fakedrive

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"google.golang.org/api/option"
)

// File is a stored remote file.
type File struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	MimeType string   `json:"mimeType,omitempty"`
	Parents  []string `json:"parents,omitempty"`
	Trashed  bool     `json:"trashed,omitempty"`
	Content  []byte   `json:"-"`
}

// Server is a fake Drive backed by httptest.Server. Files are listed in insertion order.
type Server struct {
	srv *httptest.Server

	// PageSize caps the files returned per list page when the request sets no pageSize.
	PageSize int
	// IgnoreRange makes media requests answer 200 with the whole body.
	IgnoreRange bool

	mu       sync.Mutex
	files    []*File
	nextID   int
	requests map[string]int
	queries  []string
}

// New starts a Server and stops it when the test ends.
func New(t testing.TB) *Server {
	s := &Server{
		PageSize: 100,
		requests: map[string]int{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /drive/v3/files", s.handleList)
	mux.HandleFunc("GET /drive/v3/files/{id}", s.handleGet)
	mux.HandleFunc("POST /upload/drive/v3/files", s.handleCreate)
	s.srv = httptest.NewServer(mux)
	t.Cleanup(s.srv.Close)

	return s
}

// URL returns the Drive endpoint to pass to option.WithEndpoint.
func (s *Server) URL() string {
	return s.srv.URL + "/drive/v3/"
}

// ClientOptions returns the options that point a Drive client at this server without authentication.
func (s *Server) ClientOptions() []option.ClientOption {
	return []option.ClientOption{
		option.WithEndpoint(s.URL()),
		option.WithHTTPClient(s.srv.Client()),
		option.WithoutAuthentication(),
	}
}

// Add stores a file and returns it with its assigned id.
func (s *Server) Add(f File) *File {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(f)
}

func (s *Server) add(f File) *File {
	if f.ID == "" {
		s.nextID++
		f.ID = fmt.Sprintf("file-%d", s.nextID)
	}
	stored := f
	s.files = append(s.files, &stored)
	return &stored
}

// File returns the stored file with id, or nil.
func (s *Server) File(id string) *File {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.find(id)
}

func (s *Server) find(id string) *File {
	for _, f := range s.files {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// Requests returns how many requests the named endpoint ("list", "get", "media", "create") has served.
func (s *Server) Requests(endpoint string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[endpoint]
}

// Queries returns every q parameter received by list, in order.
func (s *Server) Queries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}

type fileList struct {
	NextPageToken string  `json:"nextPageToken,omitempty"`
	Files         []*File `json:"files"`
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests["list"]++

	q := r.URL.Query().Get("q")
	s.queries = append(s.queries, q)

	match, err := ParseQuery(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pageSize := s.PageSize
	if ps, err := strconv.Atoi(r.URL.Query().Get("pageSize")); err == nil && ps > 0 {
		pageSize = ps
	}
	start := 0
	if tok := r.URL.Query().Get("pageToken"); tok != "" {
		start, err = strconv.Atoi(tok)
		if err != nil || start < 0 {
			writeError(w, http.StatusBadRequest, "invalid pageToken")
			return
		}
	}

	var matched []*File
	for _, f := range s.files {
		if match(f) {
			matched = append(matched, f)
		}
	}

	resp := fileList{Files: []*File{}}
	if start < len(matched) {
		end := min(start+pageSize, len(matched))
		resp.Files = matched[start:end]
		if end < len(matched) {
			resp.NextPageToken = strconv.Itoa(end)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.find(r.PathValue("id"))
	if r.URL.Query().Get("alt") == "media" {
		s.requests["media"]++
		if f == nil {
			writeError(w, http.StatusNotFound, "File not found: "+r.PathValue("id"))
			return
		}
		s.serveMedia(w, r, f)
		return
	}

	s.requests["get"]++
	if f == nil {
		writeError(w, http.StatusNotFound, "File not found: "+r.PathValue("id"))
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (s *Server) serveMedia(w http.ResponseWriter, r *http.Request, f *File) {
	size := int64(len(f.Content))
	rng := r.Header.Get("Range")
	if rng == "" || s.IgnoreRange {
		w.Header().Set("Content-Type", f.MimeType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(f.Content)
		return
	}

	var first, last int64
	if _, err := fmt.Sscanf(rng, "bytes=%d-%d", &first, &last); err != nil || first > last {
		writeError(w, http.StatusBadRequest, "invalid range "+rng)
		return
	}
	if first >= size {
		w.Header().Set("Content-Range", fmt.Sprintf("bytes */%d", size))
		writeError(w, http.StatusRequestedRangeNotSatisfiable, "requested range not satisfiable")
		return
	}
	last = min(last, size-1)

	w.Header().Set("Content-Type", f.MimeType)
	w.Header().Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", first, last, size))
	w.WriteHeader(http.StatusPartialContent)
	_, _ = w.Write(f.Content[first : last+1])
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests["create"]++

	mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		writeError(w, http.StatusBadRequest, "expected a multipart upload")
		return
	}
	mr := multipart.NewReader(r.Body, params["boundary"])

	metaPart, err := mr.NextPart()
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing metadata part")
		return
	}
	var meta File
	if err := json.NewDecoder(metaPart).Decode(&meta); err != nil {
		writeError(w, http.StatusBadRequest, "invalid metadata: "+err.Error())
		return
	}

	mediaPart, err := mr.NextPart()
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing media part")
		return
	}
	content, err := io.ReadAll(mediaPart)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	meta.ID = ""
	meta.Content = content
	meta.MimeType = mediaPart.Header.Get("Content-Type")
	writeJSON(w, http.StatusOK, s.add(meta))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": msg,
			"errors": []map[string]string{
				{"message": msg, "reason": http.StatusText(code)},
			},
		},
	})
}
