package gdrive

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

// DefaultContentType is used for XML-family payloads and for extensions with no registered MIME type.
const DefaultContentType = "text/xml"

// PlaylistSuffix is the name fragment SearchSuffix filters on.
const PlaylistSuffix = ".xspf"

var queryEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// QuoteQuery returns s as a single quoted Drive query string literal, escaping backslashes and quotes.
func QuoteQuery(s string) string {
	return "'" + queryEscaper.Replace(s) + "'"
}

// inParents is the clause every query in this package starts from.
func inParents(folderID string) string {
	return fmt.Sprintf("%s in parents", QuoteQuery(folderID))
}

func nameEqualsQuery(name, folderID string) string {
	return fmt.Sprintf("name=%s and %s", QuoteQuery(name), inParents(folderID))
}

func suffixQuery(folderID string) string {
	return fmt.Sprintf("%s and mimeType=%s and name contains %s",
		inParents(folderID), QuoteQuery(DefaultContentType), QuoteQuery(PlaylistSuffix))
}

func substringQuery(folderID, query string) string {
	return fmt.Sprintf("%s and name contains %s and trashed=false", inParents(folderID), QuoteQuery(query))
}

// ContentTypeFor infers the upload MIME type from a file name. XML-family names and unknown extensions map
// to DefaultContentType.
func ContentTypeFor(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case "", ".xml", PlaylistSuffix:
		return DefaultContentType
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return DefaultContentType
}

// localName validates that a remote name can be used as a file name inside the download directory.
func localName(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrUnsafeName, name)
	}
	return name, nil
}
