package fakedrive

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher reports whether a file satisfies a parsed query.
type Matcher func(*File) bool

var (
	inParentsClause = regexp.MustCompile(`^('(?:[^'\\]|\\.)*')\s+in\s+parents$`)
	compareClause   = regexp.MustCompile(`^(name|mimeType)\s*(=|!=|contains)\s*('(?:[^'\\]|\\.)*')$`)
	trashedClause   = regexp.MustCompile(`^trashed\s*=\s*(true|false)$`)
)

// ParseQuery compiles the subset of the Drive query language gdrive issues: clauses joined by "and", each one of
// `'<id>' in parents`, `name|mimeType = | != | contains '<value>'` or `trashed = true|false`.
func ParseQuery(q string) (Matcher, error) {
	var matchers []Matcher
	for _, clause := range splitAnd(q) {
		m, err := parseClause(strings.TrimSpace(clause))
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}
	return func(f *File) bool {
		for _, m := range matchers {
			if !m(f) {
				return false
			}
		}
		return true
	}, nil
}

func parseClause(clause string) (Matcher, error) {
	if clause == "" {
		return func(*File) bool { return true }, nil
	}
	if m := inParentsClause.FindStringSubmatch(clause); m != nil {
		parent := unquote(m[1])
		return func(f *File) bool {
			for _, p := range f.Parents {
				if p == parent {
					return true
				}
			}
			return false
		}, nil
	}
	if m := compareClause.FindStringSubmatch(clause); m != nil {
		field, op, value := m[1], m[2], unquote(m[3])
		get := func(f *File) string { return f.Name }
		if field == "mimeType" {
			get = func(f *File) string { return f.MimeType }
		}
		switch op {
		case "=":
			return func(f *File) bool { return get(f) == value }, nil
		case "!=":
			return func(f *File) bool { return get(f) != value }, nil
		default:
			return func(f *File) bool { return strings.Contains(get(f), value) }, nil
		}
	}
	if m := trashedClause.FindStringSubmatch(clause); m != nil {
		want := m[1] == "true"
		return func(f *File) bool { return f.Trashed == want }, nil
	}
	return nil, fmt.Errorf("unsupported query clause %q", clause)
}

// splitAnd splits on " and " outside quoted literals.
func splitAnd(q string) []string {
	var (
		parts   []string
		start   int
		inQuote bool
	)
	for i := 0; i < len(q); i++ {
		switch {
		case q[i] == '\\' && inQuote:
			i++
		case q[i] == '\'':
			inQuote = !inQuote
		case !inQuote && strings.HasPrefix(q[i:], " and "):
			parts = append(parts, q[start:i])
			start = i + len(" and ")
			i = start - 1
		}
	}
	return append(parts, q[start:])
}

func unquote(lit string) string {
	lit = lit[1 : len(lit)-1]
	var b strings.Builder
	for i := 0; i < len(lit); i++ {
		if lit[i] == '\\' && i+1 < len(lit) {
			i++
		}
		b.WriteByte(lit[i])
	}
	return b.String()
}
