package store

import "strings"

// Filter narrows a history listing. Zero value means everything.
type Filter struct {
	// Domain restricts results to one domain name.
	Domain string

	// ErrorsOnly keeps only failed solves.
	ErrorsOnly bool

	// Limit caps the number of rows; non-positive means no cap.
	Limit int
}

// compile renders the filter as parameterized SQL. Values are always
// bound, never interpolated, and the ORDER BY ties on id so listings
// are stable even within one timestamp.
func (f Filter) compile() (string, []any) {
	var b strings.Builder
	b.WriteString(`
		SELECT id, domain, created_at, inputs_json, outputs_json, error_kind, error_msg
		FROM solves`)

	var (
		clauses []string
		args    []any
	)
	if f.Domain != "" {
		clauses = append(clauses, "domain = ?")
		args = append(args, f.Domain)
	}
	if f.ErrorsOnly {
		clauses = append(clauses, "error_kind IS NOT NULL")
	}
	if len(clauses) > 0 {
		b.WriteString("\n\t\tWHERE ")
		b.WriteString(strings.Join(clauses, " AND "))
	}

	b.WriteString("\n\t\tORDER BY created_at DESC, id DESC")
	if f.Limit > 0 {
		b.WriteString("\n\t\tLIMIT ?")
		args = append(args, f.Limit)
	}
	return b.String(), args
}
