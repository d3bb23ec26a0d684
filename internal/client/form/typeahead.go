package form

import "strings"

// Typeahead backs a suggestion field (institution, company). Options are
// fetched once per form lifetime on first focus; typing filters them by
// case-insensitive substring. The typed term is always usable verbatim, so
// an empty suggestion list never blocks input.
type Typeahead struct {
	Open bool
	Term string

	options []string
	fetched bool
}

// EnsureOptions loads the option list on first use and opens the dropdown.
// Later calls reuse the fetched list.
func (t *Typeahead) EnsureOptions(fetch func() []string) {
	if !t.fetched {
		t.options = fetch()
		t.fetched = true
	}
	t.Open = true
}

// SetTerm records the typed value and keeps the dropdown open.
func (t *Typeahead) SetTerm(term string) {
	t.Term = term
	t.Open = true
}

// Suggestions returns the options matching the current term. An empty term
// matches everything.
func (t *Typeahead) Suggestions() []string {
	if t.Term == "" {
		return append([]string(nil), t.options...)
	}
	needle := strings.ToLower(t.Term)
	var out []string
	for _, opt := range t.options {
		if strings.Contains(strings.ToLower(opt), needle) {
			out = append(out, opt)
		}
	}
	return out
}

// Choose commits a suggestion (or the verbatim term) and closes the
// dropdown.
func (t *Typeahead) Choose(value string) string {
	t.Term = value
	t.Open = false
	return value
}

// Close dismisses the dropdown without changing the term, e.g. on an
// outside click.
func (t *Typeahead) Close() {
	t.Open = false
}
