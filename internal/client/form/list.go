// Package form holds the edit-mode state machines behind each profile
// section: draft values, per-field errors, and the small bits of UI state
// (open dropdowns, staged tag input) that editing needs. Forms never talk to
// the network; they produce a value for the save coordinator and absorb the
// errors it brings back.
package form

import (
	"fmt"
	"strconv"
	"strings"
)

// EntryUI is per-entry presentation state for list sections.
type EntryUI struct {
	ShowDropdown bool
	SearchTerm   string
}

// Entry is one row of a list section's draft.
type Entry[T any] struct {
	Data   T
	Errors map[string]string
	UI     EntryUI
}

// ListForm edits a repeated section (education, experience, achievements,
// contributions) as an ordered list of entries. Identity is positional:
// removing entry i shifts everything after it up, and errors are keyed
// "<index>.<field>".
type ListForm[T any] struct {
	Entries    []Entry[T]
	Submitting bool

	validate func(T) map[string]string
	clean    func(T) T
}

// NewListForm seeds a form from the current section value.
func NewListForm[T any](items []T, validate func(T) map[string]string) *ListForm[T] {
	f := &ListForm[T]{validate: validate}
	for _, item := range items {
		f.Entries = append(f.Entries, Entry[T]{Data: item, Errors: map[string]string{}})
	}
	return f
}

// WithClean installs a normalization step applied to each entry before
// validation and submission.
func (f *ListForm[T]) WithClean(clean func(T) T) *ListForm[T] {
	f.clean = clean
	return f
}

// Add appends a blank entry.
func (f *ListForm[T]) Add() {
	var zero T
	f.Entries = append(f.Entries, Entry[T]{Data: zero, Errors: map[string]string{}})
}

// Remove drops the entry at i. Out-of-range indexes are ignored.
func (f *ListForm[T]) Remove(i int) {
	if i < 0 || i >= len(f.Entries) {
		return
	}
	f.Entries = append(f.Entries[:i], f.Entries[i+1:]...)
}

// Change mutates the entry at i and clears its recorded errors, since any
// stale message may no longer apply to the edited value.
func (f *ListForm[T]) Change(i int, mutate func(*T)) {
	if i < 0 || i >= len(f.Entries) {
		return
	}
	mutate(&f.Entries[i].Data)
	f.Entries[i].Errors = map[string]string{}
}

// Validate cleans and checks every entry, records per-entry errors, and
// reports whether the whole list passed.
func (f *ListForm[T]) Validate() bool {
	ok := true
	for i := range f.Entries {
		if f.clean != nil {
			f.Entries[i].Data = f.clean(f.Entries[i].Data)
		}
		errs := f.validate(f.Entries[i].Data)
		f.Entries[i].Errors = errs
		if len(errs) > 0 {
			ok = false
		}
	}
	return ok
}

// Errors flattens the per-entry errors into the "<index>.<field>" keying the
// save path uses.
func (f *ListForm[T]) Errors() map[string]string {
	flat := map[string]string{}
	for i, e := range f.Entries {
		for field, msg := range e.Errors {
			flat[fmt.Sprintf("%d.%s", i, field)] = msg
		}
	}
	return flat
}

// SetErrors distributes flat "<index>.<field>" errors back onto entries,
// e.g. after a server-side rejection.
func (f *ListForm[T]) SetErrors(flat map[string]string) {
	for i := range f.Entries {
		f.Entries[i].Errors = map[string]string{}
	}
	for key, msg := range flat {
		idxStr, field, found := strings.Cut(key, ".")
		if !found {
			continue
		}
		i, err := strconv.Atoi(idxStr)
		if err != nil || i < 0 || i >= len(f.Entries) {
			continue
		}
		f.Entries[i].Errors[field] = msg
	}
}

// Value returns the cleaned entry data in order, ready to save. Never nil.
func (f *ListForm[T]) Value() []T {
	out := make([]T, 0, len(f.Entries))
	for _, e := range f.Entries {
		data := e.Data
		if f.clean != nil {
			data = f.clean(data)
		}
		out = append(out, data)
	}
	return out
}
