package form

import (
	"fmt"
	"strings"
)

// TagList edits a free-form string list (skills, highlights, hobbies)
// through a staging input: the user types a value, adds it, and the input
// clears. An exact duplicate is rejected; the comparison is case-sensitive,
// so "go" and "Go" are distinct entries.
type TagList struct {
	Items []string
	Input string
	Error string

	// noun names the thing being added, for the inline messages
	// ("skill", "highlight", "hobby").
	noun string
}

func NewTagList(noun string, items []string) *TagList {
	return &TagList{
		Items: append([]string(nil), items...),
		noun:  noun,
	}
}

// SetInput updates the staged value and clears any previous message.
func (t *TagList) SetInput(v string) {
	t.Input = v
	t.Error = ""
}

// Add commits the staged value to the list. A blank or duplicate value is
// rejected with an inline message and the input is kept for correction.
func (t *TagList) Add() bool {
	value := strings.TrimSpace(t.Input)
	if value == "" {
		t.Error = fmt.Sprintf("Please enter a %s", t.noun)
		return false
	}
	for _, existing := range t.Items {
		if existing == value {
			t.Error = fmt.Sprintf("This %s is already in your list", t.noun)
			return false
		}
	}
	t.Items = append(t.Items, value)
	t.Input = ""
	t.Error = ""
	return true
}

// Remove drops the item at i. Out-of-range indexes are ignored.
func (t *TagList) Remove(i int) {
	if i < 0 || i >= len(t.Items) {
		return
	}
	t.Items = append(t.Items[:i], t.Items[i+1:]...)
}

// Value returns the committed items. The staged input is not included; only
// added values count.
func (t *TagList) Value() []string {
	if t.Items == nil {
		return []string{}
	}
	return t.Items
}
