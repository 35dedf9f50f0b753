package core

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterState is the Explore filter selection of one visitor.
type FilterState struct {
	SearchText            string          `json:"search"`
	SortAlphabetically    bool            `json:"sortAZ"`
	SelectedCategories    map[string]bool `json:"categories"`
	SelectedSubcategories map[string]bool `json:"subcategories"`
}

// NewFilterState returns an empty filter selection.
func NewFilterState() FilterState {
	return FilterState{
		SelectedCategories:    map[string]bool{},
		SelectedSubcategories: map[string]bool{},
	}
}

// Clone returns a deep copy so callers can read it without holding a lock.
func (f FilterState) Clone() FilterState {
	out := FilterState{
		SearchText:            f.SearchText,
		SortAlphabetically:    f.SortAlphabetically,
		SelectedCategories:    make(map[string]bool, len(f.SelectedCategories)),
		SelectedSubcategories: make(map[string]bool, len(f.SelectedSubcategories)),
	}
	for k, v := range f.SelectedCategories {
		out.SelectedCategories[k] = v
	}
	for k, v := range f.SelectedSubcategories {
		out.SelectedSubcategories[k] = v
	}
	return out
}

// ToggleCategory adds or removes a category chip.
func (f *FilterState) ToggleCategory(v string) {
	f.SelectedCategories = toggle(f.SelectedCategories, v)
}

// ToggleSubcategory adds or removes a subcategory chip.
func (f *FilterState) ToggleSubcategory(v string) {
	f.SelectedSubcategories = toggle(f.SelectedSubcategories, v)
}

// Clear resets search, chips and sort.
func (f *FilterState) Clear() {
	*f = NewFilterState()
}

// IsEmpty reports whether no filter of any kind is active.
func (f FilterState) IsEmpty() bool {
	return strings.TrimSpace(f.SearchText) == "" && !f.SortAlphabetically &&
		len(f.SelectedCategories) == 0 && len(f.SelectedSubcategories) == 0
}

func toggle(set map[string]bool, v string) map[string]bool {
	if set == nil {
		set = map[string]bool{}
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return set
	}
	if set[v] {
		delete(set, v)
	} else {
		set[v] = true
	}
	return set
}

// ApplyFilters computes the visible places for a filter selection.
//
// Order is fixed: search, then category, then subcategory, then the optional
// A-Z sort. An empty selection on a dimension applies no filter on it.
func ApplyFilters(all []Place, st FilterState, tag language.Tag) []Place {
	q := strings.ToLower(strings.TrimSpace(st.SearchText))

	list := make([]Place, 0, len(all))
	for _, p := range all {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Address), q) {
			continue
		}
		if len(st.SelectedCategories) > 0 && !st.SelectedCategories[strings.TrimSpace(p.Category)] {
			continue
		}
		if len(st.SelectedSubcategories) > 0 && !st.SelectedSubcategories[strings.TrimSpace(p.Subcategory)] {
			continue
		}
		list = append(list, p)
	}

	if st.SortAlphabetically {
		c := collate.New(tag)
		sort.SliceStable(list, func(i, j int) bool {
			return c.CompareString(list[i].Name, list[j].Name) < 0
		})
	}

	return list
}

// Facets returns the unique non-empty categories and subcategories, each
// sorted for the locale. These drive the filter chips.
func Facets(all []Place, tag language.Tag) (categories, subcategories []string) {
	cats := make([]string, 0, len(all))
	subs := make([]string, 0, len(all))
	for _, p := range all {
		cats = append(cats, p.Category)
		subs = append(subs, p.Subcategory)
	}
	return uniqueSorted(cats, tag), uniqueSorted(subs, tag)
}

func uniqueSorted(values []string, tag language.Tag) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	collate.New(tag).SortStrings(out)
	return out
}

// PlaceCountLabel formats the result count shown above the grid.
func PlaceCountLabel(n int) string {
	if n == 1 {
		return "1 place"
	}
	return fmt.Sprintf("%d places", n)
}
