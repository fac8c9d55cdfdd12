package directory

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the field the directory is ordered by.
type SortKey int

const (
	SortByName SortKey = iota
	SortByEmail
	SortByAge
)

func (k SortKey) String() string {
	switch k {
	case SortByEmail:
		return "email"
	case SortByAge:
		return "age"
	default:
		return "name"
	}
}

// ParseSortKey accepts the lowercase names used in config and prefs.
func ParseSortKey(value string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "name":
		return SortByName, nil
	case "email":
		return SortByEmail, nil
	case "age":
		return SortByAge, nil
	}
	return SortByName, fmt.Errorf("unknown sort key %q", value)
}

// SortOrder is the direction of a sort.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

func (o SortOrder) String() string {
	if o == Descending {
		return "desc"
	}
	return "asc"
}

// Flip returns the opposite direction.
func (o SortOrder) Flip() SortOrder {
	if o == Descending {
		return Ascending
	}
	return Descending
}

// ParseSortOrder accepts asc/desc and their long forms.
func ParseSortOrder(value string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("unknown sort order %q", value)
}

// Query describes one pass of the transform pipeline.
type Query struct {
	Search string
	Key    SortKey
	Order  SortOrder
	Locale language.Tag
}

// Apply sorts records and then filters them. The input is never modified.
// Sorting first keeps ties in fetch order regardless of the search term.
func Apply(records []Employee, q Query) []Employee {
	return Filter(Sort(records, q.Key, q.Order, q.Locale), q.Search)
}

// Sort returns a stably sorted copy of records. Descending flips the
// comparator sign, so equal keys keep their original relative order in both
// directions.
func Sort(records []Employee, key SortKey, order SortOrder, locale language.Tag) []Employee {
	out := make([]Employee, len(records))
	copy(out, records)
	if len(out) < 2 {
		return out
	}

	// Collators keep scratch buffers and are not safe to share.
	col := collate.New(locale)
	compare := func(a, b Employee) int {
		switch key {
		case SortByEmail:
			return col.CompareString(a.Email, b.Email)
		case SortByAge:
			return a.Age - b.Age
		default:
			return col.CompareString(a.Last, b.Last)
		}
	}

	sign := 1
	if order == Descending {
		sign = -1
	}
	sort.SliceStable(out, func(i, j int) bool {
		return sign*compare(out[i], out[j]) < 0
	})
	return out
}

// Filter keeps records whose full name or email contains term, ignoring case.
// An empty term returns a copy of the input in the same order.
func Filter(records []Employee, term string) []Employee {
	if term == "" {
		out := make([]Employee, len(records))
		copy(out, records)
		return out
	}

	fold := cases.Fold()
	needle := fold.String(term)
	out := make([]Employee, 0, len(records))
	for _, rec := range records {
		if strings.Contains(fold.String(rec.FullName()), needle) ||
			strings.Contains(fold.String(rec.Email), needle) {
			out = append(out, rec)
		}
	}
	return out
}
