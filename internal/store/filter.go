// ABOUTME: Filter matching, value comparison, and sorting for documents.
// ABOUTME: RFC3339 strings compare as instants, numbers numerically, rest lexically.
package store

import (
	"sort"
	"strings"
	"time"
)

// Filter selects documents by field. Plain values match by equality;
// Range values match by bounds.
type Filter map[string]any

// Range is a bounds condition on a single field. Zero-valued (nil) bounds
// are ignored.
type Range struct {
	Gte any
	Gt  any
	Lte any
	Lt  any
}

// Matches reports whether doc satisfies every condition in the filter.
// Fields absent from the document never match.
func (f Filter) Matches(doc Doc) bool {
	for field, want := range f {
		got, ok := doc[field]
		if !ok {
			return false
		}
		if r, isRange := want.(Range); isRange {
			if !r.contains(got) {
				return false
			}
			continue
		}
		if !valuesEqual(got, want) {
			return false
		}
	}
	return true
}

func (r Range) contains(v any) bool {
	if r.Gte != nil {
		if c, ok := compareValues(v, r.Gte); !ok || c < 0 {
			return false
		}
	}
	if r.Gt != nil {
		if c, ok := compareValues(v, r.Gt); !ok || c <= 0 {
			return false
		}
	}
	if r.Lte != nil {
		if c, ok := compareValues(v, r.Lte); !ok || c > 0 {
			return false
		}
	}
	if r.Lt != nil {
		if c, ok := compareValues(v, r.Lt); !ok || c >= 0 {
			return false
		}
	}
	return true
}

func valuesEqual(a, b any) bool {
	if c, ok := compareValues(a, b); ok {
		return c == 0
	}
	ab, aok := a.(bool)
	bb, bok := b.(bool)
	if aok && bok {
		return ab == bb
	}
	return false
}

// compareValues compares two document values. Returns ok=false when the
// values are not mutually comparable (mixed types, or non-scalar).
func compareValues(a, b any) (int, bool) {
	if fa, aok := toFloat(a); aok {
		if fb, bok := toFloat(b); bok {
			switch {
			case fa < fb:
				return -1, true
			case fa > fb:
				return 1, true
			default:
				return 0, true
			}
		}
		return 0, false
	}

	sa, aok := toString(a)
	sb, bok := toString(b)
	if !aok || !bok {
		return 0, false
	}

	// RFC3339 strings compare as instants so timestamps with differing
	// fractional precision still order correctly.
	if ta, err := time.Parse(time.RFC3339Nano, sa); err == nil {
		if tb, err := time.Parse(time.RFC3339Nano, sb); err == nil {
			switch {
			case ta.Before(tb):
				return -1, true
			case ta.After(tb):
				return 1, true
			default:
				return 0, true
			}
		}
	}
	return strings.Compare(sa, sb), true
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}

func toString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano), true
	default:
		return "", false
	}
}

// sortDocs orders docs by the sort field. Documents where the field is
// missing or incomparable sink to the end.
func sortDocs(docs []Doc, s *Sort) {
	sort.SliceStable(docs, func(i, j int) bool {
		a, aok := docs[i][s.Field]
		b, bok := docs[j][s.Field]
		if !aok || !bok {
			return aok
		}
		c, ok := compareValues(a, b)
		if !ok {
			return false
		}
		if s.Desc {
			return c > 0
		}
		return c < 0
	})
}
