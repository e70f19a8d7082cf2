package dashboard

import (
	"go-salarydash/internal/dataset"
)

// Selection holds the selected values per filterable column. A nil slice
// leaves its column unrestricted; an empty non-nil slice matches nothing,
// since membership in an empty set is always false.
type Selection struct {
	Years        []int
	Seniorities  []string
	Contracts    []string
	CompanySizes []string
}

// Apply returns the rows satisfying every membership predicate. The input
// is never mutated and output ordering follows input ordering.
func (s Selection) Apply(records []dataset.Record) []dataset.Record {
	years := intSet(s.Years)
	seniorities := stringSet(s.Seniorities)
	contracts := stringSet(s.Contracts)
	sizes := stringSet(s.CompanySizes)

	out := make([]dataset.Record, 0, len(records))
	for _, rec := range records {
		if !memberInt(years, rec.Year) {
			continue
		}
		if !member(seniorities, rec.Seniority) {
			continue
		}
		if !member(contracts, rec.Contract) {
			continue
		}
		if !member(sizes, rec.CompanySize) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// nil in, nil out: a nil set means "no restriction" in member/memberInt.

func intSet(vals []int) map[int]struct{} {
	if vals == nil {
		return nil
	}
	set := make(map[int]struct{}, len(vals))
	for _, v := range vals {
		set[v] = struct{}{}
	}
	return set
}

func stringSet(vals []string) map[string]struct{} {
	if vals == nil {
		return nil
	}
	set := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		set[v] = struct{}{}
	}
	return set
}

func memberInt(set map[int]struct{}, v int) bool {
	if set == nil {
		return true
	}
	_, ok := set[v]
	return ok
}

func member(set map[string]struct{}, v string) bool {
	if set == nil {
		return true
	}
	_, ok := set[v]
	return ok
}
